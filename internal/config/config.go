package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Redis          Redis          `mapstructure:",squash"`
	Backend        Backend        `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Wizard         Wizard         `mapstructure:",squash"`
	DraftRetention DraftRetention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
	Enabled  bool   `mapstructure:"redis_enabled"`
}

// Backend aponta para o backend remoto de campanhas (workspaces, estimativas,
// sugestões de IA, previews e publicação)
type Backend struct {
	BaseURL     string `mapstructure:"backend_base_url"`
	AccessToken string `mapstructure:"backend_access_token"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Wizard concentra os ajustes de tempo do fluxo de criação de campanha
type Wizard struct {
	EstimateDebounce       time.Duration `mapstructure:"wizard_estimate_debounce"`
	SuggestionPollInterval time.Duration `mapstructure:"wizard_suggestion_poll_interval"`
	MaxLocations           int           `mapstructure:"wizard_max_locations"`
	EstimateCacheTTL       time.Duration `mapstructure:"wizard_estimate_cache_ttl"`
}

type DraftRetention struct {
	CronSchedule string `mapstructure:"draft_retention_cron"`
	MaxAgeDays   int    `mapstructure:"draft_retention_max_age_days"`
	Enabled      bool   `mapstructure:"draft_retention_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sociovia")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("BACKEND_BASE_URL", "https://api.sociovia.com")
	viper.SetDefault("BACKEND_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	// Defaults do wizard; os tempos espelham o comportamento da UI
	viper.SetDefault("WIZARD_ESTIMATE_DEBOUNCE", "700ms")
	viper.SetDefault("WIZARD_SUGGESTION_POLL_INTERVAL", "1200ms")
	viper.SetDefault("WIZARD_MAX_LOCATIONS", 10)
	viper.SetDefault("WIZARD_ESTIMATE_CACHE_TTL", "5m")

	viper.SetDefault("DRAFT_RETENTION_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("DRAFT_RETENTION_MAX_AGE_DAYS", 90)
	viper.SetDefault("DRAFT_RETENTION_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
