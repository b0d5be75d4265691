package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/database/postgres"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/database/redis"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/repository"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/api"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/scheduler"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/authenticating"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/estimating"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/publishing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	activeDraftRepo := repository.NewActiveDraftRepository(pgConn)
	savedDraftRepo := repository.NewSavedDraftRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	backendClient := campaignbackend.NewClient(cfg)

	draftService := drafting.NewService(cfg, activeDraftRepo, savedDraftRepo)

	// Estimativas com cache opcional em Redis
	estimateService := estimating.NewService(cfg, backendClient, draftService)
	if cfg.Redis.Enabled {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao conectar ao Redis")
		}
		defer rdb.Close()

		estimateService = estimateService.WithCache(
			repository.NewEstimateCache(rdb, cfg.Wizard.EstimateCacheTTL),
		)
	}
	defer estimateService.Close()

	publishService := publishing.NewService(cfg, backendClient, draftService)

	// Agendador de expurgo de rascunhos salvos
	draftRetentionService := scheduler.NewDraftRetentionService(savedDraftRepo, cfg)
	if err := draftRetentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de rascunhos")
	} else {
		logrus.Info("Agendador de retenção de rascunhos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		draftService,
		estimateService,
		publishService,
		authenticator,
		backendClient,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
