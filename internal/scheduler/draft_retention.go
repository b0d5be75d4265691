// Package scheduler agrupa os jobs recorrentes da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/repository"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
)

// DraftRetentionConfig representa a configuração do agendador de expurgo de
// rascunhos salvos
type DraftRetentionConfig struct {
	CronSchedule string
	MaxAgeDays   int
	Enabled      bool
}

// DraftRetentionService remove periodicamente os snapshots de rascunho mais
// antigos que a janela de retenção
type DraftRetentionService struct {
	scheduler        *gocron.Scheduler
	config           DraftRetentionConfig
	savedRepo        repository.SavedDraftRepository
	purgeRunning     bool
	purgeMutex       sync.Mutex
	lastPurgeStarted time.Time
}

func NewDraftRetentionService(
	savedRepo repository.SavedDraftRepository,
	appConfig *config.Config,
) *DraftRetentionService {
	retentionConfig := DraftRetentionConfig{
		CronSchedule: appConfig.DraftRetention.CronSchedule,
		MaxAgeDays:   appConfig.DraftRetention.MaxAgeDays,
		Enabled:      appConfig.DraftRetention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"max_age_days":  retentionConfig.MaxAgeDays,
		"enabled":       retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção de rascunhos carregada")

	return &DraftRetentionService{
		scheduler: scheduler,
		config:    retentionConfig,
		savedRepo: savedRepo,
	}
}

// Start inicia o agendador
func (s *DraftRetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Retenção de rascunhos desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção de rascunhos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.purgeExpiredDrafts()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar retenção de rascunhos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção de rascunhos")
		s.scheduler.Stop()
	}()

	return nil
}

// purgeExpiredDrafts remove os snapshots além da janela de retenção
func (s *DraftRetentionService) purgeExpiredDrafts() {
	s.purgeMutex.Lock()
	if s.purgeRunning {
		s.purgeMutex.Unlock()
		logrus.Info("Expurgo de rascunhos já em andamento, ignorando")
		return
	}
	s.purgeRunning = true
	s.lastPurgeStarted = time.Now()
	s.purgeMutex.Unlock()

	defer func() {
		s.purgeMutex.Lock()
		s.purgeRunning = false
		s.purgeMutex.Unlock()
	}()

	cutoff := time.Now().AddDate(0, 0, -s.config.MaxAgeDays)

	deleted, err := s.savedRepo.DeleteOlderThan(cutoff)
	if err != nil {
		logrus.WithError(err).Error("Erro ao expurgar rascunhos expirados")
		return
	}

	logrus.WithFields(logrus.Fields{
		"deleted": deleted,
		"cutoff":  cutoff.Format(time.RFC3339),
	}).Info("Expurgo de rascunhos concluído")
}
