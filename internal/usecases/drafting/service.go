// Package drafting implementa o Draft Store: o estado do rascunho de campanha
// atravessando os passos do wizard, persistido a cada mutação para que um
// recarregamento retome o fluxo no mesmo ponto
package drafting

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/repository"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

type DraftStore interface {
	Get(userID int) (*domain.CampaignDraft, error)
	Set(userID int, patch *domain.DraftPatch) (*domain.CampaignDraft, error)
	Advance(userID int, step int) (*domain.CampaignDraft, error)
	Rewind(userID int, step int) (*domain.CampaignDraft, error)
	Reset(userID int) error

	SaveDraft(userID int) (*domain.DraftRecord, error)
	ListDrafts(userID int) ([]*domain.DraftRecord, error)
	ResumeDraft(userID int, draftID string) (*domain.CampaignDraft, error)
	DeleteDraft(userID int, draftID string) error
}

type Service struct {
	cfg        *config.Config
	activeRepo repository.ActiveDraftRepository
	savedRepo  repository.SavedDraftRepository

	// Mutações são serializadas: espelha o modelo de escritor único da UI
	mu sync.Mutex
}

func NewService(
	cfg *config.Config,
	activeRepo repository.ActiveDraftRepository,
	savedRepo repository.SavedDraftRepository,
) DraftStore {
	return &Service{
		cfg:        cfg,
		activeRepo: activeRepo,
		savedRepo:  savedRepo,
	}
}

// Get retorna o rascunho ativo do usuário, criando-o implicitamente (com
// valores padrão) na primeira entrada no wizard
func (s *Service) Get(userID int) (*domain.CampaignDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(userID)
}

// Set aplica uma mutação parcial (merge raso por chave de topo; audiência com
// merge profundo) e persiste o resultado
func (s *Service) Set(userID int, patch *domain.DraftPatch) (*domain.CampaignDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	if err := applyPatch(draft, patch, s.cfg.Wizard.MaxLocations); err != nil {
		return nil, err
	}

	if err := s.persist(userID, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// Reset descarta o rascunho ativo e o registro persistido
func (s *Service) Reset(userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.activeRepo.Delete(userID); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("draft: failed to delete active draft")
		return err
	}

	return nil
}

// load busca o envelope persistido; a ausência cria um rascunho padrão
func (s *Service) load(userID int) (*domain.CampaignDraft, error) {
	envelope, err := s.activeRepo.Get(userID)
	if err != nil {
		return nil, err
	}

	if envelope == nil || envelope.State == nil {
		draft := domain.NewCampaignDraft()
		if err := s.persist(userID, draft); err != nil {
			return nil, err
		}
		return draft, nil
	}

	return envelope.State, nil
}

func (s *Service) persist(userID int, draft *domain.CampaignDraft) error {
	draft.UpdatedAt = time.Now()

	envelope := &domain.DraftEnvelope{
		State:   draft,
		Version: domain.DraftEnvelopeVersion,
	}

	if err := s.activeRepo.Save(userID, envelope); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("draft: failed to persist active draft")
		return err
	}

	return nil
}
