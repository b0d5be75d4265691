package drafting

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/utils"
)

// SaveDraft congela o rascunho ativo em um snapshot nomeado e imutável e em
// seguida reseta o rascunho ativo; o snapshot é independente do fluxo ativo
func (s *Service) SaveDraft(userID int) (*domain.DraftRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.load(userID)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	snapshot := *draft

	record := &domain.DraftRecord{
		ID:        id,
		UserID:    userID,
		Name:      domain.DraftDisplayName(&snapshot, now),
		Draft:     &snapshot,
		CreatedAt: now,
	}

	if err := s.savedRepo.Insert(record); err != nil {
		return nil, err
	}

	if err := s.activeRepo.Delete(userID); err != nil {
		// O snapshot já está salvo; o rascunho ativo fica para o próximo reset
		logrus.WithError(err).WithField("user_id", userID).Warn("draft: failed to reset active draft after save")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"draft_id": record.ID,
	}).Info("draft: snapshot saved")

	return record, nil
}

func (s *Service) ListDrafts(userID int) ([]*domain.DraftRecord, error) {
	return s.savedRepo.ListByUser(userID)
}

// ResumeDraft reidrata o rascunho ativo a partir de um snapshot sem mutá-lo;
// o passo corrente é reposicionado na revisão, o ponto de entrada do retorno
func (s *Service) ResumeDraft(userID int, draftID string) (*domain.CampaignDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.savedRepo.GetByID(userID, draftID)
	if err != nil {
		return nil, err
	}

	if record == nil {
		return nil, ErrDraftNotFound
	}

	restored := *record.Draft
	restored.CurrentStep = domain.StepReview

	if err := s.persist(userID, &restored); err != nil {
		return nil, err
	}

	return &restored, nil
}

func (s *Service) DeleteDraft(userID int, draftID string) error {
	record, err := s.savedRepo.GetByID(userID, draftID)
	if err != nil {
		return err
	}

	if record == nil {
		return ErrDraftNotFound
	}

	return s.savedRepo.Delete(userID, draftID)
}
