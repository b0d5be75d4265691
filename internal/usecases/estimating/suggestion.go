package estimating

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

// SuggestionInput carrega o contexto de negócio enviado ao serviço de
// sugestão de audiência
type SuggestionInput struct {
	WorkspaceID   string
	Industry      string
	Website       string
	CreativeBrief string
	Objective     string
}

// Suggest dispara uma nova geração de sugestão, descartando qualquer polling
// anterior. A resposta síncrona resolve imediatamente; a assíncrona deixa a
// sugestão em PENDING e inicia o polling
func (s *Service) Suggest(userID int, req *SuggestionInput) (*domain.AISuggestion, error) {
	if req == nil || req.WorkspaceID == "" {
		return nil, errors.New("workspace é obrigatório para sugestão de audiência")
	}

	s.mu.Lock()
	state := s.state(userID)
	if state.cancelPoll != nil {
		state.cancelPoll()
		state.cancelPoll = nil
	}
	state.suggestion = &domain.AISuggestion{Status: domain.SuggestionStatusPending}
	state.suggestedOnce = true
	state.suggestWorkspace = req.WorkspaceID
	s.mu.Unlock()

	raw, err := s.client.SuggestAudience(context.Background(), req.WorkspaceID, &campaignbackend.SuggestionRequest{
		Industry:      req.Industry,
		Website:       req.Website,
		CreativeBrief: req.CreativeBrief,
		Objective:     req.Objective,
	})
	if err != nil {
		logrus.WithError(err).Warn("falha ao solicitar sugestão de audiência")
		return s.storeSuggestion(userID, failedSuggestion(err)), nil
	}

	normalized, ok := normalizeSuggestion(raw)
	if !ok {
		return s.storeSuggestion(userID, failedSuggestion(errors.New("resposta de sugestão em formato desconhecido"))), nil
	}

	if normalized.Suggestion != nil {
		return s.storeSuggestion(userID, normalized.Suggestion), nil
	}

	pending := &domain.AISuggestion{
		ID:     normalized.SuggestionID,
		Status: domain.SuggestionStatusPending,
	}
	s.storeSuggestion(userID, pending)
	s.startPolling(userID, normalized.SuggestionID)

	return pending, nil
}

// EnsureSuggestion dispara a sugestão no máximo uma vez por rascunho com
// workspace: chamadas repetidas (ou re-entradas no passo de audiência)
// devolvem o estado corrente sem nova requisição. Trocar de workspace
// rearma o gatilho
func (s *Service) EnsureSuggestion(userID int, req *SuggestionInput) (*domain.AISuggestion, error) {
	if req == nil || req.WorkspaceID == "" {
		return s.SuggestionState(userID), nil
	}

	s.mu.Lock()
	state := s.state(userID)
	alreadySuggested := state.suggestedOnce && state.suggestWorkspace == req.WorkspaceID
	current := state.suggestion
	s.mu.Unlock()

	if alreadySuggested {
		return current, nil
	}

	return s.Suggest(userID, req)
}

func (s *Service) SuggestionState(userID int) *domain.AISuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state(userID).suggestion
}

// DismissSuggestion descarta a sugestão corrente e interrompe o polling;
// o gatilho automático não rearma para o mesmo workspace
func (s *Service) DismissSuggestion(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(userID)
	if state.cancelPoll != nil {
		state.cancelPoll()
		state.cancelPoll = nil
	}
	state.suggestion = nil
}

func (s *Service) storeSuggestion(userID int, suggestion *domain.AISuggestion) *domain.AISuggestion {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(userID).suggestion = suggestion
	return suggestion
}

// startPolling consulta o status da sugestão em intervalo fixo até alcançar
// um status terminal ou ser cancelado por substituição/descarte
func (s *Service) startPolling(userID int, suggestionID string) {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.state(userID).cancelPoll = cancel
	s.mu.Unlock()

	go s.poll(ctx, userID, suggestionID)
}

func (s *Service) poll(ctx context.Context, userID int, suggestionID string) {
	ticker := time.NewTicker(s.cfg.Wizard.SuggestionPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		raw, err := s.client.GetSuggestion(ctx, suggestionID)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.WithError(err).WithField("suggestion_id", suggestionID).
				Warn("falha no polling de sugestão")
			s.finishPolling(userID, failedSuggestion(err))
			return
		}

		normalized, ok := normalizeSuggestion(raw)
		if !ok || normalized.Suggestion == nil {
			s.finishPolling(userID, failedSuggestion(errors.New("resposta de polling em formato desconhecido")))
			return
		}

		suggestion := normalized.Suggestion
		if suggestion.ID == "" {
			suggestion.ID = suggestionID
		}

		if suggestion.Terminal() {
			s.finishPolling(userID, suggestion)
			return
		}

		s.storeSuggestion(userID, suggestion)
	}
}

func (s *Service) finishPolling(userID int, suggestion *domain.AISuggestion) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(userID)
	state.suggestion = suggestion
	if state.cancelPoll != nil {
		state.cancelPoll()
		state.cancelPoll = nil
	}
}

func failedSuggestion(err error) *domain.AISuggestion {
	return &domain.AISuggestion{
		Status:      domain.SuggestionStatusFailed,
		Explanation: err.Error(),
	}
}
