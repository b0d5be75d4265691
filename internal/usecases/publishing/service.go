// Package publishing implementa o orquestrador de publicação: valida o
// rascunho localmente, resolve a mídia do criativo, monta o payload completo
// e conduz a máquina de estados IDLE→VALIDATING→PUBLISHING→SUCCESS|FAILED
package publishing

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	backenddomain "github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
)

// Formatos de preview pedidos por padrão ao backend
var defaultPreviewFormats = []string{
	"DESKTOP_FEED_STANDARD",
	"MOBILE_FEED_STANDARD",
	"INSTAGRAM_STANDARD",
}

type Publisher interface {
	// Publish valida o rascunho, monta o payload e submete a campanha
	Publish(ctx context.Context, userID int) (*domain.PublishResult, error)
	// Retry reenvia o payload da última tentativa falha, sem remontagem
	Retry(ctx context.Context, userID int) (*domain.PublishResult, error)
	// State devolve o estado corrente da máquina de publicação
	State(userID int) *domain.PublishResult
	// Dismiss volta uma falha de publicação para IDLE
	Dismiss(userID int)
	// Previews busca renderizações do anúncio para o passo de revisão
	Previews(ctx context.Context, userID int) ([]domain.AdPreview, error)
}

// publishState guarda o desfecho corrente e o payload da última tentativa,
// que um retry reenvia sem reconstruir
type publishState struct {
	result      *domain.PublishResult
	lastPayload *domain.PublishPayload
}

type Service struct {
	cfg    *config.Config
	client campaignbackend.Client
	drafts drafting.DraftStore

	mu     sync.Mutex
	states map[int]*publishState
}

func NewService(
	cfg *config.Config,
	client campaignbackend.Client,
	drafts drafting.DraftStore,
) Publisher {
	return &Service{
		cfg:    cfg,
		client: client,
		drafts: drafts,
		states: make(map[int]*publishState),
	}
}

func (s *Service) state(userID int) *publishState {
	state, ok := s.states[userID]
	if !ok {
		state = &publishState{
			result: &domain.PublishResult{State: domain.PublishStateIdle},
		}
		s.states[userID] = state
	}
	return state
}

func (s *Service) storeResult(userID int, result *domain.PublishResult) *domain.PublishResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state(userID).result = result
	return result
}

// Publish conduz a máquina de estados. Falhas de validação local acontecem
// antes de qualquer requisição de rede; falhas do backend preservam o
// rascunho e o payload para retry
func (s *Service) Publish(ctx context.Context, userID int) (*domain.PublishResult, error) {
	s.storeResult(userID, &domain.PublishResult{State: domain.PublishStateValidating})

	draft, err := s.drafts.Get(userID)
	if err != nil {
		return s.storeResult(userID, &domain.PublishResult{
			State:        domain.PublishStateFailed,
			ErrorMessage: err.Error(),
		}), nil
	}

	if err := validateDraft(draft); err != nil {
		return s.failValidation(userID, err), nil
	}

	payload, err := s.buildPayload(ctx, userID, draft)
	if err != nil {
		return s.failValidation(userID, err), nil
	}

	return s.submit(ctx, userID, payload), nil
}

// Retry reenvia exatamente o mesmo payload da tentativa anterior; mutações
// feitas no rascunho depois da falha não entram até um novo Publish
func (s *Service) Retry(ctx context.Context, userID int) (*domain.PublishResult, error) {
	s.mu.Lock()
	payload := s.state(userID).lastPayload
	s.mu.Unlock()

	if payload == nil {
		return nil, errors.New("não há tentativa de publicação para repetir")
	}

	return s.submit(ctx, userID, payload), nil
}

func (s *Service) submit(ctx context.Context, userID int, payload *domain.PublishPayload) *domain.PublishResult {
	s.mu.Lock()
	state := s.state(userID)
	state.result = &domain.PublishResult{State: domain.PublishStatePublishing}
	state.lastPayload = payload
	s.mu.Unlock()

	response, err := s.client.Publish(ctx, payload)
	if err != nil {
		return s.storeResult(userID, failedResult(err))
	}

	if !response.OK {
		return s.storeResult(userID, &domain.PublishResult{
			State:        domain.PublishStateFailed,
			ErrorMessage: "o backend recusou a publicação",
			Details:      response.Details,
		})
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"campaign_id": response.CampaignID,
	}).Info("publishing: campaign published")

	// Sucesso encerra o ciclo do rascunho ativo; o resultado permanece como
	// comprovante até ser consultado ou um novo wizard começar
	if err := s.drafts.Reset(userID); err != nil {
		logrus.WithError(err).WithField("user_id", userID).
			Warn("publishing: failed to clear draft after publish")
	}

	return s.storeResult(userID, &domain.PublishResult{
		State:      domain.PublishStateSuccess,
		CampaignID: response.CampaignID,
	})
}

func (s *Service) failValidation(userID int, err error) *domain.PublishResult {
	result := &domain.PublishResult{
		State:        domain.PublishStateFailed,
		ErrorMessage: err.Error(),
	}

	var validationErr *drafting.ValidationError
	if errors.As(err, &validationErr) {
		result.ErrorField = validationErr.Field
		result.ErrorMessage = validationErr.Message
	}

	return s.storeResult(userID, result)
}

func (s *Service) State(userID int) *domain.PublishResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state(userID).result
}

// Dismiss descarta uma falha e volta a IDLE; o payload de retry também é
// descartado
func (s *Service) Dismiss(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(userID)
	if state.result != nil && state.result.State == domain.PublishStateFailed {
		state.result = &domain.PublishResult{State: domain.PublishStateIdle}
		state.lastPayload = nil
	}
}

// Previews busca renderizações do anúncio. Falhas aqui são devolvidas ao
// chamador mas nunca alteram a máquina de publicação
func (s *Service) Previews(ctx context.Context, userID int) ([]domain.AdPreview, error) {
	draft, err := s.drafts.Get(userID)
	if err != nil {
		return nil, err
	}

	response, err := s.client.AdPreviews(ctx, &campaignbackend.PreviewRequest{
		Creative:    draft.Creative,
		AdFormats:   defaultPreviewFormats,
		WorkspaceID: draft.WorkspaceID,
		UserID:      userID,
	})
	if err != nil {
		return nil, err
	}

	return response.Previews, nil
}

func failedResult(err error) *domain.PublishResult {
	result := &domain.PublishResult{
		State:        domain.PublishStateFailed,
		ErrorMessage: err.Error(),
	}

	var backendErr *backenddomain.BackendError
	if errors.As(err, &backendErr) {
		result.ErrorMessage = backendErr.Message
		result.Details = backendErr.Details
	}

	return result
}
