// Package estimating implementa os dois fluxos assíncronos do wizard: as
// estimativas de alcance/performance (com debounce e cancelamento) e as
// sugestões de audiência por IA (com polling)
package estimating

import (
	"context"
	"sync"
	"time"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/repository"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
)

type Estimator interface {
	// Trigger agenda uma rodada de estimativa com debounce; um novo trigger
	// cancela sincronamente o lote em voo antes de agendar o próximo
	Trigger(userID int)
	// Current devolve o último resultado conhecido (ou IDLE)
	Current(userID int) *domain.EstimateResult
	// EstimateDraft executa a rodada imediatamente, sem debounce
	EstimateDraft(ctx context.Context, draft *domain.CampaignDraft) *domain.EstimateResult
	// DismissError limpa um estado de falha, mantendo o wizard utilizável
	DismissError(userID int)

	Suggest(userID int, req *SuggestionInput) (*domain.AISuggestion, error)
	EnsureSuggestion(userID int, req *SuggestionInput) (*domain.AISuggestion, error)
	SuggestionState(userID int) *domain.AISuggestion
	DismissSuggestion(userID int)

	// Close libera timers e requisições em voo de todos os usuários
	Close()
}

// userState acumula o estado efêmero por usuário: timer de debounce, funções
// de cancelamento e os últimos resultados de estimativa e sugestão
type userState struct {
	debounce       *time.Timer
	cancelEstimate context.CancelFunc

	result *domain.EstimateResult

	suggestion       *domain.AISuggestion
	cancelPoll       context.CancelFunc
	suggestedOnce    bool
	suggestWorkspace string
}

type Service struct {
	cfg    *config.Config
	client campaignbackend.Client
	drafts drafting.DraftStore
	cache  repository.EstimateCache

	mu     sync.Mutex
	states map[int]*userState
}

func NewService(
	cfg *config.Config,
	client campaignbackend.Client,
	drafts drafting.DraftStore,
) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
		drafts: drafts,
		states: make(map[int]*userState),
	}
}

// WithCache habilita o cache de resultados agregados de estimativa
func (s *Service) WithCache(cache repository.EstimateCache) *Service {
	s.cache = cache
	return s
}

func (s *Service) state(userID int) *userState {
	state, ok := s.states[userID]
	if !ok {
		state = &userState{
			result: &domain.EstimateResult{Status: domain.EstimateStatusIdle},
		}
		s.states[userID] = state
	}
	return state
}

// Trigger implementa o debounce com cancelamento por substituição: o lote
// anterior é invalidado de forma síncrona antes de qualquer trabalho novo
// ("last write wins" por cancelamento, não por comparação de timestamps)
func (s *Service) Trigger(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(userID)

	if state.debounce != nil {
		state.debounce.Stop()
	}
	if state.cancelEstimate != nil {
		state.cancelEstimate()
	}

	// O token do lote nasce aqui, não dentro do lote: um trigger mais novo
	// consegue cancelar o anterior mesmo que ele ainda esteja bloqueado
	// carregando o rascunho
	ctx, cancel := context.WithCancel(context.Background())
	state.cancelEstimate = cancel

	state.result = &domain.EstimateResult{Status: domain.EstimateStatusLoading}

	state.debounce = time.AfterFunc(s.cfg.Wizard.EstimateDebounce, func() {
		s.runEstimate(ctx, userID)
	})
}

func (s *Service) runEstimate(ctx context.Context, userID int) {
	draft, err := s.drafts.Get(userID)
	if err != nil {
		s.storeResult(ctx, userID, &domain.EstimateResult{
			Status:        domain.EstimateStatusFailed,
			ErrorCategory: domain.EstimateErrorGeneric,
			ErrorMessage:  err.Error(),
		})
		return
	}

	s.storeResult(ctx, userID, s.EstimateDraft(ctx, draft))
}

// storeResult grava o resultado do lote; um lote substituído chega aqui com
// o contexto já cancelado e é descartado sem sobrescrever o lote mais novo.
// A checagem acontece sob o mesmo mutex que o Trigger usa para cancelar
func (s *Service) storeResult(ctx context.Context, userID int, result *domain.EstimateResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ctx.Err() != nil {
		return
	}

	s.state(userID).result = result
}

func (s *Service) Current(userID int) *domain.EstimateResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state(userID).result
}

// DismissError volta ao estado ocioso; a falha de estimativa nunca bloqueia
// a continuação do wizard
func (s *Service) DismissError(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state(userID)
	if state.result != nil && state.result.Status == domain.EstimateStatusFailed {
		state.result = &domain.EstimateResult{Status: domain.EstimateStatusIdle}
	}
}

// Close cancela timers de debounce, lotes de estimativa e pollings de
// sugestão pendentes
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, state := range s.states {
		if state.debounce != nil {
			state.debounce.Stop()
		}
		if state.cancelEstimate != nil {
			state.cancelEstimate()
		}
		if state.cancelPoll != nil {
			state.cancelPoll()
		}
	}
}
