package estimating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	backenddomain "github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend/domain"
	backendmocks "github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend/mocks"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	draftmocks "github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting/mocks"
)

const testUserID = 7

func newTestEstimator(t *testing.T) (*Service, *backendmocks.MockClient, *draftmocks.MockDraftStore) {
	ctrl := gomock.NewController(t)

	client := backendmocks.NewMockClient(ctrl)
	drafts := draftmocks.NewMockDraftStore(ctrl)

	cfg := &config.Config{
		Wizard: config.Wizard{
			EstimateDebounce:       10 * time.Millisecond,
			SuggestionPollInterval: 20 * time.Millisecond,
			MaxLocations:           10,
		},
	}

	return NewService(cfg, client, drafts), client, drafts
}

func draftWithLocations(locations ...domain.Location) *domain.CampaignDraft {
	draft := domain.NewCampaignDraft()
	draft.WorkspaceID = "ws-1"
	draft.Objective = domain.ObjectiveReach
	draft.Audience.Locations = locations
	return draft
}

func TestEstimateDraftNoLocationSkipsNetwork(t *testing.T) {
	service, _, _ := newTestEstimator(t)

	// Nenhuma expectativa no cliente: qualquer chamada de rede falha o teste
	result := service.EstimateDraft(context.Background(), draftWithLocations())

	assert.Equal(t, domain.EstimateStatusNoLocation, result.Status)
}

func TestEstimateDraftIgnoresLocationsWithoutCountry(t *testing.T) {
	service, _, _ := newTestEstimator(t)

	result := service.EstimateDraft(context.Background(), draftWithLocations(
		domain.Location{Country: ""},
	))

	assert.Equal(t, domain.EstimateStatusNoLocation, result.Status)
}

func TestEstimateDraftAggregatesAcrossLocations(t *testing.T) {
	service, client, _ := newTestEstimator(t)

	draft := draftWithLocations(
		domain.Location{Country: "India"},
		domain.Location{Country: "United States"},
	)

	responses := map[string]*campaignbackend.EstimateResponse{
		"India": {
			EstimatedReach:            1000,
			EstimatedDailyImpressions: 400,
			EstimatedDailyClicks:      40,
			EstimatedCPC:              0.50,
			EstimatedCPA:              5.00,
			Confidence:                0.8,
		},
		"United States": {
			EstimatedReach:            2000,
			EstimatedDailyImpressions: 600,
			EstimatedDailyClicks:      60,
			EstimatedCPC:              1.50,
			EstimatedCPA:              7.00,
			Confidence:                0.6,
		},
	}

	client.EXPECT().Estimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *campaignbackend.EstimateRequest) (*campaignbackend.EstimateResponse, error) {
			return responses[req.Audience.Location.Country], nil
		},
	).Times(2)

	result := service.EstimateDraft(context.Background(), draft)

	require.Equal(t, domain.EstimateStatusReady, result.Status)
	// Campos de alcance somam, campos de taxa fazem média
	assert.Equal(t, int64(3000), result.EstimatedReach)
	assert.Equal(t, int64(1000), result.EstimatedDailyImpressions)
	assert.Equal(t, int64(100), result.EstimatedDailyClicks)
	assert.Equal(t, 1.00, result.EstimatedCPC)
	assert.Equal(t, 6.00, result.EstimatedCPA)
	assert.InDelta(t, 0.7, result.Confidence, 0.0001)
	assert.Equal(t, 2, result.LocationsCount)
	assert.Len(t, result.PerLocation, 2)
}

func TestEstimateDraftToleratesPartialFailures(t *testing.T) {
	service, client, _ := newTestEstimator(t)

	draft := draftWithLocations(
		domain.Location{Country: "India"},
		domain.Location{Country: "Atlantis"},
	)

	client.EXPECT().Estimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *campaignbackend.EstimateRequest) (*campaignbackend.EstimateResponse, error) {
			if req.Audience.Location.Country == "Atlantis" {
				return nil, &backenddomain.BackendError{StatusCode: 400, Message: "unknown location"}
			}
			return &campaignbackend.EstimateResponse{EstimatedReach: 1000, Confidence: 0.9}, nil
		},
	).Times(2)

	result := service.EstimateDraft(context.Background(), draft)

	require.Equal(t, domain.EstimateStatusReady, result.Status)
	assert.Equal(t, int64(1000), result.EstimatedReach)
	assert.Equal(t, 1, result.LocationsCount)
}

func TestEstimateDraftAllFailuresAreClassified(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category domain.EstimateErrorCategory
	}{
		{
			name:     "sessão expirada",
			err:      &backenddomain.BackendError{StatusCode: 401, Message: "session expired"},
			category: domain.EstimateErrorSessionExpired,
		},
		{
			name:     "permissão necessária",
			err:      &backenddomain.BackendError{StatusCode: 403, Message: "not allowed"},
			category: domain.EstimateErrorPermissionRequired,
		},
		{
			name:     "limite de requisições",
			err:      &backenddomain.BackendError{StatusCode: 429, Message: "rate limit exceeded"},
			category: domain.EstimateErrorRateLimited,
		},
		{
			name:     "falha de rede",
			err:      assert.AnError,
			category: domain.EstimateErrorNetwork,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, client, _ := newTestEstimator(t)

			client.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			result := service.EstimateDraft(context.Background(), draftWithLocations(
				domain.Location{Country: "Brazil"},
			))

			require.Equal(t, domain.EstimateStatusFailed, result.Status)
			assert.Equal(t, tt.category, result.ErrorCategory)
			assert.NotEmpty(t, result.ErrorMessage)
		})
	}
}

func TestTriggerDebouncesAndStoresResult(t *testing.T) {
	service, client, drafts := newTestEstimator(t)
	defer service.Close()

	draft := draftWithLocations(domain.Location{Country: "Brazil"})

	drafts.EXPECT().Get(testUserID).Return(draft, nil)
	client.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(
		&campaignbackend.EstimateResponse{EstimatedReach: 500, Confidence: 0.5}, nil,
	)

	service.Trigger(testUserID)

	// O estado fica LOADING até o debounce vencer e a rodada terminar
	assert.Equal(t, domain.EstimateStatusLoading, service.Current(testUserID).Status)

	assert.Eventually(t, func() bool {
		return service.Current(testUserID).Status == domain.EstimateStatusReady
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, int64(500), service.Current(testUserID).EstimatedReach)
}

func TestTriggerSupersedesInFlightBatch(t *testing.T) {
	service, client, drafts := newTestEstimator(t)
	defer service.Close()

	draft := draftWithLocations(domain.Location{Country: "Brazil"})
	entered := make(chan struct{})
	release := make(chan struct{})

	drafts.EXPECT().Get(testUserID).Return(draft, nil).Times(2)

	first := client.EXPECT().Estimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *campaignbackend.EstimateRequest) (*campaignbackend.EstimateResponse, error) {
			close(entered)
			<-release
			return &campaignbackend.EstimateResponse{EstimatedReach: 111}, nil
		},
	)
	client.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(
		&campaignbackend.EstimateResponse{EstimatedReach: 222, Confidence: 0.9}, nil,
	).After(first)

	service.Trigger(testUserID)

	// Espera o primeiro lote entrar em voo antes de disparar o segundo
	<-entered

	service.Trigger(testUserID)
	close(release)

	assert.Eventually(t, func() bool {
		result := service.Current(testUserID)
		return result.Status == domain.EstimateStatusReady && result.EstimatedReach == 222
	}, time.Second, 5*time.Millisecond)

	// O resultado do lote substituído nunca sobrescreve o mais novo
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(222), service.Current(testUserID).EstimatedReach)
}

func TestTriggerSupersedesBatchBlockedLoadingDraft(t *testing.T) {
	service, client, drafts := newTestEstimator(t)
	defer service.Close()

	draft := draftWithLocations(domain.Location{Country: "Brazil"})
	entered := make(chan struct{})
	release := make(chan struct{})

	// O primeiro lote fica preso carregando o rascunho; o segundo trigger
	// chega antes de o primeiro sequer registrar uma requisição de rede
	firstGet := drafts.EXPECT().Get(testUserID).DoAndReturn(
		func(_ int) (*domain.CampaignDraft, error) {
			close(entered)
			<-release
			return draft, nil
		},
	)
	drafts.EXPECT().Get(testUserID).Return(draft, nil).After(firstGet)

	client.EXPECT().Estimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *campaignbackend.EstimateRequest) (*campaignbackend.EstimateResponse, error) {
			if ctx.Err() != nil {
				return &campaignbackend.EstimateResponse{EstimatedReach: 111}, nil
			}
			return &campaignbackend.EstimateResponse{EstimatedReach: 222, Confidence: 0.9}, nil
		},
	).Times(2)

	service.Trigger(testUserID)
	<-entered

	service.Trigger(testUserID)

	assert.Eventually(t, func() bool {
		result := service.Current(testUserID)
		return result.Status == domain.EstimateStatusReady && result.EstimatedReach == 222
	}, time.Second, 5*time.Millisecond)

	// Libera o lote antigo: o resultado dele termina depois do mais novo e
	// mesmo assim é descartado
	close(release)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int64(222), service.Current(testUserID).EstimatedReach)
}

func TestDismissErrorResetsToIdle(t *testing.T) {
	service, client, drafts := newTestEstimator(t)
	defer service.Close()

	drafts.EXPECT().Get(testUserID).Return(draftWithLocations(domain.Location{Country: "Brazil"}), nil)
	client.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	service.Trigger(testUserID)

	assert.Eventually(t, func() bool {
		return service.Current(testUserID).Status == domain.EstimateStatusFailed
	}, time.Second, 5*time.Millisecond)

	service.DismissError(testUserID)
	assert.Equal(t, domain.EstimateStatusIdle, service.Current(testUserID).Status)
}
