package publishing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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

const testUserID = 9

func newTestPublisher(t *testing.T) (*Service, *backendmocks.MockClient, *draftmocks.MockDraftStore) {
	ctrl := gomock.NewController(t)

	client := backendmocks.NewMockClient(ctrl)
	drafts := draftmocks.NewMockDraftStore(ctrl)

	service := &Service{
		cfg:    &config.Config{},
		client: client,
		drafts: drafts,
		states: make(map[int]*publishState),
	}

	return service, client, drafts
}

// publishableDraft monta um rascunho completo; mediaURL aponta a imagem do
// criativo
func publishableDraft(mediaURL string) *domain.CampaignDraft {
	draft := domain.NewCampaignDraft()
	draft.WorkspaceID = "ws-1"
	draft.Objective = domain.ObjectiveConversions
	draft.Audience.Locations = []domain.Location{
		{Country: "Brazil"},
		{Country: "Portugal"},
	}
	draft.Budget.Amount = 100
	draft.Creative = domain.Creative{
		Name:        "Lançamento",
		Headline:    "Chegou a coleção nova",
		PrimaryText: "Frete grátis na primeira compra",
		URL:         "https://example.com/colecao",
		ImageURL:    mediaURL,
	}
	return draft
}

func TestPublishLocalValidationFailsWithoutNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CampaignDraft)
		field  string
	}{
		{
			name:   "sem workspace",
			mutate: func(d *domain.CampaignDraft) { d.WorkspaceID = "" },
			field:  "workspace_id",
		},
		{
			name:   "sem texto principal",
			mutate: func(d *domain.CampaignDraft) { d.Creative.PrimaryText = "" },
			field:  "creative.primary_text",
		},
		{
			name:   "sem título",
			mutate: func(d *domain.CampaignDraft) { d.Creative.Headline = "" },
			field:  "creative.headline",
		},
		{
			name:   "sem localização válida",
			mutate: func(d *domain.CampaignDraft) { d.Audience.Locations = nil },
			field:  "audience.locations",
		},
		{
			name:   "orçamento zerado",
			mutate: func(d *domain.CampaignDraft) { d.Budget.Amount = 0 },
			field:  "budget.amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Nenhuma expectativa no cliente: validação local não toca a rede
			service, _, drafts := newTestPublisher(t)

			draft := publishableDraft("https://cdn.example.com/a.png")
			tt.mutate(draft)
			drafts.EXPECT().Get(testUserID).Return(draft, nil)

			result, err := service.Publish(context.Background(), testUserID)
			require.NoError(t, err)

			assert.Equal(t, domain.PublishStateFailed, result.State)
			assert.Equal(t, tt.field, result.ErrorField)
			assert.NotEmpty(t, result.ErrorMessage)
		})
	}
}

func TestPublishSuccessClearsDraft(t *testing.T) {
	service, client, drafts := newTestPublisher(t)

	mediaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("png-bytes"))
	}))
	defer mediaServer.Close()

	drafts.EXPECT().Get(testUserID).Return(publishableDraft(mediaServer.URL+"/a.png"), nil)

	var sent *domain.PublishPayload
	client.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload *domain.PublishPayload) (*campaignbackend.PublishResponse, error) {
			sent = payload
			return &campaignbackend.PublishResponse{OK: true, CampaignID: "camp-123"}, nil
		},
	)
	drafts.EXPECT().Reset(testUserID).Return(nil)

	result, err := service.Publish(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Equal(t, domain.PublishStateSuccess, result.State)
	assert.Equal(t, "camp-123", result.CampaignID)

	// O payload leva a audiência completa, com todas as localizações
	require.NotNil(t, sent)
	assert.Len(t, sent.Targeting.Locations, 2)
	assert.Equal(t, "Lançamento", sent.CampaignName)
	assert.Equal(t, testUserID, sent.UserID)
	assert.NotEmpty(t, sent.Creative.MediaBase64)
	assert.Equal(t, "image/png", sent.Creative.MediaType)
}

func TestPublishBackendRejectionPreservesDraftAndRetriesSamePayload(t *testing.T) {
	service, client, drafts := newTestPublisher(t)

	// O download de mídia falha e o payload segue só com a URL de referência
	drafts.EXPECT().Get(testUserID).Return(publishableDraft("https://invalid.invalid/a.png"), nil)

	var payloads []*domain.PublishPayload
	rejection := &backenddomain.BackendError{
		StatusCode: 400,
		Message:    "invalid targeting",
	}

	client.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload *domain.PublishPayload) (*campaignbackend.PublishResponse, error) {
			payloads = append(payloads, payload)
			return nil, rejection
		},
	).Times(2)

	// Sem expectativa de Reset: o rascunho é preservado na falha
	result, err := service.Publish(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.PublishStateFailed, result.State)
	assert.Equal(t, "invalid targeting", result.ErrorMessage)

	retryResult, err := service.Retry(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.PublishStateFailed, retryResult.State)

	// O retry reenvia exatamente o mesmo payload, sem remontagem
	require.Len(t, payloads, 2)
	assert.Same(t, payloads[0], payloads[1])
}

func TestRetryWithoutPreviousAttempt(t *testing.T) {
	service, _, _ := newTestPublisher(t)

	_, err := service.Retry(context.Background(), testUserID)
	assert.Error(t, err)
}

func TestDismissResetsFailedState(t *testing.T) {
	service, _, drafts := newTestPublisher(t)

	draft := publishableDraft("https://cdn.example.com/a.png")
	draft.Creative.PrimaryText = ""
	drafts.EXPECT().Get(testUserID).Return(draft, nil)

	_, err := service.Publish(context.Background(), testUserID)
	require.NoError(t, err)
	require.Equal(t, domain.PublishStateFailed, service.State(testUserID).State)

	service.Dismiss(testUserID)
	assert.Equal(t, domain.PublishStateIdle, service.State(testUserID).State)
}

func TestStateStartsIdle(t *testing.T) {
	service, _, _ := newTestPublisher(t)

	assert.Equal(t, domain.PublishStateIdle, service.State(testUserID).State)
}

func TestPreviewsUsesDraftCreative(t *testing.T) {
	service, client, drafts := newTestPublisher(t)

	draft := publishableDraft("https://cdn.example.com/a.png")
	drafts.EXPECT().Get(testUserID).Return(draft, nil)

	client.EXPECT().AdPreviews(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *campaignbackend.PreviewRequest) (*campaignbackend.PreviewResponse, error) {
			assert.Equal(t, draft.Creative, req.Creative)
			assert.Equal(t, "ws-1", req.WorkspaceID)
			return &campaignbackend.PreviewResponse{
				OK:       true,
				Previews: []domain.AdPreview{{Format: "DESKTOP_FEED_STANDARD"}},
			}, nil
		},
	)

	previews, err := service.Previews(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, previews, 1)
	assert.Equal(t, "DESKTOP_FEED_STANDARD", previews[0].Format)
}
