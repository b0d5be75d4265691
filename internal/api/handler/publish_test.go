package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	backenddomain "github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	publishmocks "github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/publishing/mocks"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/apiErrors"
)

func TestPublishStatusByOutcome(t *testing.T) {
	tests := []struct {
		name     string
		result   *domain.PublishResult
		expected int
	}{
		{
			name:     "sucesso",
			result:   &domain.PublishResult{State: domain.PublishStateSuccess, CampaignID: "camp-1"},
			expected: http.StatusOK,
		},
		{
			name:     "falha de validação local",
			result:   &domain.PublishResult{State: domain.PublishStateFailed, ErrorField: "creative.headline"},
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "rejeição do backend",
			result:   &domain.PublishResult{State: domain.PublishStateFailed, ErrorMessage: "invalid targeting"},
			expected: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := publishmocks.NewMockPublisher(ctrl)

			service.EXPECT().Publish(gomock.Any(), testUserID).Return(tt.result, nil)

			recorder := httptest.NewRecorder()
			Publish(service).ServeHTTP(recorder, authenticatedRequest(http.MethodPost, "/v1/publish", ""))

			assert.Equal(t, tt.expected, recorder.Code)
		})
	}
}

func TestAdPreviewsClassifiesFailures(t *testing.T) {
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
			name:     "limite de requisições",
			err:      &backenddomain.BackendError{StatusCode: 429},
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
			ctrl := gomock.NewController(t)
			service := publishmocks.NewMockPublisher(ctrl)

			service.EXPECT().Previews(gomock.Any(), testUserID).Return(nil, tt.err)

			recorder := httptest.NewRecorder()
			AdPreviews(service).ServeHTTP(recorder, authenticatedRequest(http.MethodPost, "/v1/previews", ""))

			require.Equal(t, http.StatusBadGateway, recorder.Code)

			apiErr := decodeAPIError(t, recorder)
			assert.Equal(t, apiErrors.ErrExternalService, apiErr.Code)

			details, ok := apiErr.Details.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, string(tt.category), details["category"])
		})
	}
}

func TestAdPreviewsReturnsRenderings(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := publishmocks.NewMockPublisher(ctrl)

	service.EXPECT().Previews(gomock.Any(), testUserID).Return(
		[]domain.AdPreview{{Format: "MOBILE_FEED_STANDARD"}}, nil,
	)

	recorder := httptest.NewRecorder()
	AdPreviews(service).ServeHTTP(recorder, authenticatedRequest(http.MethodPost, "/v1/previews", ""))

	require.Equal(t, http.StatusOK, recorder.Code)

	var previews []domain.AdPreview
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&previews))
	require.Len(t, previews, 1)
	assert.Equal(t, "MOBILE_FEED_STANDARD", previews[0].Format)
}

func TestRetryPublishWithoutAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := publishmocks.NewMockPublisher(ctrl)

	service.EXPECT().Retry(gomock.Any(), testUserID).Return(nil, assert.AnError)

	recorder := httptest.NewRecorder()
	RetryPublish(service).ServeHTTP(recorder, authenticatedRequest(http.MethodPost, "/v1/publish/retry", ""))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
