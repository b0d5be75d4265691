package publishing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
)

func TestResolveMediaPrefersVideo(t *testing.T) {
	service, _, _ := newTestPublisher(t)

	draft := publishableDraft("https://cdn.example.com/a.png")
	draft.Creative.VideoURL = "https://cdn.example.com/a.mp4"

	url, mediaType, err := service.resolveMedia(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.mp4", url)
	assert.Equal(t, mediaTypeVideo, mediaType)
}

func TestResolveMediaFallsBackToSelectedImages(t *testing.T) {
	service, _, _ := newTestPublisher(t)

	draft := publishableDraft("")
	draft.SelectedImages = []string{"  ", "https://cdn.example.com/selecionada.png"}

	url, mediaType, err := service.resolveMedia(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/selecionada.png", url)
	assert.Equal(t, mediaTypeImage, mediaType)
}

func TestResolveMediaFallsBackToWorkspaceAsset(t *testing.T) {
	service, client, _ := newTestPublisher(t)

	draft := publishableDraft("")

	client.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(&domain.Workspace{
		CreativesPath: []string{"https://cdn.example.com/workspace.png"},
	}, nil)

	url, mediaType, err := service.resolveMedia(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/workspace.png", url)
	assert.Equal(t, mediaTypeImage, mediaType)
}

func TestResolveMediaWithoutAnyAsset(t *testing.T) {
	service, client, _ := newTestPublisher(t)

	draft := publishableDraft("")

	client.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(&domain.Workspace{}, nil)

	_, _, err := service.resolveMedia(context.Background(), draft)

	var validationErr *drafting.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "creative.media", validationErr.Field)
}
