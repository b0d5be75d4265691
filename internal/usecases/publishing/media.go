package publishing

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/utils"
)

const (
	mediaTypeImage = "image"
	mediaTypeVideo = "video"
)

// attachMedia resolve a mídia do anúncio pela cadeia de fallback (criativo,
// imagens selecionadas, primeiro asset do workspace) e anexa o binário em
// base64. Se o download falhar, apenas a URL de referência segue no payload
func (s *Service) attachMedia(ctx context.Context, payload *domain.PublishPayload, draft *domain.CampaignDraft) error {
	mediaURL, mediaType, err := s.resolveMedia(ctx, draft)
	if err != nil {
		return err
	}

	payload.Creative.MediaURL = mediaURL
	payload.Creative.MediaType = mediaType

	data, contentType, err := utils.FetchBytes(ctx, mediaURL)
	if err != nil {
		logrus.WithError(err).WithField("media_url", mediaURL).
			Warn("publishing: media download failed, sending URL reference only")
		return nil
	}

	payload.Creative.MediaBase64 = base64.StdEncoding.EncodeToString(data)
	if contentType != "" {
		payload.Creative.MediaType = contentType
	}

	return nil
}

// resolveMedia percorre a cadeia de fallback em ordem fixa; só consulta o
// workspace remoto como último recurso
func (s *Service) resolveMedia(ctx context.Context, draft *domain.CampaignDraft) (string, string, error) {
	if draft.Creative.VideoURL != "" {
		return draft.Creative.VideoURL, mediaTypeVideo, nil
	}
	if draft.Creative.ImageURL != "" {
		return draft.Creative.ImageURL, mediaTypeImage, nil
	}

	for _, image := range draft.SelectedImages {
		if strings.TrimSpace(image) != "" {
			return image, mediaTypeImage, nil
		}
	}

	workspace, err := s.client.GetWorkspace(ctx, draft.WorkspaceID)
	if err != nil {
		return "", "", err
	}

	if asset := workspace.FirstCreative(); asset != "" {
		return asset, mediaTypeImage, nil
	}

	return "", "", drafting.NewValidationError("creative.media", "o anúncio precisa de uma imagem ou vídeo")
}
