package campaignbackend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

type PreviewRequest struct {
	Creative    domain.Creative `json:"creative"`
	AdFormats   []string        `json:"ad_formats"`
	WorkspaceID string          `json:"workspace_id"`
	UserID      int             `json:"user_id"`
}

type PreviewResponse struct {
	OK       bool               `json:"ok"`
	Previews []domain.AdPreview `json:"previews"`
}

// AdPreviews busca renderizações do anúncio; o preview é opcional e falhas
// aqui nunca bloqueiam a publicação
func (c *BackendClient) AdPreviews(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/facebook/adpreviews", req)
	if err != nil {
		return nil, err
	}

	response := &PreviewResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de preview: %w", err)
	}

	return response, nil
}
