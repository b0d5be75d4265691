package campaignbackend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/utils"
)

type PublishResponse struct {
	OK         bool   `json:"ok"`
	CampaignID string `json:"campaign_id,omitempty"`
	Details    any    `json:"details,omitempty"`
}

// Publish submete a campanha montada ao backend. Não há deduplicação do lado
// do cliente; cada retry emite uma requisição nova e o backend é a fonte de
// verdade para prevenção de duplicatas
func (c *BackendClient) Publish(ctx context.Context, payload *domain.PublishPayload) (*PublishResponse, error) {
	logrus.Debug("publish: payload ", utils.PrettyJson(payload))

	body, err := c.doRequest(ctx, http.MethodPost, "/api/publish_v2", payload)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"workspace_id": payload.WorkspaceID,
			"campaign":     payload.CampaignName,
		}).Error("publish: backend rejected campaign submission")
		return nil, err
	}

	response := &PublishResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de publicação: %w", err)
	}

	return response, nil
}
