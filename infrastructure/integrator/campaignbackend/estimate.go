package campaignbackend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

// EstimateRequest é a requisição de estimativa para uma única localização;
// o fan-out por localização é responsabilidade do caso de uso
type EstimateRequest struct {
	Workspace string `json:"workspace"`
	Audience  struct {
		Location  domain.Location `json:"location"`
		Age       domain.AgeRange `json:"age"`
		Gender    string          `json:"gender"`
		Interests []string        `json:"interests"`
	} `json:"audience"`
	Budget    domain.Budget    `json:"budget"`
	Creative  domain.Creative  `json:"creative"`
	Objective domain.Objective `json:"objective"`
}

type EstimateResponse struct {
	EstimatedReach            int64           `json:"estimated_reach"`
	EstimatedDailyImpressions int64           `json:"estimated_daily_impressions"`
	EstimatedDailyClicks      int64           `json:"estimated_daily_clicks"`
	EstimatedCPC              float64         `json:"estimated_cpc"`
	EstimatedCPA              float64         `json:"estimated_cpa"`
	Confidence                float64         `json:"confidence"`
	MetaRaw                   json.RawMessage `json:"meta_raw,omitempty"`
}

func (c *BackendClient) Estimate(ctx context.Context, req *EstimateRequest) (*EstimateResponse, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/api/meta/estimate", req)
	if err != nil {
		return nil, err
	}

	response := &EstimateResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar resposta de estimativa")
		return nil, fmt.Errorf("erro ao decodificar resposta de estimativa: %w", err)
	}

	return response, nil
}
