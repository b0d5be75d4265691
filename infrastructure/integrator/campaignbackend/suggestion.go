package campaignbackend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SuggestionRequest leva o contexto do workspace para o serviço de IA
type SuggestionRequest struct {
	Industry      string `json:"industry,omitempty"`
	Website       string `json:"website,omitempty"`
	CreativeBrief string `json:"creative_brief,omitempty"`
	Objective     string `json:"objective,omitempty"`
}

// SuggestAudience dispara a geração de sugestão de audiência. A resposta pode
// ser síncrona ({suggestion: ...}) ou assíncrona ({suggestion_id: ...}); o
// corpo bruto é devolvido para o normalizador de formatos do caso de uso
func (c *BackendClient) SuggestAudience(ctx context.Context, workspaceID string, req *SuggestionRequest) (json.RawMessage, error) {
	path := fmt.Sprintf("/workspace/%s/ai-suggest-audience", workspaceID)

	body, err := c.doRequest(ctx, http.MethodPost, path, req)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// GetSuggestion é o alvo de polling do fluxo assíncrono
func (c *BackendClient) GetSuggestion(ctx context.Context, suggestionID string) (json.RawMessage, error) {
	path := fmt.Sprintf("/ai_suggestions/%s", suggestionID)

	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}
