// Package campaignbackend implementa o cliente HTTP do backend remoto de
// campanhas: workspaces, estimativas, sugestões de IA, previews e publicação
package campaignbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	backenddomain "github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/config"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

type Client interface {
	ListWorkspaces(ctx context.Context) ([]domain.Workspace, error)
	GetWorkspace(ctx context.Context, workspaceID string) (*domain.Workspace, error)
	Estimate(ctx context.Context, req *EstimateRequest) (*EstimateResponse, error)
	SuggestAudience(ctx context.Context, workspaceID string, req *SuggestionRequest) (json.RawMessage, error)
	GetSuggestion(ctx context.Context, suggestionID string) (json.RawMessage, error)
	AdPreviews(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error)
	Publish(ctx context.Context, payload *domain.PublishPayload) (*PublishResponse, error)
}

type BackendClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &BackendClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{},
	}
}

// doRequest executa a requisição com o token de acesso e devolve o corpo.
// Respostas não-2xx viram BackendError com status e mensagem extraída
func (c *BackendClient) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("erro ao serializar requisição: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.Cfg.Backend.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.Cfg.Backend.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.Cfg.Backend.AccessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// HandleResponse lê o corpo e converte respostas de erro em BackendError
func (c *BackendClient) HandleResponse(resp *http.Response) ([]byte, error) {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBody, nil
	}

	backendErr := &backenddomain.BackendError{
		StatusCode: resp.StatusCode,
		Raw:        string(respBody),
	}

	// O backend usa {error: "..."} ou {message: "..."} como corpo de erro
	var errBody struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Details any    `json:"details"`
	}
	if err := json.Unmarshal(respBody, &errBody); err == nil {
		if errBody.Error != "" {
			backendErr.Message = errBody.Error
		} else {
			backendErr.Message = errBody.Message
		}
		backendErr.Details = errBody.Details
	}

	return nil, backendErr
}
