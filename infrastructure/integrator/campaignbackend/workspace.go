package campaignbackend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

type responseWorkspaces struct {
	Workspaces []domain.Workspace `json:"workspaces"`
}

func (c *BackendClient) ListWorkspaces(ctx context.Context) ([]domain.Workspace, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/workspaces", nil)
	if err != nil {
		return nil, err
	}

	response := &responseWorkspaces{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar lista de workspaces: %w", err)
	}

	return response.Workspaces, nil
}

func (c *BackendClient) GetWorkspace(ctx context.Context, workspaceID string) (*domain.Workspace, error) {
	path := fmt.Sprintf("/workspace/%s", workspaceID)

	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	workspace := &domain.Workspace{}
	if err := json.Unmarshal(body, workspace); err != nil {
		return nil, fmt.Errorf("erro ao decodificar workspace: %w", err)
	}

	return workspace, nil
}
