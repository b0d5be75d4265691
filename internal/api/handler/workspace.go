package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/apiErrors"
)

// ListWorkspaces devolve os workspaces disponíveis para o usuário montar a
// campanha
func ListWorkspaces(backend campaignbackend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := authenticatedUserID(w, r); !ok {
			return
		}

		workspaces, err := backend.ListWorkspaces(r.Context())
		if err != nil {
			logrus.WithError(err).Error("workspace: failed to list workspaces")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível listar os workspaces", nil)
			return
		}

		writeJSON(w, http.StatusOK, workspaces)
	}
}
