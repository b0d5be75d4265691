package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/estimating"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/apiErrors"
)

// RequestSuggestion dispara uma nova sugestão de audiência para o workspace
// do rascunho, substituindo qualquer sugestão anterior
func RequestSuggestion(service estimating.Estimator, drafts drafting.DraftStore, backend campaignbackend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		input, err := buildSuggestionInput(r.Context(), drafts, backend, userID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrSuggestionFailed, err.Error(), nil)
			return
		}

		suggestion, err := service.Suggest(userID, input)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrSuggestionFailed, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusAccepted, suggestion)
	}
}

// EnsureSuggestion dispara a sugestão apenas se ainda não houve uma para o
// workspace corrente; usada na entrada do passo de audiência
func EnsureSuggestion(service estimating.Estimator, drafts drafting.DraftStore, backend campaignbackend.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		input, err := buildSuggestionInput(r.Context(), drafts, backend, userID)
		if err != nil {
			// Rascunho sem workspace ainda: nada a sugerir
			writeJSON(w, http.StatusOK, service.SuggestionState(userID))
			return
		}

		suggestion, err := service.EnsureSuggestion(userID, input)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrSuggestionFailed, err.Error(), nil)
			return
		}

		writeJSON(w, http.StatusOK, suggestion)
	}
}

// GetSuggestion devolve o estado corrente da sugestão (ou nulo)
func GetSuggestion(service estimating.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, service.SuggestionState(userID))
	}
}

// DismissSuggestion descarta a sugestão corrente e para o polling
func DismissSuggestion(service estimating.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		service.DismissSuggestion(userID)

		w.WriteHeader(http.StatusNoContent)
	}
}

// buildSuggestionInput monta o contexto de negócio da sugestão a partir do
// rascunho e do workspace selecionado
func buildSuggestionInput(ctx context.Context, drafts drafting.DraftStore, backend campaignbackend.Client, userID int) (*estimating.SuggestionInput, error) {
	draft, err := drafts.Get(userID)
	if err != nil {
		return nil, err
	}

	if draft.WorkspaceID == "" {
		return nil, drafting.NewValidationError("workspace_id", "selecione um workspace antes de pedir sugestões")
	}

	input := &estimating.SuggestionInput{
		WorkspaceID:   draft.WorkspaceID,
		CreativeBrief: draft.Creative.PrimaryText,
		Objective:     string(draft.Objective),
	}

	// Industry e website enriquecem o prompt; a indisponibilidade do
	// workspace não bloqueia a sugestão
	workspace, err := backend.GetWorkspace(ctx, draft.WorkspaceID)
	if err != nil {
		logrus.WithError(err).WithField("workspace_id", draft.WorkspaceID).
			Warn("suggestion: failed to load workspace context")
		return input, nil
	}

	input.Industry = workspace.Industry
	input.Website = workspace.Website

	return input, nil
}
