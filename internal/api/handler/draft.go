package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/apiErrors"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/middleware"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/validator"
)

type StepRequest struct {
	Step int `json:"step"`
}

// authenticatedUserID extrai o usuário das claims; escreve a resposta de
// erro quando a requisição não está autenticada
func authenticatedUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}
	return claims.UserID, true
}

// writeJSON serializa a resposta de sucesso
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("handler: failed to encode response")
	}
}

// handleDraftError traduz os erros do Draft Store para a resposta da API
func handleDraftError(w http.ResponseWriter, err error) {
	var validationErr *drafting.ValidationError
	if errors.As(err, &validationErr) {
		code := apiErrors.ErrMissingRequiredData
		if validationErr.Field == "step" {
			code = apiErrors.ErrInvalidStep
		}
		apiErrors.WriteError(w, code, validationErr.Message, map[string]string{
			"field": validationErr.Field,
		})
		return
	}

	if errors.Is(err, drafting.ErrDraftNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrDraftNotFound, "Rascunho não encontrado", nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o rascunho", nil)
}

// GetDraft devolve o rascunho ativo, criando-o na primeira entrada no wizard
func GetDraft(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		draft, err := service.Get(userID)
		if err != nil {
			handleDraftError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

// PatchDraft aplica uma mutação parcial ao rascunho ativo
func PatchDraft(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		var patch domain.DraftPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := validator.Struct(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Dados do rascunho inválidos", validator.Messages(err))
			return
		}

		draft, err := service.Set(userID, &patch)
		if err != nil {
			handleDraftError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

// ResetDraft descarta o rascunho ativo
func ResetDraft(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		if err := service.Reset(userID); err != nil {
			handleDraftError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AdvanceStep valida os passos anteriores e move o wizard para frente
func AdvanceStep(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		var req StepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		draft, err := service.Advance(userID, req.Step)
		if err != nil {
			handleDraftError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

// RewindStep volta para um passo anterior sem limpar dados
func RewindStep(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		var req StepRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		draft, err := service.Rewind(userID, req.Step)
		if err != nil {
			handleDraftError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}
