package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/drafting"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/apiErrors"
)

// SaveDraft congela o rascunho ativo como um snapshot nomeado e limpa o
// rascunho ativo
func SaveDraft(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		record, err := service.SaveDraft(userID)
		if err != nil {
			handleDraftError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, record)
	}
}

// ListDrafts devolve os snapshots do usuário, do mais recente para o mais
// antigo
func ListDrafts(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		records, err := service.ListDrafts(userID)
		if err != nil {
			handleDraftError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

// ResumeDraft carrega um snapshot como rascunho ativo, posicionado na
// revisão; o snapshot permanece salvo
func ResumeDraft(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		draftID := params.ByName("id")
		if draftID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador do rascunho é obrigatório", nil)
			return
		}

		draft, err := service.ResumeDraft(userID, draftID)
		if err != nil {
			handleDraftError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, draft)
	}
}

// DeleteDraft remove um snapshot salvo
func DeleteDraft(service drafting.DraftStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		params := httprouter.ParamsFromContext(r.Context())
		draftID := params.ByName("id")
		if draftID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador do rascunho é obrigatório", nil)
			return
		}

		if err := service.DeleteDraft(userID, draftID); err != nil {
			handleDraftError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
