package handler

import (
	"net/http"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/estimating"
)

// TriggerEstimate agenda uma rodada de estimativa com debounce; a resposta
// volta imediatamente com o estado corrente (LOADING)
func TriggerEstimate(service estimating.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		service.Trigger(userID)

		writeJSON(w, http.StatusAccepted, service.Current(userID))
	}
}

// GetEstimate devolve o último resultado de estimativa conhecido
func GetEstimate(service estimating.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, service.Current(userID))
	}
}

// DismissEstimateError limpa um estado de falha de estimativa
func DismissEstimateError(service estimating.Estimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		service.DismissError(userID)

		writeJSON(w, http.StatusOK, service.Current(userID))
	}
}
