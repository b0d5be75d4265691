package handler

import (
	"net/http"

	backenddomain "github.com/Trishul-Reddy-632/sociovia-app-sub002/infrastructure/integrator/campaignbackend/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/usecases/publishing"
	"github.com/Trishul-Reddy-632/sociovia-app-sub002/pkg/apiErrors"
)

// Publish valida e submete a campanha; o corpo da resposta carrega o estado
// final da máquina de publicação
func Publish(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		result, err := service.Publish(r.Context(), userID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		writeJSON(w, publishStatus(result), result)
	}
}

// RetryPublish reenvia o payload da última tentativa falha
func RetryPublish(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		result, err := service.Retry(r.Context(), userID)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		writeJSON(w, publishStatus(result), result)
	}
}

// PublishState devolve o estado corrente da máquina de publicação
func PublishState(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, service.State(userID))
	}
}

// DismissPublish descarta uma falha de publicação e volta a IDLE
func DismissPublish(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		service.Dismiss(userID)

		writeJSON(w, http.StatusOK, service.State(userID))
	}
}

// AdPreviews devolve as renderizações do anúncio para o passo de revisão
func AdPreviews(service publishing.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := authenticatedUserID(w, r)
		if !ok {
			return
		}

		previews, err := service.Previews(r.Context(), userID)
		if err != nil {
			// Falhas de preview recebem a mesma classificação das estimativas
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível gerar o preview do anúncio", map[string]string{
				"category": string(backenddomain.Categorize(err)),
			})
			return
		}

		writeJSON(w, http.StatusOK, previews)
	}
}

// publishStatus traduz o estado da publicação para o status HTTP: falhas de
// validação local viram 422, rejeições do backend viram 502
func publishStatus(result *domain.PublishResult) int {
	if result.State != domain.PublishStateFailed {
		return http.StatusOK
	}

	if result.ErrorField != "" {
		return http.StatusUnprocessableEntity
	}

	return http.StatusBadGateway
}
