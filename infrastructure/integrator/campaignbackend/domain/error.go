package backenddomain

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Trishul-Reddy-632/sociovia-app-sub002/internal/domain"
)

// BackendError representa uma resposta de erro do backend de campanhas
type BackendError struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Raw        string `json:"raw,omitempty"`
	Details    any    `json:"details,omitempty"`
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend respondeu com status %d", e.StatusCode)
}

// Categorize classifica o erro inspecionando o status HTTP e o conteúdo da
// mensagem; a categoria alimenta o estado de erro exibido pela UI
func (e *BackendError) Categorize() domain.EstimateErrorCategory {
	message := strings.ToLower(e.Message + " " + e.Raw)

	switch e.StatusCode {
	case http.StatusUnauthorized:
		return domain.EstimateErrorSessionExpired
	case http.StatusForbidden:
		return domain.EstimateErrorPermissionRequired
	case http.StatusTooManyRequests:
		return domain.EstimateErrorRateLimited
	}

	switch {
	case strings.Contains(message, "session") && strings.Contains(message, "expired"),
		strings.Contains(message, "token expired"),
		strings.Contains(message, "not logged in"):
		return domain.EstimateErrorSessionExpired
	case strings.Contains(message, "permission"),
		strings.Contains(message, "not authorized"):
		return domain.EstimateErrorPermissionRequired
	case strings.Contains(message, "rate limit"),
		strings.Contains(message, "too many requests"):
		return domain.EstimateErrorRateLimited
	case strings.Contains(message, "invalid"),
		strings.Contains(message, "missing required"):
		return domain.EstimateErrorInvalidConfig
	}

	if e.StatusCode == 0 {
		return domain.EstimateErrorNetwork
	}

	return domain.EstimateErrorGeneric
}

// Categorize classifica um erro arbitrário do integrador: erros de transporte
// (sem resposta HTTP) são sempre "network"
func Categorize(err error) domain.EstimateErrorCategory {
	if err == nil {
		return ""
	}

	if backendErr, ok := err.(*BackendError); ok {
		return backendErr.Categorize()
	}

	return domain.EstimateErrorNetwork
}
