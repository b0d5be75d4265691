package drafting

import (
	"errors"
	"fmt"
)

var (
	// ErrDraftNotFound indica que o snapshot pedido não existe
	ErrDraftNotFound = errors.New("rascunho não encontrado")
)

// ValidationError aponta o campo que impediu a mutação ou a navegação
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError indica se o erro é de validação de campo
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
