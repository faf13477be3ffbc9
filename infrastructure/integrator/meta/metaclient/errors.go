package metaclient

import (
	"errors"
	"fmt"
)

// FetchError é retornado quando o Graph API responde com erro ou com um corpo inesperado
type FetchError struct {
	Status       int
	Message      string
	Code         int
	TokenExpired bool
}

func (e *FetchError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("meta: %s", e.Message)
	}
	return fmt.Sprintf("meta: status %d: %s", e.Status, e.Message)
}

// IsTokenError indica se o erro veio de um token inválido ou expirado
func IsTokenError(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.TokenExpired
	}
	return false
}
