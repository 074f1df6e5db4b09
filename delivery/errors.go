package delivery

import (
	"errors"
	"net/http"

	"github.com/amit-3245/Secure-Notes-API/domain"
)

// statusForError maps the domain taxonomy onto HTTP statuses. Business
// failures stay 4xx; store trouble is the caller's 5xx to retry.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyRegistered),
		errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidOTP),
		errors.Is(err, domain.ErrOTPExpired),
		errors.Is(err, domain.ErrInvalidResetToken),
		errors.Is(err, domain.ErrIncorrectOldPassword):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNoteNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// messageForError keeps 5xx responses generic so internals never leak.
func messageForError(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return "something went wrong"
	}
	return err.Error()
}
