// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"

	"github.com/campusdesk/campusdesk/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	var notFound *shared.NotFoundError
	var invalid *shared.ValidationError

	switch {
	case errors.Is(err, shared.ErrUnauthenticated):
		Problem(w, http.StatusUnauthorized, "Unauthenticated", shared.UserSafeMessage(err))
	case errors.Is(err, shared.ErrForbidden):
		Problem(w, http.StatusForbidden, "Forbidden", shared.UserSafeMessage(err))
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Authentication Failed", shared.UserSafeMessage(err))
	case errors.As(err, &notFound):
		Problem(w, http.StatusNotFound, "Not Found", notFound.Error())
	case errors.Is(err, shared.ErrDuplicateActivity):
		Problem(w, http.StatusConflict, "Duplicate Activity", shared.UserSafeMessage(err))
	case errors.Is(err, shared.ErrInvalidMembershipType):
		Problem(w, http.StatusBadRequest, "Invalid Membership Type", shared.UserSafeMessage(err))
	case errors.As(err, &invalid):
		Problem(w, http.StatusBadRequest, "Validation Failed", invalid.Error())
	default:
		// Includes PersistenceError: storage detail never leaks to callers.
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
