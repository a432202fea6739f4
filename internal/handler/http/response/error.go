package response

import (
	"errors"
	"net/http"

	"github.com/cxops-br/presence-insights-go/internal/domain/attendance"
	"github.com/cxops-br/presence-insights-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Repository errors fall
// through to 500 with their message surfaced verbatim.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, attendance.ErrInvalidTimestamp):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, err.Error())
	}
}
