package api

import (
	"errors"
	"net/http"

	"github.com/pizza-nz/backoffice-service/internal/db/repository"
	"github.com/pizza-nz/backoffice-service/internal/logging"
	"github.com/pizza-nz/backoffice-service/internal/service"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func BadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

func Unauthorized(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusUnauthorized, ErrorResponse{Error: message})
}

func NotFound(w http.ResponseWriter) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: "resource not found"})
}

func MethodNotAllowed(w http.ResponseWriter) {
	RespondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
}

func InternalServerError(w http.ResponseWriter, err error) {
	logging.Error().Err(err).Msg("request failed")
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// Error maps a service or repository error onto its HTTP status
func Error(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, service.ErrMalformedItems):
		RespondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Field: "items"})
	case errors.Is(err, repository.ErrNotFound):
		NotFound(w)
	case errors.Is(err, service.ErrDuplicateUsername):
		RespondJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Field: "username"})
	case errors.Is(err, service.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, repository.ErrStoreUnavailable):
		logging.Warn().Err(err).Msg("store unavailable")
		RespondJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "store unavailable"})
	default:
		InternalServerError(w, err)
	}
}
