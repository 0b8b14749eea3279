package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/deepthoughts/internal/common"
	"github.com/dmitrijs2005/deepthoughts/internal/logging"
)

type apiError struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type errorResponse struct {
	Errors []apiError `json:"errors"`
}

type dataResponse struct {
	Data any `json:"data"`
}

// classify maps the error taxonomy onto a caller-facing kind and HTTP
// status. Anything unmatched is internal and its detail stays server-side.
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, common.ErrorUnauthenticated):
		return "UNAUTHENTICATED", http.StatusUnauthorized
	case errors.Is(err, common.ErrorInvalidCredentials):
		return "INVALID_CREDENTIALS", http.StatusUnauthorized
	case errors.Is(err, common.ErrorValidation):
		return "VALIDATION", http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return "NOT_FOUND", http.StatusNotFound
	case errors.Is(err, common.ErrorBadRequest):
		return "BAD_REQUEST", http.StatusBadRequest
	default:
		return "INTERNAL", http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, logger logging.Logger, err error, message string) {
	kind, status := classify(err)

	if message == "" {
		message = err.Error()
	}
	if kind == "INTERNAL" {
		logger.Error(ctx, "operation failed", "error", err.Error())
		message = common.ErrorInternal.Error()
	} else {
		logger.Info(ctx, "operation rejected", "kind", kind, "error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Errors: []apiError{{Message: message, Kind: kind}}})
}

func (s *Server) writeData(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dataResponse{Data: result})
}
