package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/wordloop/internal/apperr"
)

const (
	codeInternal    = "INTERNAL"
	codeRateLimited = "RATE_LIMITED"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// statusOf maps an error kind to an HTTP status.
func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := statusOf(kind)

	body := errorBody{Code: string(kind), Message: err.Error()}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		body.Message = appErr.Message
	}

	switch status {
	case http.StatusServiceUnavailable:
		w.Header().Set("Retry-After", "1")
		slog.Default().Error("store unavailable",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	case http.StatusInternalServerError:
		body = errorBody{Code: codeInternal, Message: "internal error"}
		slog.Default().Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	writeJSON(w, status, errorResponse{Error: body})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("failed to write a response", slog.Any("error", err))
	}
}
