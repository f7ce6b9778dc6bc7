package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/learning-continuity/internal/domain"
	"github.com/heartmarshall/learning-continuity/pkg/ctxutil"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Fields    []FieldIssue `json:"fields,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// FieldIssue is one field-level validation problem.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeError maps a service error to a status code and JSON body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := ErrorResponse{RequestID: ctxutil.RequestIDFromCtx(r.Context())}
	status := http.StatusInternalServerError

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		status = http.StatusBadRequest
		resp.Code = "VALIDATION"
		resp.Message = "invalid input"
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, FieldIssue{Field: fe.Field, Message: fe.Message})
		}
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		resp.Code = "NOT_FOUND"
		resp.Message = "not found"
	case errors.Is(err, domain.ErrStorage):
		status = http.StatusServiceUnavailable
		resp.Code = "STORAGE_UNAVAILABLE"
		resp.Message = "storage unavailable"
	default:
		resp.Code = "INTERNAL"
		resp.Message = "internal error"
	}

	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	writeJSON(w, status, resp)
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{
		Code:      "UNAUTHENTICATED",
		Message:   "missing X-User-Id",
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Code:      "BAD_REQUEST",
		Message:   message,
		RequestID: ctxutil.RequestIDFromCtx(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

const maxBodyBytes = 1 << 20
