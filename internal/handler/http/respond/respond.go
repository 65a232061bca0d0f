// Package respond writes JSON bodies and maps domain errors to status codes.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/logging"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// ヘッダー送信済みのためログのみ
			slog.Default().Warn("encode response", slog.Int("status", code), slog.Any("error", err))
		}
	}
}

// Error writes err's message verbatim. Callers pass only client-safe errors.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, ErrorBody{Error: err.Error()})
}

// ErrorBody is the JSON shape of every failure response.
type ErrorBody struct {
	Error string `json:"error" example:"slug is already in use"`
	Kind  string `json:"kind,omitempty" example:"conflict"`
	Field string `json:"field,omitempty" example:"slug"`
}

// BadBody answers a request whose JSON body could not be decoded: 413 when
// the body limit cut it off, 400 otherwise.
func BadBody(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		JSON(w, http.StatusRequestEntityTooLarge, ErrorBody{Error: "request body too large"})
		return
	}
	JSON(w, http.StatusBadRequest, ErrorBody{Error: "invalid request body", Kind: entity.KindValidation.String()})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind entity.Kind) int {
	switch kind {
	case entity.KindValidation:
		return http.StatusBadRequest
	case entity.KindConflict:
		return http.StatusConflict
	case entity.KindNotFound:
		return http.StatusNotFound
	case entity.KindPreconditionFailed:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// Failure writes err using its kind. Internal errors are logged with the
// sanitized cause and reach the client as a generic message.
func Failure(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	kind := entity.KindOf(err)
	code := StatusFor(kind)

	if code >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("internal server error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", SanitizeError(err)))
		Internal(w)
		return
	}

	JSON(w, code, ErrorBody{
		Error: userMessage(err),
		Kind:  kind.String(),
		Field: entity.FieldOf(err),
	})
}

// userMessage hides wrapped causes: domain errors report only their own message.
func userMessage(err error) string {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var de *entity.Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return err.Error()
}

// Forbidden writes the session gate rejection.
func Forbidden(w http.ResponseWriter) {
	JSON(w, http.StatusForbidden, ErrorBody{Error: "forbidden"})
}

// Internal writes the generic 500 body without touching the cause.
func Internal(w http.ResponseWriter) {
	JSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
}
