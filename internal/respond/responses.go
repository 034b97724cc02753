package respond

// responses.go provides helper functions for sending JSON responses from the lookup handlers.

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gowebpki/jcs"

	"github.com/gateway-delegation/lookup-services/internal/logger"
)

// JSON sends payload as a JSON response with the given status code.
//
// The payload is marshalled before any header is written, so a payload that cannot be
// encoded results in a JSON 500 error response instead of a truncated body.
// Non-ASCII text (e.g. Japanese product names) is written as UTF-8, not escaped.
//
// The response carries an ETag derived from the RFC 8785 canonical form of the body:
// two responses with the same content always have the same tag.
func JSON(w http.ResponseWriter, r *http.Request, statusCode int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		Error(w, r, http.StatusInternalServerError, "failed to encode response")
		logger.ContextRequestLogger(r.Context()).Error("failed to encode JSON response",
			slog.String("error", err.Error()),
		)
		return
	}

	writeJSON(w, r, statusCode, body)
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	if tag, err := ETag(body); err == nil {
		w.Header().Set("ETag", tag)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		// headers are already written, so there is nothing more to send
		logger.ContextRequestLogger(r.Context()).Warn("failed to write JSON response",
			slog.String("error", err.Error()),
		)
	}
}

// ETag returns a strong entity tag for a JSON document: the hex SHA-256 of its canonical form.
func ETag(body []byte) (string, error) {
	canonical, err := jcs.Transform(body)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return `"` + hex.EncodeToString(sum[:]) + `"`, nil
}
