package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/gateway-delegation/lookup-services/internal/logger"
	"github.com/gateway-delegation/lookup-services/internal/respond"
)

// RequestIDHeader carries the correlation id between the gateway, this service and the caller.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds the gateway supplied id so it cannot flood the logs.
const maxRequestIDLength = 128

// RequestID puts a request id in the context, where chi's middleware.GetReqID finds it.
//
// An id supplied by the gateway is reused as-is so that gateway and backend logs correlate;
// otherwise a random UUID is generated. The id is echoed in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), chimiddleware.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recoverer recovers from panics in later handlers, logs the stack trace and
// responds with a JSON 500 so the caller never gets an empty or malformed body.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.ContextRequestLogger(r.Context()).Error("panic recovered",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())),
			)

			respond.Error(w, r, http.StatusInternalServerError, "internal error")
		}()

		next.ServeHTTP(w, r)
	})
}

// RequestSizeLimit returns a middleware that enforces a maximum request body size.
//
// The lookup endpoints do not read request bodies, so anything large is rejected early.
// Requests where the Content-Length header is greater than the max size get a 413;
// bodies without a (correct) Content-Length are capped with http.MaxBytesReader.
//
// The middleware adds an X-Max-Request-Size header to all responses.
func RequestSizeLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Max-Request-Size", strconv.FormatInt(maxBytes, 10))

			if r.ContentLength > maxBytes {
				respond.Error(w, r, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("Request body size (%d bytes) exceeds maximum allowed size (%d bytes)", r.ContentLength, maxBytes),
				)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders adds security-related headers to all responses
func SecurityHeaders(environment string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			if environment == "prod" || environment == "staging" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
