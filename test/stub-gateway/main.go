// stub-gateway stands in for the upstream gateway during local runs.
//
// It forwards every request to a lookup service after replacing the identity
// headers with the configured caller, e.g.
//
//	go run ./test/stub-gateway --upstream http://localhost:8001 --caller-id user-1 --caller-email user1@example.com
//	curl localhost:8080/orders/1001
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/gateway-delegation/lookup-services/internal/logger"
	"github.com/gateway-delegation/lookup-services/internal/lookup"
)

// caller is the identity asserted on every forwarded request. Empty fields are not sent.
type caller struct {
	id    string
	email string
}

func main() {
	cmd := &cobra.Command{
		Use:   "stub-gateway",
		Short: "Forward requests to a lookup service with fixed identity headers",
		Long: `Reverse proxy that plays the part of the gateway for local testing.

Identity headers sent by the client are removed and replaced by --caller-id and --caller-email.
No authentication is performed.`,
		SilenceUsage: true,
	}
	cmd.Flags().StringP("upstream", "u", "", "Lookup service base URL, e.g. http://localhost:8001")
	cmd.Flags().StringP("listen", "l", "localhost:8080", "Listen address")
	cmd.Flags().String("caller-id", "", "Caller id to assert")
	cmd.Flags().String("caller-email", "", "Caller email to assert")
	cmd.Flags().String("caller-id-header", lookup.DefaultCallerIDHeader, "Caller id header name")
	cmd.Flags().String("caller-email-header", lookup.DefaultCallerEmailHeader, "Caller email header name")
	cmd.Flags().Float64("rate-limit", 0, "Requests per second forwarded upstream (0 disables the limit)")
	cmd.Flags().Int("burst", 10, "Burst size for --rate-limit")
	_ = cmd.MarkFlagRequired("upstream")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		upstream, _ := cmd.Flags().GetString("upstream")
		listen, _ := cmd.Flags().GetString("listen")
		callerID, _ := cmd.Flags().GetString("caller-id")
		callerEmail, _ := cmd.Flags().GetString("caller-email")
		idHeader, _ := cmd.Flags().GetString("caller-id-header")
		emailHeader, _ := cmd.Flags().GetString("caller-email-header")
		requestsPerSecond, _ := cmd.Flags().GetFloat64("rate-limit")
		burst, _ := cmd.Flags().GetInt("burst")

		target, err := url.Parse(upstream)
		if err != nil || target.Scheme == "" || target.Host == "" {
			return fmt.Errorf("invalid upstream URL %q", upstream)
		}

		log := logger.InitLogger(slog.LevelInfo, "dev")

		headers := lookup.IdentityHeaders{CallerID: idHeader, CallerEmail: emailHeader}
		handler := rateLimit(requestsPerSecond, burst, log)(
			newProxy(target, headers, caller{id: callerID, email: callerEmail}, log),
		)

		log.Info("stub gateway listening",
			slog.String("listen", listen),
			slog.String("upstream", target.String()),
			slog.String("caller_id", callerID),
			slog.Float64("rate_limit", requestsPerSecond))

		if err := http.ListenAndServe(listen, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newProxy returns a handler that forwards to target with the identity headers replaced by c.
func newProxy(target *url.URL, headers lookup.IdentityHeaders, c caller, log *slog.Logger) http.Handler {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()

			// clients must not be able to assert their own identity
			pr.Out.Header.Del(headers.CallerID)
			pr.Out.Header.Del(headers.CallerEmail)

			if c.id != "" {
				pr.Out.Header.Set(headers.CallerID, c.id)
			}
			if c.email != "" {
				pr.Out.Header.Set(headers.CallerEmail, c.email)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error("upstream request failed",
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"upstream unavailable"}`))
		},
	}
}

// rateLimit rejects requests over requestsPerSecond with 429 before they reach the upstream.
// If requestsPerSecond <= 0, rate limiting is disabled.
func rateLimit(requestsPerSecond float64, burst int, log *slog.Logger) func(http.Handler) http.Handler {
	if requestsPerSecond <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("rate limit exceeded",
					slog.String("path", r.URL.Path),
					slog.String("remote_addr", r.RemoteAddr))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many requests"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
