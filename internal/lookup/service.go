package lookup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gateway-delegation/lookup-services/internal/catalog"
	"github.com/gateway-delegation/lookup-services/internal/logger"
)

// Definition describes one lookup service.
type Definition[R any] struct {
	// Name is reported by the health endpoint, e.g. "orders-api"
	Name string

	// ShortName is reported by the root endpoint, e.g. "orders"
	ShortName string

	// Resource is the collection path segment, e.g. "orders" in /orders/{order_id}
	Resource string

	// Param is the path parameter holding the key, e.g. "order_id"
	Param string

	// Subject names a record in log messages, e.g. "order"
	Subject string

	// DefaultPort is used when no port is configured
	DefaultPort int

	// LogCallerEmail includes the caller email, not just the caller id, in lookup logs
	LogCallerEmail bool

	// NotFound builds the record returned for a key that is not in the catalog.
	// It must echo the requested key.
	NotFound func(key string) any

	// Describe optionally adds record details to the "found" log line
	Describe func(R) []slog.Attr
}

// Info is the non-generic part of a Definition, used by the HTTP layer.
type Info struct {
	Name        string
	ShortName   string
	Resource    string
	Param       string
	DefaultPort int
}

// Response is a shaped lookup reply. Body is either the stored record or the not-found record.
type Response struct {
	StatusCode int
	Body       any
	Found      bool
}

// Endpoint is implemented by every Service regardless of its record type.
type Endpoint interface {
	Info() Info
	Size() int
	Keys() []string
	Lookup(ctx context.Context, key string, id Identity) Response
	Health(endpoints []string) HealthReport
	Root(version string) RootReport
}

// Service serves lookups of records of type R from a static catalog.
// It holds no mutable state and is safe for concurrent use.
type Service[R any] struct {
	def     Definition[R]
	catalog *catalog.Catalog[R]
}

var _ Endpoint = (*Service[struct{}])(nil)

// NewService creates a service answering lookups from cat.
func NewService[R any](def Definition[R], cat *catalog.Catalog[R]) *Service[R] {
	return &Service[R]{def: def, catalog: cat}
}

func (s *Service[R]) Info() Info {
	return Info{
		Name:        s.def.Name,
		ShortName:   s.def.ShortName,
		Resource:    s.def.Resource,
		Param:       s.def.Param,
		DefaultPort: s.def.DefaultPort,
	}
}

// Size returns the number of records in the catalog.
func (s *Service[R]) Size() int {
	return s.catalog.Len()
}

// Keys returns the catalog keys in sorted order.
func (s *Service[R]) Keys() []string {
	return s.catalog.Keys()
}

// Lookup resolves key. A hit returns the record with 200, a miss returns the
// not-found record with 404. Lookup never fails.
//
// id is logged when present and has no other effect.
func (s *Service[R]) Lookup(ctx context.Context, key string, id Identity) Response {
	result := s.catalog.Get(key)

	attrs := []slog.Attr{slog.String(s.def.Param, key)}
	attrs = append(attrs, id.logAttrs(s.def.LogCallerEmail)...)

	logger.ContextWithLogAttrs(ctx, slog.Bool("found", result.Found))
	logger.ContextWithLogAttrs(ctx, id.logAttrs(false)...)

	reqLogger := logger.ContextRequestLogger(ctx)

	if !result.Found {
		reqLogger.LogAttrs(ctx, slog.LevelWarn, s.def.Subject+" not found", attrs...)
		return Response{
			StatusCode: http.StatusNotFound,
			Body:       s.def.NotFound(result.Key),
		}
	}

	if s.def.Describe != nil {
		attrs = append(attrs, s.def.Describe(result.Record)...)
	}
	reqLogger.LogAttrs(ctx, slog.LevelInfo, s.def.Subject+" found", attrs...)

	return Response{
		StatusCode: http.StatusOK,
		Body:       result.Record,
		Found:      true,
	}
}
