// Package orders defines the order records served by orders-api.
package orders

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/gateway-delegation/lookup-services/internal/catalog"
	"github.com/gateway-delegation/lookup-services/internal/lookup"
)

// Status is the fulfilment state of an order.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusPending   Status = "pending"

	// StatusNotFound is only used in NotFound responses, never for stored orders.
	StatusNotFound Status = "not-found"
)

// NotFoundMessage is returned to the caller when an order id is unknown.
const NotFoundMessage = "指定された注文は見つかりませんでした"

// Order is a stored order. Field order is the response field order.
type Order struct {
	ID       string   `json:"id" yaml:"id"`
	Status   Status   `json:"status" yaml:"status"`
	Customer string   `json:"customer" yaml:"customer"`
	Amount   int      `json:"amount" yaml:"amount"`
	Items    []string `json:"items" yaml:"items"`
}

// NotFound is the response body for an unknown order id.
type NotFound struct {
	ID      string `json:"id"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// NewNotFound returns the not-found record for id.
func NewNotFound(id string) NotFound {
	return NotFound{ID: id, Status: StatusNotFound, Message: NotFoundMessage}
}

//go:embed orders.yaml
var seedData []byte

// Validate checks a stored order.
func Validate(o Order) error {
	switch o.Status {
	case StatusConfirmed, StatusShipped, StatusPending:
	default:
		return fmt.Errorf("order %q: invalid status %q", o.ID, o.Status)
	}
	if o.Amount < 0 {
		return fmt.Errorf("order %q: negative amount %d", o.ID, o.Amount)
	}
	if o.Items == nil {
		return fmt.Errorf("order %q: items missing", o.ID)
	}
	return nil
}

func key(o Order) string { return o.ID }

// LoadCatalog loads the orders from path, or the built-in orders when path is empty.
func LoadCatalog(path string) (*catalog.Catalog[Order], error) {
	if path != "" {
		return catalog.LoadYAMLFile(path, key, Validate)
	}
	return catalog.LoadYAML(seedData, key, Validate)
}

// NewService returns the orders-api lookup service.
func NewService(cat *catalog.Catalog[Order]) *lookup.Service[Order] {
	return lookup.NewService(lookup.Definition[Order]{
		Name:           "orders-api",
		ShortName:      "orders",
		Resource:       "orders",
		Param:          "order_id",
		Subject:        "order",
		DefaultPort:    8001,
		LogCallerEmail: true,
		NotFound: func(id string) any {
			return NewNotFound(id)
		},
		Describe: func(o Order) []slog.Attr {
			return []slog.Attr{slog.String("status", string(o.Status))}
		},
	}, cat)
}
