package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gateway-delegation/lookup-services/internal/lookup"
)

func TestLoadCatalogBuiltIn(t *testing.T) {
	cat, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}

	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cat.Len())
	}

	res := cat.Get("1001")
	want := Order{
		ID:       "1001",
		Status:   StatusConfirmed,
		Customer: "山田太郎",
		Amount:   15000,
		Items:    []string{"商品A", "商品B"},
	}
	if !res.Found || !reflect.DeepEqual(res.Record, want) {
		t.Errorf("Get(1001) = %+v, want %+v", res, want)
	}

	for id, status := range map[string]Status{"1002": StatusShipped, "1003": StatusPending} {
		if got := cat.Get(id).Record.Status; got != status {
			t.Errorf("order %s status = %q, want %q", id, got, status)
		}
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "orders.yaml")
	if err := os.WriteFile(valid, []byte("- id: \"2001\"\n  status: shipped\n  customer: test\n  amount: 1\n  items: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cat, err := LoadCatalog(valid)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if cat.Len() != 1 || !cat.Get("2001").Found {
		t.Errorf("unexpected catalog: %v", cat.Keys())
	}

	// "not-found" is reserved for responses
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("- id: \"2002\"\n  status: not-found\n  customer: test\n  amount: 1\n  items: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCatalog(invalid); err == nil {
		t.Error("expected an error for a stored order with status not-found")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		order   Order
		wantErr bool
	}{
		{"valid", Order{ID: "1", Status: StatusPending, Items: []string{}}, false},
		{"unknown status", Order{ID: "1", Status: "cancelled", Items: []string{}}, true},
		{"negative amount", Order{ID: "1", Status: StatusPending, Amount: -1, Items: []string{}}, true},
		{"missing items", Order{ID: "1", Status: StatusPending}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Validate(tt.order); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServiceResponses(t *testing.T) {
	cat, err := LoadCatalog("")
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(cat)

	tests := []struct {
		name       string
		id         string
		wantStatus int
		wantJSON   string
	}{
		{
			name:       "confirmed order",
			id:         "1001",
			wantStatus: http.StatusOK,
			wantJSON:   `{"id":"1001","status":"confirmed","customer":"山田太郎","amount":15000,"items":["商品A","商品B"]}`,
		},
		{
			name:       "unknown order",
			id:         "9999",
			wantStatus: http.StatusNotFound,
			wantJSON:   `{"id":"9999","status":"not-found","message":"指定された注文は見つかりませんでした"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := svc.Lookup(context.Background(), tt.id, lookup.Identity{})
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			body, err := json.Marshal(resp.Body)
			if err != nil {
				t.Fatal(err)
			}
			if string(body) != tt.wantJSON {
				t.Errorf("body = %s, want %s", body, tt.wantJSON)
			}
		})
	}

	info := svc.Info()
	if info.Name != "orders-api" || info.ShortName != "orders" || info.Param != "order_id" || info.DefaultPort != 8001 {
		t.Errorf("unexpected info: %+v", info)
	}
}
