package actions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/donbagger/plugin-dexpaprika/internal/dexpaprika"
	derr "github.com/donbagger/plugin-dexpaprika/internal/errors"
	"github.com/donbagger/plugin-dexpaprika/internal/httpx"
)

func newTestRegistry(t *testing.T, handler http.Handler) *Registry {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := dexpaprika.New(httpx.New(srv.URL, "", 2*time.Second, 0, nil))
	return NewRegistry(client)
}

func TestRegistryListsAllActions(t *testing.T) {
	registry := newTestRegistry(t, http.NotFoundHandler())
	want := []string{
		"getNetworks", "getNetworkDexes", "getTopPools", "getNetworkPools",
		"getDexPools", "getPoolDetails", "getTokenDetails", "search", "getStats",
	}
	list := registry.List()
	if len(list) != len(want) {
		t.Fatalf("registered %d actions, want %d", len(list), len(want))
	}
	for i, a := range list {
		if a.Name != want[i] {
			t.Fatalf("action[%d] = %q, want %q", i, a.Name, want[i])
		}
		if a.Description == "" {
			t.Fatalf("action %q has no description", a.Name)
		}
	}
}

func TestExecuteUnknownAction(t *testing.T) {
	registry := newTestRegistry(t, http.NotFoundHandler())
	_, err := registry.Execute(context.Background(), "mintToken", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	typed, ok := derr.As(err)
	if !ok || typed.Code != derr.CodeUsage {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestExecuteRequiredParamMissing(t *testing.T) {
	calls := 0
	registry := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	_, err := registry.Execute(context.Background(), "getNetworkDexes", map[string]any{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "network is required") {
		t.Fatalf("unexpected message: %v", err)
	}
	if calls != 0 {
		t.Fatal("missing required param must be rejected before any HTTP call")
	}
}

func TestExecutePassesCoercedParams(t *testing.T) {
	var query string
	registry := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"pools":[],"page_info":{"page":2,"limit":5,"total_items":0,"total_pages":0}}`))
	}))

	// JSON numbers arrive as float64.
	params := map[string]any{"page": float64(2), "limit": float64(5), "orderBy": "price_usd", "sort": "asc"}
	if _, err := registry.Execute(context.Background(), "getTopPools", params); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, want := range []string{"page=2", "limit=5", "order_by=price_usd", "sort=asc"} {
		if !strings.Contains(query, want) {
			t.Fatalf("query %q missing %q", query, want)
		}
	}
}

func TestExecuteDefaultsWhenParamsOmitted(t *testing.T) {
	var query string
	registry := newTestRegistry(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"pools":[],"page_info":{"page":0,"limit":10,"total_items":0,"total_pages":0}}`))
	}))

	if _, err := registry.Execute(context.Background(), "getTopPools", nil); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, want := range []string{"page=0", "limit=10", "order_by=volume_usd", "sort=desc"} {
		if !strings.Contains(query, want) {
			t.Fatalf("query %q missing default %q", query, want)
		}
	}
}

func TestJSONSchemaShape(t *testing.T) {
	registry := newTestRegistry(t, http.NotFoundHandler())
	action, ok := registry.Get("getNetworkPools")
	if !ok {
		t.Fatal("getNetworkPools not registered")
	}
	schema := action.Schema.JSONSchema()
	if schema["type"] != "object" {
		t.Fatalf("schema type = %v", schema["type"])
	}
	required, ok := schema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "network" {
		t.Fatalf("required = %v", schema["required"])
	}
	properties := schema["properties"].(map[string]any)
	orderBy := properties["orderBy"].(map[string]any)
	enum := orderBy["enum"].([]string)
	if len(enum) != len(dexpaprika.OrderByValues) {
		t.Fatalf("orderBy enum = %v", enum)
	}
	if orderBy["default"] != dexpaprika.DefaultOrderBy {
		t.Fatalf("orderBy default = %v", orderBy["default"])
	}
}
