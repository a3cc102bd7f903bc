package mcpserver

import (
	"testing"
	"time"

	"github.com/donbagger/plugin-dexpaprika/internal/actions"
	"github.com/donbagger/plugin-dexpaprika/internal/dexpaprika"
	"github.com/donbagger/plugin-dexpaprika/internal/httpx"
)

func testRegistry() *actions.Registry {
	client := dexpaprika.New(httpx.New("http://127.0.0.1:0", "", time.Second, 0, nil))
	return actions.NewRegistry(client)
}

func TestNewRegistersAllActions(t *testing.T) {
	s := New(testRegistry(), nil)
	if s == nil {
		t.Fatal("expected server")
	}
}

func TestBuildToolCarriesSchema(t *testing.T) {
	registry := testRegistry()
	action, ok := registry.Get("getDexPools")
	if !ok {
		t.Fatal("getDexPools not registered")
	}
	tool := buildTool(action)
	if tool.Name != "getDexPools" {
		t.Fatalf("tool name = %q", tool.Name)
	}
	if tool.Description != action.Description {
		t.Fatalf("tool description = %q", tool.Description)
	}
	props := tool.InputSchema.Properties
	for _, name := range []string{"network", "dex", "page", "limit", "orderBy", "sort"} {
		if _, ok := props[name]; !ok {
			t.Fatalf("tool schema missing property %q", name)
		}
	}
	required := map[string]bool{}
	for _, r := range tool.InputSchema.Required {
		required[r] = true
	}
	if !required["network"] || !required["dex"] {
		t.Fatalf("tool required = %v", tool.InputSchema.Required)
	}
}
