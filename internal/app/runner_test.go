package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	derr "github.com/donbagger/plugin-dexpaprika/internal/errors"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	runner := NewRunnerWithWriters(&stdout, &stderr)
	code := runner.Run(args)
	return code, stdout.String(), stderr.String()
}

func TestActionsCommandListsActions(t *testing.T) {
	code, stdout, stderr := runCLI(t, "actions")
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	var infos []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(stdout), &infos); err != nil {
		t.Fatalf("output not JSON: %v\n%s", err, stdout)
	}
	if len(infos) != 9 {
		t.Fatalf("listed %d actions, want 9", len(infos))
	}
}

func TestSchemaCommandSingleAction(t *testing.T) {
	code, stdout, _ := runCLI(t, "schema", "search")
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout, `"query"`) || !strings.Contains(stdout, `"required"`) {
		t.Fatalf("schema output incomplete: %s", stdout)
	}
}

func TestSchemaCommandUnknownAction(t *testing.T) {
	code, _, stderr := runCLI(t, "schema", "teleport")
	if code != int(derr.CodeUsage) {
		t.Fatalf("exit code %d, want usage", code)
	}
	if !strings.Contains(stderr, "unknown action") {
		t.Fatalf("stderr: %s", stderr)
	}
}

func TestRunCommandExecutesAction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"networks":24,"dexes":118,"pools":500,"tokens":900}`))
	}))
	defer srv.Close()

	code, stdout, stderr := runCLI(t, "run", "getStats", "--base-url", srv.URL)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	var env struct {
		Formatted map[string]any  `json:"formatted_response"`
		RawData   json.RawMessage `json:"raw_data"`
	}
	if err := json.Unmarshal([]byte(stdout), &env); err != nil {
		t.Fatalf("output not an envelope: %v\n%s", err, stdout)
	}
	if env.Formatted["title"] == "" || len(env.RawData) == 0 {
		t.Fatalf("incomplete envelope: %s", stdout)
	}
}

func TestRunCommandBadParams(t *testing.T) {
	code, _, stderr := runCLI(t, "run", "getStats", "--params", "{not json")
	if code != int(derr.CodeUsage) {
		t.Fatalf("exit code %d, want usage", code)
	}
	if !strings.Contains(stderr, "parse --params") {
		t.Fatalf("stderr: %s", stderr)
	}
}

func TestRunCommandSurfacesActionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	code, _, stderr := runCLI(t, "run", "getStats", "--base-url", srv.URL)
	if code != int(derr.CodeRateLimited) {
		t.Fatalf("exit code %d, want rate-limited", code)
	}
	if !strings.Contains(stderr, "rate limit exceeded") {
		t.Fatalf("stderr: %s", stderr)
	}
}
