package actions

import "testing"

func TestIntParamCoercion(t *testing.T) {
	params := map[string]any{
		"float":  float64(7),
		"int":    3,
		"string": "11",
		"junk":   "eleven",
	}
	if got := intParam(params, "float", 0); got != 7 {
		t.Fatalf("float64 param = %d", got)
	}
	if got := intParam(params, "int", 0); got != 3 {
		t.Fatalf("int param = %d", got)
	}
	if got := intParam(params, "string", 0); got != 11 {
		t.Fatalf("numeric string param = %d", got)
	}
	if got := intParam(params, "junk", 9); got != 9 {
		t.Fatalf("unparseable param should fall back, got %d", got)
	}
	if got := intParam(params, "missing", 10); got != 10 {
		t.Fatalf("missing param should fall back, got %d", got)
	}
}

func TestBoolParamCoercion(t *testing.T) {
	params := map[string]any{"b": true, "s": "true", "junk": "maybe"}
	if !boolParam(params, "b", false) || !boolParam(params, "s", false) {
		t.Fatal("bool coercion failed")
	}
	if boolParam(params, "junk", false) {
		t.Fatal("unparseable bool should fall back")
	}
	if !boolParam(params, "missing", true) {
		t.Fatal("missing bool should fall back")
	}
}

func TestRequiredString(t *testing.T) {
	if _, err := requiredString(map[string]any{}, "network"); err == nil {
		t.Fatal("missing key must error")
	}
	if _, err := requiredString(map[string]any{"network": "  "}, "network"); err == nil {
		t.Fatal("blank value must error")
	}
	if _, err := requiredString(map[string]any{"network": 5}, "network"); err == nil {
		t.Fatal("non-string value must error")
	}
	got, err := requiredString(map[string]any{"network": "ethereum"}, "network")
	if err != nil || got != "ethereum" {
		t.Fatalf("got %q, %v", got, err)
	}
}
