package actions

import (
	"fmt"
	"strconv"
	"strings"

	derr "github.com/donbagger/plugin-dexpaprika/internal/errors"
)

// Parameter maps arrive as decoded JSON: strings, float64 numbers, bools.
// Hosts that pass native ints or numeric strings are tolerated.

func stringParam(params map[string]any, key, fallback string) string {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func requiredString(params map[string]any, key string) (string, error) {
	v, ok := params[key]
	if !ok {
		return "", derr.New(derr.CodeUsage, fmt.Sprintf("%s is required", key))
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", derr.New(derr.CodeUsage, fmt.Sprintf("%s is required", key))
	}
	return s, nil
}

func intParam(params map[string]any, key string, fallback int) int {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	switch t := v.(type) {
	case float64:
		return int(t)
	case int:
		return t
	case int64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return fallback
}

func boolParam(params map[string]any, key string, fallback bool) bool {
	v, ok := params[key]
	if !ok {
		return fallback
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
			return b
		}
	}
	return fallback
}
