// Package actions exposes the endpoint operations as a registry of named,
// schema-described actions for hosting agent runtimes. One registry serves
// every host convention; runtime-specific adapters (the MCP server, the CLI)
// sit on top of it.
package actions

import (
	"context"
	"fmt"

	derr "github.com/donbagger/plugin-dexpaprika/internal/errors"
	"github.com/donbagger/plugin-dexpaprika/internal/model"
)

type Handler func(ctx context.Context, params map[string]any) (model.Envelope, error)

// Property describes one action parameter. Type is a JSON-schema primitive
// type name ("string", "number", "boolean").
type Property struct {
	Name        string
	Type        string
	Description string
	Enum        []string
	Default     any
}

type Schema struct {
	Properties []Property
	Required   []string
}

// JSONSchema emits the schema as a standard JSON-schema object map, the
// shape agent runtimes consume.
func (s Schema) JSONSchema() map[string]any {
	properties := map[string]any{}
	for _, p := range s.Properties {
		prop := map[string]any{
			"type":        p.Type,
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		properties[p.Name] = prop
	}
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(s.Required) > 0 {
		schema["required"] = s.Required
	}
	return schema
}

type Action struct {
	Name        string
	Description string
	Similes     []string
	Schema      Schema
	Handler     Handler
}

type Registry struct {
	order   []string
	actions map[string]Action
}

func (r *Registry) register(a Action) {
	if r.actions == nil {
		r.actions = map[string]Action{}
	}
	if _, exists := r.actions[a.Name]; !exists {
		r.order = append(r.order, a.Name)
	}
	r.actions[a.Name] = a
}

// List returns actions in registration order.
func (r *Registry) List() []Action {
	out := make([]Action, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.actions[name])
	}
	return out
}

func (r *Registry) Get(name string) (Action, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// Execute validates required parameters against the action's schema and
// invokes the handler. Unknown parameters are ignored; optional ones fall
// back to their documented defaults inside the handler.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]any) (model.Envelope, error) {
	action, ok := r.Get(name)
	if !ok {
		return model.Envelope{}, derr.New(derr.CodeUsage, fmt.Sprintf("unknown action %q", name))
	}
	if params == nil {
		params = map[string]any{}
	}
	for _, required := range action.Schema.Required {
		if _, err := requiredString(params, required); err != nil {
			return model.Envelope{}, err
		}
	}
	return action.Handler(ctx, params)
}
