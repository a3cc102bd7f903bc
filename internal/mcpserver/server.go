// Package mcpserver exposes the action registry as MCP tools so agent
// runtimes can discover and call the operations over stdio.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/donbagger/plugin-dexpaprika/internal/actions"
	"github.com/donbagger/plugin-dexpaprika/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

func New(registry *actions.Registry, logger *zap.Logger) *server.MCPServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := server.NewMCPServer(version.CLIName, version.Version)
	for _, action := range registry.List() {
		s.AddTool(buildTool(action), makeHandler(registry, action.Name, logger))
	}
	return s
}

// ServeStdio blocks serving the MCP protocol on stdin/stdout.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func buildTool(action actions.Action) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(action.Description)}
	for _, p := range action.Schema.Properties {
		opts = append(opts, propertyOption(action.Schema, p))
	}
	return mcp.NewTool(action.Name, opts...)
}

func propertyOption(schema actions.Schema, p actions.Property) mcp.ToolOption {
	switch p.Type {
	case "number":
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if requiredIn(schema, p.Name) {
			propOpts = append(propOpts, mcp.Required())
		}
		switch d := p.Default.(type) {
		case int:
			propOpts = append(propOpts, mcp.DefaultNumber(float64(d)))
		case float64:
			propOpts = append(propOpts, mcp.DefaultNumber(d))
		}
		return mcp.WithNumber(p.Name, propOpts...)
	case "boolean":
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if requiredIn(schema, p.Name) {
			propOpts = append(propOpts, mcp.Required())
		}
		if d, ok := p.Default.(bool); ok {
			propOpts = append(propOpts, mcp.DefaultBool(d))
		}
		return mcp.WithBoolean(p.Name, propOpts...)
	default:
		propOpts := []mcp.PropertyOption{mcp.Description(p.Description)}
		if requiredIn(schema, p.Name) {
			propOpts = append(propOpts, mcp.Required())
		}
		if len(p.Enum) > 0 {
			propOpts = append(propOpts, mcp.Enum(p.Enum...))
		}
		if d, ok := p.Default.(string); ok {
			propOpts = append(propOpts, mcp.DefaultString(d))
		}
		return mcp.WithString(p.Name, propOpts...)
	}
}

func requiredIn(schema actions.Schema, name string) bool {
	for _, r := range schema.Required {
		if r == name {
			return true
		}
	}
	return false
}

func makeHandler(registry *actions.Registry, name string, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		env, err := registry.Execute(ctx, name, request.GetArguments())
		if err != nil {
			logger.Debug("action failed", zap.String("action", name), zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}
		payload, err := json.MarshalIndent(env, "", "  ")
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(string(payload)), nil
	}
}
