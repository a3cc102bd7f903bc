package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/donbagger/plugin-dexpaprika/internal/actions"
	"github.com/donbagger/plugin-dexpaprika/internal/config"
	"github.com/donbagger/plugin-dexpaprika/internal/dexpaprika"
	derr "github.com/donbagger/plugin-dexpaprika/internal/errors"
	"github.com/donbagger/plugin-dexpaprika/internal/httpx"
	"github.com/donbagger/plugin-dexpaprika/internal/mcpserver"
	"github.com/donbagger/plugin-dexpaprika/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

func NewRunner() *Runner {
	return NewRunnerWithWriters(os.Stdout, os.Stderr)
}

func NewRunnerWithWriters(stdout, stderr io.Writer) *Runner {
	return &Runner{stdout: stdout, stderr: stderr}
}

type runtimeState struct {
	runner   *Runner
	flags    config.GlobalFlags
	settings config.Settings
	logger   *zap.Logger
	registry *actions.Registry
}

func (r *Runner) Run(args []string) int {
	state := &runtimeState{runner: r}
	root := state.newRootCommand()
	root.SetArgs(args)
	root.SetOut(r.stdout)
	root.SetErr(r.stderr)
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.Execute()
	if state.logger != nil {
		_ = state.logger.Sync()
	}
	if err == nil {
		return 0
	}
	state.renderError(err)
	return derr.ExitCode(err)
}

func (s *runtimeState) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   version.CLIName,
		Short: "DexPaprika market-data actions for agent runtimes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			settings, err := config.Load(s.flags)
			if err != nil {
				return derr.Wrap(derr.CodeUsage, "load configuration", err)
			}
			s.settings = settings

			logger, err := newLogger(settings.LogLevel)
			if err != nil {
				return derr.Wrap(derr.CodeUsage, "build logger", err)
			}
			s.logger = logger

			httpClient := httpx.New(settings.BaseURL, settings.APIKey, settings.Timeout, settings.Retries, logger)
			s.registry = actions.NewRegistry(dexpaprika.New(httpClient))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return derr.Wrap(derr.CodeUsage, "parse flags", err)
	})

	cmd.PersistentFlags().StringVar(&s.flags.ConfigPath, "config", "", "Path to config file")
	cmd.PersistentFlags().StringVar(&s.flags.BaseURL, "base-url", "", "DexPaprika API base URL")
	cmd.PersistentFlags().StringVar(&s.flags.APIKey, "api-key", "", "DexPaprika API key (bearer token)")
	cmd.PersistentFlags().StringVar(&s.flags.Timeout, "timeout", "", "Request timeout")
	cmd.PersistentFlags().IntVar(&s.flags.Retries, "retries", -1, "Extra attempts on transport failure")
	cmd.PersistentFlags().StringVar(&s.flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(s.newActionsCommand())
	cmd.AddCommand(s.newSchemaCommand())
	cmd.AddCommand(s.newRunCommand())
	cmd.AddCommand(s.newServeCommand())
	cmd.AddCommand(newVersionCommand(s.runner.stdout))

	return cmd
}

func (s *runtimeState) newActionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List registered actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			type actionInfo struct {
				Name        string   `json:"name"`
				Description string   `json:"description"`
				Similes     []string `json:"similes,omitempty"`
			}
			infos := []actionInfo{}
			for _, a := range s.registry.List() {
				infos = append(infos, actionInfo{Name: a.Name, Description: a.Description, Similes: a.Similes})
			}
			return writeJSON(s.runner.stdout, infos)
		},
	}
}

func (s *runtimeState) newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [action]",
		Short: "Print the JSON parameter schema for one or all actions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				action, ok := s.registry.Get(args[0])
				if !ok {
					return derr.New(derr.CodeUsage, fmt.Sprintf("unknown action %q", args[0]))
				}
				return writeJSON(s.runner.stdout, action.Schema.JSONSchema())
			}
			schemas := map[string]any{}
			for _, a := range s.registry.List() {
				schemas[a.Name] = a.Schema.JSONSchema()
			}
			return writeJSON(s.runner.stdout, schemas)
		},
	}
}

func (s *runtimeState) newRunCommand() *cobra.Command {
	var paramsJSON string
	cmd := &cobra.Command{
		Use:   "run <action>",
		Short: "Execute an action and print its response envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]any{}
			if strings.TrimSpace(paramsJSON) != "" {
				if err := json.Unmarshal([]byte(paramsJSON), &params); err != nil {
					return derr.Wrap(derr.CodeUsage, "parse --params", err)
				}
			}
			env, err := s.registry.Execute(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return writeJSON(s.runner.stdout, env)
		},
	}
	cmd.Flags().StringVar(&paramsJSON, "params", "", "Action parameters as a JSON object")
	return cmd
}

func (s *runtimeState) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the actions as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			s.logger.Info("serving MCP over stdio",
				zap.String("base_url", s.settings.BaseURL),
				zap.Bool("authenticated", s.settings.APIKey != ""),
				zap.Int("actions", len(s.registry.List())),
			)
			return mcpserver.ServeStdio(mcpserver.New(s.registry, s.logger))
		},
	}
}

func newVersionCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(stdout, "%s %s\n", version.CLIName, version.Version)
			return err
		},
	}
}

func (s *runtimeState) renderError(err error) {
	payload := map[string]any{
		"success": false,
		"error": map[string]any{
			"code":    derr.ExitCode(err),
			"message": err.Error(),
		},
	}
	if status := derr.StatusOf(err); status != 0 {
		payload["error"].(map[string]any)["status"] = status
	}
	_ = writeJSON(s.runner.stderr, payload)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
