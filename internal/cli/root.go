// Package cli implements the nexus command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"nexus/internal/app"
	"nexus/internal/catalog"
	"nexus/internal/config"
)

// Version is overridden at build time with -ldflags "-X nexus/internal/cli.Version=...".
var Version = "dev"

type serveFlags struct {
	configPath string
	addr       string
	assetsDir  string
	embedded   bool
	logLevel   string
	logFormat  string
}

// Execute runs the command tree with args (without the program name).
func Execute(ctx context.Context, args []string) error {
	root := buildRootCmd(os.Stdout, os.Stderr, os.Getenv)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// buildRootCmd constructs the command tree. getenv is injected so tests can
// control environment overrides.
func buildRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	sf := &serveFlags{}
	root := &cobra.Command{
		Use:           "nexus",
		Short:         "Serve the Nexus AI chat page and its model catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, sf, stderr, getenv)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	addServeFlags(root, sf)

	serveCmd := &cobra.Command{
		Use:     "serve",
		Short:   "Start the HTTP server",
		Example: "  nexus serve --addr :8080 --assets-dir ./web/static\n  nexus serve --embedded",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, sf, stderr, getenv)
		},
	}
	addServeFlags(serveCmd, sf)

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "Print the model catalog as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(catalog.Default().List())
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}

	root.AddCommand(serveCmd, modelsCmd, versionCmd)
	return root
}

func addServeFlags(cmd *cobra.Command, sf *serveFlags) {
	f := cmd.Flags()
	f.StringVarP(&sf.configPath, "config", "c", "", "Config file (.yaml, .yml, .json, .toml)")
	f.StringVar(&sf.addr, "addr", "", "HTTP listen address (default :5000)")
	f.StringVar(&sf.assetsDir, "assets-dir", "", "Directory holding index.html, style.css and script.js (default web/static)")
	f.BoolVar(&sf.embedded, "embedded", false, "Serve the assets compiled into the binary instead of a directory")
	f.StringVar(&sf.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	f.StringVar(&sf.logFormat, "log-format", "", "Log format: json|console")
}

// resolveConfig applies defaults, the config file, the environment and then
// any flags the user set explicitly, in that order.
func resolveConfig(cmd *cobra.Command, sf *serveFlags, getenv func(string) string) (config.Config, error) {
	cfg := config.Defaults()
	if sf.configPath != "" {
		var err error
		if cfg, err = config.Load(sf.configPath); err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}
	if err := config.ApplyEnv(&cfg, getenv); err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = sf.addr
	}
	if flags.Changed("assets-dir") {
		cfg.AssetsDir = sf.assetsDir
	}
	if flags.Changed("embedded") {
		cfg.EmbeddedAssets = sf.embedded
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = sf.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = sf.logFormat
	}
	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command, sf *serveFlags, stderr io.Writer, getenv func(string) string) error {
	cfg, err := resolveConfig(cmd, sf, getenv)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	if err != nil {
		return err
	}
	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}
