package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaborage/stmtkit/config"
	"github.com/gaborage/stmtkit/logger"
)

// GlobalOptions holds the persistent flags shared by every command
type GlobalOptions struct {
	ConfigFile string
	LogLevel   string
}

// NewRootCommand creates the stmtkit command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &GlobalOptions{}

	cmd := &cobra.Command{
		Use:   "stmtkit",
		Short: "Build SQL SELECT statements from the command line",
		Long: `stmtkit assembles SELECT statements from a target, projection, conditions,
sort key and row bound, and prints them for the configured SQL dialect.

Configuration is read from stmtkit.yaml (or --config) and STMTKIT_* environment variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file (default: ./stmtkit.yaml when present)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "Log level override (trace|debug|info|warn|error)")

	cmd.AddCommand(
		NewSelectCommand(opts),
		NewReportCommand(opts),
		NewVehicleCommand(),
		NewVersionCommand(version),
	)

	return cmd
}

const (
	// maskKey overrides the text substituted for sensitive log values.
	maskKey = "log.mask"
	// redactKey lists extra comma-separated field names to mask in logs.
	redactKey = "log.redact"
)

// setup loads configuration and creates a logger for cmd writing to its error stream.
func setup(opts *GlobalOptions, cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}

	log := logger.NewWithFilter(cmd.ErrOrStderr(), level, cfg.Log.Pretty, filterConfig(cfg)).
		WithFields(map[string]any{"command": cmd.Name()})
	log.Debug().
		Str("app", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("vendor", cfg.Statement.Vendor).
		Interface("limit", cfg.Statement.Limit).
		Msg("Configuration loaded")

	return cfg, log, nil
}

func filterConfig(cfg *config.Config) *logger.FilterConfig {
	fc := logger.DefaultFilterConfig()
	fc.MaskValue = cfg.GetString(maskKey, logger.DefaultMaskValue)
	if !cfg.Exists(redactKey) {
		return fc
	}
	for _, field := range strings.Split(cfg.GetString(redactKey), ",") {
		if field = strings.TrimSpace(field); field != "" {
			fc.SensitiveFields = append(fc.SensitiveFields, field)
		}
	}
	return fc
}
