// Package cli implements the addchain command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/addchain/internal/config"
)

var version = "dev"

// SetVersion overrides the version reported by --version and `version`.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Execute builds the command tree and runs it with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

// newRootCmd returns a fresh command tree. Each call owns its flag state,
// so tests can run commands repeatedly.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "addchain",
		Version: version,
		Short:   "Find addition chains of a given length and sum",
		Long: `addchain searches for an addition chain: a strictly increasing sequence
starting at 1 where every later element is the sum of two earlier ones,
with an exact element count and an exact total.

The search is a depth-first branch-and-bound; results are cached on disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Output in JSON format")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddGroup(
		&cobra.Group{ID: "search", Title: "Search:"},
		&cobra.Group{ID: "inspect", Title: "Inspection:"},
		&cobra.Group{ID: "tooling", Title: "Cache & Tooling:"},
	)

	root.AddCommand(
		newSolveCmd(a),
		newPromptCmd(a),
		newBatchCmd(a),
		newBoundsCmd(a),
		newNextCmd(a),
		newCacheCmd(a),
		&cobra.Command{
			Use:     "version",
			Short:   "Print the addchain version",
			Args:    cobra.NoArgs,
			GroupID: "tooling",
			Run: func(cmd *cobra.Command, args []string) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
			},
		},
	)

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zc.Level = level
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	a.logger, err = zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}
