// Package cli implements the apkgraph command-line interface.
//
// The bare root command runs the full audit described by the config file:
// acquire the index, build the bounded dependency graph for the configured
// package, print the results, and render the graph image. Subcommands give
// direct access to the individual views:
//   - deps: forward dependency audit (list, tree, or JSON)
//   - rdeps: reverse dependencies (what depends on the package)
//   - render: DOT export and image rendering only
//
// All commands read config.toml (override with --config) and support
// --verbose (-v) for debug-level logging. Loggers are passed through
// context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/apkgraph/apkgraph/pkg/buildinfo"
)

// configFlag is the value of the persistent --config flag, shared by all
// commands.
var configFlag string

// Execute runs the apkgraph CLI under the given context and returns an
// error if any command fails. The context carries cancellation from the
// caller (typically a signal-aware context set up by main).
//
// Logging defaults to info level on stderr; --verbose (-v) switches to
// debug. The logger is attached to the command context and recovered by
// commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:   "apkgraph",
		Short: "apkgraph audits a package's dependency footprint in an APK repository",
		Long: `apkgraph inspects an Alpine-style package repository's APKINDEX and answers
two questions about a package: what does it depend on, transitively, up to a
bound, and what depends on it. Without a subcommand it runs the full audit
described by the config file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: runAudit,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.toml", "path to the config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDepsCmd())
	root.AddCommand(newRdepsCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(ctx)
}
