package cli

import (
	"github.com/spf13/cobra"

	"github.com/apkgraph/apkgraph/pkg/apkerrors"
	"github.com/apkgraph/apkgraph/pkg/config"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format string // png or svg, overrides the configured format
	output string // base name override for the artifacts
}

// newRenderCmd creates the render-only command: DOT export plus the
// layout-tool invocation, without the printed audit.
func newRenderCmd() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [package]",
		Short: "Render the dependency graph as an image",
		Long: `Build the bounded dependency graph for a package, export it in DOT notation,
and lay it out as an image. PNG output invokes the external dot executable;
SVG is laid out in-process.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.format, "format", "", "output format: png or svg (default from config)")
	cmd.Flags().StringVar(&opts.output, "output", "", "base name for output files (default from config)")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	ctx := cmd.Context()

	cfg, idx, err := openConfigured(ctx)
	if err != nil {
		return err
	}
	if opts.output != "" {
		cfg.OutputFile = opts.output
	}
	if opts.format != "" {
		switch opts.format {
		case config.FormatPNG, config.FormatSVG:
			cfg.Format = opts.format
		default:
			return apkerrors.New(apkerrors.ErrCodeInvalidInput, "format must be png or svg, got %q", opts.format)
		}
	}

	g, err := buildGraph(ctx, cfg, idx, rootPackage(cfg, args))
	if err != nil {
		return err
	}

	return renderArtifacts(ctx, cfg, g)
}
