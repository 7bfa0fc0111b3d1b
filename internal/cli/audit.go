package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apkgraph/apkgraph/pkg/config"
	"github.com/apkgraph/apkgraph/pkg/depgraph"
	"github.com/apkgraph/apkgraph/pkg/index"
	"github.com/apkgraph/apkgraph/pkg/render"
)

// openConfigured loads the config file named by --config and acquires
// the index it points at. A spinner runs during the remote download.
func openConfigured(ctx context.Context) (*config.Config, *index.Index, error) {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}
	logger.Debugf("config loaded: package=%s mode=%s depth=%d", cfg.PackageName, cfg.RepoMode, cfg.MaxDepth)

	var spin *spinner
	if cfg.RepoMode == config.ModeRemote {
		spin = newSpinner(ctx, "downloading "+index.Describe(cfg.RepoMode, cfg.RepoPath))
		spin.start()
	}

	prog := newProgress(logger)
	idx, err := index.Open(ctx, cfg.RepoMode, cfg.RepoPath)
	if spin != nil {
		spin.stop()
	}
	if err != nil {
		return nil, nil, err
	}
	prog.done(fmt.Sprintf("Indexed %d packages from %s", idx.Len(), index.Describe(cfg.RepoMode, cfg.RepoPath)))

	return cfg, idx, nil
}

// buildGraph runs the bounded BFS for the configured package.
func buildGraph(ctx context.Context, cfg *config.Config, idx *index.Index, root string) (*depgraph.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	g, err := depgraph.Build(ctx, idx, root, depgraph.Options{
		MaxDepth: cfg.MaxDepth,
		Exclude:  cfg.FilterSubstring,
	})
	if err != nil {
		return nil, err
	}

	prog.done(fmt.Sprintf("Resolved %d packages within depth %d", g.NodeCount(), cfg.MaxDepth))
	return g, nil
}

// runAudit is the bare root command: the full audit the config file
// describes, mirroring the tool's original single-shot behavior.
func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, idx, err := openConfigured(ctx)
	if err != nil {
		return err
	}

	g, err := buildGraph(ctx, cfg, idx, cfg.PackageName)
	if err != nil {
		return err
	}

	printTitle("Dependency audit: %s", cfg.PackageName)
	if cfg.FilterSubstring != "" {
		printDetail("depth <= %d, excluding names containing %q", cfg.MaxDepth, cfg.FilterSubstring)
	} else {
		printDetail("depth <= %d", cfg.MaxDepth)
	}
	printNewline()

	direct, _ := g.Deps(cfg.PackageName)
	if len(direct) == 0 {
		printInfo("no dependencies found for %q", cfg.PackageName)
	} else {
		printInfo("direct dependencies of %s:", styleHighlight.Render(cfg.PackageName))
		for _, dep := range direct {
			printItem(dep)
		}
	}
	printStats(g.NodeCount(), g.EdgeCount())
	printNewline()

	rev := depgraph.Reverse(g)
	dependents, _ := rev.Deps(cfg.PackageName)
	if len(dependents) == 0 {
		printInfo("nothing in the graph depends on %q", cfg.PackageName)
	} else {
		printInfo("depended on by:")
		for _, name := range dependents {
			printItem(name)
		}
	}

	if cfg.ASCIIMode {
		printNewline()
		if err := depgraph.WriteTree(os.Stdout, g, cfg.PackageName); err != nil {
			return err
		}
	}

	printNewline()
	return renderArtifacts(ctx, cfg, g)
}

// renderArtifacts writes the DOT description and the laid-out image
// named by output_file and format.
func renderArtifacts(ctx context.Context, cfg *config.Config, g *depgraph.Graph) error {
	dot := depgraph.ToDOT(g)

	dotPath := cfg.OutputFile + ".dot"
	if err := os.WriteFile(dotPath, []byte(dot), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dotPath, err)
	}

	imgPath := cfg.OutputPath()
	switch cfg.Format {
	case config.FormatSVG:
		if err := render.SVGFile(ctx, dot, imgPath); err != nil {
			return err
		}
	default:
		if err := render.PNG(ctx, dot, imgPath); err != nil {
			return err
		}
	}

	printSuccess("graph rendered")
	printFile(dotPath)
	printFile(imgPath)
	return nil
}

// rootPackage returns the package named on the command line, falling
// back to the configured package_name.
func rootPackage(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.PackageName
}
