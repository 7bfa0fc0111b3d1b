package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/apkgraph/apkgraph/pkg/depgraph"
)

// depsOpts holds the command-line flags for the deps command.
type depsOpts struct {
	tree bool // print the indented tree instead of the flat list
	json bool // write the forward graph as JSON to stdout
}

// newDepsCmd creates the forward-audit command: what the package
// depends on, transitively, up to the configured bound.
func newDepsCmd() *cobra.Command {
	opts := &depsOpts{}

	cmd := &cobra.Command{
		Use:   "deps [package]",
		Short: "Show what a package depends on",
		Long: `Build the bounded dependency graph for a package and print it. The package
argument overrides the configured package_name; depth and filtering come from
the config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeps(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.tree, "tree", false, "print the dependency tree")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write the graph as JSON to stdout")

	return cmd
}

func runDeps(cmd *cobra.Command, args []string, opts *depsOpts) error {
	ctx := cmd.Context()

	cfg, idx, err := openConfigured(ctx)
	if err != nil {
		return err
	}
	root := rootPackage(cfg, args)

	g, err := buildGraph(ctx, cfg, idx, root)
	if err != nil {
		return err
	}

	if opts.json {
		return writeGraphJSON(os.Stdout, g, "depends_on")
	}

	if opts.tree || cfg.ASCIIMode {
		return depgraph.WriteTree(os.Stdout, g, root)
	}

	direct, _ := g.Deps(root)
	if len(direct) == 0 {
		printInfo("no dependencies found for %q", root)
		return nil
	}

	printInfo("direct dependencies of %s:", styleHighlight.Render(root))
	for _, dep := range direct {
		printItem(dep)
	}
	printStats(g.NodeCount(), g.EdgeCount())
	return nil
}
