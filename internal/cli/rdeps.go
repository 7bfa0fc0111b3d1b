package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/apkgraph/apkgraph/pkg/depgraph"
)

// newRdepsCmd creates the reverse-audit command: what depends on the
// package, within the graph built for it.
func newRdepsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rdeps [package]",
		Short: "Show what depends on a package",
		Long: `Build the bounded dependency graph for a package, invert it, and print the
packages that list the package as a dependency. The package argument overrides
the configured package_name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRdeps(cmd, args, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write the reverse graph as JSON to stdout")

	return cmd
}

func runRdeps(cmd *cobra.Command, args []string, asJSON bool) error {
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
	rev := depgraph.Reverse(g)

	if asJSON {
		return writeGraphJSON(os.Stdout, rev, "required_by")
	}

	dependents, _ := rev.Deps(root)
	if len(dependents) == 0 {
		printInfo("nothing in the graph depends on %q", root)
		return nil
	}

	printInfo("packages depending on %s:", styleHighlight.Render(root))
	for _, name := range dependents {
		printItem(name)
	}
	return nil
}
