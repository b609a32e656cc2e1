package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"numroute/internal/config"
	"numroute/internal/domain"
	"numroute/internal/domain/service/routing"
	"numroute/internal/domain/service/weighted"
)

type options struct {
	runs        int
	seed        uint64
	routingFile string
	overrides   routing.Overrides
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Dry-run the routing decisions and print the observed distribution",
		Long: "Runs the upstream, agency and route selection steps without calling any " +
			"upstream and prints how often each outcome was chosen.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("routing") {
				opts.routingFile = os.Getenv("ROUTING_FILE")
			}

			return run(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.runs, "runs", "n", 10000, "number of decisions to draw")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "fixed seed for reproducible output; 0 draws from the process source")
	cmd.Flags().StringVar(&opts.routingFile, "routing", "", "routing YAML file; defaults to $ROUTING_FILE or the built-in tree")
	cmd.Flags().StringVar(&opts.overrides.UpstreamKey, "upstream", "", "force the upstream key")
	cmd.Flags().StringVar(&opts.overrides.AgencyID, "agency-id", "", "force the agency id")

	return cmd
}

func run(out io.Writer, opts options) error {
	if opts.runs < 1 {
		return fmt.Errorf("--runs must be positive, got %d", opts.runs)
	}

	upstreams, err := config.Routing{File: opts.routingFile}.Load()
	if err != nil {
		return fmt.Errorf("load routing: %w", err)
	}

	rnd := weighted.DefaultRand()
	if opts.seed != 0 {
		rnd = weighted.Seeded(opts.seed)
	}

	resolver := routing.NewResolver(upstreams, nil).WithRand(rnd)

	counts := make(map[string]int)

	for range opts.runs {
		counts[outcome(resolver.Plan(opts.overrides))]++
	}

	keys := lo.Keys(counts)
	slices.Sort(keys)

	w := tabwriter.NewWriter(out, 4, 8, 4, ' ', 0)
	fmt.Fprintln(w, "OUTCOME\tCOUNT\tSHARE")

	for _, k := range keys {
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", k, counts[k], float64(counts[k])/float64(opts.runs)*100)
	}

	return w.Flush() //nolint:wrapcheck
}

func outcome(decision routing.Decision, err error) string {
	if err != nil {
		if code, ok := domain.GetCode(err); ok {
			return "error/" + code.String()
		}

		return "error/unknown"
	}

	return fmt.Sprintf("%s/%s/%s", decision.Upstream.Key, decision.Agency.ID, decision.Kind)
}
