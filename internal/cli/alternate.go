package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyroute/skyroute/pkg/search"
)

// newAlternateCmd creates the alternate command (depth-limited rerouting).
func newAlternateCmd() *cobra.Command {
	var (
		opts            commonOpts
		maxDepth        int
		avoidCongestion bool
		prioritizeFuel  bool
	)

	cmd := &cobra.Command{
		Use:   "alternate <start> <goal>",
		Short: "Find an alternate route within a hop limit",
		Long: `Find an alternate route between two airports with a depth-limited search.

The search descends depth-first but refuses to extend any path beyond
--max-depth route segments, so the result never exceeds the hop limit. It
returns the first conforming path found, not necessarily the shortest one.
Weather-disrupted segments and weather-closed airports are always excluded;
congested segments are excluded unless --avoid-congestion=false.

Examples:
  skyroute alternate DEL COK --max-depth 4
  skyroute alternate DEL COK --max-depth 3 --avoid-congestion=false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlternate(cmd.Context(), opts, strings.ToUpper(args[0]), strings.ToUpper(args[1]), maxDepth, search.Options{
				AvoidCongestion: avoidCongestion,
				PrioritizeFuel:  prioritizeFuel,
			})
		},
	}

	opts.registerCommon(cmd)
	cmd.Flags().IntVar(&maxDepth, "max-depth", 5, "maximum number of route segments in the result")
	cmd.Flags().BoolVar(&avoidCongestion, "avoid-congestion", true, "skip congested routes")
	cmd.Flags().BoolVar(&prioritizeFuel, "prioritize-fuel", false, "try fuel-cheaper routes first at each airport")

	return cmd
}

func runAlternate(ctx context.Context, opts commonOpts, start, goal string, maxDepth int, sopts search.Options) error {
	logger := loggerFromContext(ctx)
	net, _, err := opts.loadNetwork(ctx)
	if err != nil {
		return err
	}

	logger.Infof("Rerouting %s %s %s within %d hops", start, iconArrow, goal, maxDepth)
	prog := newProgress(logger)
	res, err := search.AlternateRoute(ctx, net, start, goal, maxDepth, sopts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Search complete (query %s)", res.QueryID))

	if !res.Found {
		printFailure("No route from %s to %s within %d hops", start, goal, maxDepth)
		printDetail("Retry with a larger --max-depth or --avoid-congestion=false")
		return opts.exportResult(res)
	}

	printSuccess("Alternate route: %s", formatPath(res.Path))
	printResultStats(res)
	return opts.exportResult(res)
}
