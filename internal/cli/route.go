package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/skyroute/skyroute/pkg/airnet"
	"github.com/skyroute/skyroute/pkg/geo"
	"github.com/skyroute/skyroute/pkg/netfile"
	"github.com/skyroute/skyroute/pkg/search"
)

// commonOpts holds flags shared by every query command.
type commonOpts struct {
	network string // network TOML path (built-in sample if empty)
	output  string // result JSON path (no export if empty)
}

// registerCommon wires the shared flags onto a command.
func (o *commonOpts) registerCommon(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.network, "network", "", "network definition file (TOML); built-in sample network if empty")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the result as JSON to this file")
}

// loadNetwork loads the network named by the flags, falling back to the
// built-in sample network.
func (o *commonOpts) loadNetwork(ctx context.Context) (*airnet.Network, *netfile.File, error) {
	logger := loggerFromContext(ctx)
	if o.network == "" {
		logger.Debug("Using built-in sample network")
		return airnet.SampleNetwork(), nil, nil
	}
	f, err := netfile.Load(o.network)
	if err != nil {
		return nil, nil, fmt.Errorf("load network %s: %w", o.network, err)
	}
	n, err := f.Network()
	if err != nil {
		return nil, nil, fmt.Errorf("build network %s: %w", o.network, err)
	}
	logger.Debugf("Loaded %s: %d airports, %d route entries", o.network, n.AirportCount(), n.RouteCount())
	return n, f, nil
}

// exportResult writes the result JSON when --output is set.
func (o *commonOpts) exportResult(res search.Result) error {
	if o.output == "" {
		return nil
	}
	if err := netfile.WriteResultFile(res, o.output); err != nil {
		return err
	}
	printFile(o.output)
	return nil
}

// newRouteCmd creates the route command (breadth-first shortest path).
func newRouteCmd() *cobra.Command {
	var (
		opts            commonOpts
		avoidCongestion bool
		prioritizeFuel  bool
		cruiseSpeed     float64
	)

	cmd := &cobra.Command{
		Use:   "route <start> <goal>",
		Short: "Find the hop-count-shortest path between two airports",
		Long: `Find the hop-count-shortest path between two airports with breadth-first search.

The search explores in non-decreasing hop count, so the first path that
reaches the goal uses the fewest route segments among all paths satisfying
the constraints. It is not cost-optimal: a two-hop path with less total
distance never beats a direct route.

Examples:
  skyroute route DEL BOM
  skyroute route DEL BOM --avoid-congestion=false
  skyroute route DEL BOM --prioritize-fuel --network india.toml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoute(cmd.Context(), opts, strings.ToUpper(args[0]), strings.ToUpper(args[1]), search.Options{
				AvoidCongestion: avoidCongestion,
				PrioritizeFuel:  prioritizeFuel,
			}, cruiseSpeed)
		},
	}

	opts.registerCommon(cmd)
	cmd.Flags().BoolVar(&avoidCongestion, "avoid-congestion", true, "skip congested and weather-disrupted routes")
	cmd.Flags().BoolVar(&prioritizeFuel, "prioritize-fuel", false, "prefer fuel-cheaper routes among equal-hop candidates")
	cmd.Flags().Float64Var(&cruiseSpeed, "cruise-speed", 850, "cruise speed in km/h for the travel time estimate")

	return cmd
}

func runRoute(ctx context.Context, opts commonOpts, start, goal string, sopts search.Options, cruiseSpeed float64) error {
	logger := loggerFromContext(ctx)
	net, _, err := opts.loadNetwork(ctx)
	if err != nil {
		return err
	}

	logger.Infof("Searching %s %s %s", start, iconArrow, goal)
	prog := newProgress(logger)
	res, err := search.ShortestPath(ctx, net, start, goal, sopts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Search complete (query %s)", res.QueryID))

	if !res.Found {
		printFailure("No path from %s to %s under the given constraints", start, goal)
		printDetail("Retry with --avoid-congestion=false to allow congested routes")
		return opts.exportResult(res)
	}

	printSuccess("Path found: %s", formatPath(res.Path))
	printResultStats(res)
	if t, ok := travelTime(net, res.Path, cruiseSpeed); ok {
		printDetail("estimated travel time: %s at %.0f km/h", t.Round(time.Minute), cruiseSpeed)
	}
	return opts.exportResult(res)
}

// travelTime sums the per-segment congestion-adjusted travel times along a
// path. Returns false if any segment is missing or the speed is invalid.
func travelTime(net *airnet.Network, path []string, cruiseSpeed float64) (time.Duration, bool) {
	var total time.Duration
	for i := 0; i+1 < len(path); i++ {
		r, ok := net.Route(path[i], path[i+1])
		if !ok {
			return 0, false
		}
		t, err := geo.EstimateTravelTime(r.DistanceKm, cruiseSpeed, r.CongestionLevel)
		if err != nil {
			return 0, false
		}
		total += t
	}
	return total, true
}
