package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/skyroute/skyroute/pkg/airnet"
	"github.com/skyroute/skyroute/pkg/geo"
	"github.com/skyroute/skyroute/pkg/search"
)

// newEmergencyCmd creates the emergency command (nearest suitable airport).
func newEmergencyCmd() *cobra.Command {
	var (
		opts  commonOpts
		lat   float64
		lon   float64
		fuel  float64
		class string
		seed  int64
		trace bool
	)

	cmd := &cobra.Command{
		Use:   "emergency <type>",
		Short: "Find the nearest airport suitable for an emergency landing",
		Long: `Find the nearest airport that can accept an emergency landing.

Airports are examined in ascending great-circle distance from the aircraft.
Each candidate must pass weather, runway length, required facility and fuel
reach checks; airports flagged as decoys get a second verification pass and
are rejected when their reported facilities turn out to be unreliable.

Known emergency types are medical, fire and mechanical. Any other type runs
a generic search with no facility requirement.

Examples:
  skyroute emergency medical --lat 26.5 --lon 80.3 --fuel 300
  skyroute emergency fire --lat 19.2 --lon 72.9 --fuel 120 --class jumbo
  skyroute emergency medical --lat 26.5 --lon 80.3 --fuel 300 --seed 42 --trace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ac := &airnet.Aircraft{
				ID:            "adhoc",
				Position:      geo.Coordinate{Lat: lat, Lon: lon},
				FuelRemaining: fuel,
				Class:         airnet.AircraftClass(class),
			}
			return runEmergency(cmd.Context(), opts, ac, args[0], seed, trace)
		},
	}

	opts.registerCommon(cmd)
	cmd.Flags().Float64Var(&lat, "lat", 0, "aircraft latitude in decimal degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "aircraft longitude in decimal degrees")
	cmd.Flags().Float64Var(&fuel, "fuel", 0, "fuel remaining in fuel units (0 uses the network file's aircraft, if any)")
	cmd.Flags().StringVar(&class, "class", "medium", "aircraft class: small, medium, large or jumbo")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for decoy verification (time-based if 0)")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the per-airport decision trace")

	return cmd
}

func runEmergency(ctx context.Context, opts commonOpts, ac *airnet.Aircraft, kind string, seed int64, trace bool) error {
	logger := loggerFromContext(ctx)
	net, file, err := opts.loadNetwork(ctx)
	if err != nil {
		return err
	}
	if file != nil {
		if fromFile, ok := file.Aircraft(); ok && ac.FuelRemaining == 0 {
			logger.Debugf("Using aircraft %s from network file", fromFile.ID)
			ac = fromFile
		}
	}
	if err := ac.Position.Validate(); err != nil {
		return err
	}

	e := airnet.EmergencyByName(kind)
	if e.Requires == "" {
		printWarning("Unknown emergency type %q, searching without a facility requirement", kind)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	logger.Infof("Emergency %s (severity %d) at (%.4f, %.4f), fuel %.0f, class %s",
		e.Name, e.Severity, ac.Position.Lat, ac.Position.Lon, ac.FuelRemaining, ac.Class)
	prog := newProgress(logger)
	res, err := search.EmergencyLanding(ctx, net, ac, e, rng)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Scan complete (query %s)", res.QueryID))

	if trace {
		printTrace(res.Trace)
	}
	if !res.Found {
		printFailure("No airport within reach satisfies the %s landing requirements", e.Name)
		printDetail("checked %d airports", len(res.Trace))
		return opts.exportResult(res)
	}

	code := res.Path[len(res.Path)-1]
	ap, _ := net.Airport(code)
	printSuccess("Divert to %s (%s)", code, ap.Name)
	printResultStats(res)
	if ap.Decoy {
		printWarning("%s is flagged as a possible decoy; facilities were re-verified this run", code)
	}
	return opts.exportResult(res)
}
