package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyroute/skyroute/pkg/airnet"
)

// newNetworkCmd creates the network command (inspection of the loaded graph).
func newNetworkCmd() *cobra.Command {
	var opts commonOpts

	cmd := &cobra.Command{
		Use:   "network [code]",
		Short: "Inspect the airport network",
		Long: `Inspect the airport network.

With no argument, prints a summary and the airport table. With an airport
code, prints that airport's details and its outgoing routes.

Examples:
  skyroute network
  skyroute network DEL
  skyroute network --network india.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := ""
			if len(args) == 1 {
				code = strings.ToUpper(args[0])
			}
			return runNetwork(cmd.Context(), opts, code)
		},
	}

	cmd.Flags().StringVar(&opts.network, "network", "", "network definition file (TOML); built-in sample network if empty")
	return cmd
}

func runNetwork(ctx context.Context, opts commonOpts, code string) error {
	net, _, err := opts.loadNetwork(ctx)
	if err != nil {
		return err
	}
	if code != "" {
		return printAirport(net, code)
	}

	printTitle("Airport network")
	printKeyValue("airports", fmt.Sprintf("%d", net.AirportCount()))
	printKeyValue("routes", fmt.Sprintf("%d", net.RouteCount()/2))
	fmt.Println()

	for _, ap := range net.Airports() {
		var tags []string
		if ap.Hub {
			tags = append(tags, "hub")
		}
		if ap.Weather != airnet.WeatherClear {
			tags = append(tags, string(ap.Weather))
		}
		if ap.Decoy {
			tags = append(tags, "decoy")
		}
		line := fmt.Sprintf("%s  %s", ap.Code, ap.Name)
		if len(tags) > 0 {
			line += "  [" + strings.Join(tags, ", ") + "]"
		}
		printInfo("%s", line)
	}
	return nil
}

func printAirport(net *airnet.Network, code string) error {
	ap, ok := net.Airport(code)
	if !ok {
		return fmt.Errorf("%w: %s", airnet.ErrUnknownAirport, code)
	}

	printTitle("%s - %s", ap.Code, ap.Name)
	printKeyValue("position", fmt.Sprintf("%.4f, %.4f", ap.Position.Lat, ap.Position.Lon))
	printKeyValue("runway", fmt.Sprintf("%.0f m", ap.RunwayLength))
	printKeyValue("weather", string(ap.Weather))
	printKeyValue("hub", fmt.Sprintf("%t", ap.Hub))
	printKeyValue("tower", fmt.Sprintf("%t", ap.ControlTower))
	if len(ap.Facilities) > 0 {
		names := make([]string, len(ap.Facilities))
		for i, f := range ap.Facilities {
			names[i] = string(f)
		}
		printKeyValue("facilities", strings.Join(names, ", "))
	}
	if ap.Decoy {
		printWarning("reported facilities may be unreliable (decoy)")
	}

	fmt.Println()
	for r := range net.Neighbors(code, airnet.NeighborFilter{}) {
		note := ""
		if r.Congested() {
			note += "  congested"
		}
		if r.WeatherDisrupted {
			note += "  weather"
		}
		printInfo("%s %s  %.0f km  eff %.1f%s", iconArrow, r.To, r.DistanceKm, r.FuelEfficiency, note)
	}
	return nil
}
