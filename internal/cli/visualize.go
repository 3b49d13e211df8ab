package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skyroute/skyroute/pkg/render"
)

// newVisualizeCmd creates the visualize command (network map rendering).
func newVisualizeCmd() *cobra.Command {
	var (
		opts      commonOpts
		format    string
		outPath   string
		detailed  bool
		highlight string
	)

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Render the network as a map",
		Long: `Render the airport network as a graph image.

Hubs, decoys, congested routes and weather-disrupted routes are styled
distinctly. With --highlight, the given path is drawn on top in green, so a
route query result can be inspected visually.

Examples:
  skyroute visualize -o network.svg
  skyroute visualize -f png -o network.png --detailed
  skyroute visualize -o route.svg --highlight DEL,BLR,BOM`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path []string
			if highlight != "" {
				path = strings.Split(strings.ToUpper(highlight), ",")
			}
			return runVisualize(cmd.Context(), opts, format, outPath, render.Options{
				Highlight: path,
				Detailed:  detailed,
			})
		},
	}

	cmd.Flags().StringVar(&opts.network, "network", "", "network definition file (TOML); built-in sample network if empty")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: dot, svg or png")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (derived from format if empty)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "annotate nodes with runway length and weather")
	cmd.Flags().StringVar(&highlight, "highlight", "", "comma-separated airport codes of a path to highlight")

	return cmd
}

func runVisualize(ctx context.Context, opts commonOpts, format, outPath string, ropts render.Options) error {
	net, _, err := opts.loadNetwork(ctx)
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = "network." + format
	}

	dot := render.ToDOT(net, ropts)

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg", "png":
		sp := newSpinner(ctx, "Rendering network map...")
		sp.Start()
		if format == "svg" {
			data, err = render.RenderSVG(dot)
		} else {
			data, err = render.RenderPNG(dot)
		}
		if err != nil {
			sp.StopWithError("Rendering failed")
			return fmt.Errorf("render %s: %w", format, err)
		}
		sp.Stop()
	default:
		return fmt.Errorf("unsupported format %q (want dot, svg or png)", format)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	printSuccess("Rendered %d airports, %d routes", net.AirportCount(), net.RouteCount()/2)
	printFile(outPath)
	return nil
}
