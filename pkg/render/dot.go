// Package render converts an airport network to Graphviz DOT and renders it
// to SVG or PNG. Congested routes are drawn red and dashed, weather-disrupted
// ones blue and dotted, and an optional highlighted path is overlaid in bold.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/skyroute/skyroute/pkg/airnet"
)

// Options configures network rendering.
type Options struct {
	// Highlight is an ordered path of airport codes to emphasize.
	Highlight []string

	// Detailed includes runway length and weather in node labels.
	// When false, only code and name are shown.
	Detailed bool
}

// ToDOT converts a network to Graphviz DOT. Each bidirectional connection is
// drawn once as an undirected-style edge (the lexically smaller endpoint
// first), since both directions always carry identical attributes.
func ToDOT(n *airnet.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph airnet {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	onPath := pathEdges(opts.Highlight)
	pathNodes := make(map[string]bool, len(opts.Highlight))
	for _, code := range opts.Highlight {
		pathNodes[code] = true
	}

	for _, a := range n.Airports() {
		attrs := nodeAttrs(a, opts.Detailed, pathNodes[a.Code])
		fmt.Fprintf(&buf, "  %q [%s];\n", a.Code, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	seen := make(map[[2]string]bool)
	for _, a := range n.Airports() {
		for r := range n.Neighbors(a.Code, airnet.NeighborFilter{}) {
			key := edgeKey(r.From, r.To)
			if seen[key] {
				continue
			}
			seen[key] = true
			attrs := edgeAttrs(n, r, onPath[key])
			fmt.Fprintf(&buf, "  %q -- %q [%s];\n", key[0], key[1], strings.Join(attrs, ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(a *airnet.Airport, detailed, highlighted bool) []string {
	label := a.Code
	if detailed {
		label = fmt.Sprintf("%s\n%s\nrunway: %.0fm\nweather: %s", a.Code, a.Name, a.RunwayLength, a.Weather)
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case highlighted:
		attrs = append(attrs, "fillcolor=palegreen", "penwidth=2")
	case a.Hub:
		attrs = append(attrs, "fillcolor=lightyellow")
	case a.Decoy:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=mistyrose")
	}
	return attrs
}

func edgeAttrs(n *airnet.Network, r airnet.Route, highlighted bool) []string {
	attrs := []string{fmt.Sprintf("label=\"%.0f\"", r.DistanceKm), "fontsize=9"}
	switch {
	case highlighted:
		attrs = append(attrs, "color=forestgreen", "penwidth=3")
	case n.IsCongested(r.From, r.To):
		attrs = append(attrs, "color=red", "style=dashed")
	case n.IsWeatherDisrupted(r.From, r.To):
		attrs = append(attrs, "color=steelblue", "style=dotted")
	}
	return attrs
}

// pathEdges converts an ordered path into the set of unordered edge keys it
// traverses.
func pathEdges(path []string) map[[2]string]bool {
	edges := make(map[[2]string]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		edges[edgeKey(path[i], path[i+1])] = true
	}
	return edges
}

// edgeKey normalizes an unordered pair to a canonical key.
func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
