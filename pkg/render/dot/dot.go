// Package dot provides an alternate node-link view of a trace graph in
// Graphviz DOT format.
//
// The ring layout in pkg/layout is the primary visual; the DOT view lets
// Graphviz pick its own node placement, which reads better for dense
// neighborhoods at the cost of determinism. Use [ToDOT] for the DOT
// string and [RenderSVG] to rasterize it through Graphviz.
package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/chainscope/chainscope/pkg/layout"
	"github.com/chainscope/chainscope/pkg/trace"
)

// ToDOT converts a computed layout to Graphviz DOT format.
// The center node is emphasized with a doublecircle shape; labels use the
// same elision rule as the ring view.
func ToDOT(l *layout.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("graph trace {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=11];\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		label := trace.ElideAddress(n.ID)
		if n.IsCenter {
			fmt.Fprintf(&buf, "  %q [label=%q, shape=doublecircle, fillcolor=lightblue];\n", n.ID, label)
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, label)
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		// Unsampled endpoints resolve to the center, same as the ring view.
		from := l.Position(e.From).ID
		to := l.Position(e.To).ID
		fmt.Fprintf(&buf, "  %q -- %q;\n", from, to)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
