package render

import (
	"github.com/chainscope/chainscope/pkg/layout"
	"github.com/chainscope/chainscope/pkg/trace"
)

// Render paints the layout onto s with the default style.
// A nil surface is a no-op; the caller retries once a surface exists.
func Render(s Surface, l *layout.Layout) {
	RenderStyled(s, l, DefaultStyle())
}

// RenderStyled paints the layout onto s.
//
// The previous frame is fully cleared first; there is no accumulation
// across renders. Edges are drawn before nodes so nodes sit on top, and
// edge endpoints outside the sampled peer set resolve to the center
// position via layout.Position.
func RenderStyled(s Surface, l *layout.Layout, style Style) {
	if s == nil || l == nil {
		return
	}

	s.Clear(style.Background)

	for _, e := range l.Edges {
		from := l.Position(e.From)
		to := l.Position(e.To)
		s.DrawLine(from.X, from.Y, to.X, to.Y, style.Edge)
	}

	center := l.Center()
	s.DrawCircle(center.X, center.Y, center.Radius, style.Center)

	for _, n := range l.Nodes[1:] {
		s.DrawCircle(n.X, n.Y, n.Radius, style.Peer)
	}

	label := trace.ElideAddress(l.Address)
	s.DrawText(label, center.X, center.Y-center.Radius-style.LabelGap, style.Label)
}
