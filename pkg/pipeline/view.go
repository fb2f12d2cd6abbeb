package pipeline

import (
	"github.com/chainscope/chainscope/pkg/layout"
	"github.com/chainscope/chainscope/pkg/render"
	"github.com/chainscope/chainscope/pkg/trace"
)

// View is a retained graph view bound to a drawing surface.
//
// Every input change (new trace, resize) recomputes the layout from the
// latest inputs and repaints the whole frame. There is no partial
// invalidation: the last write wins. A View with no attached surface
// accepts input changes but draws nothing.
//
// View is not safe for concurrent use. Callers that mutate it from
// multiple goroutines must serialize access themselves.
type View struct {
	surface render.Surface
	style   render.Style

	address string
	txs     []trace.Transaction
	width   float64
	height  float64

	layout *layout.Layout
}

// NewView creates a detached view with default dimensions and style.
func NewView() *View {
	return &View{
		style:  render.DefaultStyle(),
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// Attach binds the view to a surface and repaints immediately.
// Passing nil detaches the view.
func (v *View) Attach(s render.Surface) {
	v.surface = s
	if s != nil {
		if w, h := s.LogicalSize(); w > 0 && h > 0 && (w != v.width || h != v.height) {
			v.width, v.height = w, h
			v.recompute()
		}
	}
	v.redraw()
}

// SetStyle replaces the view's style and repaints.
func (v *View) SetStyle(style render.Style) {
	v.style = style
	v.redraw()
}

// SetTrace replaces the view's inputs and repaints.
// The transaction slice is retained by reference; callers must not
// mutate it afterwards.
func (v *View) SetTrace(address string, txs []trace.Transaction) {
	v.address = address
	v.txs = txs
	v.recompute()
	v.redraw()
}

// Resize updates the frame dimensions and repaints.
// Non-positive dimensions are ignored.
func (v *View) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height
	v.recompute()
	v.redraw()
}

// Layout returns the most recently computed layout, or nil if no trace
// has been set.
func (v *View) Layout() *layout.Layout {
	return v.layout
}

func (v *View) recompute() {
	if v.address == "" {
		v.layout = nil
		return
	}
	l := layout.Compute(v.address, v.txs, v.width, v.height)
	v.layout = &l
}

func (v *View) redraw() {
	if v.surface == nil || v.layout == nil {
		return
	}
	render.RenderStyled(v.surface, v.layout, v.style)
}
