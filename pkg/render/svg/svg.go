// Package svg implements render.Surface producing SVG markup.
//
// The surface buffers drawing operations as SVG elements; Bytes closes
// the document. SVG output is resolution independent, so device pixel
// density needs no handling here.
package svg

import (
	"bytes"
	"fmt"

	"github.com/chainscope/chainscope/pkg/render"
)

// Surface accumulates SVG elements for one frame.
type Surface struct {
	width  float64
	height float64
	body   bytes.Buffer
}

// New creates an SVG surface with the given logical dimensions.
func New(width, height float64) *Surface {
	return &Surface{width: width, height: height}
}

// LogicalSize implements render.Surface.
func (s *Surface) LogicalSize() (float64, float64) {
	return s.width, s.height
}

// Clear implements render.Surface by dropping all buffered elements and
// starting the frame with a full-size background rect.
func (s *Surface) Clear(color string) {
	s.body.Reset()
	fmt.Fprintf(&s.body, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		s.width, s.height, color)
}

// DrawLine implements render.Surface.
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, st render.Stroke) {
	fmt.Fprintf(&s.body,
		`  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f"/>`+"\n",
		x1, y1, x2, y2, st.Color, st.Width, st.Opacity)
}

// DrawCircle implements render.Surface.
func (s *Surface) DrawCircle(x, y, r float64, st render.FillStroke) {
	fmt.Fprintf(&s.body,
		`  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.2f"/>`+"\n",
		x, y, r, st.Fill, st.Stroke, st.StrokeWidth)
}

// DrawText implements render.Surface. Text is centered at x with the
// baseline at y.
func (s *Surface) DrawText(text string, x, y float64, st render.TextStyle) {
	fmt.Fprintf(&s.body,
		`  <text x="%.2f" y="%.2f" fill="%s" font-size="%.1f" font-family="monospace" text-anchor="middle">%s</text>`+"\n",
		x, y, st.Color, st.Size, escape(text))
}

// Bytes returns the complete SVG document for the current frame.
func (s *Surface) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	out.Write(s.body.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

// escape replaces the XML-significant characters in label text.
func escape(t string) string {
	var out bytes.Buffer
	for _, r := range t {
		switch r {
		case '&':
			out.WriteString("&amp;")
		case '<':
			out.WriteString("&lt;")
		case '>':
			out.WriteString("&gt;")
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// Ensure Surface implements render.Surface.
var _ render.Surface = (*Surface)(nil)
