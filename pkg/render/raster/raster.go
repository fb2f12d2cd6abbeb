// Package raster implements render.Surface on a software rasterizer.
//
// The surface is backed by github.com/fogleman/gg. Device pixel density
// is handled at construction: the backing image is allocated at
// width·scale × height·scale and a single coordinate transform maps
// logical units onto it, so callers draw in logical pixels throughout.
package raster

import (
	"bytes"
	"image"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/chainscope/chainscope/pkg/render"
)

// Surface is a raster drawing surface producing PNG bytes.
type Surface struct {
	dc     *gg.Context
	width  float64
	height float64
	scale  float64
}

// Font parsing happens once per process; faces are derived per size.
var (
	fontOnce sync.Once
	font     *truetype.Font
	fontErr  error
)

func regularFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		font, fontErr = truetype.Parse(goregular.TTF)
	})
	return font, fontErr
}

// New creates a raster surface of the given logical dimensions.
// Scale is the device pixel ratio; 1 or less means no scaling.
func New(width, height, scale float64) *Surface {
	if scale < 1 {
		scale = 1
	}
	dc := gg.NewContext(int(width*scale+0.5), int(height*scale+0.5))
	dc.Scale(scale, scale)
	return &Surface{dc: dc, width: width, height: height, scale: scale}
}

// LogicalSize implements render.Surface.
func (s *Surface) LogicalSize() (float64, float64) {
	return s.width, s.height
}

// Clear implements render.Surface.
func (s *Surface) Clear(color string) {
	r, g, b := hexRGB(color)
	s.dc.SetRGB(r, g, b)
	s.dc.Clear()
}

// DrawLine implements render.Surface.
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, st render.Stroke) {
	r, g, b := hexRGB(st.Color)
	s.dc.SetRGBA(r, g, b, st.Opacity)
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawLine(x1, y1, x2, y2)
	s.dc.Stroke()
}

// DrawCircle implements render.Surface.
func (s *Surface) DrawCircle(x, y, radius float64, st render.FillStroke) {
	s.dc.DrawCircle(x, y, radius)
	r, g, b := hexRGB(st.Fill)
	s.dc.SetRGB(r, g, b)
	s.dc.FillPreserve()
	r, g, b = hexRGB(st.Stroke)
	s.dc.SetRGB(r, g, b)
	s.dc.SetLineWidth(st.StrokeWidth)
	s.dc.Stroke()
}

// DrawText implements render.Surface. Text is centered at x with the
// baseline at y.
func (s *Surface) DrawText(text string, x, y float64, st render.TextStyle) {
	f, err := regularFont()
	if err != nil {
		// No usable font face: skip text rather than fail the frame.
		return
	}
	face := truetype.NewFace(f, &truetype.Options{Size: st.Size})
	s.dc.SetFontFace(face)
	r, g, b := hexRGB(st.Color)
	s.dc.SetRGB(r, g, b)
	s.dc.DrawStringAnchored(text, x, y, 0.5, 0)
}

// Image returns the backing image at device resolution.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// PNG encodes the surface as PNG bytes.
func (s *Surface) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// hexRGB parses a "#RRGGBB" color token into [0,1] components.
// Malformed tokens parse as black rather than failing the frame.
func hexRGB(color string) (r, g, b float64) {
	if len(color) != 7 || color[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(color[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	r = float64(v>>16&0xff) / 255
	g = float64(v>>8&0xff) / 255
	b = float64(v&0xff) / 255
	return r, g, b
}

// Ensure Surface implements render.Surface.
var _ render.Surface = (*Surface)(nil)
