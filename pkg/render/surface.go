package render

// Surface is the capability interface a drawing backend must implement.
// Coordinates are logical pixels; backends handle device pixel density
// internally (see raster.New), so the renderer never sees scale factors.
type Surface interface {
	// LogicalSize returns the drawable area in logical pixels.
	LogicalSize() (width, height float64)

	// Clear fills the entire surface with the given background color,
	// discarding the previous frame.
	Clear(color string)

	// DrawLine strokes a straight segment between two points.
	DrawLine(x1, y1, x2, y2 float64, s Stroke)

	// DrawCircle fills and strokes a circle centered at (x, y).
	DrawCircle(x, y, r float64, s FillStroke)

	// DrawText draws text horizontally centered at x, with the baseline
	// at y.
	DrawText(text string, x, y float64, s TextStyle)
}

// Stroke describes a line style. Colors are CSS hex tokens; Opacity is in
// [0, 1] and applies to the stroke color.
type Stroke struct {
	Color   string
	Width   float64
	Opacity float64
}

// FillStroke describes a filled shape with an outline.
type FillStroke struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// TextStyle describes label text.
type TextStyle struct {
	Color string
	Size  float64
}
