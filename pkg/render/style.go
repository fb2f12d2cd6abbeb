package render

// Style bundles the color pairs and stroke settings for one rendered
// frame. The center and peer pairs are deliberately distinct so the focal
// address stays visually salient.
type Style struct {
	Background string

	Edge Stroke

	Center FillStroke
	Peer   FillStroke

	Label TextStyle

	// LabelGap is the distance in logical pixels between the top of the
	// center node and the label baseline.
	LabelGap float64
}

// DefaultStyle is the standard ChainScope frame style.
func DefaultStyle() Style {
	return Style{
		Background: "#101418",
		Edge: Stroke{
			Color:   "#7f9bb3",
			Width:   1.5,
			Opacity: 0.35,
		},
		Center: FillStroke{
			Fill:        "#2f81f7",
			Stroke:      "#9ecbff",
			StrokeWidth: 3,
		},
		Peer: FillStroke{
			Fill:        "#21262d",
			Stroke:      "#8b949e",
			StrokeWidth: 2,
		},
		Label: TextStyle{
			Color: "#e6edf3",
			Size:  13,
		},
		LabelGap: 10,
	}
}
