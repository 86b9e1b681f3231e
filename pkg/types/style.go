package types

// Style carries the visual attributes of a drawing. It is pure value
// data owned by the drawing; the settings UI mutates a copy and swaps it
// in wholesale.
type Style struct {
	LineColor   string    `json:"lineColor,omitempty"`
	LineWidth   float64   `json:"lineWidth,omitempty"`
	LineDash    []float64 `json:"lineDash,omitempty"`
	FillColor   string    `json:"fillColor,omitempty"`
	FillOpacity float64   `json:"fillOpacity,omitempty"`

	Text      string  `json:"text,omitempty"`
	TextColor string  `json:"textColor,omitempty"`
	FontSize  float64 `json:"fontSize,omitempty"`
}

func DefaultStyle() Style {
	return Style{
		LineColor:   "#2962ff",
		LineWidth:   1,
		FillColor:   "#2962ff",
		FillOpacity: 0.2,
		TextColor:   "#131722",
		FontSize:    14,
	}
}
