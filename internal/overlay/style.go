package overlay

import (
	"errors"
	"fmt"
)

// Style controls how the overlay draws guides and markers.
type Style struct {
	Guide        Paint   // polyline through the points
	Accent       Paint   // marker outline
	LineWidth    float64 // guide and outline width in pixels
	MarkerRadius float64
}

// DefaultStyle is a half-transparent white guide with red-rimmed markers.
func DefaultStyle() Style {
	return Style{
		Guide:        Paint{R: 255, G: 255, B: 255, A: 0.5},
		Accent:       Paint{R: 255, A: 1},
		LineWidth:    2,
		MarkerRadius: 6,
	}
}

// ParseStyle builds a Style from configuration values.
func ParseStyle(guideHex string, guideAlpha float64, accentHex string, lineWidth, markerRadius float64) (Style, error) {
	guide, err := ParsePaint(guideHex, guideAlpha)
	if err != nil {
		return Style{}, fmt.Errorf("guide: %w", err)
	}
	accent, err := ParsePaint(accentHex, 1)
	if err != nil {
		return Style{}, fmt.Errorf("accent: %w", err)
	}
	if lineWidth <= 0 || markerRadius <= 0 {
		return Style{}, errors.New("line width and marker radius must be positive")
	}
	return Style{
		Guide:        guide,
		Accent:       accent,
		LineWidth:    lineWidth,
		MarkerRadius: markerRadius,
	}, nil
}
