package display

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/image/colornames"
)

const (
	darkText  = "#151515"
	lightText = "#FAFAFA"
)

// Hex normalizes any CSS color to #rrggbb.
func Hex(value string) (string, error) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", value, err)
	}
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex(), nil
}

// Luminance is the perceived brightness of a CSS color, from 0 to 1.
func Luminance(value string) (float64, error) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return 0, err
	}
	return 0.299*c.R + 0.587*c.G + 0.114*c.B, nil
}

// IsDark reports whether light text reads better on the color.
func IsDark(value string) bool {
	l, err := Luminance(value)
	if err != nil {
		return false
	}
	return l < 0.55
}

// Swatch renders the value on a block of its own color, with a readable
// foreground. Values that are not colors render as plain text.
func Swatch(value string) string {
	hex, err := Hex(value)
	if err != nil {
		return value
	}

	fg := darkText
	if IsDark(hex) {
		fg = lightText
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(hex)).
		Padding(0, 1).
		Render(value)
}

// NearestName returns the closest CSS named color and its CIEDE2000
// distance. Exact matches have distance 0.
func NearestName(value string) (string, float64, error) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return "", 0, fmt.Errorf("invalid color %q: %w", value, err)
	}
	target := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()

	best := ""
	bestDistance := math.Inf(1)
	for _, name := range colornames.Names {
		named, ok := colorful.MakeColor(colornames.Map[name])
		if !ok {
			continue
		}
		if d := target.DistanceCIEDE2000(named); d < bestDistance {
			best, bestDistance = name, d
		}
	}

	return best, bestDistance, nil
}
