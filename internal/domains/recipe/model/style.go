package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const sepiaStrength = 0.5

// Style is the preview rendering derived from a recipe. Filter is the
// assembled CSS filter chain; the numeric fields expose the individual terms.
type Style struct {
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
	Saturate   float64 `json:"saturate"`
	Blur       float64 `json:"blur"`
	Sepia      float64 `json:"sepia"`
	Filter     string  `json:"filter"`
}

// DeriveStyle maps recipe settings onto preview filter terms. It is a pure
// function: the same settings always derive the same style. Exposure
// compensation only contributes to the base brightness term.
func DeriveStyle(settings Settings) Style {
	style := Style{
		Brightness: 1 + settings.EVCompensation/5,
		Contrast:   1 + settings.Color/10,
		Saturate:   1 + settings.Color/5,
	}

	if settings.Sharpness < 0 {
		style.Blur = math.Abs(settings.Sharpness)
	}

	if settings.Simulation == "Sepia" {
		style.Sepia = sepiaStrength
	}

	parts := []string{
		fmt.Sprintf("brightness(%s)", formatTerm(style.Brightness)),
		fmt.Sprintf("contrast(%s)", formatTerm(style.Contrast)),
		fmt.Sprintf("saturate(%s)", formatTerm(style.Saturate)),
	}

	if style.Blur > 0 {
		parts = append(parts, fmt.Sprintf("blur(%spx)", formatTerm(style.Blur)))
	}

	if style.Sepia > 0 {
		parts = append(parts, fmt.Sprintf("sepia(%s)", formatTerm(style.Sepia)))
	}

	if settings.Highlights < 0 {
		parts = append(parts, fmt.Sprintf("brightness(%s)", formatTerm(1+settings.Highlights/10)))
	}

	if settings.Shadows != 0 {
		parts = append(parts, fmt.Sprintf("contrast(%s)", formatTerm(1+settings.Shadows/10)))
	}

	style.Filter = strings.Join(parts, " ")

	return style
}

func formatTerm(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
