package core

import "math"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkRed
)

// HueColor picks the closest palette entry for an HSL hue in degrees.
// Explosion particles use hues in the red-orange-yellow band.
// Non-finite hues map to ColorDefault.
func HueColor(hue float64) Color {
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		return ColorDefault
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	switch {
	case hue < 20:
		return ColorBrightRed
	case hue < 45:
		return ColorOrange
	case hue < 80:
		return ColorBrightYellow
	case hue < 160:
		return ColorBrightGreen
	case hue < 260:
		return ColorBrightBlue
	case hue < 330:
		return ColorMagenta
	default:
		return ColorRed
	}
}
