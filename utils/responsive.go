// utils/responsive.go
package utils

// Responsive sizing helpers for the Karetou mobile client. The app
// fetches the design tokens at startup; the arithmetic mirrors the
// client-side helpers so both ends agree on the scale.

// Design reference dimensions (iPhone X baseline)
const (
	BaseScreenWidth  = 375.0
	BaseScreenHeight = 812.0

	// MinFontSize is the floor for scaled font sizes
	MinFontSize = 12.0
)

// Breakpoint names
const (
	BreakpointSmall  = "small"
	BreakpointMedium = "medium"
	BreakpointLarge  = "large"
	BreakpointTablet = "tablet"
)

// ResponsiveWidth converts a percentage of the screen width to pixels.
func ResponsiveWidth(percentage, screenWidth float64) float64 {
	return screenWidth * percentage / 100
}

// ResponsiveHeight converts a percentage of the screen height to pixels.
func ResponsiveHeight(percentage, screenHeight float64) float64 {
	return screenHeight * percentage / 100
}

// ResponsiveFontSize scales a base font size linearly with the screen
// width, clamped to MinFontSize so text stays legible on tiny screens.
func ResponsiveFontSize(size, screenWidth float64) float64 {
	scaled := size * screenWidth / BaseScreenWidth
	if scaled < MinFontSize {
		return MinFontSize
	}
	return scaled
}

// Breakpoint classifies a screen width.
func Breakpoint(screenWidth float64) string {
	switch {
	case screenWidth < 360:
		return BreakpointSmall
	case screenWidth < 414:
		return BreakpointMedium
	case screenWidth < 600:
		return BreakpointLarge
	default:
		return BreakpointTablet
	}
}

// DesignTokens is the fixed design-token table shared with the client.
type DesignTokens struct {
	Spacing   map[string]float64 `json:"spacing"`
	Colors    map[string]string  `json:"colors"`
	FontSizes map[string]float64 `json:"fontSizes"`
}

// Tokens returns the design-token table.
func Tokens() DesignTokens {
	return DesignTokens{
		Spacing: map[string]float64{
			"xs": 4,
			"sm": 8,
			"md": 16,
			"lg": 24,
			"xl": 32,
		},
		Colors: map[string]string{
			"primary":    "#37474F",
			"secondary":  "#FFB74D",
			"background": "#FFFFFF",
			"surface":    "#F5F5F5",
			"error":      "#D32F2F",
			"success":    "#388E3C",
			"textDark":   "#212121",
			"textLight":  "#FAFAFA",
		},
		FontSizes: map[string]float64{
			"caption":  12,
			"body":     14,
			"subtitle": 16,
			"title":    20,
			"headline": 24,
		},
	}
}
