package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponsiveWidthAndHeight(t *testing.T) {
	assert.InDelta(t, 187.5, ResponsiveWidth(50, 375), 0.001)
	assert.InDelta(t, 375.0, ResponsiveWidth(100, 375), 0.001)
	assert.InDelta(t, 0.0, ResponsiveWidth(0, 375), 0.001)
	assert.InDelta(t, 81.2, ResponsiveHeight(10, 812), 0.001)
}

func TestResponsiveFontSize(t *testing.T) {
	// On the baseline width the size passes through unchanged
	assert.InDelta(t, 16.0, ResponsiveFontSize(16, BaseScreenWidth), 0.001)

	// Wider screens scale up
	assert.InDelta(t, 16*414.0/375.0, ResponsiveFontSize(16, 414), 0.001)

	// Tiny screens clamp to the floor
	assert.InDelta(t, MinFontSize, ResponsiveFontSize(14, 300), 0.001)
	assert.InDelta(t, MinFontSize, ResponsiveFontSize(1, 375), 0.001)
}

func TestBreakpoint(t *testing.T) {
	tests := []struct {
		width float64
		want  string
	}{
		{320, BreakpointSmall},
		{359.9, BreakpointSmall},
		{360, BreakpointMedium},
		{413.9, BreakpointMedium},
		{414, BreakpointLarge},
		{599.9, BreakpointLarge},
		{600, BreakpointTablet},
		{1024, BreakpointTablet},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Breakpoint(tt.width), "width %v", tt.width)
	}
}

func TestTokens(t *testing.T) {
	tokens := Tokens()

	assert.NotEmpty(t, tokens.Spacing)
	assert.NotEmpty(t, tokens.Colors)
	assert.NotEmpty(t, tokens.FontSizes)
	assert.Equal(t, 16.0, tokens.Spacing["md"])
	assert.GreaterOrEqual(t, tokens.FontSizes["caption"], MinFontSize)
}
