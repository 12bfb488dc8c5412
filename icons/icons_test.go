package icons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGlyph(t *testing.T) {
	require.Equal(t, "day-sunny", Glyph("01d"))
	require.Equal(t, "night-rain", Glyph("10n"))
	require.Equal(t, "fog", Glyph("50d"))
}

func TestGlyphUnknownCodeFallsBack(t *testing.T) {
	require.Equal(t, "day-sunny", Glyph("99x"))
	require.Equal(t, "day-sunny", Glyph(""))
}
