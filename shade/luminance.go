package shade

import (
	"fmt"
	"math"
	"strings"
)

// DefaultGlyphs orders printable ASCII from sparsest to densest coverage
const DefaultGlyphs = "`.-':_,^=;><+!rc*/z?sLTv)J7(|Fi{C}fI31tlu[neoZ5Yxjya]2ESwqkP6h9d4VpOGbUAKXHm8RD#$Bg0MNWQ%&@"

// Background is the glyph for cells outside the sphere silhouette
const Background = ' '

// LuminanceMap quantizes intensity in [0,1] to a glyph
// Index 0 is the lightest glyph, the last index the densest
type LuminanceMap []rune

// DefaultMap returns the 91-glyph ramp
func DefaultMap() LuminanceMap {
	return LuminanceMap(DefaultGlyphs)
}

// ParseMap builds a map from a glyph string, lightest first
func ParseMap(glyphs string) (LuminanceMap, error) {
	m := LuminanceMap(glyphs)
	if len(m) < 2 {
		return nil, fmt.Errorf("luminance map needs at least 2 glyphs, got %d", len(m))
	}
	if strings.ContainsRune(glyphs, Background) {
		return nil, fmt.Errorf("luminance map must not contain the background glyph")
	}
	return m, nil
}

// Index maps intensity to a table index in [0, len-1]
// NaN and negative values map to 0, values at or above 1 map to the last index
func (m LuminanceMap) Index(intensity float64) int {
	last := len(m) - 1
	if last <= 0 || !(intensity > 0) {
		return 0
	}
	if intensity >= 1 {
		return last
	}
	idx := int(math.Floor(intensity * float64(last)))
	if idx > last {
		return last
	}
	return idx
}

// Glyph returns the glyph for intensity
func (m LuminanceMap) Glyph(intensity float64) rune {
	if len(m) == 0 {
		return Background
	}
	return m[m.Index(intensity)]
}

// Lightest returns the glyph at index 0
func (m LuminanceMap) Lightest() rune {
	if len(m) == 0 {
		return Background
	}
	return m[0]
}

// Densest returns the glyph at the last index
func (m LuminanceMap) Densest() rune {
	if len(m) == 0 {
		return Background
	}
	return m[len(m)-1]
}

// IndexOf returns the table position of glyph r, -1 when absent
func (m LuminanceMap) IndexOf(r rune) int {
	for i, g := range m {
		if g == r {
			return i
		}
	}
	return -1
}

// String returns the map as a glyph string
func (m LuminanceMap) String() string {
	return string(m)
}
