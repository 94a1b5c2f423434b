package shade

import (
	"math"
	"testing"
)

func TestDefaultMap(t *testing.T) {
	m := DefaultMap()

	if len(m) != 91 {
		t.Fatalf("Expected 91 glyphs, got %d", len(m))
	}
	if m.Lightest() != '`' {
		t.Errorf("Expected lightest glyph '`', got %q", m.Lightest())
	}
	if m.Densest() != '@' {
		t.Errorf("Expected densest glyph '@', got %q", m.Densest())
	}
	if m.IndexOf(Background) != -1 {
		t.Error("Default map must not contain the background glyph")
	}
}

func TestLuminanceIndexBounds(t *testing.T) {
	m := DefaultMap()
	last := len(m) - 1

	tests := []struct {
		name      string
		intensity float64
		want      int
	}{
		{"zero", 0, 0},
		{"negative", -0.25, 0},
		{"nan", math.NaN(), 0},
		{"half", 0.5, 45},
		{"just below one", math.Nextafter(1, 0), last - 1},
		{"exactly one", 1, last},
		{"above one", 1 + 1e-9, last},
		{"infinity", math.Inf(1), last},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Index(tt.intensity)
			if got != tt.want {
				t.Errorf("Expected index %d, got %d", tt.want, got)
			}
			if got < 0 || got > last {
				t.Errorf("Index %d out of range [0,%d]", got, last)
			}
		})
	}
}

func TestParseMap(t *testing.T) {
	m, err := ParseMap(".:-=+*#%@")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(m) != 9 {
		t.Errorf("Expected 9 glyphs, got %d", len(m))
	}
	if m.Glyph(1) != '@' {
		t.Errorf("Expected '@' at full intensity, got %q", m.Glyph(1))
	}

	if _, err := ParseMap("@"); err == nil {
		t.Error("Expected error for single glyph map")
	}
	if _, err := ParseMap(". @"); err == nil {
		t.Error("Expected error for map containing a space")
	}
}

func TestEmptyMapFallsBackToBackground(t *testing.T) {
	var m LuminanceMap
	if m.Glyph(0.5) != Background {
		t.Errorf("Expected background from empty map, got %q", m.Glyph(0.5))
	}
	if m.Index(0.9) != 0 {
		t.Errorf("Expected index 0 from empty map, got %d", m.Index(0.9))
	}
}
