package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/sphere/vmath"
)

func TestParseAxis(t *testing.T) {
	tests := []struct {
		in      string
		want    Axis
		wantErr bool
	}{
		{"x", AxisX, false},
		{"y", AxisY, false},
		{"z", AxisZ, false},
		{"X", 0, true},
		{"", 0, true},
		{"xy", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAxis(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAxis(%q): expected error=%v, got %v", tt.in, tt.wantErr, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAxis(%q): expected %v, got %v", tt.in, tt.want, got)
		}
		if !tt.wantErr && got.String() != tt.in {
			t.Errorf("Expected String() round trip %q, got %q", tt.in, got.String())
		}
	}
}

func TestNewSphere(t *testing.T) {
	s := NewSphere(21, 20, 9)

	if s.X != 10 || s.Y != 10 || s.Z != 10 {
		t.Errorf("Expected center (10,10,10), got (%v,%v,%v)", s.X, s.Y, s.Z)
	}
	if s.Radius != 9 {
		t.Errorf("Expected radius 9, got %d", s.Radius)
	}
}

func TestNewOrbitInitialPosition(t *testing.T) {
	s := NewSphere(20, 20, 3)
	center := s.Center()

	tests := []struct {
		axis Axis
		want vmath.Vec3F
	}{
		{AxisX, vmath.V3F(center.X-5, center.Y, center.Z)},
		{AxisY, vmath.V3F(center.X, center.Y-5, center.Z)},
		{AxisZ, vmath.V3F(center.X, center.Y, center.Z-5)},
	}

	for _, tt := range tests {
		o := NewOrbit(s, tt.axis, -5, 2.0)
		if o.Initial != tt.want {
			t.Errorf("axis %v: expected initial %v, got %v", tt.axis, tt.want, o.Initial)
		}
		if o.Radius != 6 {
			t.Errorf("axis %v: expected orbit radius 6, got %v", tt.axis, o.Radius)
		}
	}
}

func TestOrbitPositionKeepsAxisComponent(t *testing.T) {
	s := NewSphere(30, 30, 4)

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		o := NewOrbit(s, axis, 7, 1.5)
		for i := 0; i < 16; i++ {
			theta := float64(i) * math.Pi / 8
			p := o.Position(theta)

			var fixed, init float64
			var u, v float64
			switch axis {
			case AxisX:
				fixed, init = p.X, o.Initial.X
				u, v = p.Y-o.Initial.Y, p.Z-o.Initial.Z
			case AxisY:
				fixed, init = p.Y, o.Initial.Y
				u, v = p.X-o.Initial.X, p.Z-o.Initial.Z
			case AxisZ:
				fixed, init = p.Z, o.Initial.Z
				u, v = p.X-o.Initial.X, p.Y-o.Initial.Y
			}

			if fixed != init {
				t.Errorf("axis %v theta %v: orbit axis component moved from %v to %v", axis, theta, init, fixed)
			}
			if r := math.Hypot(u, v); math.Abs(r-o.Radius) > 1e-9 {
				t.Errorf("axis %v theta %v: expected distance %v from axis, got %v", axis, theta, o.Radius, r)
			}
		}
	}
}

func TestOrbitPositionPhaseZero(t *testing.T) {
	s := NewSphere(9, 9, 3)
	o := NewOrbit(s, AxisY, 10, 2.0)

	got := o.Position(0)
	want := vmath.V3F(o.Initial.X+6, o.Initial.Y, o.Initial.Z)
	if !vmath.V3FNear(got, want, 1e-12) {
		t.Errorf("Expected %v at phase 0, got %v", want, got)
	}
}
