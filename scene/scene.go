// Package scene holds the static geometry of the view: one sphere, one
// orbiting point light and a fixed orthographic camera.
package scene

import (
	"fmt"
	"math"

	"github.com/lixenwraith/sphere/vmath"
)

// Axis selects the principal axis the light orbits around
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the flag form of the axis
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// ParseAxis accepts exactly "x", "y" or "z"
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("unknown axis %q", s)
}

// Sphere is centered in scene units with an integer radius in cells
type Sphere struct {
	X, Y, Z float64
	Radius  int
}

// Center returns the sphere center as a vector
func (s Sphere) Center() vmath.Vec3F {
	return vmath.Vec3F{X: s.X, Y: s.Y, Z: s.Z}
}

// NewSphere places a sphere of radius r in the middle of a width x height
// viewport, one unit behind the camera plane at z = r+1
func NewSphere(width, height, r int) Sphere {
	return Sphere{
		X:      float64(width / 2),
		Y:      float64(height / 2),
		Z:      float64(r + 1),
		Radius: r,
	}
}

// Camera is the fixed orthographic view origin
type Camera struct {
	X, Y, Z float64
}

// Orbit describes a point light circling the sphere around one axis
type Orbit struct {
	Axis    Axis
	Initial vmath.Vec3F // Light position at phase 0 before the circular offset
	Radius  float64     // Circle radius in scene units
	Period  float64     // Seconds per revolution
}

// NewOrbit derives the light orbit from the sphere: the initial position is
// the sphere center shifted by offset along axis, the circle radius is twice
// the sphere radius
func NewOrbit(s Sphere, axis Axis, offset int, period float64) Orbit {
	initial := s.Center()
	switch axis {
	case AxisX:
		initial.X += float64(offset)
	case AxisY:
		initial.Y += float64(offset)
	case AxisZ:
		initial.Z += float64(offset)
	}
	return Orbit{
		Axis:    axis,
		Initial: initial,
		Radius:  float64(2 * s.Radius),
		Period:  period,
	}
}

// Position returns the light position at phase theta (radians)
// The two axes orthogonal to the orbit axis carry cos and sin respectively
func (o Orbit) Position(theta float64) vmath.Vec3F {
	c := o.Radius * math.Cos(theta)
	s := o.Radius * math.Sin(theta)
	p := o.Initial
	switch o.Axis {
	case AxisX:
		p.Y += c
		p.Z += s
	case AxisY:
		p.X += c
		p.Z += s
	case AxisZ:
		p.X += c
		p.Y += s
	}
	return p
}
