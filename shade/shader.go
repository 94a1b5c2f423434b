// Package shade converts screen cells into glyphs with an orthographic
// specular-only lighting model.
package shade

import (
	"math"

	"github.com/lixenwraith/sphere/scene"
	"github.com/lixenwraith/sphere/vmath"
)

// Shader maps a screen cell to a glyph for one sphere and one point light
// The luminance map and camera are fixed at construction
type Shader struct {
	Map        LuminanceMap
	Camera     scene.Camera
	Background rune
}

// NewShader returns a shader using m, falling back to the default map when
// m is empty
func NewShader(m LuminanceMap, cam scene.Camera) *Shader {
	if len(m) == 0 {
		m = DefaultMap()
	}
	return &Shader{
		Map:        m,
		Camera:     cam,
		Background: Background,
	}
}

// Depth returns the z of the near hemisphere at screen (x, y) and whether
// the cell lies within the sphere silhouette
func Depth(x, y int, s scene.Sphere) (float64, bool) {
	dx := s.X - float64(x)
	dy := s.Y - float64(y)
	planarSq := dx*dx + dy*dy
	rSq := float64(s.Radius) * float64(s.Radius)
	if planarSq > rSq {
		return 0, false
	}
	return s.Z - math.Sqrt(rSq-planarSq), true
}

// Intensity returns the specular term V·R at screen (x, y), clamped to
// [-1, 1], and false for cells outside the silhouette
//
// Light coincident with the surface point counts as fully lit (1)
// A degenerate normal or view direction counts as unlit (0)
func (sh *Shader) Intensity(x, y int, s scene.Sphere, light vmath.Vec3F) (float64, bool) {
	z, ok := Depth(x, y, s)
	if !ok {
		return 0, false
	}
	p := vmath.V3F(float64(x), float64(y), z)

	normal, ok := vmath.V3FUnit(vmath.V3FSub(p, s.Center()))
	if !ok {
		return 0, true
	}

	incident, ok := vmath.V3FUnit(vmath.V3FSub(p, light))
	if !ok {
		return 1, true
	}

	reflected := vmath.V3FReflect(incident, normal)

	// Orthographic: the camera sits straight down z from every cell
	cam := vmath.V3F(sh.Camera.X+float64(x), sh.Camera.Y+float64(y), sh.Camera.Z)
	view, ok := vmath.V3FUnit(vmath.V3FSub(cam, p))
	if !ok {
		return 0, true
	}

	d := vmath.V3FDot(view, reflected)
	switch {
	case d > 1:
		d = 1
	case d < -1:
		d = -1
	case math.IsNaN(d):
		d = 0
	}
	return d, true
}

// Shade returns the glyph for screen cell (x, y)
func (sh *Shader) Shade(x, y int, s scene.Sphere, light vmath.Vec3F) rune {
	d, ok := sh.Intensity(x, y, s, light)
	if !ok {
		return sh.Background
	}
	if d < 0 {
		// Reflection points away from the camera
		return sh.Map.Lightest()
	}
	return sh.Map.Glyph(d)
}
