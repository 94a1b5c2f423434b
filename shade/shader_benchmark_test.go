package shade

import (
	"testing"

	"github.com/lixenwraith/sphere/scene"
)

// BenchmarkShadeFrame benchmarks shading every cell of an 80x24 viewport
func BenchmarkShadeFrame(b *testing.B) {
	const width, height = 80, 24
	s := scene.NewSphere(width, height, 11)
	orbit := scene.NewOrbit(s, scene.AxisY, 20, 2.0)
	sh := NewShader(DefaultMap(), scene.Camera{})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		light := orbit.Position(float64(i) * 0.05)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				sh.Shade(x, y, s, light)
			}
		}
	}
}

// BenchmarkIntensity benchmarks the lit path for a single silhouette pixel
func BenchmarkIntensity(b *testing.B) {
	s := scene.NewSphere(20, 20, 9)
	light := scene.NewOrbit(s, scene.AxisZ, -20, 2.0).Position(0)
	sh := NewShader(DefaultMap(), scene.Camera{})

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		sh.Intensity(12, 13, s, light)
	}
}
