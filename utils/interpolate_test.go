// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolateEndpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float32
		x              float32
		want           float32
	}{
		{"x=0 returns y1", 0.1, 0.5, 0.9, 1.3, 0, 0.5},
		{"x=1 returns y2", 0.1, 0.5, 0.9, 1.3, 1, 0.9},
		{"constant signal", 0.7, 0.7, 0.7, 0.7, 0.37, 0.7},
		{"linear ramp midpoint", 0, 1, 2, 3, 0.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Fatalf("CubicInterpolate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubicInterpolateStaysSmooth(t *testing.T) {
	t.Parallel()

	// Interpolating a sine between its samples should stay close to
	// the true curve.
	sample := func(i int) float32 {
		return float32(math.Sin(float64(i) * 0.2))
	}
	for i := 1; i < 20; i++ {
		for _, x := range []float32{0.25, 0.5, 0.75} {
			got := CubicInterpolate(sample(i-1), sample(i), sample(i+1), sample(i+2), x)
			want := math.Sin((float64(i) + float64(x)) * 0.2)
			if math.Abs(float64(got)-want) > 1e-3 {
				t.Fatalf("interpolated sine at %d+%v = %v, want %v", i, x, got, want)
			}
		}
	}
}
