package Compressible2D

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiterTypes(t *testing.T) {
	for id, want := range []LimiterType{LimiterNone, LimiterMinMod, LimiterVanLeer} {
		lt, err := NewLimiterType(id)
		require.NoError(t, err)
		assert.Equal(t, want, lt)
	}
	_, err := NewLimiterType(3)
	assert.Error(t, err)
	_, err = NewLimiterType(-1)
	assert.Error(t, err)
}

func TestLimiterSlopes(t *testing.T) {
	// central difference is unlimited
	assert.Equal(t, 1.0, LimiterNone.Slope(0, 1, 2))
	assert.Equal(t, 2.5, LimiterNone.Slope(0, 4, 5))

	// minmod picks the smaller same-signed difference
	assert.Equal(t, 1.0, LimiterMinMod.Slope(0, 1, 3))
	assert.Equal(t, -1.0, LimiterMinMod.Slope(3, 1, 0))

	// both limited slopes vanish at extrema
	assert.Equal(t, 0.0, LimiterMinMod.Slope(0, 1, 0))
	assert.Equal(t, 0.0, LimiterMinMod.Slope(1, 0, 1))
	assert.Equal(t, 0.0, LimiterVanLeer.Slope(0, 1, 0))
	assert.Equal(t, 0.0, LimiterVanLeer.Slope(1, 0, 1))

	// smooth monotone data reduces to the central slope
	assert.InEpsilon(t, 1.0, LimiterVanLeer.Slope(1, 2, 3), 1.e-14)
}

// Reconstructed edge values never introduce a new extremum relative to the
// stencil for the limited slopes.
func TestLimiterMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, lt := range []LimiterType{LimiterMinMod, LimiterVanLeer} {
		for trial := 0; trial < 1000; trial++ {
			qm := rng.Float64()*4 - 2
			q0 := rng.Float64()*4 - 2
			qp := rng.Float64()*4 - 2
			slope := lt.Slope(qm, q0, qp)
			lo := math.Min(qm, math.Min(q0, qp))
			hi := math.Max(qm, math.Max(q0, qp))
			left := q0 - 0.5*slope
			right := q0 + 0.5*slope
			assert.True(t, left >= lo-1.e-13 && left <= hi+1.e-13,
				"%s: left edge %g outside [%g,%g]", lt.Print(), left, lo, hi)
			assert.True(t, right >= lo-1.e-13 && right <= hi+1.e-13,
				"%s: right edge %g outside [%g,%g]", lt.Print(), right, lo, hi)
		}
	}
}
