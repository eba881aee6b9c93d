package Compressible2D

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckpointRoundtrip(t *testing.T) {
	s := testSolver(t, 12, 10, "outflow")
	require.NoError(t, s.InitSedov(0.1))
	for step := 0; step < 3; step++ {
		dt, err := s.ComputeDT()
		require.NoError(t, err)
		require.NoError(t, s.Advance(0.01*dt))
		s.Step++
		s.Time += 0.01 * dt
	}

	fileName := filepath.Join(t.TempDir(), "state.chk")
	require.NoError(t, WriteCheckpoint(fileName, s.State()))
	st, err := ReadCheckpoint(fileName)
	require.NoError(t, err)
	assert.Equal(t, s.Step, st.Step)
	assert.Equal(t, s.Time, st.Time)

	// restore into a fresh solver and compare fields exactly
	s2 := testSolver(t, 12, 10, "outflow")
	require.NoError(t, s2.Restore(st))
	assert.Equal(t, s.Time, s2.Time)
	assert.Equal(t, s.Step, s2.Step)
	for n := 0; n < 4; n++ {
		assert.Equal(t, s.Q[n], s2.Q[n], consNames[n])
	}
}

// A restored run and the original produce identical states step for step.
func TestRestartContinuation(t *testing.T) {
	run := func(s *Solver, steps int) {
		for k := 0; k < steps; k++ {
			dt, err := s.ComputeDT()
			require.NoError(t, err)
			require.NoError(t, s.Advance(0.5*dt))
			s.Step++
			s.Time += 0.5 * dt
		}
	}
	a := testSolver(t, 12, 12, "outflow")
	require.NoError(t, a.InitSedov(0.1))
	run(a, 2)

	b := testSolver(t, 12, 12, "outflow")
	require.NoError(t, b.Restore(a.State()))
	run(a, 3)
	run(b, 3)
	for n := 0; n < 4; n++ {
		assert.Equal(t, a.Q[n], b.Q[n], consNames[n])
	}
}

func TestRestoreMismatch(t *testing.T) {
	s := testSolver(t, 12, 10, "outflow")
	st := s.State()
	other := testSolver(t, 10, 10, "outflow")
	assert.Error(t, other.Restore(st))
}

func TestReadCheckpointMissingFile(t *testing.T) {
	_, err := ReadCheckpoint(filepath.Join(t.TempDir(), "nope.chk"))
	assert.Error(t, err)
}
