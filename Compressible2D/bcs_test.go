package Compressible2D

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBCTypeNames(t *testing.T) {
	for _, tc := range []struct {
		label string
		want  BCType
	}{
		{"outflow", BC_Outflow},
		{"Reflect", BC_Reflect},
		{"PERIODIC", BC_Periodic},
	} {
		bt, err := NewBCType(tc.label)
		require.NoError(t, err)
		assert.Equal(t, tc.want, bt)
	}
	_, err := NewBCType("open")
	assert.Error(t, err)

	g, err := NewGrid2D(4, 4, 2, 1, 1)
	require.NoError(t, err)
	_, err = NewBoundaryConditions(g, BC_Periodic, BC_Outflow, BC_Outflow, BC_Outflow)
	assert.Error(t, err)
	_, err = NewBoundaryConditions(g, BC_Outflow, BC_Outflow, BC_Outflow, BC_Periodic)
	assert.Error(t, err)
}

// fillMarked stamps each interior cell of variable n with a value unique to
// its (i,j) so ghost fills can be traced back to their source cell.
func fillMarked(g *Grid2D, q ConservedFields) {
	for n := 0; n < 4; n++ {
		for j := g.Jlo; j <= g.Jhi; j++ {
			for i := g.Ilo; i <= g.Ihi; i++ {
				q[n][g.Ind(i, j)] = float64(1000*n + 10*i + j)
			}
		}
	}
}

func TestGhostFillOutflow(t *testing.T) {
	g, err := NewGrid2D(4, 3, 2, 1, 1)
	require.NoError(t, err)
	bc, err := NewBoundaryConditions(g, BC_Outflow, BC_Outflow, BC_Outflow, BC_Outflow)
	require.NoError(t, err)
	q := NewConservedFields(g)
	fillMarked(g, q)
	bc.Fill(q)
	for n := 0; n < 4; n++ {
		for j := g.Jlo; j <= g.Jhi; j++ {
			for i := 0; i < g.Ilo; i++ {
				assert.Equal(t, q[n][g.Ind(g.Ilo, j)], q[n][g.Ind(i, j)])
				assert.Equal(t, q[n][g.Ind(g.Ihi, j)], q[n][g.Ind(g.Ihi+1+i, j)])
			}
		}
		for i := g.Ilo; i <= g.Ihi; i++ {
			for j := 0; j < g.Jlo; j++ {
				assert.Equal(t, q[n][g.Ind(i, g.Jlo)], q[n][g.Ind(i, j)])
				assert.Equal(t, q[n][g.Ind(i, g.Jhi)], q[n][g.Ind(i, g.Jhi+1+j)])
			}
		}
	}
}

func TestGhostFillReflect(t *testing.T) {
	g, err := NewGrid2D(4, 3, 2, 1, 1)
	require.NoError(t, err)
	bc, err := NewBoundaryConditions(g, BC_Reflect, BC_Reflect, BC_Reflect, BC_Reflect)
	require.NoError(t, err)
	q := NewConservedFields(g)
	fillMarked(g, q)
	bc.Fill(q)
	for n := 0; n < 4; n++ {
		for j := g.Jlo; j <= g.Jhi; j++ {
			for i := 0; i < g.Ilo; i++ {
				want := q[n][g.Ind(2*g.Ilo-1-i, j)]
				if n == Xmom {
					want = -want
				}
				assert.Equal(t, want, q[n][g.Ind(i, j)])
			}
		}
		for i := g.Ilo; i <= g.Ihi; i++ {
			for j := g.Jhi + 1; j < g.Qy; j++ {
				want := q[n][g.Ind(i, 2*g.Jhi+1-j)]
				if n == Ymom {
					want = -want
				}
				assert.Equal(t, want, q[n][g.Ind(i, j)])
			}
		}
	}
}

func TestGhostFillPeriodic(t *testing.T) {
	g, err := NewGrid2D(4, 3, 2, 1, 1)
	require.NoError(t, err)
	bc, err := NewBoundaryConditions(g, BC_Periodic, BC_Periodic, BC_Periodic, BC_Periodic)
	require.NoError(t, err)
	q := NewConservedFields(g)
	fillMarked(g, q)
	bc.Fill(q)
	for n := 0; n < 4; n++ {
		for j := g.Jlo; j <= g.Jhi; j++ {
			for i := 0; i < g.Ilo; i++ {
				assert.Equal(t, q[n][g.Ind(i+g.Nx, j)], q[n][g.Ind(i, j)])
				assert.Equal(t, q[n][g.Ind(g.Ihi+1+i-g.Nx, j)], q[n][g.Ind(g.Ihi+1+i, j)])
			}
		}
		// the corner blocks wrap in both directions
		assert.Equal(t, q[n][g.Ind(g.Ihi, g.Jhi)], q[n][g.Ind(g.Ilo-1, g.Jlo-1)])
	}
}
