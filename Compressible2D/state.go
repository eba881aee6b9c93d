package Compressible2D

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Conserved variable indices, Q = [rho, rhoU, rhoV, E]
const (
	Dens = iota
	Xmom
	Ymom
	Ener
)

// Primitive variable indices, V = [rho, u, v, p]
const (
	iRho = iota
	iU
	iV
	iPres
)

var consNames = []string{"density", "x-momentum", "y-momentum", "energy"}

// ConservedFields stores the four conserved variables over the full ghosted
// buffer, one flat slice per variable.
type ConservedFields [4][]float64

func NewConservedFields(g *Grid2D) (q ConservedFields) {
	for n := 0; n < 4; n++ {
		q[n] = make([]float64, g.NumCells())
	}
	return
}

func (q ConservedFields) Copy() (qc ConservedFields) {
	for n := 0; n < 4; n++ {
		qc[n] = make([]float64, len(q[n]))
		copy(qc[n], q[n])
	}
	return
}

// At gathers the conserved vector of one cell.
func (q ConservedFields) At(ind int) [4]float64 {
	return [4]float64{q[Dens][ind], q[Xmom][ind], q[Ymom][ind], q[Ener][ind]}
}

// TotalInterior sums variable n over the interior cells only - the discrete
// conserved integral per unit cell volume used by the conservation checks.
func (q ConservedFields) TotalInterior(g *Grid2D, n int) (sum float64) {
	row := make([]float64, g.Nx)
	for j := g.Jlo; j <= g.Jhi; j++ {
		base := g.Ind(g.Ilo, j)
		copy(row, q[n][base:base+g.Nx])
		sum += floats.Sum(row)
	}
	return
}

// MaxInterior returns the maximum of variable n over the interior cells.
func (q ConservedFields) MaxInterior(g *Grid2D, n int) (max float64) {
	max = math.Inf(-1)
	for j := g.Jlo; j <= g.Jhi; j++ {
		base := g.Ind(g.Ilo, j)
		if m := floats.Max(q[n][base : base+g.Nx]); m > max {
			max = m
		}
	}
	return
}

// CheckPhysical verifies the positivity invariants over the interior:
// rho > 0 and internal energy >= 0, no NaNs. The first violation is
// returned as a fatal PhysicalStateError naming the cell.
func (q ConservedFields) CheckPhysical(g *Grid2D, step int, time float64) error {
	for j := g.Jlo; j <= g.Jhi; j++ {
		for i := g.Ilo; i <= g.Ihi; i++ {
			ind := g.Ind(i, j)
			rho := q[Dens][ind]
			if math.IsNaN(rho) || rho <= 0 {
				return &PhysicalStateError{I: i, J: j, Step: step, Time: time,
					Field: "density", Value: rho}
			}
			rhoE := q[Ener][ind]
			if math.IsNaN(rhoE) {
				return &PhysicalStateError{I: i, J: j, Step: step, Time: time,
					Field: "energy", Value: rhoE}
			}
			rhoe := rhoE - 0.5*(q[Xmom][ind]*q[Xmom][ind]+q[Ymom][ind]*q[Ymom][ind])/rho
			if math.IsNaN(rhoe) || rhoe < 0 {
				return &PhysicalStateError{I: i, J: j, Step: step, Time: time,
					Field: "internal energy", Value: rhoe}
			}
		}
	}
	return nil
}
