package Compressible2D

import (
	"fmt"
	"strings"
)

type BCType uint8

const (
	BC_Outflow BCType = iota
	BC_Reflect
	BC_Periodic
)

var (
	BCNames = map[string]BCType{
		"outflow":  BC_Outflow,
		"reflect":  BC_Reflect,
		"periodic": BC_Periodic,
	}
	BCPrintNames = []string{"Outflow", "Reflect", "Periodic"}
)

func (bt BCType) Print() (txt string) {
	txt = BCPrintNames[bt]
	return
}

func NewBCType(label string) (bt BCType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(label)
	if bt, ok = BCNames[label]; !ok {
		err = configError("unable to use boundary condition named %s", label)
	}
	return
}

/*
	BoundaryConditions fills every ghost ring on the four edges before each
	flux build. The fill routine per edge is resolved once at construction
	from the BCType, not re-dispatched per cell.

	Outflow copies the nearest interior value outward (zero gradient).
	Reflect mirrors the interior and negates the momentum normal to the edge.
	Periodic wraps indices modulo the interior extent.

	The x edges are filled first over the full ghosted y range, then the y
	edges over the full ghosted x range, so the corner blocks end up
	consistent with both passes.
*/
type BoundaryConditions struct {
	Xl, Xr, Yl, Yr BCType
	g              *Grid2D
}

func NewBoundaryConditions(g *Grid2D, xl, xr, yl, yr BCType) (*BoundaryConditions, error) {
	if (xl == BC_Periodic) != (xr == BC_Periodic) {
		return nil, configError("periodic x boundaries must be paired")
	}
	if (yl == BC_Periodic) != (yr == BC_Periodic) {
		return nil, configError("periodic y boundaries must be paired")
	}
	return &BoundaryConditions{Xl: xl, Xr: xr, Yl: yl, Yr: yr, g: g}, nil
}

func (bc *BoundaryConditions) Print() string {
	return fmt.Sprintf("xl:%s xr:%s yl:%s yr:%s",
		bc.Xl.Print(), bc.Xr.Print(), bc.Yl.Print(), bc.Yr.Print())
}

// Fill populates all Ng ghost rings of every conserved variable.
func (bc *BoundaryConditions) Fill(q ConservedFields) {
	for n := 0; n < 4; n++ {
		bc.fillXlo(n, q[n])
		bc.fillXhi(n, q[n])
	}
	for n := 0; n < 4; n++ {
		bc.fillYlo(n, q[n])
		bc.fillYhi(n, q[n])
	}
}

func (bc *BoundaryConditions) fillXlo(n int, f []float64) {
	var (
		g = bc.g
	)
	for j := 0; j < g.Qy; j++ {
		for i := 0; i < g.Ilo; i++ {
			switch bc.Xl {
			case BC_Outflow:
				f[g.Ind(i, j)] = f[g.Ind(g.Ilo, j)]
			case BC_Reflect:
				// mirror about the ilo-1/2 face
				v := f[g.Ind(2*g.Ilo-1-i, j)]
				if n == Xmom {
					v = -v
				}
				f[g.Ind(i, j)] = v
			case BC_Periodic:
				f[g.Ind(i, j)] = f[g.Ind(i+g.Nx, j)]
			}
		}
	}
}

func (bc *BoundaryConditions) fillXhi(n int, f []float64) {
	var (
		g = bc.g
	)
	for j := 0; j < g.Qy; j++ {
		for i := g.Ihi + 1; i < g.Qx; i++ {
			switch bc.Xr {
			case BC_Outflow:
				f[g.Ind(i, j)] = f[g.Ind(g.Ihi, j)]
			case BC_Reflect:
				v := f[g.Ind(2*g.Ihi+1-i, j)]
				if n == Xmom {
					v = -v
				}
				f[g.Ind(i, j)] = v
			case BC_Periodic:
				f[g.Ind(i, j)] = f[g.Ind(i-g.Nx, j)]
			}
		}
	}
}

func (bc *BoundaryConditions) fillYlo(n int, f []float64) {
	var (
		g = bc.g
	)
	for j := 0; j < g.Jlo; j++ {
		for i := 0; i < g.Qx; i++ {
			switch bc.Yl {
			case BC_Outflow:
				f[g.Ind(i, j)] = f[g.Ind(i, g.Jlo)]
			case BC_Reflect:
				v := f[g.Ind(i, 2*g.Jlo-1-j)]
				if n == Ymom {
					v = -v
				}
				f[g.Ind(i, j)] = v
			case BC_Periodic:
				f[g.Ind(i, j)] = f[g.Ind(i, j+g.Ny)]
			}
		}
	}
}

func (bc *BoundaryConditions) fillYhi(n int, f []float64) {
	var (
		g = bc.g
	)
	for j := g.Jhi + 1; j < g.Qy; j++ {
		for i := 0; i < g.Qx; i++ {
			switch bc.Yr {
			case BC_Outflow:
				f[g.Ind(i, j)] = f[g.Ind(i, g.Jhi)]
			case BC_Reflect:
				v := f[g.Ind(i, 2*g.Jhi+1-j)]
				if n == Ymom {
					v = -v
				}
				f[g.Ind(i, j)] = v
			case BC_Periodic:
				f[g.Ind(i, j)] = f[g.Ind(i, j-g.Ny)]
			}
		}
	}
}
