package Compressible2D

import "math"

// ambient medium for the point explosion
const (
	sedovRhoAmbient  = 1.
	sedovPresAmbient = 1.e-5
	sedovEnergy      = 1.
	sedovNsub        = 4 // subcell sampling of the energy deposit
)

// InitSedov deposits the explosion energy inside a disc of radius rInit
// centered on the domain, over a cold uniform ambient medium. Each cell is
// sampled on an nsub x nsub subgrid so the deposit edge is not aliased to
// the mesh.
func (s *Solver) InitSedov(rInit float64) error {
	var (
		g     = s.Grid
		gamma = s.EOS.Gamma
		xctr  = 0.5 * g.Xmax
		yctr  = 0.5 * g.Ymax
	)
	if rInit <= 0 {
		return configError("sedov r_init must be positive, have %g", rInit)
	}
	pExp := (gamma - 1.) * sedovEnergy / (math.Pi * rInit * rInit)
	s.InitUniform(sedovRhoAmbient, 0, 0, sedovPresAmbient)
	for j := g.Jlo; j <= g.Jhi; j++ {
		for i := g.Ilo; i <= g.Ihi; i++ {
			var inside int
			for jj := 0; jj < sedovNsub; jj++ {
				ysub := g.Y(j) - 0.5*g.Dy + (float64(jj)+0.5)*g.Dy/sedovNsub
				for ii := 0; ii < sedovNsub; ii++ {
					xsub := g.X(i) - 0.5*g.Dx + (float64(ii)+0.5)*g.Dx/sedovNsub
					if math.Hypot(xsub-xctr, ysub-yctr) <= rInit {
						inside++
					}
				}
			}
			if inside == 0 {
				continue
			}
			frac := float64(inside) / (sedovNsub * sedovNsub)
			p := frac*pExp + (1.-frac)*sedovPresAmbient
			s.Q[Ener][g.Ind(i, j)] = s.EOS.RhoE(p)
		}
	}
	s.BCs.Fill(s.Q)
	return nil
}

// InitUniform fills every cell, ghosts included, with one constant state.
func (s *Solver) InitUniform(rho, u, v, p float64) {
	var (
		g = s.Grid
		E = s.EOS.RhoE(p) + 0.5*rho*(u*u+v*v)
	)
	for ind := 0; ind < g.NumCells(); ind++ {
		s.Q[Dens][ind] = rho
		s.Q[Xmom][ind] = rho * u
		s.Q[Ymom][ind] = rho * v
		s.Q[Ener][ind] = E
	}
}
