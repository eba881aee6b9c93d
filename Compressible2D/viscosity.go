package Compressible2D

import "math"

/*
	Artificial viscosity in the von Neumann-Richtmyer spirit: a small
	diffusive flux proportional to the negative velocity divergence at each
	interface, active only in compression. It damps the odd-even decoupling
	that plane shocks aligned with the mesh otherwise develop.
*/

// addViscousFluxX augments the x-face fluxes on rows [jlo,jhi].
func (s *Solver) addViscousFluxX(jlo, jhi int) {
	var (
		g      = s.Grid
		dx, dy = g.Dx, g.Dy
		u, v   = s.u, s.v
		Q      = s.Q
	)
	if s.Cvisc == 0 {
		return
	}
	for j := jlo; j <= jhi; j++ {
		for i := g.Ilo; i <= g.Ihi+1; i++ {
			ind := g.Ind(i, j)
			im := g.Ind(i-1, j)
			divU := (u[ind]-u[im])/dx +
				0.25*(v[g.Ind(i, j+1)]+v[g.Ind(i-1, j+1)]-
					v[g.Ind(i, j-1)]-v[g.Ind(i-1, j-1)])/dy
			avisc := s.Cvisc * math.Max(-divU*dx, 0.)
			for n := 0; n < 4; n++ {
				s.Fx[n][ind] += avisc * (Q[n][im] - Q[n][ind])
			}
		}
	}
}

// addViscousFluxY augments the y-face fluxes on rows [jlo,jhi].
func (s *Solver) addViscousFluxY(jlo, jhi int) {
	var (
		g      = s.Grid
		dx, dy = g.Dx, g.Dy
		u, v   = s.u, s.v
		Q      = s.Q
	)
	if s.Cvisc == 0 {
		return
	}
	for j := jlo; j <= jhi; j++ {
		for i := g.Ilo; i <= g.Ihi; i++ {
			ind := g.Ind(i, j)
			jm := g.Ind(i, j-1)
			divU := 0.25*(u[g.Ind(i+1, j)]+u[g.Ind(i+1, j-1)]-
				u[g.Ind(i-1, j)]-u[g.Ind(i-1, j-1)])/dx +
				(v[ind]-v[jm])/dy
			avisc := s.Cvisc * math.Max(-divU*dy, 0.)
			for n := 0; n < 4; n++ {
				s.Fy[n][ind] += avisc * (Q[n][jm] - Q[n][ind])
			}
		}
	}
}
