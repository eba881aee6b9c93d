package Compressible2D

import "math"

/*
	One unsplit second order Godunov flux evaluation. The phases below run
	in order, each parallelized over row bands with a full barrier between
	phases:
	  1) primitive recovery in every cell, ghosts included
	  2) flattening coefficients and limited, flattened slopes
	  3) characteristic tracing to half-time interface states
	  4) a transverse Riemann pass on the wide band
	  5) transverse flux corrections of the interface states
	  6) the final Riemann pass, plus artificial viscosity
	The conservative update then differences Fx and Fy over the interior.
*/
func (s *Solver) computeFluxes(dt float64) (err error) {
	var (
		g          = s.Grid
		jbLo, jbHi = g.Jlo - 2, g.Jhi + 2
	)
	if err = s.parallelRows(0, g.Qy-1, func(jlo, jhi int) error {
		return s.recoverPrimitives(jlo, jhi)
	}); err != nil {
		return
	}
	if s.UseFlattening {
		if err = s.parallelRows(jbLo, jbHi, func(jlo, jhi int) error {
			s.flattenDir(0, s.xiX, jlo, jhi)
			s.flattenDir(1, s.xiY, jlo, jhi)
			return nil
		}); err != nil {
			return
		}
		if err = s.parallelRows(jbLo, jbHi, func(jlo, jhi int) error {
			s.flattenMultid(jlo, jhi)
			s.computeSlopes(jlo, jhi)
			return nil
		}); err != nil {
			return
		}
	} else {
		if err = s.parallelRows(jbLo, jbHi, func(jlo, jhi int) error {
			s.computeSlopes(jlo, jhi)
			return nil
		}); err != nil {
			return
		}
	}
	if err = s.parallelRows(jbLo, jbHi, func(jlo, jhi int) error {
		s.tracedStatesDir(0, dt, jlo, jhi)
		s.tracedStatesDir(1, dt, jlo, jhi)
		return nil
	}); err != nil {
		return
	}
	if err = s.parallelRows(jbLo, jbHi, func(jlo, jhi int) error {
		s.convertStatesDir(0, jlo, jhi)
		s.convertStatesDir(1, jlo+1, jhi+1)
		return nil
	}); err != nil {
		return
	}
	if err = s.parallelRows(jbLo, jbHi, func(jlo, jhi int) error {
		if ferr := s.riemannRowsX(jlo, jhi, g.Ilo-1, g.Ihi+2); ferr != nil {
			return ferr
		}
		return s.riemannRowsY(imax(jlo, g.Jlo-1), jhi, g.Ilo-2, g.Ihi+2)
	}); err != nil {
		return
	}
	if err = s.parallelRows(g.Jlo-1, g.Jhi+1, func(jlo, jhi int) error {
		s.transverseCorrections(dt, jlo, jhi)
		return nil
	}); err != nil {
		return
	}
	err = s.parallelRows(g.Jlo, g.Jhi+1, func(jlo, jhi int) error {
		xhi := imin(jhi, g.Jhi)
		if ferr := s.riemannRowsX(jlo, xhi, g.Ilo, g.Ihi+1); ferr != nil {
			return ferr
		}
		s.addViscousFluxX(jlo, xhi)
		if ferr := s.riemannRowsY(jlo, jhi, g.Ilo, g.Ihi); ferr != nil {
			return ferr
		}
		s.addViscousFluxY(jlo, jhi)
		return nil
	})
	return
}

// recoverPrimitives refreshes rho, u, v, p from the conserved fields on rows
// [jlo,jhi]. Non-positive or NaN density is unrecoverable and reported.
func (s *Solver) recoverPrimitives(jlo, jhi int) error {
	var (
		g   = s.Grid
		gm1 = s.EOS.Gamma - 1.
		Q   = s.Q
	)
	for j := jlo; j <= jhi; j++ {
		for i := 0; i < g.Qx; i++ {
			ind := g.Ind(i, j)
			rho := Q[Dens][ind]
			if rho <= 0 || math.IsNaN(rho) {
				return &PhysicalStateError{I: i, J: j, Step: s.Step,
					Time: s.Time, Field: "density", Value: rho}
			}
			u := Q[Xmom][ind] / rho
			v := Q[Ymom][ind] / rho
			p := gm1 * (Q[Ener][ind] - 0.5*rho*(u*u+v*v))
			if math.IsNaN(p) {
				return &PhysicalStateError{I: i, J: j, Step: s.Step,
					Time: s.Time, Field: "pressure", Value: p}
			}
			s.rho[ind] = rho
			s.u[ind] = u
			s.v[ind] = v
			s.p[ind] = math.Max(p, smallPres)
		}
	}
	return nil
}

// computeSlopes fills the limited primitive-variable slopes in both
// directions, scaled by the flattening coefficient.
func (s *Solver) computeSlopes(jlo, jhi int) {
	var (
		g     = s.Grid
		prims = [4][]float64{iRho: s.rho, iU: s.u, iV: s.v, iPres: s.p}
	)
	for j := jlo; j <= jhi; j++ {
		for i := g.Ilo - 2; i <= g.Ihi+2; i++ {
			ind := g.Ind(i, j)
			xi := s.xi[ind]
			for n := 0; n < 4; n++ {
				q := prims[n]
				s.ldx[n][ind] = xi * s.Limiter.Slope(
					q[g.Ind(i-1, j)], q[ind], q[g.Ind(i+1, j)])
				s.ldy[n][ind] = xi * s.Limiter.Slope(
					q[g.Ind(i, j-1)], q[ind], q[g.Ind(i, j+1)])
			}
		}
	}
}

func stateAt(U *[4][]float64, ind int) (q [4]float64) {
	for n := 0; n < 4; n++ {
		q[n] = U[n][ind]
	}
	return
}

// riemannRowsX solves the x-face Riemann problems on rows [jlo,jhi] for
// interfaces i in [ilo,ihi], writing the fluxes into Fx.
func (s *Solver) riemannRowsX(jlo, jhi, ilo, ihi int) error {
	var (
		g = s.Grid
	)
	for j := jlo; j <= jhi; j++ {
		for i := ilo; i <= ihi; i++ {
			ind := g.Ind(i, j)
			F, err := s.riemannFlux(0, stateAt(&s.Uxl, ind), stateAt(&s.Uxr, ind))
			if err != nil {
				return s.tagStateError(err, i, j)
			}
			for n := 0; n < 4; n++ {
				s.Fx[n][ind] = F[n]
			}
		}
	}
	return nil
}

// riemannRowsY solves the y-face Riemann problems on rows [jlo,jhi] for
// columns i in [ilo,ihi], writing the fluxes into Fy.
func (s *Solver) riemannRowsY(jlo, jhi, ilo, ihi int) error {
	var (
		g = s.Grid
	)
	for j := jlo; j <= jhi; j++ {
		for i := ilo; i <= ihi; i++ {
			ind := g.Ind(i, j)
			F, err := s.riemannFlux(1, stateAt(&s.Uyl, ind), stateAt(&s.Uyr, ind))
			if err != nil {
				return s.tagStateError(err, i, j)
			}
			for n := 0; n < 4; n++ {
				s.Fy[n][ind] = F[n]
			}
		}
	}
	return nil
}

// tagStateError fills in the cell and step context on a PhysicalStateError
// raised inside a Riemann solve.
func (s *Solver) tagStateError(err error, i, j int) error {
	if perr, ok := err.(*PhysicalStateError); ok {
		perr.I, perr.J = i, j
		perr.Step, perr.Time = s.Step, s.Time
	}
	return err
}

// transverseCorrections folds the transverse flux differences into the
// traced interface states over half a step, the unsplit corner coupling.
func (s *Solver) transverseCorrections(dt float64, jlo, jhi int) {
	var (
		g     = s.Grid
		hdtdx = 0.5 * dt / g.Dx
		hdtdy = 0.5 * dt / g.Dy
	)
	for j := jlo; j <= jhi; j++ {
		for i := g.Ilo - 1; i <= g.Ihi+1; i++ {
			ind := g.Ind(i, j)
			for n := 0; n < 4; n++ {
				s.Uxl[n][ind] -= hdtdy *
					(s.Fy[n][g.Ind(i-1, j+1)] - s.Fy[n][g.Ind(i-1, j)])
				s.Uxr[n][ind] -= hdtdy *
					(s.Fy[n][g.Ind(i, j+1)] - s.Fy[n][ind])
				s.Uyl[n][ind] -= hdtdx *
					(s.Fx[n][g.Ind(i+1, j-1)] - s.Fx[n][g.Ind(i, j-1)])
				s.Uyr[n][ind] -= hdtdx *
					(s.Fx[n][g.Ind(i+1, j)] - s.Fx[n][ind])
			}
		}
	}
}

func imin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
