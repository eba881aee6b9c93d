package Compressible2D

import "math"

/*
	Characteristic tracing of the primitive variables to the cell edges over
	dt/2, the Colella corner transport upwind predictor.

	For advection in the normal direction the primitive variable Jacobian has
	eigenvalues (un-c, un, un, un+c); the transverse velocity rides the
	contact. The traced state on each side of an interface is the reference
	state (cell average pushed toward the edge by the fastest approaching
	wave) plus the projection of the limited slope onto the characteristic
	fields that actually reach the edge within dt/2:

	    V_l[i+1] = V + 0.5 (1 - dt/dx max(un+c,0)) dV + sum_m beta_l[m] r_m
	    V_r[i]   = V - 0.5 (1 + dt/dx min(un-c,0)) dV + sum_m beta_r[m] r_m

	The states are written as primitives and converted to conserved form in
	place by convertStatesDir once a row band is complete.
*/

// tracedStatesDir fills Ul/Ur for one direction (dir 0 is x, 1 is y) with
// primitive interface states for the rows jlo..jhi. In y the left state of
// row j+1 is produced by the cells of row j, so each row has one writer.
func (s *Solver) tracedStatesDir(dir int, dt float64, jlo, jhi int) {
	var (
		g        = s.Grid
		ld       = &s.ldx
		Ul, Ur   = &s.Uxl, &s.Uxr
		iun, iut = iU, iV
		dtdx     = dt / g.Dx
	)
	if dir == 1 {
		ld = &s.ldy
		Ul, Ur = &s.Uyl, &s.Uyr
		iun, iut = iV, iU
		dtdx = dt / g.Dy
	}
	var (
		dtdx4      = 0.25 * dtdx
		lvec, rvec [4][4]float64
		ev         [4]float64
	)
	for j := jlo; j <= jhi; j++ {
		for i := g.Ilo - 2; i <= g.Ihi+2; i++ {
			ind := g.Ind(i, j)
			V := [4]float64{s.rho[ind], s.u[ind], s.v[ind], s.p[ind]}
			dV := [4]float64{ld[0][ind], ld[1][ind], ld[2][ind], ld[3][ind]}

			cs := math.Sqrt(s.EOS.Gamma * V[iPres] / V[iRho])
			un := V[iun]
			ev[0], ev[1], ev[2], ev[3] = un-cs, un, un, un+cs

			// left and right eigenvectors of the primitive Jacobian,
			// arranged for (rho, u, v, p) with iun the normal velocity
			for m := 0; m < 4; m++ {
				lvec[m] = [4]float64{}
				rvec[m] = [4]float64{}
			}
			lvec[0][iun], lvec[0][iPres] = -0.5*V[iRho]/cs, 0.5/(cs*cs)
			lvec[1][iRho], lvec[1][iPres] = 1.0, -1.0/(cs*cs)
			lvec[2][iut] = 1.0
			lvec[3][iun], lvec[3][iPres] = 0.5*V[iRho]/cs, 0.5/(cs*cs)

			rvec[0][iRho], rvec[0][iun], rvec[0][iPres] = 1.0, -cs/V[iRho], cs*cs
			rvec[1][iRho] = 1.0
			rvec[2][iut] = 1.0
			rvec[3][iRho], rvec[3][iun], rvec[3][iPres] = 1.0, cs/V[iRho], cs*cs

			// reference states pushed toward each face by the fastest wave
			indl := g.Ind(i+1, j)
			if dir == 1 {
				indl = g.Ind(i, j+1)
			}
			factl := 0.5 * (1.0 - dtdx*math.Max(ev[3], 0.0))
			factr := 0.5 * (1.0 + dtdx*math.Min(ev[0], 0.0))
			var vl, vr [4]float64
			for n := 0; n < 4; n++ {
				vl[n] = V[n] + factl*dV[n]
				vr[n] = V[n] - factr*dV[n]
			}

			// characteristic projections for the waves that reach each face
			var betal, betar [4]float64
			for m := 0; m < 4; m++ {
				sum := lvec[m][0]*dV[0] + lvec[m][1]*dV[1] + lvec[m][2]*dV[2] + lvec[m][3]*dV[3]
				betal[m] = dtdx4 * (ev[3] - ev[m]) * (fsign(ev[m]) + 1.0) * sum
				betar[m] = dtdx4 * (ev[0] - ev[m]) * (1.0 - fsign(ev[m])) * sum
			}
			for n := 0; n < 4; n++ {
				for m := 0; m < 4; m++ {
					vl[n] += betal[m] * rvec[m][n]
					vr[n] += betar[m] * rvec[m][n]
				}
				Ul[n][indl] = vl[n]
				Ur[n][ind] = vr[n]
			}
		}
	}
}

// convertStatesDir rewrites the primitive traced states of one direction as
// conserved variables, in place, for the interface band of rows jlo..jhi.
func (s *Solver) convertStatesDir(dir int, jlo, jhi int) {
	var (
		g      = s.Grid
		Ul, Ur = &s.Uxl, &s.Uxr
	)
	if dir == 1 {
		Ul, Ur = &s.Uyl, &s.Uyr
	}
	for j := jlo; j <= jhi; j++ {
		for i := g.Ilo - 2; i <= g.Ihi+3; i++ {
			ind := g.Ind(i, j)
			s.primToCons(Ul, ind)
			s.primToCons(Ur, ind)
		}
	}
}

func (s *Solver) primToCons(U *[4][]float64, ind int) {
	var (
		rho, u, v, p = U[0][ind], U[1][ind], U[2][ind], U[3][ind]
	)
	if rho < smallRho {
		rho = smallRho
	}
	if p < smallPres {
		p = smallPres
	}
	U[Dens][ind] = rho
	U[Xmom][ind] = rho * u
	U[Ymom][ind] = rho * v
	U[Ener][ind] = s.EOS.RhoE(p) + 0.5*rho*(u*u+v*v)
}

// fsign matches the convention of numpy.sign: zero maps to zero.
func fsign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
