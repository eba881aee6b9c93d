package Compressible2D

import "math"

// Colella (1990) shock flattening. Near strong, thin pressure jumps the
// limited slopes are additionally scaled by a coefficient xi in [0,1],
// damping the reconstruction toward first order.
const (
	flattenDelta = 0.33
	flattenZ0    = 0.75
	flattenZ1    = 0.85
)

// flattenDir computes the one-dimensional flattening coefficient for each
// cell in the working range. dir 0 is x, 1 is y.
func (s *Solver) flattenDir(dir int, xi []float64, jlo, jhi int) {
	var (
		g    = s.Grid
		p, u = s.p, s.u
		di   = 1
		dj   = 0
	)
	if dir == 1 {
		u = s.v
		di, dj = 0, 1
	}
	for j := jlo; j <= jhi; j++ {
		for i := g.Ilo - 2; i <= g.Ihi+2; i++ {
			ind := g.Ind(i, j)
			indp, indm := g.Ind(i+di, j+dj), g.Ind(i-di, j-dj)
			indp2, indm2 := g.Ind(i+2*di, j+2*dj), g.Ind(i-2*di, j-2*dj)

			dp := p[indp] - p[indm]
			dp2 := p[indp2] - p[indm2]
			z := math.Abs(dp) / math.Max(math.Abs(dp2), smallPres)

			pmin := math.Min(p[indp], p[indm])
			compressing := u[indm]-u[indp] > 0
			if compressing && math.Abs(dp)/math.Max(pmin, smallPres) > flattenDelta {
				xi[ind] = math.Min(1., math.Max(0., 1.-(z-flattenZ0)/(flattenZ1-flattenZ0)))
			} else {
				xi[ind] = 1.
			}
		}
	}
}

// flattenMultid combines the directional coefficients: each cell takes the
// minimum of its own coefficients and the upwind neighbor's, looking toward
// the pressure rise.
func (s *Solver) flattenMultid(jlo, jhi int) {
	var (
		g            = s.Grid
		p            = s.p
		xix, xiy, xi = s.xiX, s.xiY, s.xi
	)
	for j := jlo; j <= jhi; j++ {
		for i := g.Ilo - 2; i <= g.Ihi+2; i++ {
			ind := g.Ind(i, j)
			sx := isign(p[g.Ind(i+1, j)] - p[g.Ind(i-1, j)])
			sy := isign(p[g.Ind(i, j+1)] - p[g.Ind(i, j-1)])
			// neighbor lookups stay inside the band the directional pass covered
			in := iclamp(i-sx, g.Ilo-2, g.Ihi+2)
			jn := iclamp(j-sy, g.Jlo-2, g.Jhi+2)
			v := math.Min(xix[ind], xix[g.Ind(in, j)])
			v = math.Min(v, xiy[ind])
			v = math.Min(v, xiy[g.Ind(i, jn)])
			xi[ind] = v
		}
	}
}

func iclamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
