package Compressible2D

import (
	"math"
	"strings"
)

type RiemannType uint8

const (
	RIEMANN_HLLC RiemannType = iota
	RIEMANN_CGF
)

var (
	RiemannNames = map[string]RiemannType{
		"hllc": RIEMANN_HLLC,
		"cgf":  RIEMANN_CGF,
	}
	RiemannPrintNames = []string{"HLLC", "CGF two-shock"}
)

func (rt RiemannType) Print() (txt string) {
	txt = RiemannPrintNames[rt]
	return
}

func NewRiemannType(label string) (rt RiemannType, err error) {
	var (
		ok bool
	)
	label = strings.ToLower(label)
	if rt, ok = RiemannNames[label]; !ok {
		err = configError("unable to use riemann solver named %s", label)
	}
	return
}

// contactTol is the relative tolerance under which a contact is treated as
// stationary and the star states are averaged to avoid directional bias.
const contactTol = 1.e-10

// riemannFlux resolves the 1D Riemann problem at one interface from the
// conserved left/right states and returns the upwind conservative flux.
// dir 0 takes Xmom as the normal momentum, dir 1 takes Ymom.
func (s *Solver) riemannFlux(dir int, qL, qR [4]float64) ([4]float64, error) {
	switch s.Riemann {
	case RIEMANN_CGF:
		return s.riemannCGF(dir, qL, qR)
	default:
		return s.riemannHLLC(dir, qL, qR)
	}
}

// primDir unpacks a conserved vector into (rho, un, ut, p) for the given
// direction, applying the small-state floors.
func (s *Solver) primDir(dir int, q [4]float64) (rho, un, ut, p float64) {
	var (
		nm, nt = Xmom, Ymom
	)
	if dir == 1 {
		nm, nt = Ymom, Xmom
	}
	rho = math.Max(q[Dens], smallRho)
	un = q[nm] / rho
	ut = q[nt] / rho
	p = (s.EOS.Gamma - 1.) * (q[Ener] - 0.5*rho*(un*un+ut*ut))
	p = math.Max(p, smallPres)
	return
}

// fluxDir builds the Euler flux through a dir-normal face from primitives.
func (s *Solver) fluxDir(dir int, rho, un, ut, p float64) (F [4]float64) {
	var (
		nm, nt = Xmom, Ymom
	)
	if dir == 1 {
		nm, nt = Ymom, Xmom
	}
	E := s.EOS.RhoE(p) + 0.5*rho*(un*un+ut*ut)
	F[Dens] = rho * un
	F[nm] = rho*un*un + p
	F[nt] = rho * un * ut
	F[Ener] = un * (E + p)
	return
}

/*
	HLLC approximate Riemann solver (Toro). Wave speeds from the PVRS
	pressure estimate with shock corrections; the contact speed S* selects
	the upwind star region. Handles two shocks and two rarefactions; vacuum
	formation surfaces as a PhysicalStateError rather than NaN.
*/
func (s *Solver) riemannHLLC(dir int, qL, qR [4]float64) (F [4]float64, err error) {
	var (
		gamma             = s.EOS.Gamma
		nm, nt            = Xmom, Ymom
		rhoL, uL, vtL, pL = s.primDir(dir, qL)
		rhoR, uR, vtR, pR = s.primDir(dir, qR)
		cL                = math.Sqrt(gamma * pL / rhoL)
		cR                = math.Sqrt(gamma * pR / rhoR)
	)
	if dir == 1 {
		nm, nt = Ymom, Xmom
	}

	// PVRS pressure estimate with one-sided shock corrections
	ppvrs := 0.5*(pL+pR) - 0.125*(uR-uL)*(rhoL+rhoR)*(cL+cR)
	pstar := math.Max(0., ppvrs)
	qfac := func(p, ps float64) float64 {
		if ps <= p {
			return 1.
		}
		return math.Sqrt(1. + (gamma+1.)/(2.*gamma)*(ps/p-1.))
	}
	SL := uL - cL*qfac(pL, pstar)
	SR := uR + cR*qfac(pR, pstar)

	denom := rhoL*(SL-uL) - rhoR*(SR-uR)
	var Sstar float64
	if math.Abs(denom) < smallRho*smallC {
		Sstar = 0.5 * (uL + uR)
	} else {
		Sstar = (pR - pL + rhoL*uL*(SL-uL) - rhoR*uR*(SR-uR)) / denom
	}
	if math.IsNaN(Sstar) {
		return F, &PhysicalStateError{Field: "contact speed", Value: Sstar}
	}

	switch {
	case SL >= 0:
		F = s.fluxDir(dir, rhoL, uL, vtL, pL)
	case SR <= 0:
		F = s.fluxDir(dir, rhoR, uR, vtR, pR)
	default:
		EL := s.EOS.RhoE(pL) + 0.5*rhoL*(uL*uL+vtL*vtL)
		ER := s.EOS.RhoE(pR) + 0.5*rhoR*(uR*uR+vtR*vtR)
		star := func(S, rho, u, vt, p, E float64) ([4]float64, float64) {
			var Us [4]float64
			coef := rho * (S - u) / (S - Sstar)
			Us[Dens] = coef
			Us[nm] = coef * Sstar
			Us[nt] = coef * vt
			Us[Ener] = coef * (E/rho + (Sstar-u)*(Sstar+p/(rho*(S-u))))
			return Us, coef
		}
		UsL, coefL := star(SL, rhoL, uL, vtL, pL, EL)
		UsR, coefR := star(SR, rhoR, uR, vtR, pR, ER)
		if coefL <= 0 || coefR <= 0 || math.IsNaN(coefL) || math.IsNaN(coefR) {
			return F, &PhysicalStateError{Field: "star density",
				Value: math.Min(coefL, coefR)}
		}
		FL := s.fluxDir(dir, rhoL, uL, vtL, pL)
		FR := s.fluxDir(dir, rhoR, uR, vtR, pR)
		UL := [4]float64{rhoL, 0, 0, EL}
		UL[nm], UL[nt] = rhoL*uL, rhoL*vtL
		UR := [4]float64{rhoR, 0, 0, ER}
		UR[nm], UR[nt] = rhoR*uR, rhoR*vtR

		var FsL, FsR [4]float64
		for n := 0; n < 4; n++ {
			FsL[n] = FL[n] + SL*(UsL[n]-UL[n])
			FsR[n] = FR[n] + SR*(UsR[n]-UR[n])
		}
		switch {
		case math.Abs(Sstar) <= contactTol*(cL+cR):
			// stationary contact: no directional bias
			for n := 0; n < 4; n++ {
				F[n] = 0.5 * (FsL[n] + FsR[n])
			}
		case Sstar > 0:
			F = FsL
		default:
			F = FsR
		}
	}
	return
}

/*
	CGF solver (Colella, Glaz & Ferguson): a two-shock approximation for the
	star pressure and velocity, then a sampling of the wave structure at the
	interface. Rarefactions use the isentrope for the star density and a
	linear interpolation through a transonic fan.
*/
func (s *Solver) riemannCGF(dir int, qL, qR [4]float64) (F [4]float64, err error) {
	var (
		gamma             = s.EOS.Gamma
		rhoL, uL, vtL, pL = s.primDir(dir, qL)
		rhoR, uR, vtR, pR = s.primDir(dir, qR)
	)
	// Lagrangian sound speeds and the two-shock star state
	WL := math.Max(smallRho*smallC, math.Sqrt(gamma*pL*rhoL))
	WR := math.Max(smallRho*smallC, math.Sqrt(gamma*pR*rhoR))
	pstar := math.Max(smallPres, ((WR*pL+WL*pR)+WL*WR*(uL-uR))/(WL+WR))
	ustar := ((WL*uL + WR*uR) + (pL - pR)) / (WL + WR)

	if math.IsNaN(pstar) || math.IsNaN(ustar) {
		return F, &PhysicalStateError{Field: "star state", Value: pstar}
	}

	// sample the state on the interface
	var (
		rhoS, uS, pS, vtS float64
		sgn               float64
	)
	cL := math.Max(smallC, math.Sqrt(gamma*pL/rhoL))
	cR := math.Max(smallC, math.Sqrt(gamma*pR/rhoR))
	switch {
	case math.Abs(ustar) <= contactTol*(cL+cR):
		// stationary contact: favor the average to avoid directional bias
		rhoS, uS, pS = 0.5*(rhoL+rhoR), 0.5*(uL+uR), 0.5*(pL+pR)
		vtS = 0.5 * (vtL + vtR)
		sgn = 0
	case ustar > 0:
		rhoS, uS, pS, vtS, sgn = rhoL, uL, pL, vtL, -1
	default:
		rhoS, uS, pS, vtS, sgn = rhoR, uR, pR, vtR, 1
	}
	cS := math.Max(smallC, math.Sqrt(gamma*pS/rhoS))

	var rho, un, p float64
	if sgn == 0 {
		rho, un, p = rhoS, uS, pS
	} else if pstar > pS {
		// shock on the sampled side
		gfac := (gamma - 1.) / (gamma + 1.)
		rhostar := rhoS * (pstar/pS + gfac) / (gfac*(pstar/pS) + 1.)
		S := uS + sgn*cS*math.Sqrt(1.+(gamma+1.)/(2.*gamma)*(pstar/pS-1.))
		if sgn*S >= 0 {
			// shock has crossed the interface
			rho, un, p = rhostar, ustar, pstar
		} else {
			rho, un, p = rhoS, uS, pS
		}
	} else {
		// rarefaction on the sampled side
		rhostar := rhoS * math.Pow(pstar/pS, 1./gamma)
		cstar := math.Max(smallC, math.Sqrt(gamma*pstar/rhostar))
		lambdaHead := uS + sgn*cS
		lambdaTail := ustar + sgn*cstar
		switch {
		case sgn*lambdaHead <= 0:
			rho, un, p = rhoS, uS, pS
		case sgn*lambdaTail >= 0:
			rho, un, p = rhostar, ustar, pstar
		default:
			// transonic fan: interpolate between head and tail states
			alpha := lambdaHead / (lambdaHead - lambdaTail)
			rho = alpha*rhostar + (1.-alpha)*rhoS
			un = alpha*ustar + (1.-alpha)*uS
			p = alpha*pstar + (1.-alpha)*pS
		}
	}
	if rho <= 0 || math.IsNaN(rho) {
		return F, &PhysicalStateError{Field: "sampled density", Value: rho}
	}
	// transverse velocity rides the contact
	if sgn != 0 {
		if un > 0 {
			vtS = vtL
		} else if un < 0 {
			vtS = vtR
		} else {
			vtS = 0.5 * (vtL + vtR)
		}
	}
	F = s.fluxDir(dir, rho, un, vtS, math.Max(p, smallPres))
	return
}
