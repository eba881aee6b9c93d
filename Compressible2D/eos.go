package Compressible2D

import "math"

// Floors applied during primitive recovery and Riemann sampling to keep
// near-vacuum states finite.
const (
	smallRho  = 1.e-10
	smallPres = 1.e-10
	smallC    = 1.e-10
)

// EquationOfState closes the system with a gamma law gas: p = (gamma-1) rho e.
type EquationOfState struct {
	Gamma float64
}

func NewEquationOfState(gamma float64) (EquationOfState, error) {
	if gamma <= 1 {
		return EquationOfState{}, configError("gamma must be > 1, have %g", gamma)
	}
	return EquationOfState{Gamma: gamma}, nil
}

// Pressure from density and specific internal energy.
func (eos EquationOfState) Pressure(rho, eint float64) float64 {
	return (eos.Gamma - 1.) * rho * eint
}

// InternalEnergy returns the specific internal energy for (rho, p).
// Non-positive density signals upstream integration instability.
func (eos EquationOfState) InternalEnergy(rho, p float64) (float64, error) {
	if rho <= 0 {
		return 0, &PhysicalStateError{Field: "density", Value: rho}
	}
	return p / ((eos.Gamma - 1.) * rho), nil
}

// SoundSpeed returns c = sqrt(gamma p / rho).
func (eos EquationOfState) SoundSpeed(rho, p float64) (float64, error) {
	if rho <= 0 {
		return 0, &PhysicalStateError{Field: "density", Value: rho}
	}
	if p < 0 {
		return 0, &PhysicalStateError{Field: "pressure", Value: p}
	}
	return math.Sqrt(eos.Gamma * p / rho), nil
}

// RhoE converts pressure to internal energy density, rho*e.
func (eos EquationOfState) RhoE(p float64) float64 {
	return p / (eos.Gamma - 1.)
}
