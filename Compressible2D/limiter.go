package Compressible2D

import "math"

type LimiterType uint8

const (
	LimiterNone LimiterType = iota // central difference, smooth flow debugging only
	LimiterMinMod
	LimiterVanLeer // MC family, the default
)

var LimiterPrintNames = []string{"None", "MinMod", "VanLeer/MC"}

func (lt LimiterType) Print() (txt string) {
	txt = LimiterPrintNames[lt]
	return
}

// NewLimiterType maps the integer configuration id onto the closed
// enumeration; unknown ids are a configuration error, never a default.
func NewLimiterType(id int) (lt LimiterType, err error) {
	switch id {
	case 0:
		lt = LimiterNone
	case 1:
		lt = LimiterMinMod
	case 2:
		lt = LimiterVanLeer
	default:
		err = configError("unable to use limiter id %d", id)
	}
	return
}

// Slope returns the limited one-dimensional slope of a cell given its
// neighbors' averages (qm, q0, qp). MinMod and VanLeer both return exactly
// zero at a local extremum, preserving monotonicity.
func (lt LimiterType) Slope(qm, q0, qp float64) (slope float64) {
	var (
		dl = q0 - qm
		dr = qp - q0
	)
	switch lt {
	case LimiterNone:
		slope = 0.5 * (qp - qm)
	case LimiterMinMod:
		slope = minmod(dl, dr)
	case LimiterVanLeer:
		if dl*dr > 0 {
			dc := 0.5 * (qp - qm)
			slope = math.Copysign(
				math.Min(math.Abs(dc), 2.*math.Min(math.Abs(dl), math.Abs(dr))), dc)
		}
	}
	return
}

func minmod(a, b float64) float64 {
	switch {
	case a*b <= 0:
		return 0
	case math.Abs(a) < math.Abs(b):
		return a
	default:
		return b
	}
}
