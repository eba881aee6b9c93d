package Compressible2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydrosolve/gofv2d/InputParameters"
)

func testParams(nx, ny int, bc string) *InputParameters.SimParameters {
	ip := &InputParameters.SimParameters{
		Title: "test",
		Driver: InputParameters.DriverParams{
			MaxSteps: 1000, Tmax: 0.1, CFL: 0.8,
		},
		Compressible: InputParameters.CompressibleParams{
			Limiter: 2, Cvisc: 0.1, Riemann: "HLLC", UseFlattening: true,
		},
		IO:  InputParameters.IOParams{Basename: "test", DTOut: 0.05},
		EOS: InputParameters.EOSParams{Gamma: 1.4},
		Mesh: InputParameters.MeshParams{
			Nx: nx, Ny: ny, Xmax: 1, Ymax: 1,
			XlBoundary: bc, XrBoundary: bc, YlBoundary: bc, YrBoundary: bc,
		},
		Sedov: InputParameters.SedovParams{RInit: 0.1},
	}
	if err := ip.Validate(); err != nil {
		panic(err)
	}
	return ip
}

func testSolver(t *testing.T, nx, ny int, bc string) *Solver {
	s, err := NewSolver(testParams(nx, ny, bc), 2)
	require.NoError(t, err)
	return s
}

func TestNewSolverRejections(t *testing.T) {
	ip := testParams(8, 8, "outflow")
	ip.EOS.Gamma = 1
	_, err := NewSolver(ip, 1)
	assert.Error(t, err)

	ip = testParams(8, 8, "outflow")
	ip.Mesh.XlBoundary = "open"
	_, err = NewSolver(ip, 1)
	assert.Error(t, err)

	ip = testParams(8, 8, "outflow")
	ip.Compressible.Riemann = "roe"
	_, err = NewSolver(ip, 1)
	assert.Error(t, err)
}

// A uniform moving state has no gradients; the scheme must hold it exactly.
func TestUniformStatePreserved(t *testing.T) {
	for _, bc := range []string{"outflow", "periodic", "reflect"} {
		s := testSolver(t, 16, 12, bc)
		u, v := 0.3, -0.2
		if bc == "reflect" {
			u, v = 0, 0 // reflecting walls only hold a static uniform state
		}
		s.InitUniform(1.0, u, v, 1.0)
		for step := 0; step < 5; step++ {
			dt, err := s.ComputeDT()
			require.NoError(t, err)
			require.NoError(t, s.Advance(0.5*dt))
			s.Step++
			s.Time += 0.5 * dt
		}
		g := s.Grid
		for j := g.Jlo; j <= g.Jhi; j++ {
			for i := g.Ilo; i <= g.Ihi; i++ {
				ind := g.Ind(i, j)
				assert.InDelta(t, 1.0, s.Q[Dens][ind], 1.e-12, bc)
				assert.InDelta(t, u, s.Q[Xmom][ind], 1.e-12, bc)
				assert.InDelta(t, v, s.Q[Ymom][ind], 1.e-12, bc)
			}
		}
	}
}

// Periodic boundaries close the domain: the flux form update must conserve
// mass, momentum and energy to roundoff.
func TestConservationPeriodic(t *testing.T) {
	s := testSolver(t, 16, 16, "periodic")
	var (
		g = s.Grid
	)
	// smooth density and pressure ripple advected diagonally
	for j := g.Jlo; j <= g.Jhi; j++ {
		for i := g.Ilo; i <= g.Ihi; i++ {
			ind := g.Ind(i, j)
			rho := 1.0 + 0.2*math.Sin(2*math.Pi*g.X(i))*math.Cos(2*math.Pi*g.Y(j))
			u, v := 1.0, 0.5
			p := 1.0 + 0.1*math.Cos(2*math.Pi*g.X(i))
			s.Q[Dens][ind] = rho
			s.Q[Xmom][ind] = rho * u
			s.Q[Ymom][ind] = rho * v
			s.Q[Ener][ind] = s.EOS.RhoE(p) + 0.5*rho*(u*u+v*v)
		}
	}
	totals0 := [4]float64{}
	for n := 0; n < 4; n++ {
		totals0[n] = s.Q.TotalInterior(g, n)
	}
	for step := 0; step < 10; step++ {
		dt, err := s.ComputeDT()
		require.NoError(t, err)
		require.NoError(t, s.Advance(dt))
		s.Step++
		s.Time += dt
	}
	for n := 0; n < 4; n++ {
		assert.InDelta(t, totals0[n], s.Q.TotalInterior(g, n),
			1.e-10*math.Max(1, math.Abs(totals0[n])), consNames[n])
	}
}

func TestComputeDTCFLBound(t *testing.T) {
	s := testSolver(t, 20, 10, "outflow")
	s.InitUniform(1.0, 0.5, 0.0, 1.0)
	dt, err := s.ComputeDT()
	require.NoError(t, err)
	var (
		g  = s.Grid
		cs = math.Sqrt(1.4)
	)
	want := 0.8 * math.Min(g.Dx/(0.5+cs), g.Dy/cs)
	assert.InEpsilon(t, want, dt, 1.e-12)
}

func TestComputeDTStabilityError(t *testing.T) {
	s := testSolver(t, 8, 8, "outflow")
	s.InitUniform(1.0, 0, 0, 1.0)
	s.Q[Ener][s.Grid.Ind(s.Grid.Ilo+2, s.Grid.Jlo+2)] = math.NaN()
	_, err := s.ComputeDT()
	require.Error(t, err)
	_, ok := err.(*StabilityError)
	assert.True(t, ok, "want StabilityError, have %T", err)
}

func TestAdvanceReportsBadDensity(t *testing.T) {
	s := testSolver(t, 8, 8, "outflow")
	s.InitUniform(1.0, 0, 0, 1.0)
	s.Q[Dens][s.Grid.Ind(s.Grid.Ilo+1, s.Grid.Jlo+3)] = -1
	err := s.Advance(1.e-4)
	require.Error(t, err)
	perr, ok := err.(*PhysicalStateError)
	require.True(t, ok, "want PhysicalStateError, have %T", err)
	assert.Equal(t, "density", perr.Field)
}

// A coarse point explosion: the blast wave forms, density piles up at the
// shock and total energy is retained while the wave is still interior.
func TestSedovExplosion(t *testing.T) {
	ip := testParams(32, 32, "outflow")
	ip.Driver.Tmax = 0.02
	ip.Driver.MaxSteps = 200
	ip.Sedov.RInit = 0.1
	s, err := NewSolver(ip, 0)
	require.NoError(t, err)
	require.NoError(t, s.InitSedov(ip.Sedov.RInit))

	var (
		g     = s.Grid
		vol   = g.Dx * g.Dy
		ener0 = s.Q.TotalInterior(g, Ener) * vol
	)
	assert.InDelta(t, sedovEnergy, ener0, 0.05*sedovEnergy)

	require.NoError(t, s.Solve(nil))
	assert.Greater(t, s.Step, 0)
	assert.Greater(t, s.Time, 0.0)

	// compression at the shock front exceeds the ambient density
	assert.Greater(t, s.Q.MaxInterior(g, Dens), 1.2)
	// the wave has not reached the boundary, so energy is conserved
	assert.InEpsilon(t, ener0, s.Q.TotalInterior(g, Ener)*vol, 1.e-6)
	require.NoError(t, s.Q.CheckPhysical(g, s.Step, s.Time))
}

// Both solvers run the same blast without losing positivity.
func TestSedovCGF(t *testing.T) {
	ip := testParams(24, 24, "outflow")
	ip.Driver.Tmax = 0.01
	ip.Driver.MaxSteps = 100
	ip.Compressible.Riemann = "CGF"
	ip.Sedov.RInit = 0.1
	s, err := NewSolver(ip, 0)
	require.NoError(t, err)
	require.NoError(t, s.InitSedov(ip.Sedov.RInit))
	require.NoError(t, s.Solve(nil))
	assert.Greater(t, s.Q.MaxInterior(s.Grid, Dens), 1.0)
	require.NoError(t, s.Q.CheckPhysical(s.Grid, s.Step, s.Time))
}
