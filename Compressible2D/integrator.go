package Compressible2D

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/hydrosolve/gofv2d/InputParameters"
	"github.com/hydrosolve/gofv2d/utils"
)

// NGhost ghost rings around the interior. The tracing stencil reaches two
// cells past every interface state, so two rings are not enough.
const NGhost = 4

type Solver struct {
	Params        *InputParameters.SimParameters
	Grid          *Grid2D
	EOS           EquationOfState
	BCs           *BoundaryConditions
	Limiter       LimiterType
	Riemann       RiemannType
	Cvisc         float64
	UseFlattening bool
	Q             ConservedFields
	Time          float64
	Step          int
	NPar          int // parallel degree for the row partitioned phases
	dtPrev        float64
	chart         ChartState
	// scratch fields, one slot per cell, reused every step
	rho, u, v, p       []float64
	xiX, xiY, xi       []float64
	ldx, ldy           [4][]float64
	Uxl, Uxr, Uyl, Uyr [4][]float64
	Fx, Fy             [4][]float64
}

func NewSolver(ip *InputParameters.SimParameters, procs int) (s *Solver, err error) {
	var (
		g              *Grid2D
		eos            EquationOfState
		xl, xr, yl, yr BCType
		bcs            *BoundaryConditions
		limiter        LimiterType
		riemann        RiemannType
	)
	if g, err = NewGrid2D(ip.Mesh.Nx, ip.Mesh.Ny, NGhost,
		ip.Mesh.Xmax, ip.Mesh.Ymax); err != nil {
		return
	}
	if eos, err = NewEquationOfState(ip.EOS.Gamma); err != nil {
		return
	}
	if xl, err = NewBCType(ip.Mesh.XlBoundary); err != nil {
		return
	}
	if xr, err = NewBCType(ip.Mesh.XrBoundary); err != nil {
		return
	}
	if yl, err = NewBCType(ip.Mesh.YlBoundary); err != nil {
		return
	}
	if yr, err = NewBCType(ip.Mesh.YrBoundary); err != nil {
		return
	}
	if bcs, err = NewBoundaryConditions(g, xl, xr, yl, yr); err != nil {
		return
	}
	if limiter, err = NewLimiterType(ip.Compressible.Limiter); err != nil {
		return
	}
	if riemann, err = NewRiemannType(ip.Compressible.Riemann); err != nil {
		return
	}
	nPar := procs
	if nPar <= 0 {
		nPar = runtime.NumCPU()
	}
	if nPar > ip.Mesh.Ny {
		nPar = ip.Mesh.Ny
	}
	s = &Solver{
		Params:        ip,
		Grid:          g,
		EOS:           eos,
		BCs:           bcs,
		Limiter:       limiter,
		Riemann:       riemann,
		Cvisc:         ip.Compressible.Cvisc,
		UseFlattening: ip.Compressible.UseFlattening,
		Q:             NewConservedFields(g),
		NPar:          nPar,
	}
	s.allocScratch()
	return
}

func (s *Solver) allocScratch() {
	var (
		K = s.Grid.NumCells()
	)
	s.rho, s.u = make([]float64, K), make([]float64, K)
	s.v, s.p = make([]float64, K), make([]float64, K)
	s.xiX, s.xiY = make([]float64, K), make([]float64, K)
	s.xi = make([]float64, K)
	for n := 0; n < 4; n++ {
		s.ldx[n], s.ldy[n] = make([]float64, K), make([]float64, K)
		s.Uxl[n], s.Uxr[n] = make([]float64, K), make([]float64, K)
		s.Uyl[n], s.Uyr[n] = make([]float64, K), make([]float64, K)
		s.Fx[n], s.Fy[n] = make([]float64, K), make([]float64, K)
	}
	// slopes multiply by xi whether or not flattening runs
	for i := range s.xi {
		s.xi[i] = 1.
	}
}

// parallelRows runs work over the row range [rlo,rhi], split into NPar
// contiguous bands. It blocks until every band completes, so consecutive
// calls act as barriers between phases. The first worker error wins.
func (s *Solver) parallelRows(rlo, rhi int, work func(jlo, jhi int) error) error {
	var (
		count = rhi - rlo + 1
		wg    sync.WaitGroup
	)
	if count <= 0 {
		return nil
	}
	np := s.NPar
	if np > count {
		np = count
	}
	if np < 1 {
		np = 1
	}
	pm := utils.NewPartitionMap(np, count)
	errs := make([]error, np)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(n)
			errs[n] = work(rlo+kMin, rlo+kMax-1)
		}(n)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// ComputeDT returns the CFL limited timestep over the interior cells.
func (s *Solver) ComputeDT() (dt float64, err error) {
	var (
		g     = s.Grid
		gamma = s.EOS.Gamma
		gm1   = gamma - 1.
		Q     = s.Q
		mtx   sync.Mutex
	)
	dt = math.MaxFloat64
	if err = s.parallelRows(g.Jlo, g.Jhi, func(jlo, jhi int) error {
		local := math.MaxFloat64
		for j := jlo; j <= jhi; j++ {
			for i := g.Ilo; i <= g.Ihi; i++ {
				ind := g.Ind(i, j)
				rho := math.Max(Q[Dens][ind], smallRho)
				u := Q[Xmom][ind] / rho
				v := Q[Ymom][ind] / rho
				p := math.Max(gm1*(Q[Ener][ind]-0.5*rho*(u*u+v*v)), smallPres)
				cs := math.Sqrt(gamma * p / rho)
				xdt := g.Dx / (math.Abs(u) + cs)
				ydt := g.Dy / (math.Abs(v) + cs)
				local = math.Min(local, math.Min(xdt, ydt))
			}
		}
		mtx.Lock()
		dt = math.Min(dt, local)
		mtx.Unlock()
		return nil
	}); err != nil {
		return
	}
	dt *= s.Params.Driver.CFL
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		err = &StabilityError{DT: dt, Step: s.Step, Time: s.Time}
	}
	return
}

// Advance takes one timestep of size dt. On return Q holds the updated
// conserved state; Time and Step are managed by the caller.
func (s *Solver) Advance(dt float64) (err error) {
	var (
		g          = s.Grid
		dtdx, dtdy = dt / g.Dx, dt / g.Dy
	)
	s.BCs.Fill(s.Q)
	if err = s.computeFluxes(dt); err != nil {
		return
	}
	if err = s.parallelRows(g.Jlo, g.Jhi, func(jlo, jhi int) error {
		for j := jlo; j <= jhi; j++ {
			for i := g.Ilo; i <= g.Ihi; i++ {
				ind := g.Ind(i, j)
				ip1 := g.Ind(i+1, j)
				jp1 := g.Ind(i, j+1)
				for n := 0; n < 4; n++ {
					s.Q[n][ind] += dtdx*(s.Fx[n][ind]-s.Fx[n][ip1]) +
						dtdy*(s.Fy[n][ind]-s.Fy[n][jp1])
				}
			}
		}
		return nil
	}); err != nil {
		return
	}
	err = s.Q.CheckPhysical(g, s.Step, s.Time)
	return
}

// nextDT applies the startup shrink, the step to step growth bound and the
// output/tmax clamps to the raw CFL timestep.
func (s *Solver) nextDT(tOut float64) (dt float64, err error) {
	var (
		drv = s.Params.Driver
	)
	if dt, err = s.ComputeDT(); err != nil {
		return
	}
	if s.Step == 0 {
		dt *= drv.InitTstepFactor
	} else if s.dtPrev > 0 {
		dt = math.Min(dt, drv.MaxDTChange*s.dtPrev)
	}
	if tOut > 0 && s.Time+dt > tOut {
		dt = tOut - s.Time
	}
	if s.Time+dt > drv.Tmax {
		dt = drv.Tmax - s.Time
	}
	if dt <= 0 || math.IsNaN(dt) {
		err = &StabilityError{DT: dt, Step: s.Step, Time: s.Time}
	}
	return
}

func (s *Solver) CheckIfFinished() (finished bool) {
	var (
		drv = s.Params.Driver
	)
	if s.Time >= drv.Tmax-1.e-14 {
		finished = true
	}
	if drv.MaxSteps > 0 && s.Step >= drv.MaxSteps {
		finished = true
	}
	return
}

/*
	Solve runs the time loop to tmax or max_steps. snap, when non nil, is
	called with the current state at t=0, at every dt_out interval and at
	the final time; a snapshot error aborts the run.
*/
func (s *Solver) Solve(snap SnapshotFunc) (err error) {
	var (
		ip       = s.Params
		dtOut    = ip.IO.DTOut
		tOut     float64
		dt       float64
		start    = time.Now()
		finished bool
	)
	if snap != nil {
		if err = snap(s.State()); err != nil {
			return
		}
	}
	if dtOut > 0 {
		tOut = s.Time + dtOut
	}
	for !finished {
		if dt, err = s.nextDT(tOut); err != nil {
			return
		}
		if err = s.Advance(dt); err != nil {
			return
		}
		s.Step++
		s.Time += dt
		s.dtPrev = dt
		s.PrintUpdate(dt)
		finished = s.CheckIfFinished()
		if dtOut > 0 && s.Time >= tOut-1.e-14 {
			if snap != nil && !finished {
				if err = snap(s.State()); err != nil {
					return
				}
			}
			tOut += dtOut
		}
	}
	if snap != nil {
		if err = snap(s.State()); err != nil {
			return
		}
	}
	elapsed := time.Since(start)
	rate := elapsed.Seconds() / (float64(s.Step) * float64(s.Grid.Nx*s.Grid.Ny))
	fmt.Printf("\nDone: %d steps to t = %8.4f, %8.2f seconds, %8.3e seconds/cell-step\n",
		s.Step, s.Time, elapsed.Seconds(), rate)
	return
}

func (s *Solver) PrintUpdate(dt float64) {
	if s.Step == 1 || s.Step%50 == 0 {
		fmt.Printf("%11s %14s %14s %14s %14s\n",
			"step", "time", "dt", "max_density", "total_energy")
	}
	fmt.Printf("%11d %14.6e %14.6e %14.6e %14.6e\n",
		s.Step, s.Time, dt,
		s.Q.MaxInterior(s.Grid, Dens),
		s.Q.TotalInterior(s.Grid, Ener)*s.Grid.Dx*s.Grid.Dy)
}
