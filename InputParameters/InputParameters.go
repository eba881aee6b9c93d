package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. The parsed value is treated
// as immutable after Validate and is passed by reference into every solver
// component - there is no global parameter lookup.
type SimParameters struct {
	Title        string             `json:"Title"`
	Driver       DriverParams       `json:"driver"`
	Compressible CompressibleParams `json:"compressible"`
	IO           IOParams           `json:"io"`
	EOS          EOSParams          `json:"eos"`
	Mesh         MeshParams         `json:"mesh"`
	Sedov        SedovParams        `json:"sedov"`
	Vis          VisParams          `json:"vis"`
}

type DriverParams struct {
	MaxSteps        int     `json:"max_steps"`
	Tmax            float64 `json:"tmax"`
	CFL             float64 `json:"cfl"`
	InitTstepFactor float64 `json:"init_tstep_factor"` // first step dt shrink
	MaxDTChange     float64 `json:"max_dt_change"`     // step to step dt growth bound
}

type CompressibleParams struct {
	Limiter       int     `json:"limiter"` // 0 = none, 1 = minmod, 2 = MC/van Leer
	Cvisc         float64 `json:"cvisc"`
	Riemann       string  `json:"riemann"` // HLLC or CGF
	UseFlattening bool    `json:"use_flattening"`
}

type IOParams struct {
	Basename string  `json:"basename"`
	DTOut    float64 `json:"dt_out"`
}

type EOSParams struct {
	Gamma float64 `json:"gamma"`
}

type MeshParams struct {
	Nx         int     `json:"nx"`
	Ny         int     `json:"ny"`
	Xmax       float64 `json:"xmax"`
	Ymax       float64 `json:"ymax"`
	XlBoundary string  `json:"xl_boundary"`
	XrBoundary string  `json:"xr_boundary"`
	YlBoundary string  `json:"yl_boundary"`
	YrBoundary string  `json:"yr_boundary"`
}

type SedovParams struct {
	RInit float64 `json:"r_init"`
}

type VisParams struct {
	Dovis bool `json:"dovis"`
}

func (sp *SimParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, sp); err != nil {
		return fmt.Errorf("unable to parse input parameters: %s", err.Error())
	}
	return sp.Validate()
}

var validBoundaries = map[string]bool{
	"outflow":  true,
	"reflect":  true,
	"periodic": true,
}

// Validate applies defaults for the optional keys and rejects missing or
// invalid required keys before the first step runs. Unknown limiter,
// boundary or riemann names are errors, never silent defaults.
func (sp *SimParameters) Validate() error {
	var (
		d = &sp.Driver
		c = &sp.Compressible
		m = &sp.Mesh
	)
	if d.MaxSteps <= 0 {
		return configErrf("driver.max_steps must be > 0, have %d", d.MaxSteps)
	}
	if d.Tmax <= 0 {
		return configErrf("driver.tmax must be > 0, have %g", d.Tmax)
	}
	if d.CFL <= 0 || d.CFL > 1 {
		return configErrf("driver.cfl must be in (0,1], have %g", d.CFL)
	}
	if d.InitTstepFactor == 0 {
		d.InitTstepFactor = 0.01
	}
	if d.InitTstepFactor < 0 || d.InitTstepFactor > 1 {
		return configErrf("driver.init_tstep_factor must be in (0,1], have %g", d.InitTstepFactor)
	}
	if d.MaxDTChange == 0 {
		d.MaxDTChange = 2.0
	}
	if d.MaxDTChange < 1 {
		return configErrf("driver.max_dt_change must be >= 1, have %g", d.MaxDTChange)
	}
	if c.Limiter < 0 || c.Limiter > 2 {
		return configErrf("compressible.limiter must be 0, 1 or 2, have %d", c.Limiter)
	}
	if c.Cvisc < 0 {
		return configErrf("compressible.cvisc must be >= 0, have %g", c.Cvisc)
	}
	if c.Riemann == "" {
		c.Riemann = "HLLC"
	}
	switch strings.ToLower(c.Riemann) {
	case "hllc", "cgf":
	default:
		return configErrf("compressible.riemann must be HLLC or CGF, have %s", c.Riemann)
	}
	if sp.IO.Basename == "" {
		return configErrf("io.basename is required")
	}
	if sp.IO.DTOut <= 0 {
		return configErrf("io.dt_out must be > 0, have %g", sp.IO.DTOut)
	}
	if sp.EOS.Gamma <= 1 {
		return configErrf("eos.gamma must be > 1, have %g", sp.EOS.Gamma)
	}
	if m.Nx <= 0 || m.Ny <= 0 {
		return configErrf("mesh.nx and mesh.ny must be > 0, have %d x %d", m.Nx, m.Ny)
	}
	if m.Xmax <= 0 || m.Ymax <= 0 {
		return configErrf("mesh.xmax and mesh.ymax must be > 0, have %g x %g", m.Xmax, m.Ymax)
	}
	for _, b := range []struct{ key, val string }{
		{"mesh.xl_boundary", m.XlBoundary},
		{"mesh.xr_boundary", m.XrBoundary},
		{"mesh.yl_boundary", m.YlBoundary},
		{"mesh.yr_boundary", m.YrBoundary},
	} {
		if b.val == "" {
			return configErrf("%s is required", b.key)
		}
		if !validBoundaries[strings.ToLower(b.val)] {
			return configErrf("%s must be one of outflow, reflect, periodic - have %s", b.key, b.val)
		}
	}
	if xl, xr := strings.ToLower(m.XlBoundary), strings.ToLower(m.XrBoundary); (xl == "periodic") != (xr == "periodic") {
		return configErrf("periodic x boundaries must be paired, have %s / %s", m.XlBoundary, m.XrBoundary)
	}
	if yl, yr := strings.ToLower(m.YlBoundary), strings.ToLower(m.YrBoundary); (yl == "periodic") != (yr == "periodic") {
		return configErrf("periodic y boundaries must be paired, have %s / %s", m.YlBoundary, m.YrBoundary)
	}
	if sp.Sedov.RInit <= 0 {
		return configErrf("sedov.r_init must be > 0, have %g", sp.Sedov.RInit)
	}
	return nil
}

func configErrf(format string, args ...interface{}) error {
	return fmt.Errorf("configuration error: "+format, args...)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", sp.Driver.CFL)
	fmt.Printf("%8.5f\t\t= Tmax\n", sp.Driver.Tmax)
	fmt.Printf("%8d\t\t= Max Steps\n", sp.Driver.MaxSteps)
	fmt.Printf("%8.5f\t\t= Gamma\n", sp.EOS.Gamma)
	fmt.Printf("[%d]\t\t\t= Limiter\n", sp.Compressible.Limiter)
	fmt.Printf("[%s]\t\t\t= Riemann Solver\n", sp.Compressible.Riemann)
	fmt.Printf("%8.5f\t\t= Cvisc\n", sp.Compressible.Cvisc)
	fmt.Printf("[%dx%d]\t\t= Mesh\n", sp.Mesh.Nx, sp.Mesh.Ny)
	fmt.Printf("[%s %s %s %s]\t= Boundaries (xl xr yl yr)\n",
		sp.Mesh.XlBoundary, sp.Mesh.XrBoundary, sp.Mesh.YlBoundary, sp.Mesh.YrBoundary)
	fmt.Printf("%8.5f\t\t= Sedov r_init\n", sp.Sedov.RInit)
	fmt.Printf("%8.5f\t\t= Output interval\n", sp.IO.DTOut)
}
