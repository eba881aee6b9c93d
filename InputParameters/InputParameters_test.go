package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goodInput = `
Title: "Sedov point explosion"
driver:
  max_steps: 5000
  tmax: 0.1
  cfl: 0.8
compressible:
  limiter: 2
  cvisc: 0.1
  riemann: HLLC
  use_flattening: true
io:
  basename: sedov
  dt_out: 0.01
eos:
  gamma: 1.4
mesh:
  nx: 64
  ny: 64
  xmax: 1.0
  ymax: 1.0
  xl_boundary: outflow
  xr_boundary: outflow
  yl_boundary: outflow
  yr_boundary: outflow
sedov:
  r_init: 0.01
`

func TestParse(t *testing.T) {
	ip := &SimParameters{}
	require.NoError(t, ip.Parse([]byte(goodInput)))
	assert.Equal(t, "Sedov point explosion", ip.Title)
	assert.Equal(t, 0.8, ip.Driver.CFL)
	assert.Equal(t, 2, ip.Compressible.Limiter)
	assert.True(t, ip.Compressible.UseFlattening)
	assert.Equal(t, 64, ip.Mesh.Nx)
	assert.Equal(t, 0.01, ip.Sedov.RInit)
	// optional keys take their defaults
	assert.Equal(t, 0.01, ip.Driver.InitTstepFactor)
	assert.Equal(t, 2.0, ip.Driver.MaxDTChange)
	assert.Equal(t, "HLLC", ip.Compressible.Riemann)
}

func TestValidateRejections(t *testing.T) {
	mutate := func(f func(ip *SimParameters)) error {
		ip := &SimParameters{}
		require.NoError(t, ip.Parse([]byte(goodInput)))
		f(ip)
		return ip.Validate()
	}
	cases := []struct {
		name string
		f    func(ip *SimParameters)
	}{
		{"zero tmax", func(ip *SimParameters) { ip.Driver.Tmax = 0 }},
		{"cfl above one", func(ip *SimParameters) { ip.Driver.CFL = 1.5 }},
		{"negative cfl", func(ip *SimParameters) { ip.Driver.CFL = -0.1 }},
		{"dt growth below one", func(ip *SimParameters) { ip.Driver.MaxDTChange = 0.5 }},
		{"unknown limiter", func(ip *SimParameters) { ip.Compressible.Limiter = 3 }},
		{"negative cvisc", func(ip *SimParameters) { ip.Compressible.Cvisc = -1 }},
		{"unknown riemann", func(ip *SimParameters) { ip.Compressible.Riemann = "roe" }},
		{"missing basename", func(ip *SimParameters) { ip.IO.Basename = "" }},
		{"zero dt_out", func(ip *SimParameters) { ip.IO.DTOut = 0 }},
		{"gamma at one", func(ip *SimParameters) { ip.EOS.Gamma = 1 }},
		{"zero cells", func(ip *SimParameters) { ip.Mesh.Nx = 0 }},
		{"bad boundary name", func(ip *SimParameters) { ip.Mesh.XlBoundary = "open" }},
		{"unpaired periodic", func(ip *SimParameters) { ip.Mesh.XlBoundary = "periodic" }},
		{"zero r_init", func(ip *SimParameters) { ip.Sedov.RInit = 0 }},
	}
	for _, tc := range cases {
		err := mutate(tc.f)
		assert.Error(t, err, tc.name)
		if err != nil {
			assert.Contains(t, err.Error(), "configuration error", tc.name)
		}
	}
}

func TestParseBadYAML(t *testing.T) {
	ip := &SimParameters{}
	assert.Error(t, ip.Parse([]byte("driver: [not, a, mapping]")))
}
