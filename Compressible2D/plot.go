package Compressible2D

import (
	"fmt"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
)

type ChartState struct {
	chart *chart2d.Chart2D
	vs    *geometry.VertexScalar
	gm    *geometry.TriMesh
}

// meshForPlot triangulates the interior cell centers, two triangles per
// cell quad, for the shaded field renderer.
func (s *Solver) meshForPlot() (gm *geometry.TriMesh) {
	var (
		g      = s.Grid
		nx, ny = g.Nx, g.Ny
	)
	gm = &geometry.TriMesh{
		XY:       make([]float32, 2*nx*ny),
		TriVerts: make([][3]int64, 2*(nx-1)*(ny-1)),
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v := i + j*nx
			gm.XY[2*v] = float32(g.X(g.Ilo + i))
			gm.XY[2*v+1] = float32(g.Y(g.Jlo + j))
		}
	}
	var k int
	for j := 0; j < ny-1; j++ {
		for i := 0; i < nx-1; i++ {
			v00 := int64(i + j*nx)
			v10 := v00 + 1
			v01 := v00 + int64(nx)
			v11 := v01 + 1
			gm.TriVerts[k] = [3]int64{v00, v10, v11}
			k++
			gm.TriVerts[k] = [3]int64{v00, v11, v01}
			k++
		}
	}
	return
}

// PlotSolution renders the density field on the interactive chart. Passing
// fMin == fMax == 0 autoscales to the current frame.
func (s *Solver) PlotSolution(fMin, fMax float64) {
	var (
		g = s.Grid
	)
	if s.chart.gm == nil {
		s.chart.gm = s.meshForPlot()
		s.chart.chart = chart2d.NewChart2D(0, float32(g.Xmax), 0, float32(g.Ymax),
			1024, 1024, utils2.WHITE, utils2.BLACK)
		s.chart.vs = &geometry.VertexScalar{
			TMesh:       s.chart.gm,
			FieldValues: make([]float32, g.Nx*g.Ny),
		}
	}
	var (
		field  = s.chart.vs.FieldValues
		mn, mx float32
	)
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			f := float32(s.Q[Dens][g.Ind(g.Ilo+i, g.Jlo+j)])
			field[i+j*g.Nx] = f
			if i == 0 && j == 0 {
				mn, mx = f, f
			}
			if f < mn {
				mn = f
			}
			if f > mx {
				mx = f
			}
		}
	}
	if fMin == 0 && fMax == 0 {
		fMin, fMax = float64(mn), float64(mx)
		if fMax-fMin < 1.e-10 {
			fMax = fMin + 1.e-10
		}
	}
	fmt.Printf(" Plot> density min,max = %8.5f,%8.5f\n", mn, mx)
	s.chart.chart.AddShadedVertexScalar(s.chart.vs, float32(fMin), float32(fMax))
	s.chart.chart.AddTriMesh(*s.chart.gm)
}
