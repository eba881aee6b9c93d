package Compressible2D

/*
	Uniform structured grid over [0,Xmax] x [0,Ymax] with Nx x Ny interior
	cells and Ng ghost cell rings on every edge. The ghost ring and interior
	share one contiguous buffer of Qx*Qy cells, addressed as i + j*Qx, so the
	reconstruction stencil walks memory with unit stride along x.

	Index conventions follow the interior bounds Ilo..Ihi, Jlo..Jhi
	(inclusive). Interface-centered quantities are stored at the cell whose
	left (or bottom) edge they sit on, so Fx[Ind(i,j)] is the flux through
	the i-1/2 face of cell i.
*/
type Grid2D struct {
	Nx, Ny int // interior cell counts
	Ng     int // ghost ring width
	Qx, Qy int // ghosted extents: Nx+2Ng, Ny+2Ng

	Xmax, Ymax float64
	Dx, Dy     float64

	Ilo, Ihi, Jlo, Jhi int // interior index bounds, inclusive

	x, y []float64 // cell center coordinates over the ghosted extents
}

// NewGrid2D validates the geometry and precomputes cell centers. Ng must be
// at least 2: the traced reconstruction stencil reads two ghost rings.
func NewGrid2D(nx, ny, ng int, xmax, ymax float64) (*Grid2D, error) {
	if nx <= 0 || ny <= 0 {
		return nil, configError("grid dimensions must be positive, have %d x %d", nx, ny)
	}
	if xmax <= 0 || ymax <= 0 {
		return nil, configError("grid extents must be positive, have %g x %g", xmax, ymax)
	}
	if ng < 2 {
		return nil, configError("need at least 2 ghost rings for the reconstruction stencil, have %d", ng)
	}
	g := &Grid2D{
		Nx: nx, Ny: ny, Ng: ng,
		Qx: nx + 2*ng, Qy: ny + 2*ng,
		Xmax: xmax, Ymax: ymax,
		Dx: xmax / float64(nx), Dy: ymax / float64(ny),
		Ilo: ng, Ihi: ng + nx - 1,
		Jlo: ng, Jhi: ng + ny - 1,
	}
	g.x = make([]float64, g.Qx)
	g.y = make([]float64, g.Qy)
	for i := 0; i < g.Qx; i++ {
		g.x[i] = (float64(i-g.Ilo) + 0.5) * g.Dx
	}
	for j := 0; j < g.Qy; j++ {
		g.y[j] = (float64(j-g.Jlo) + 0.5) * g.Dy
	}
	return g, nil
}

func (g *Grid2D) Ind(i, j int) int { return i + j*g.Qx }

// X and Y return cell center coordinates, valid across the ghost margin.
func (g *Grid2D) X(i int) float64 { return g.x[i] }
func (g *Grid2D) Y(j int) float64 { return g.y[j] }

// CellIndex maps a physical position to the containing cell. Positions
// outside the domain land in the ghost margin (clamped to the buffer).
func (g *Grid2D) CellIndex(x, y float64) (i, j int) {
	i = g.Ilo + int(x/g.Dx)
	j = g.Jlo + int(y/g.Dy)
	if i < 0 {
		i = 0
	}
	if i > g.Qx-1 {
		i = g.Qx - 1
	}
	if j < 0 {
		j = 0
	}
	if j > g.Qy-1 {
		j = g.Qy - 1
	}
	return
}

// NumCells is the full ghosted buffer size.
func (g *Grid2D) NumCells() int { return g.Qx * g.Qy }
