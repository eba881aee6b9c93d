package Compressible2D

import (
	"encoding/gob"
	"os"

	"github.com/google/renameio/v2"
)

// SimState is the restartable snapshot of a run: the full conserved state
// including ghost cells, plus enough mesh shape to validate a restore.
type SimState struct {
	Time       float64
	Step       int
	Nx, Ny, Ng int
	Q          [4][]float64
}

// SnapshotFunc receives simulation snapshots during Solve.
type SnapshotFunc func(st *SimState) error

// State deep-copies the current solution into a SimState.
func (s *Solver) State() (st *SimState) {
	var (
		g = s.Grid
	)
	st = &SimState{
		Time: s.Time,
		Step: s.Step,
		Nx:   g.Nx,
		Ny:   g.Ny,
		Ng:   g.Ng,
	}
	qc := s.Q.Copy()
	for n := 0; n < 4; n++ {
		st.Q[n] = qc[n]
	}
	return
}

// Restore loads a snapshot into the solver. The snapshot mesh must match
// the solver mesh exactly.
func (s *Solver) Restore(st *SimState) error {
	var (
		g = s.Grid
	)
	if st.Nx != g.Nx || st.Ny != g.Ny || st.Ng != g.Ng {
		return configError(
			"restart mesh %dx%d (ng=%d) does not match configured mesh %dx%d (ng=%d)",
			st.Nx, st.Ny, st.Ng, g.Nx, g.Ny, g.Ng)
	}
	for n := 0; n < 4; n++ {
		if len(st.Q[n]) != g.NumCells() {
			return configError("restart field %s has %d cells, want %d",
				consNames[n], len(st.Q[n]), g.NumCells())
		}
		copy(s.Q[n], st.Q[n])
	}
	s.Time = st.Time
	s.Step = st.Step
	s.dtPrev = 0 // regrow the timestep from the CFL bound
	return nil
}

// WriteCheckpoint writes st to fileName atomically, so a crash mid-write
// never leaves a truncated checkpoint behind.
func WriteCheckpoint(fileName string, st *SimState) (err error) {
	var (
		t *renameio.PendingFile
	)
	if t, err = renameio.TempFile("", fileName); err != nil {
		return
	}
	defer t.Cleanup()
	if err = gob.NewEncoder(t).Encode(st); err != nil {
		return
	}
	err = t.CloseAtomicallyReplace()
	return
}

func ReadCheckpoint(fileName string) (st *SimState, err error) {
	var (
		fp *os.File
	)
	if fp, err = os.Open(fileName); err != nil {
		return
	}
	defer fp.Close()
	st = &SimState{}
	err = gob.NewDecoder(fp).Decode(st)
	return
}
