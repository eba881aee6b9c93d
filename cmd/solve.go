/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/hydrosolve/gofv2d/Compressible2D"
	"github.com/hydrosolve/gofv2d/InputParameters"
)

type RunOptions struct {
	ParamsFile  string
	RestartFile string
	Graph       bool
	Procs       int
	Profile     bool
	Delay       time.Duration
}

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the point explosion simulation from a YAML parameters file",
	Long: `Run the point explosion simulation from a YAML parameters file,
writing restartable snapshot files at the configured output interval`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ro  = &RunOptions{}
		)
		if ro.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		ro.RestartFile, _ = cmd.Flags().GetString("restart")
		ro.Graph, _ = cmd.Flags().GetBool("graph")
		ro.Procs, _ = cmd.Flags().GetInt("procs")
		ro.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		ro.Delay = time.Duration(dr) * time.Millisecond
		ip := processInput(ro)
		RunSolve(ro, ip)
	},
}

func processInput(ro *RunOptions) (ip *InputParameters.SimParameters) {
	var (
		err error
	)
	if len(ro.ParamsFile) == 0 {
		err := fmt.Errorf("must supply an input parameters file (-I, --inputParametersFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Sedov point explosion"
driver:
  max_steps: 10000
  tmax: 0.1
  cfl: 0.8
compressible:
  limiter: 2      # 0=centered, 1=minmod, 2=MC
  cvisc: 0.1
  riemann: HLLC   # or CGF
  use_flattening: true
io:
  basename: sedov
  dt_out: 0.01
eos:
  gamma: 1.4
mesh:
  nx: 128
  ny: 128
  xmax: 1.0
  ymax: 1.0
  xl_boundary: outflow
  xr_boundary: outflow
  yl_boundary: outflow
  yr_boundary: outflow
sedov:
  r_init: 0.01
vis:
  dovis: false
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(ro.ParamsFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.SimParameters{}
	if err = ip.Parse(data); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file of simulation parameters, run with no arguments for an example")
	SolveCmd.Flags().StringP("restart", "R", "", "snapshot file to restart from")
	SolveCmd.Flags().BoolP("graph", "g", false, "display the density field while computing the solution")
	SolveCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay after each plotted frame")
	SolveCmd.Flags().IntP("procs", "p", 0, "parallel degree, 0 selects the number of CPUs")
	SolveCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}

func RunSolve(ro *RunOptions, ip *InputParameters.SimParameters) {
	var (
		err error
		s   *Compressible2D.Solver
	)
	if ro.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	ip.Print()
	if s, err = Compressible2D.NewSolver(ip, ro.Procs); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	if len(ro.RestartFile) != 0 {
		var st *Compressible2D.SimState
		if st, err = Compressible2D.ReadCheckpoint(ro.RestartFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = s.Restore(st); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		fmt.Printf("Restarted from %s at step %d, t = %g\n",
			ro.RestartFile, s.Step, s.Time)
	} else {
		if err = s.InitSedov(ip.Sedov.RInit); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	var nOut int
	doVis := ro.Graph || ip.Vis.Dovis
	snap := func(st *Compressible2D.SimState) error {
		fileName := fmt.Sprintf("%s_%04d.chk", ip.IO.Basename, nOut)
		nOut++
		if werr := Compressible2D.WriteCheckpoint(fileName, st); werr != nil {
			return werr
		}
		fmt.Printf("Wrote %s at step %d, t = %g\n", fileName, st.Step, st.Time)
		if doVis {
			s.PlotSolution(0, 0)
			time.Sleep(ro.Delay)
		}
		return nil
	}
	if err = s.Solve(snap); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}
