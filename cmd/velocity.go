/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/darcygrid/mpflow/InputParameters"
	"github.com/darcygrid/mpflow/geom2d"
	"github.com/darcygrid/mpflow/grid"
	"github.com/darcygrid/mpflow/mpfa"
	"github.com/darcygrid/mpflow/twophase"
)

type VelocityModel struct {
	CaseFile string
	Tol      float64
	Profile  bool
}

// VelocityCmd represents the velocity command
var VelocityCmd = &cobra.Command{
	Use:   "velocity",
	Short: "Reconstruct face velocities from a pressure case file",
	Long: `
Reads a YAML case description, builds the quadrilateral grid and the
two-phase cell state, reconstructs the face velocity field and audits the
per-cell mass balance.

mpflow velocity -I case.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		vm := &VelocityModel{}
		vm.CaseFile, _ = cmd.Flags().GetString("caseFile")
		vm.Tol, _ = cmd.Flags().GetFloat64("tolerance")
		vm.Profile, _ = cmd.Flags().GetBool("profile")
		cp := processCaseInput(vm)
		if vm.Profile {
			defer profile.Start().Stop()
		}
		if err := RunVelocity(vm, cp); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func processCaseInput(vm *VelocityModel) (cp *InputParameters.CaseParameters) {
	if len(vm.CaseFile) == 0 {
		err := fmt.Errorf("must supply a case file (-I, --caseFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Linear Drawdown"
Nx: 10
Ny: 10
Lx: 1.
Ly: 1.
PermXX: 1.
PermYY: 1.
MobilityW: 0.5
MobilityN: 0.5
ViscosityW: 1.
ViscosityN: 1.
DensityW: 1000.
DensityN: 1000.
P0: 1.
GradX: -1.
BCs:
  Dirichlet:
      West: 1.
      East: 0.
  Neumann:
      South: 0.
      North: 0.
########################################
`
		fmt.Printf("Example case file contents:%s", exampleFile)
		os.Exit(1)
	}
	data, err := ioutil.ReadFile(vm.CaseFile)
	if err != nil {
		fmt.Printf("unable to read case file [%s]: %s\n", vm.CaseFile, err.Error())
		os.Exit(1)
	}
	cp = &InputParameters.CaseParameters{}
	if err = cp.Parse(data); err != nil {
		fmt.Printf("unable to parse case file [%s]: %s\n", vm.CaseFile, err.Error())
		os.Exit(1)
	}
	cp.Print()
	return
}

// sideFaces maps the case file's domain side names to local face indices for
// each face-ordering family.
var sideFaces = map[grid.ElementKind]map[string]int{
	grid.KindStructured: {
		"West": grid.FaceWest, "East": grid.FaceEast,
		"South": grid.FaceSouth, "North": grid.FaceNorth,
	},
	grid.KindPolygonal: {
		"South": 0, "East": 1, "North": 2, "West": 3,
	},
}

// BuildCase turns the parsed parameters into the mesh, cell state and
// boundary set of one reconstruction run.
func BuildCase(cp *InputParameters.CaseParameters) (*grid.Mesh, *twophase.CellState, *twophase.BoundarySet, error) {
	var msh *grid.Mesh
	if cp.Shear != 0 {
		msh = grid.NewSheared2D(cp.Nx, cp.Ny, cp.Lx, cp.Ly, cp.Shear)
	} else {
		msh = grid.NewCartesian2D(cp.Nx, cp.Ny, cp.Lx, cp.Ly)
	}
	var (
		K  = geom2d.Tensor{XX: cp.PermXX, XY: cp.PermXY, YX: cp.PermXY, YY: cp.PermYY}
		fl = twophase.Fluids{
			ViscosityW: cp.ViscosityW, ViscosityN: cp.ViscosityN,
			DensityW: cp.DensityW, DensityN: cp.DensityN,
		}
		state = twophase.NewUniformState(msh.NumCells(), K, cp.MobilityW, cp.MobilityN, fl, twophase.LinearLaw{})
	)
	for c := range msh.Cells {
		x := msh.Cells[c].Center
		state.Press[c] = cp.P0 + cp.GradX*x.X + cp.GradY*x.Y
	}
	for c, q := range cp.Sources {
		if c < 0 || c >= msh.NumCells() {
			return nil, nil, nil, fmt.Errorf("source cell %d outside the grid", c)
		}
		state.Sources[c] = q
	}

	var (
		faces = sideFaces[msh.Kind]
		bcs   = twophase.NewBoundarySet()
		set   = func(side string, cond twophase.Condition) {
			f := faces[side]
			for c := range msh.Cells {
				if msh.Face(c, f).Boundary() {
					bcs.Set(c, f, cond)
				}
			}
		}
	)
	for side, p := range cp.BCs["Dirichlet"] {
		set(side, twophase.Dirichlet(p))
	}
	for side, q := range cp.BCs["Neumann"] {
		// The case file carries one volumetric rate, assigned to the
		// wetting phase as a mass rate through its density.
		set(side, twophase.Neumann(q*cp.DensityW, 0))
	}
	return msh, state, bcs, nil
}

func RunVelocity(vm *VelocityModel, cp *InputParameters.CaseParameters) error {
	msh, state, bcs, err := BuildCase(cp)
	if err != nil {
		return err
	}
	rc := mpfa.NewReconstructor(msh, state, bcs, twophase.SaturationW)
	vf, err := rc.Reconstruct()
	if err != nil {
		return err
	}
	rep := rc.Audit(vf, vm.Tol)
	fmt.Printf("reconstructed %d cells, max relative imbalance %8.5g\n",
		msh.NumCells(), rep.MaxRelative)
	if !rep.Conservative() {
		return fmt.Errorf("%d cells violate mass conservation", len(rep.Violations))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(VelocityCmd)
	VelocityCmd.Flags().StringP("caseFile", "I", "", "YAML case file describing grid, rock and boundary conditions")
	VelocityCmd.Flags().Float64P("tolerance", "t", 1.e-8, "relative per-cell mass balance tolerance")
	VelocityCmd.Flags().BoolP("profile", "p", false, "write a CPU profile of the reconstruction")
}
