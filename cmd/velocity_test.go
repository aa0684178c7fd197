package cmd

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/darcygrid/mpflow/InputParameters"
	"github.com/darcygrid/mpflow/grid"
)

func TestRunVelocity(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Linear Drawdown
Nx: 4
Ny: 4
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
`)
	var input InputParameters.CaseParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	// Check the Dirichlet west side and the no-flow walls
	assert.Equal(t, input.BCs["Dirichlet"]["West"], 1.)
	assert.Equal(t, input.BCs["Neumann"]["South"], 0.)
	input.Print()

	msh, state, bcs, err := BuildCase(&input)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, msh.NumCells(), 16)
	// Pressure sampled at the first cell center, 1 - 0.125
	assert.Equal(t, state.Press[0], 0.875)
	c, ok := bcs.Condition(0, grid.FaceWest)
	assert.Equal(t, ok, true)
	assert.Equal(t, c.Pressure, 1.)

	vm := &VelocityModel{Tol: 1.e-8}
	if err = RunVelocity(vm, &input); err != nil {
		panic(err)
	}
}

func TestCaseValidation(t *testing.T) {
	var input InputParameters.CaseParameters
	err := input.Parse([]byte("Title: Broken\nNx: 0\nNy: 1\nLx: 1.\nLy: 1.\n"))
	if err == nil {
		panic("expected a validation error for Nx = 0")
	}
	err = input.Parse([]byte("Nx: 1\nNy: 1\nLx: 1.\nLy: 1.\nBCs:\n  Robin:\n    West: 1.\n"))
	if err == nil {
		panic("expected a validation error for an unknown BC type")
	}
}
