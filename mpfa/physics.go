// Package mpfa reconstructs locally conservative face velocities from a
// cell-centered pressure solution with the Multi-Point Flux Approximation
// O-method. For every interaction region around a mesh vertex it builds a
// small dense linear system coupling up to four half-edge fluxes and four
// cell pressures, eliminates the auxiliary edge potentials, and evaluates the
// resulting transmissibility relation for the two half edges of the home
// cell.
package mpfa

import (
	"github.com/darcygrid/mpflow/geom2d"
	"github.com/darcygrid/mpflow/twophase"
)

// Physics is the rock/fluid oracle. All queries are pure per-cell reads; the
// reconstruction never mutates physics state.
type Physics interface {
	Permeability(cell int) geom2d.Tensor
	TotalMobility(cell int) float64
	Density(p twophase.Phase, cell int) float64
	Viscosity(p twophase.Phase, cell int) float64
	RelativePermeability(p twophase.Phase, satW float64, cell int) float64
	Pressure(cell int) float64
	Source(cell int) float64
}

// BoundaryConditions classifies boundary half edges for the pressure
// equation.
type BoundaryConditions interface {
	Condition(cell, face int) (twophase.Condition, bool)
}
