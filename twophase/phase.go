// Package twophase carries the fluid/rock vocabulary of the two-phase pressure
// equation: phases, boundary conditions, relative-permeability laws and a
// reference per-cell state provider.
package twophase

// Phase indexes the wetting and non-wetting fluids.
type Phase uint8

const (
	Wetting Phase = iota
	Nonwetting
	NumPhases = 2
)

// SaturationKind states which phase saturation is the primary saturation
// variable of the surrounding transport formulation.
type SaturationKind uint8

const (
	SaturationW SaturationKind = iota
	SaturationN
)

// WettingSaturation converts a primary saturation value to the wetting-phase
// saturation.
func (k SaturationKind) WettingSaturation(sat float64) float64 {
	if k == SaturationN {
		return 1 - sat
	}
	return sat
}
