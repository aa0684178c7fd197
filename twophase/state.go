package twophase

import (
	"github.com/darcygrid/mpflow/geom2d"
)

// Fluids holds the constant phase properties of an incompressible,
// isothermal fluid pair.
type Fluids struct {
	ViscosityW, ViscosityN float64
	DensityW, DensityN     float64
}

func (f Fluids) Viscosity(p Phase) float64 {
	if p == Nonwetting {
		return f.ViscosityN
	}
	return f.ViscosityW
}

func (f Fluids) Density(p Phase) float64 {
	if p == Nonwetting {
		return f.DensityN
	}
	return f.DensityW
}

// CellState is the reference physics provider: per-cell rock and fluid
// attributes plus the cell-centered pressure solution supplied by the outer
// pressure solve. It is read-only to the flux core.
type CellState struct {
	Perm      []geom2d.Tensor
	MobW      []float64
	MobN      []float64
	Press     []float64
	Sources   []float64
	FluidPair Fluids
	Law       MaterialLaw
}

// NewUniformState allocates state for n cells with permeability K everywhere
// and the given phase mobilities.
func NewUniformState(n int, K geom2d.Tensor, mobW, mobN float64, fl Fluids, law MaterialLaw) (s *CellState) {
	s = &CellState{
		Perm:      make([]geom2d.Tensor, n),
		MobW:      make([]float64, n),
		MobN:      make([]float64, n),
		Press:     make([]float64, n),
		Sources:   make([]float64, n),
		FluidPair: fl,
		Law:       law,
	}
	for i := 0; i < n; i++ {
		s.Perm[i] = K
		s.MobW[i] = mobW
		s.MobN[i] = mobN
	}
	return
}

func (s *CellState) Permeability(cell int) geom2d.Tensor { return s.Perm[cell] }

// TotalMobility is the sum of the phase relative mobilities.
func (s *CellState) TotalMobility(cell int) float64 { return s.MobW[cell] + s.MobN[cell] }

func (s *CellState) Density(p Phase, cell int) float64 { return s.FluidPair.Density(p) }

func (s *CellState) Viscosity(p Phase, cell int) float64 { return s.FluidPair.Viscosity(p) }

// RelativePermeability evaluates the cell's material law at the given wetting
// saturation.
func (s *CellState) RelativePermeability(p Phase, satW float64, cell int) float64 {
	if p == Nonwetting {
		return s.Law.Krn(satW)
	}
	return s.Law.Krw(satW)
}

func (s *CellState) Pressure(cell int) float64 { return s.Press[cell] }

func (s *CellState) Source(cell int) float64 { return s.Sources[cell] }
