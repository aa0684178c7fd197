package twophase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darcygrid/mpflow/geom2d"
)

func TestLinearLaw(t *testing.T) {
	law := LinearLaw{}
	assert.Equal(t, 0.3, law.Krw(0.3))
	assert.Equal(t, 0.7, law.Krn(0.3))
	// Saturations clamp to the unit interval.
	assert.Equal(t, 0.0, law.Krw(-0.5))
	assert.Equal(t, 1.0, law.Krw(1.5))
}

func TestBrooksCorey(t *testing.T) {
	law := BrooksCorey{Lambda: 2, Swr: 0.2, Snr: 0.2}

	// Below the residual wetting saturation the wetting phase is immobile.
	assert.Equal(t, 0.0, law.Krw(0.2))
	assert.Equal(t, 1.0, law.Krn(0.2))
	// Above 1-Snr the non-wetting phase is immobile.
	assert.Equal(t, 1.0, law.Krw(0.8))
	assert.Equal(t, 0.0, law.Krn(0.8))

	// Midpoint: Se = 0.5, krw = 0.5^4, krn = 0.25*(1-0.5^2).
	assert.InDelta(t, math.Pow(0.5, 4), law.Krw(0.5), 1.e-14)
	assert.InDelta(t, 0.25*(1-math.Pow(0.5, 2)), law.Krn(0.5), 1.e-14)
}

func TestSaturationKind(t *testing.T) {
	assert.Equal(t, 0.3, SaturationW.WettingSaturation(0.3))
	assert.Equal(t, 0.7, SaturationN.WettingSaturation(0.3))
}

func TestConditions(t *testing.T) {
	d := Dirichlet(2.5)
	assert.Equal(t, BCDirichlet, d.Kind)
	assert.False(t, d.HasSaturation)

	ds := DirichletSat(2.5, 0.4)
	assert.True(t, ds.HasSaturation)
	assert.Equal(t, 0.4, ds.Saturation)

	n := Neumann(1, -2)
	assert.Equal(t, BCNeumann, n.Kind)
	assert.Equal(t, 1.0, n.MassFlux[Wetting])
	assert.Equal(t, -2.0, n.MassFlux[Nonwetting])
	assert.Equal(t, [NumPhases]float64{}, NoFlow().MassFlux)
}

func TestBoundarySet(t *testing.T) {
	b := NewBoundarySet()
	b.Set(3, 1, Dirichlet(1))
	c, ok := b.Condition(3, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, c.Pressure)
	_, ok = b.Condition(3, 2)
	assert.False(t, ok)
}

func TestCellState(t *testing.T) {
	var (
		fl = Fluids{ViscosityW: 1, ViscosityN: 2, DensityW: 1000, DensityN: 800}
		s  = NewUniformState(3, geom2d.Isotropic(1.e-10), 0.4, 0.2, fl, LinearLaw{})
	)
	s.Press[1] = 5
	s.Sources[2] = -1

	assert.Equal(t, 1.e-10, s.Permeability(0).XX)
	assert.InDelta(t, 0.6, s.TotalMobility(1), 1.e-14)
	assert.Equal(t, 5.0, s.Pressure(1))
	assert.Equal(t, -1.0, s.Source(2))
	assert.Equal(t, 800.0, s.Density(Nonwetting, 0))
	assert.Equal(t, 1.0, s.Viscosity(Wetting, 0))
	assert.Equal(t, 0.25, s.RelativePermeability(Wetting, 0.25, 0))
	assert.Equal(t, 0.75, s.RelativePermeability(Nonwetting, 0.25, 0))
}
