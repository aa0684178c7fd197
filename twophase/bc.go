package twophase

// BCKind classifies a boundary face for the pressure equation.
type BCKind uint8

const (
	BCDirichlet BCKind = iota
	BCNeumann
)

// Condition is the boundary data attached to one boundary half edge.
//
// Dirichlet faces carry a pressure value and, optionally, a saturation value;
// when the saturation is present the flux core rebuilds the boundary total
// mobility from it instead of reusing the interior cell's mobility.
// Neumann faces carry per-phase mass rates per unit face area, converted to a
// volumetric rate through the adjacent cell's phase densities.
type Condition struct {
	Kind          BCKind
	Pressure      float64
	Saturation    float64
	HasSaturation bool
	MassFlux      [NumPhases]float64
}

// Dirichlet builds a pressure-only Dirichlet condition.
func Dirichlet(pressure float64) Condition {
	return Condition{Kind: BCDirichlet, Pressure: pressure}
}

// DirichletSat builds a Dirichlet condition carrying a saturation value.
func DirichletSat(pressure, saturation float64) Condition {
	return Condition{Kind: BCDirichlet, Pressure: pressure, Saturation: saturation, HasSaturation: true}
}

// Neumann builds a Neumann condition from per-phase mass rates.
func Neumann(wetting, nonwetting float64) Condition {
	return Condition{Kind: BCNeumann, MassFlux: [NumPhases]float64{wetting, nonwetting}}
}

// NoFlow is the zero-Neumann condition.
func NoFlow() Condition { return Neumann(0, 0) }

type faceKey struct{ cell, face int }

// BoundarySet maps (cell, local face) pairs to boundary conditions.
type BoundarySet struct {
	conds map[faceKey]Condition
}

func NewBoundarySet() *BoundarySet {
	return &BoundarySet{conds: make(map[faceKey]Condition)}
}

func (b *BoundarySet) Set(cell, face int, c Condition) {
	b.conds[faceKey{cell, face}] = c
}

// Condition returns the condition registered for the face, if any.
func (b *BoundarySet) Condition(cell, face int) (Condition, bool) {
	c, ok := b.conds[faceKey{cell, face}]
	return c, ok
}
