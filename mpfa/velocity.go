package mpfa

import (
	"github.com/darcygrid/mpflow/geom2d"
	"github.com/darcygrid/mpflow/grid"
	"github.com/darcygrid/mpflow/twophase"
)

// Reconstructor rebuilds a cell-face velocity field from a cell-centered
// pressure solution with the multi-point flux approximation O-method. Each
// interior half edge is touched from both of its adjacent interaction
// regions, each contributing half the face flux.
type Reconstructor struct {
	Mesh    *grid.Mesh
	Phys    Physics
	BCs     BoundaryConditions
	SatKind twophase.SaturationKind
}

func NewReconstructor(msh *grid.Mesh, phys Physics, bcs BoundaryConditions, satKind twophase.SaturationKind) *Reconstructor {
	if msh == nil || phys == nil || bcs == nil {
		panic("mpfa: Reconstructor requires mesh, physics and boundary conditions")
	}
	return &Reconstructor{
		Mesh:    msh,
		Phys:    phys,
		BCs:     bcs,
		SatKind: satKind,
	}
}

// VelocityField holds the reconstructed total velocity per cell face and the
// upwind-ready per-phase potentials derived from it. In the gravity-free
// total-velocity formulation both phase potentials equal the projection of
// the face velocity on the outward unit normal; downstream upwinding only
// consumes their sign.
type VelocityField struct {
	// Vel[c][f] is the total Darcy velocity at face f of cell c.
	Vel [][]geom2d.Vec2
	// PotentialW[c][f] and PotentialN[c][f] are the phase potentials.
	PotentialW [][]float64
	PotentialN [][]float64
}

func NewVelocityField(msh *grid.Mesh) *VelocityField {
	vf := &VelocityField{
		Vel:        make([][]geom2d.Vec2, msh.NumCells()),
		PotentialW: make([][]float64, msh.NumCells()),
		PotentialN: make([][]float64, msh.NumCells()),
	}
	for c := range msh.Cells {
		n := len(msh.Cells[c].Faces)
		vf.Vel[c] = make([]geom2d.Vec2, n)
		vf.PotentialW[c] = make([]float64, n)
		vf.PotentialN[c] = make([]float64, n)
	}
	return vf
}

// Potential returns the phase potential at face f of cell c.
func (vf *VelocityField) Potential(p twophase.Phase, c, f int) float64 {
	if p == twophase.Nonwetting {
		return vf.PotentialN[c][f]
	}
	return vf.PotentialW[c][f]
}

// accumulate adds one region's half-edge flux contribution to a cell face.
// Interior faces are accumulated from two regions and Neumann faces once for
// the full face, so contributions always sum to the face-averaged velocity.
func (vf *VelocityField) accumulate(cell, face int, n geom2d.Vec2, flux, faceVol float64) {
	vf.Vel[cell][face] = vf.Vel[cell][face].Add(n.Scale(flux / faceVol))
}

// Reconstruct sweeps every cell face, assembles the owning interaction
// region, and returns the assembled velocity field. The first configuration
// error aborts the sweep.
func (rc *Reconstructor) Reconstruct() (*VelocityField, error) {
	vf := NewVelocityField(rc.Mesh)
	if err := rc.ReconstructInto(vf); err != nil {
		return nil, err
	}
	return vf, nil
}

// ReconstructInto overwrites vf with the velocity field of the current
// pressure state. Repeated calls on the same field are equivalent to one.
func (rc *Reconstructor) ReconstructInto(vf *VelocityField) error {
	for c := range rc.Mesh.Cells {
		cell := &rc.Mesh.Cells[c]
		// All contributions to this cell's faces are produced while it
		// is the home cell, so resetting here keeps the sweep idempotent.
		for f := range cell.Faces {
			vf.Vel[c][f] = geom2d.Vec2{}
			vf.PotentialW[c][f] = 0
			vf.PotentialN[c][f] = 0
		}
		for f := range cell.Faces {
			reg, err := rc.locate(cell, f)
			if err != nil {
				return err
			}
			s1, s3, err := rc.assembleRegion(reg)
			if err != nil {
				return err
			}
			if s1 != nil {
				vf.accumulate(c, reg.Face12.Local, reg.Face12.Normal,
					s1.Evaluate(rc.Phys), reg.Face12.Vol)
			}
			if s3 != nil {
				vf.accumulate(c, reg.Face13.Local, reg.Face13.Normal,
					s3.Evaluate(rc.Phys), reg.Face13.Vol)
			}
		}
		for f := range cell.Faces {
			pot := vf.Vel[c][f].Dot(cell.Faces[f].Normal)
			vf.PotentialW[c][f] = pot
			vf.PotentialN[c][f] = pot
		}
	}
	return nil
}
