package mpfa

import (
	"fmt"

	"github.com/darcygrid/mpflow/geom2d"
	"github.com/darcygrid/mpflow/grid"
	"github.com/darcygrid/mpflow/twophase"
)

// RegionKind tags an interaction region by the boundary-condition combination
// of its four sub-faces. Each kind has exactly one transmissibility handler.
type RegionKind uint8

const (
	// Four interior cells around the corner.
	regionInterior RegionKind = iota
	// Home face interior, successor face on the boundary; the second letter
	// names the successor condition, the third the outer face of cell 2.
	regionInteriorNN
	regionInteriorND
	regionInteriorDN
	regionInteriorDD
	// Home face on a Neumann boundary.
	regionNeumannBD // successor boundary, Dirichlet
	regionNeumannBN // successor boundary, Neumann: only the direct term
	regionNeumannIN // successor interior, cell 3's outer face Neumann
	regionNeumannID // successor interior, cell 3's outer face Dirichlet
	// Home face on a Dirichlet boundary.
	regionDirichletBD
	regionDirichletBN
	regionDirichletID
	regionDirichletIN
)

// Region is the ephemeral grouping of 2-4 cells and 2-4 local faces sharing
// one corner. It is identified by the home cell and the face pair and never
// persisted across evaluations.
type Region struct {
	Kind   RegionKind
	Home   *grid.Cell
	Face12 *grid.HalfEdge // the home face
	Face13 *grid.HalfEdge // its cyclic successor around the home cell
	Corner geom2d.Vec2

	Cell2, Cell3, Cell4 int            // -1 where the cell does not exist
	Face24, Face34      *grid.HalfEdge // outer faces of cells 2 and 3 at the corner

	// Conditions of the boundary sub-faces, nil where interior.
	BC12, BC13, BC24, BC34 *twophase.Condition
}

// locate pairs cell c's local face with its cyclic successor, finds the
// shared corner, completes the region with the neighboring cells and outer
// faces, and classifies it. Unsupported topology or missing boundary data is
// a configuration error.
func (rc *Reconstructor) locate(c *grid.Cell, face int) (reg *Region, err error) {
	next, err := grid.Successor(rc.Mesh.Kind, face, len(c.Faces))
	if err != nil {
		return nil, err
	}
	reg = &Region{
		Home:   c,
		Face12: &c.Faces[face],
		Face13: &c.Faces[next],
		Cell2:  -1, Cell3: -1, Cell4: -1,
	}
	corner, ok := grid.SharedCorner(reg.Face12, reg.Face13)
	if !ok {
		return nil, fmt.Errorf("mpfa: cell %d faces %d,%d share no corner", c.ID, face, next)
	}
	reg.Corner = corner
	if err = rc.complete(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func (rc *Reconstructor) complete(reg *Region) (err error) {
	if !reg.Face12.Boundary() {
		reg.Cell2 = reg.Face12.Neighbor
		if !reg.Face13.Boundary() {
			return rc.completeInterior(reg)
		}
		return rc.completeSuccessorBoundary(reg)
	}
	return rc.completeHomeBoundary(reg)
}

// completeInterior resolves cell 4 as the common neighbor of cells 2 and 3
// that is not the home cell, and the two outer interior faces at the corner.
func (rc *Reconstructor) completeInterior(reg *Region) error {
	var (
		c2 = &rc.Mesh.Cells[reg.Cell2]
		c3 *grid.Cell
	)
	reg.Cell3 = reg.Face13.Neighbor
	c3 = &rc.Mesh.Cells[reg.Cell3]

	for i := range c2.Faces {
		fa := &c2.Faces[i]
		if fa.Boundary() || fa.Neighbor == reg.Home.ID {
			continue
		}
		for j := range c3.Faces {
			fb := &c3.Faces[j]
			if fb.Boundary() || fb.Neighbor == reg.Home.ID {
				continue
			}
			if fa.Neighbor == fb.Neighbor {
				reg.Cell4 = fa.Neighbor
			}
		}
	}
	if reg.Cell4 < 0 {
		return fmt.Errorf("mpfa: no fourth cell around corner (%g,%g) of cell %d",
			reg.Corner.X, reg.Corner.Y, reg.Home.ID)
	}
	reg.Face24 = interiorFaceAtCorner(c2, reg.Home.ID, reg.Corner)
	reg.Face34 = interiorFaceAtCorner(c3, reg.Home.ID, reg.Corner)
	if reg.Face24 == nil || reg.Face34 == nil {
		return fmt.Errorf("mpfa: incomplete interior interaction region at corner (%g,%g) of cell %d",
			reg.Corner.X, reg.Corner.Y, reg.Home.ID)
	}
	reg.Kind = regionInterior
	return nil
}

// completeSuccessorBoundary handles an interior home face whose successor
// lies on the boundary: cell 2's outer face at the corner is a boundary face.
func (rc *Reconstructor) completeSuccessorBoundary(reg *Region) (err error) {
	c2 := &rc.Mesh.Cells[reg.Cell2]
	reg.Face24 = boundaryFaceAtCorner(c2, reg.Corner)
	if reg.Face24 == nil {
		return fmt.Errorf("mpfa: no boundary face of cell %d at corner (%g,%g)",
			c2.ID, reg.Corner.X, reg.Corner.Y)
	}
	if reg.BC13, err = rc.condition(reg.Home.ID, reg.Face13.Local); err != nil {
		return err
	}
	if reg.BC24, err = rc.condition(c2.ID, reg.Face24.Local); err != nil {
		return err
	}
	switch {
	case reg.BC13.Kind == twophase.BCNeumann && reg.BC24.Kind == twophase.BCNeumann:
		reg.Kind = regionInteriorNN
	case reg.BC13.Kind == twophase.BCNeumann:
		reg.Kind = regionInteriorND
	case reg.BC24.Kind == twophase.BCNeumann:
		reg.Kind = regionInteriorDN
	default:
		reg.Kind = regionInteriorDD
	}
	return nil
}

// completeHomeBoundary handles a home face on the boundary; the successor may
// be a boundary face as well or lead to cell 3 with a boundary outer face.
func (rc *Reconstructor) completeHomeBoundary(reg *Region) (err error) {
	if reg.BC12, err = rc.condition(reg.Home.ID, reg.Face12.Local); err != nil {
		return err
	}
	neumannHome := reg.BC12.Kind == twophase.BCNeumann

	if reg.Face13.Boundary() {
		if reg.BC13, err = rc.condition(reg.Home.ID, reg.Face13.Local); err != nil {
			return err
		}
		switch {
		case neumannHome && reg.BC13.Kind == twophase.BCDirichlet:
			reg.Kind = regionNeumannBD
		case neumannHome:
			reg.Kind = regionNeumannBN
		case reg.BC13.Kind == twophase.BCDirichlet:
			reg.Kind = regionDirichletBD
		default:
			reg.Kind = regionDirichletBN
		}
		return nil
	}

	reg.Cell3 = reg.Face13.Neighbor
	c3 := &rc.Mesh.Cells[reg.Cell3]
	reg.Face34 = boundaryFaceAtCorner(c3, reg.Corner)
	if reg.Face34 == nil {
		return fmt.Errorf("mpfa: no boundary face of cell %d at corner (%g,%g)",
			c3.ID, reg.Corner.X, reg.Corner.Y)
	}
	if reg.BC34, err = rc.condition(c3.ID, reg.Face34.Local); err != nil {
		return err
	}
	switch {
	case neumannHome && reg.BC34.Kind == twophase.BCNeumann:
		reg.Kind = regionNeumannIN
	case neumannHome:
		reg.Kind = regionNeumannID
	case reg.BC34.Kind == twophase.BCNeumann:
		reg.Kind = regionDirichletIN
	default:
		reg.Kind = regionDirichletID
	}
	return nil
}

func (rc *Reconstructor) condition(cell, face int) (*twophase.Condition, error) {
	c, ok := rc.BCs.Condition(cell, face)
	if !ok {
		return nil, fmt.Errorf("mpfa: boundary face %d of cell %d has no boundary condition", face, cell)
	}
	return &c, nil
}

func interiorFaceAtCorner(c *grid.Cell, excludeNeighbor int, corner geom2d.Vec2) *grid.HalfEdge {
	for i := range c.Faces {
		f := &c.Faces[i]
		if f.Boundary() || f.Neighbor == excludeNeighbor {
			continue
		}
		if f.TouchesCorner(corner) {
			return f
		}
	}
	return nil
}

func boundaryFaceAtCorner(c *grid.Cell, corner geom2d.Vec2) *grid.HalfEdge {
	for i := range c.Faces {
		f := &c.Faces[i]
		if f.Boundary() && f.TouchesCorner(corner) {
			return f
		}
	}
	return nil
}
