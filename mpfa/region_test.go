package mpfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darcygrid/mpflow/geom2d"
	"github.com/darcygrid/mpflow/grid"
	"github.com/darcygrid/mpflow/twophase"
)

// fourCells is a 2x2 grid of unit cells with every boundary face Dirichlet
// except the north faces, which are no-flow.
func fourCells(t *testing.T) *Reconstructor {
	t.Helper()
	var (
		msh   = grid.NewCartesian2D(2, 2, 2, 2)
		state = twophase.NewUniformState(4, geom2d.Isotropic(1), 0.5, 0.5, testFluids, twophase.LinearLaw{})
		bcs   = twophase.NewBoundarySet()
	)
	for c := range msh.Cells {
		for f := range msh.Cells[c].Faces {
			if !msh.Face(c, f).Boundary() {
				continue
			}
			if f == grid.FaceNorth {
				bcs.Set(c, f, twophase.NoFlow())
			} else {
				bcs.Set(c, f, twophase.Dirichlet(0))
			}
		}
	}
	return NewReconstructor(msh, state, bcs, twophase.SaturationW)
}

func TestLocateInterior(t *testing.T) {
	rc := fourCells(t)

	// Cell 3's west face pairs with its south face around the center vertex.
	reg, err := rc.locate(&rc.Mesh.Cells[3], grid.FaceWest)
	require.NoError(t, err)
	assert.Equal(t, regionInterior, reg.Kind)
	assert.Equal(t, geom2d.Vec2{X: 1, Y: 1}, reg.Corner)
	assert.Equal(t, 2, reg.Cell2)
	assert.Equal(t, 1, reg.Cell3)
	assert.Equal(t, 0, reg.Cell4)
	require.NotNil(t, reg.Face24)
	require.NotNil(t, reg.Face34)
	assert.Equal(t, 0, reg.Face24.Neighbor)
	assert.Equal(t, 0, reg.Face34.Neighbor)
}

func TestLocateBoundaryKinds(t *testing.T) {
	rc := fourCells(t)
	cases := []struct {
		cell, face int
		kind       RegionKind
	}{
		// Home west boundary of cell 0 pairs with the south boundary.
		{0, grid.FaceWest, regionDirichletBD},
		// Home east of cell 0 is interior, successor north is interior too.
		{0, grid.FaceEast, regionInterior},
		// Home south boundary of cell 0 pairs with the interior east face;
		// cell 1's outer face at the corner is the south boundary.
		{0, grid.FaceSouth, regionDirichletID},
		// Home north of cell 2 is no-flow, successor west is Dirichlet.
		{2, grid.FaceNorth, regionNeumannBD},
		// Home north of cell 3 is no-flow, successor west is interior; cell
		// 2's outer face at the corner is the no-flow north boundary.
		{3, grid.FaceNorth, regionNeumannIN},
		// Home east boundary of cell 3 pairs with the no-flow north face.
		{3, grid.FaceEast, regionDirichletBN},
		// Home west boundary of cell 2 pairs with the interior south face;
		// cell 0's outer face at the corner is the west Dirichlet boundary.
		{2, grid.FaceWest, regionDirichletID},
		// Home east of cell 2 is interior, successor north is no-flow, and
		// cell 3's outer north face is no-flow as well.
		{2, grid.FaceEast, regionInteriorNN},
		// Home west of cell 1 is interior, successor south is Dirichlet and
		// cell 0's outer south face is Dirichlet.
		{1, grid.FaceWest, regionInteriorDD},
	}
	for _, tc := range cases {
		reg, err := rc.locate(&rc.Mesh.Cells[tc.cell], tc.face)
		require.NoError(t, err, "cell %d face %d", tc.cell, tc.face)
		assert.Equal(t, tc.kind, reg.Kind, "cell %d face %d", tc.cell, tc.face)
	}
}

func TestLocateMissingCondition(t *testing.T) {
	var (
		msh   = grid.NewCartesian2D(2, 1, 2, 1)
		state = twophase.NewUniformState(2, geom2d.Isotropic(1), 0.5, 0.5, testFluids, twophase.LinearLaw{})
		rc    = NewReconstructor(msh, state, twophase.NewBoundarySet(), twophase.SaturationW)
	)
	_, err := rc.locate(&rc.Mesh.Cells[0], grid.FaceWest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no boundary condition")
}
