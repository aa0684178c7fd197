package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darcygrid/mpflow/geom2d"
)

func TestSuccessor(t *testing.T) {
	// Axis-ordered faces pair west-south, east-north, south-east, north-west.
	structured := []int{2, 3, 1, 0}
	for face, want := range structured {
		got, err := Successor(KindStructured, face, 4)
		require.NoError(t, err)
		assert.Equal(t, want, got, "structured face %d", face)
	}
	for face := 0; face < 4; face++ {
		got, err := Successor(KindPolygonal, face, 4)
		require.NoError(t, err)
		assert.Equal(t, (face+1)%4, got)
	}
	_, err := Successor(ElementKind(99), 0, 4)
	require.Error(t, err)
}

// Every face must share exactly one corner with its successor; that corner
// anchors the interaction region.
func TestSuccessorSharesCorner(t *testing.T) {
	meshes := []*Mesh{
		NewCartesian2D(3, 2, 3, 2),
		NewSheared2D(3, 2, 3, 2, 0.5),
	}
	for _, m := range meshes {
		for c := range m.Cells {
			cell := &m.Cells[c]
			for f := range cell.Faces {
				next, err := Successor(m.Kind, f, len(cell.Faces))
				require.NoError(t, err)
				_, ok := SharedCorner(&cell.Faces[f], &cell.Faces[next])
				assert.True(t, ok, "%s cell %d face %d", m.Kind, c, f)
			}
		}
	}
}

func TestCartesianWiring(t *testing.T) {
	m := NewCartesian2D(3, 2, 3, 2)
	require.Equal(t, 6, m.NumCells())
	assert.Equal(t, KindStructured, m.Kind)

	// Interior cell 1 is flanked by 0 and 2, below 4.
	assert.Equal(t, 0, m.Face(1, FaceWest).Neighbor)
	assert.Equal(t, 2, m.Face(1, FaceEast).Neighbor)
	assert.Equal(t, -1, m.Face(1, FaceSouth).Neighbor)
	assert.Equal(t, 4, m.Face(1, FaceNorth).Neighbor)
	assert.True(t, m.Face(1, FaceSouth).Boundary())

	// Shared faces carry bit-identical corner coordinates from both sides.
	east := m.Face(1, FaceEast)
	west := m.Face(2, FaceWest)
	assert.Equal(t, east.Corners, west.Corners)
	assert.Equal(t, east.Center, west.Center)
	assert.Equal(t, geom2d.Vec2{X: 1}, east.Normal)
	assert.Equal(t, geom2d.Vec2{X: -1}, west.Normal)

	for c := range m.Cells {
		assert.InDelta(t, 1.0, m.Cells[c].Volume, 1.e-14)
	}
}

func TestQuadMeshGeometry(t *testing.T) {
	m := NewSheared2D(2, 2, 2, 2, 0.5)
	require.Equal(t, 4, m.NumCells())
	assert.Equal(t, KindPolygonal, m.Kind)

	for c := range m.Cells {
		cell := &m.Cells[c]
		// Parallelogram area is unchanged by shear.
		assert.InDelta(t, 1.0, cell.Volume, 1.e-14)
		var closure geom2d.Vec2
		for f := range cell.Faces {
			face := &cell.Faces[f]
			assert.InDelta(t, 1.0, face.Normal.Norm(), 1.e-14)
			// The outward normal points away from the cell center.
			assert.Greater(t, face.Normal.Dot(face.Center.Sub(cell.Center)), 0.0)
			closure = closure.Add(face.Normal.Scale(face.Vol))
		}
		// Scaled normals of a closed polygon sum to zero.
		assert.InDelta(t, 0.0, closure.Norm(), 1.e-13)
	}
}

func TestScaledNormal(t *testing.T) {
	m := NewCartesian2D(1, 1, 2, 4)
	n := m.Face(0, FaceEast).ScaledNormal()
	assert.Equal(t, geom2d.Vec2{X: 2}, n)
}

func TestSharedCorner(t *testing.T) {
	m := NewCartesian2D(2, 2, 2, 2)
	corner, ok := SharedCorner(m.Face(0, FaceEast), m.Face(0, FaceNorth))
	require.True(t, ok)
	assert.Equal(t, geom2d.Vec2{X: 1, Y: 1}, corner)
	assert.True(t, m.Face(0, FaceEast).TouchesCorner(corner))

	_, ok = SharedCorner(m.Face(0, FaceWest), m.Face(0, FaceEast))
	assert.False(t, ok)
}
