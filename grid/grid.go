package grid

import (
	"github.com/darcygrid/mpflow/geom2d"
)

// HalfEdge is a cell face as seen from one adjacent cell: it carries that
// cell's local index for the face and the outward orientation.
type HalfEdge struct {
	Local    int
	Center   geom2d.Vec2
	Vol      float64 // edge length in 2D
	Normal   geom2d.Vec2
	Corners  [2]geom2d.Vec2
	Neighbor int // adjacent cell id, -1 on the domain boundary
}

// Boundary reports whether the face lies on the domain boundary.
func (f *HalfEdge) Boundary() bool { return f.Neighbor < 0 }

// ScaledNormal is the unit outward normal scaled with half the face volume,
// the integration normal of one half edge.
func (f *HalfEdge) ScaledNormal() geom2d.Vec2 {
	return f.Normal.Scale(f.Vol / 2)
}

// TouchesCorner reports whether one of the face's corners coincides with p.
// Vertex coordinates are shared values within a mesh, so exact comparison is
// the correct test.
func (f *HalfEdge) TouchesCorner(p geom2d.Vec2) bool {
	return f.Corners[0] == p || f.Corners[1] == p
}

// SharedCorner returns the vertex common to both faces' corner pairs.
func SharedCorner(a, b *HalfEdge) (geom2d.Vec2, bool) {
	for _, ca := range a.Corners {
		for _, cb := range b.Corners {
			if ca == cb {
				return ca, true
			}
		}
	}
	return geom2d.Vec2{}, false
}

// Cell is a control volume. All attributes are immutable once the mesh is
// built; the flux core only reads them.
type Cell struct {
	ID     int
	Center geom2d.Vec2
	Volume float64
	Faces  []HalfEdge
}

// Mesh is the geometry/topology oracle consumed by the flux reconstruction.
type Mesh struct {
	Kind  ElementKind
	Cells []Cell
}

func (m *Mesh) NumCells() int { return len(m.Cells) }

// Face returns cell c's half edge with local index i.
func (m *Mesh) Face(c, i int) *HalfEdge { return &m.Cells[c].Faces[i] }
