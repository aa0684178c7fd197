package grid

import (
	"github.com/darcygrid/mpflow/geom2d"
)

// NewQuadMesh builds a logically rectangular mesh of general quadrilaterals
// from a (ny+1) x (nx+1) vertex array (verts[j][i]). Faces are ordered
// cyclically counterclockwise (south, east, north, west), KindPolygonal.
func NewQuadMesh(verts [][]geom2d.Vec2) *Mesh {
	var (
		ny = len(verts) - 1
		nx = len(verts[0]) - 1
	)
	if nx < 1 || ny < 1 {
		panic("grid: NewQuadMesh needs at least a 2x2 vertex array")
	}
	m := &Mesh{Kind: KindPolygonal, Cells: make([]Cell, nx*ny)}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			var (
				id  = j*nx + i
				v00 = verts[j][i]
				v10 = verts[j][i+1]
				v11 = verts[j+1][i+1]
				v01 = verts[j+1][i]
			)
			c := Cell{
				ID: id,
				Center: geom2d.Vec2{
					X: 0.25 * (v00.X + v10.X + v11.X + v01.X),
					Y: 0.25 * (v00.Y + v10.Y + v11.Y + v01.Y),
				},
				Volume: quadArea(v00, v10, v11, v01),
				Faces:  make([]HalfEdge, 4),
			}
			// Counterclockwise perimeter; each edge runs a -> b so that the
			// skew rotation of (b-a) points outward.
			c.Faces[0] = quadFace(0, v00, v10, neighborID(i, j-1, nx, ny))
			c.Faces[1] = quadFace(1, v10, v11, neighborID(i+1, j, nx, ny))
			c.Faces[2] = quadFace(2, v11, v01, neighborID(i, j+1, nx, ny))
			c.Faces[3] = quadFace(3, v01, v00, neighborID(i-1, j, nx, ny))
			m.Cells[id] = c
		}
	}
	return m
}

// NewSheared2D maps the uniform nx by ny grid over [0,lx] x [0,ly] through the
// shear x -> x + shear*y, producing uniformly skewed parallelogram cells. With
// shear = 0 the geometry matches NewCartesian2D but keeps the cyclic face
// ordering.
func NewSheared2D(nx, ny int, lx, ly, shear float64) *Mesh {
	var (
		dx    = lx / float64(nx)
		dy    = ly / float64(ny)
		verts = make([][]geom2d.Vec2, ny+1)
	)
	for j := range verts {
		verts[j] = make([]geom2d.Vec2, nx+1)
		y := float64(j) * dy
		for i := range verts[j] {
			verts[j][i] = geom2d.Vec2{X: float64(i)*dx + shear*y, Y: y}
		}
	}
	return NewQuadMesh(verts)
}

func quadFace(local int, a, b geom2d.Vec2, neighbor int) HalfEdge {
	var (
		edge = b.Sub(a)
		vol  = edge.Norm()
	)
	if vol == 0 {
		panic("grid: degenerate quad edge")
	}
	return HalfEdge{
		Local:    local,
		Center:   a.Mid(b),
		Vol:      vol,
		Normal:   edge.Rot90().Scale(1 / vol),
		Corners:  [2]geom2d.Vec2{a, b},
		Neighbor: neighbor,
	}
}

// quadArea is the shoelace area of the counterclockwise quadrilateral.
func quadArea(p0, p1, p2, p3 geom2d.Vec2) float64 {
	s := p0.X*p1.Y - p1.X*p0.Y
	s += p1.X*p2.Y - p2.X*p1.Y
	s += p2.X*p3.Y - p3.X*p2.Y
	s += p3.X*p0.Y - p0.X*p3.Y
	return 0.5 * s
}
