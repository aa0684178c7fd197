package grid

import (
	"github.com/darcygrid/mpflow/geom2d"
)

// Local face order of the structured Cartesian builder.
const (
	FaceWest = iota
	FaceEast
	FaceSouth
	FaceNorth
)

// NewCartesian2D builds a uniform nx by ny grid of rectangular cells covering
// [0,lx] x [0,ly] with axis-ordered faces (KindStructured). Cell (i,j) has id
// j*nx + i.
func NewCartesian2D(nx, ny int, lx, ly float64) *Mesh {
	if nx < 1 || ny < 1 || lx <= 0 || ly <= 0 {
		panic("grid: NewCartesian2D needs nx,ny >= 1 and positive extents")
	}
	var (
		dx = lx / float64(nx)
		dy = ly / float64(ny)
		xs = make([]float64, nx+1)
		ys = make([]float64, ny+1)
	)
	// Node coordinates are computed once so that adjacent cells share
	// bit-identical corner values.
	for i := range xs {
		xs[i] = float64(i) * dx
	}
	for j := range ys {
		ys[j] = float64(j) * dy
	}

	m := &Mesh{Kind: KindStructured, Cells: make([]Cell, nx*ny)}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			var (
				id  = j*nx + i
				v00 = geom2d.Vec2{X: xs[i], Y: ys[j]}
				v10 = geom2d.Vec2{X: xs[i+1], Y: ys[j]}
				v01 = geom2d.Vec2{X: xs[i], Y: ys[j+1]}
				v11 = geom2d.Vec2{X: xs[i+1], Y: ys[j+1]}
				xc  = 0.5 * (xs[i] + xs[i+1])
				yc  = 0.5 * (ys[j] + ys[j+1])
			)
			c := Cell{
				ID:     id,
				Center: geom2d.Vec2{X: xc, Y: yc},
				Volume: dx * dy,
				Faces:  make([]HalfEdge, 4),
			}
			c.Faces[FaceWest] = HalfEdge{
				Local:    FaceWest,
				Center:   geom2d.Vec2{X: xs[i], Y: yc},
				Vol:      dy,
				Normal:   geom2d.Vec2{X: -1},
				Corners:  [2]geom2d.Vec2{v00, v01},
				Neighbor: neighborID(i-1, j, nx, ny),
			}
			c.Faces[FaceEast] = HalfEdge{
				Local:    FaceEast,
				Center:   geom2d.Vec2{X: xs[i+1], Y: yc},
				Vol:      dy,
				Normal:   geom2d.Vec2{X: 1},
				Corners:  [2]geom2d.Vec2{v10, v11},
				Neighbor: neighborID(i+1, j, nx, ny),
			}
			c.Faces[FaceSouth] = HalfEdge{
				Local:    FaceSouth,
				Center:   geom2d.Vec2{X: xc, Y: ys[j]},
				Vol:      dx,
				Normal:   geom2d.Vec2{Y: -1},
				Corners:  [2]geom2d.Vec2{v00, v10},
				Neighbor: neighborID(i, j-1, nx, ny),
			}
			c.Faces[FaceNorth] = HalfEdge{
				Local:    FaceNorth,
				Center:   geom2d.Vec2{X: xc, Y: ys[j+1]},
				Vol:      dx,
				Normal:   geom2d.Vec2{Y: 1},
				Corners:  [2]geom2d.Vec2{v01, v11},
				Neighbor: neighborID(i, j+1, nx, ny),
			}
			m.Cells[id] = c
		}
	}
	return m
}

func neighborID(i, j, nx, ny int) int {
	if i < 0 || j < 0 || i >= nx || j >= ny {
		return -1
	}
	return j*nx + i
}
