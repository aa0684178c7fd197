package geom2d

import "math"

// Vec2 is a position or direction in the 2D computational plane.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(a Vec2) Vec2      { return Vec2{v.X + a.X, v.Y + a.Y} }
func (v Vec2) Sub(a Vec2) Vec2      { return Vec2{v.X - a.X, v.Y - a.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{s * v.X, s * v.Y} }
func (v Vec2) Dot(a Vec2) float64   { return v.X*a.X + v.Y*a.Y }
func (v Vec2) Norm() float64        { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Rot90 applies the fixed skew matrix R = [[0,1],[-1,0]], rotating v by -90
// degrees in-plane. The co-normal probe vectors of the flux discretization are
// built exclusively through this rotation.
func (v Vec2) Rot90() Vec2 { return Vec2{v.Y, -v.X} }

// Mid returns the midpoint between v and a.
func (v Vec2) Mid(a Vec2) Vec2 { return Vec2{0.5 * (v.X + a.X), 0.5 * (v.Y + a.Y)} }
