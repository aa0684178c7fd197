package geom2d

// Tensor is a 2x2 permeability tensor in row-major order.
type Tensor struct {
	XX, XY float64
	YX, YY float64
}

// Isotropic returns k*I.
func Isotropic(k float64) Tensor {
	return Tensor{XX: k, YY: k}
}

// Diagonal returns diag(kx, ky).
func Diagonal(kx, ky float64) Tensor {
	return Tensor{XX: kx, YY: ky}
}

// MulVec applies the tensor to v.
func (t Tensor) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: t.XX*v.X + t.XY*v.Y,
		Y: t.YX*v.X + t.YY*v.Y,
	}
}

func (t Tensor) Add(a Tensor) Tensor {
	return Tensor{
		XX: t.XX + a.XX, XY: t.XY + a.XY,
		YX: t.YX + a.YX, YY: t.YY + a.YY,
	}
}
