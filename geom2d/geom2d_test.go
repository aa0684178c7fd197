package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecOps(t *testing.T) {
	var (
		a = Vec2{X: 3, Y: 4}
		b = Vec2{X: -1, Y: 2}
	)
	assert.Equal(t, Vec2{X: 2, Y: 6}, a.Add(b))
	assert.Equal(t, Vec2{X: 4, Y: 2}, a.Sub(b))
	assert.Equal(t, Vec2{X: 6, Y: 8}, a.Scale(2))
	assert.Equal(t, 5.0, a.Dot(b))
	assert.Equal(t, 5.0, a.Norm())
	assert.Equal(t, Vec2{X: 1, Y: 3}, a.Mid(b))
}

func TestRot90(t *testing.T) {
	assert.Equal(t, Vec2{Y: -1}, Vec2{X: 1}.Rot90())
	assert.Equal(t, Vec2{X: 1}, Vec2{Y: 1}.Rot90())
	// R is orthogonal: rotation preserves length and kills the dot product.
	v := Vec2{X: 2, Y: -3}
	assert.Equal(t, v.Norm(), v.Rot90().Norm())
	assert.Equal(t, 0.0, v.Dot(v.Rot90()))
}

func TestTensor(t *testing.T) {
	assert.Equal(t, Vec2{X: 6, Y: 8}, Isotropic(2).MulVec(Vec2{X: 3, Y: 4}))
	assert.Equal(t, Vec2{X: 6, Y: 2}, Diagonal(2, 0.5).MulVec(Vec2{X: 3, Y: 4}))

	full := Tensor{XX: 1, XY: 2, YX: 3, YY: 4}
	assert.Equal(t, Vec2{X: 11, Y: 25}, full.MulVec(Vec2{X: 3, Y: 4}))
	assert.Equal(t, Tensor{XX: 3, XY: 2, YX: 3, YY: 6}, full.Add(Diagonal(2, 2)))
}
