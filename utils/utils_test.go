package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrixBasics(t *testing.T) {
	A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
	nr, nc := A.Dims()
	assert.Equal(t, 2, nr)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 3.0, A.At(1, 0))

	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })

	B := A.Copy().Set(0, 0, 10)
	assert.Equal(t, 10.0, B.At(0, 0))
	assert.Equal(t, 1.0, A.At(0, 0))
}

func TestMatrixInverse(t *testing.T) {
	A := NewMatrix(3, 3, []float64{
		2, 0, 1,
		0, 3, 0,
		1, 0, 1,
	})
	Ainv, err := A.Inverse()
	require.NoError(t, err)
	I := A.Mul(Ainv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, I.At(i, j), 1.e-14)
		}
	}

	_, err = NewMatrix(2, 3).Inverse()
	require.Error(t, err)

	_, err = NewMatrix(2, 2, []float64{1, 2, 2, 4}).Inverse()
	require.Error(t, err)
}

func TestMatrixComposition(t *testing.T) {
	var (
		C = NewMatrix(2, 2, []float64{1, 0, 0, 2})
		A = NewMatrix(2, 2, []float64{2, 0, 0, 4})
		B = NewMatrix(2, 2, []float64{1, 1, 1, 1})
		F = NewMatrix(2, 2, []float64{1, 0, 0, 1})
	)
	Ainv, err := A.Inverse()
	require.NoError(t, err)
	T := C.Mul(Ainv).Mul(B).Add(F)
	assert.InDelta(t, 1.5, T.At(0, 0), 1.e-14)
	assert.InDelta(t, 0.5, T.At(0, 1), 1.e-14)
	assert.InDelta(t, 0.5, T.At(1, 0), 1.e-14)
	assert.InDelta(t, 1.5, T.At(1, 1), 1.e-14)
	// F is the receiver of no operation and must be untouched.
	assert.Equal(t, 1.0, F.At(0, 0))
	assert.Equal(t, 0.0, F.At(0, 1))
}

func TestMatrixVector(t *testing.T) {
	var (
		A = NewMatrix(2, 3, []float64{1, 0, 2, 0, 1, 0})
		v = NewVector(3, []float64{1, 2, 3})
	)
	r := A.MulVec(v)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 7.0, r.AtVec(0))
	assert.Equal(t, 2.0, r.AtVec(1))
	assert.Equal(t, 8.0, v.Dot(NewVector(3, []float64{1, 2, 1})))

	assert.Panics(t, func() { NewVector(2, []float64{1}) })
}

func TestDOK(t *testing.T) {
	d := NewDOK(3, 3)
	d.Set(0, 1, 2)
	d.Accumulate(0, 1, 3)
	d.Accumulate(2, 2, -1)
	assert.Equal(t, 5.0, d.At(0, 1))

	csr := d.ToCSR()
	assert.Equal(t, 5.0, csr.At(0, 1))
	assert.Equal(t, -1.0, csr.At(2, 2))

	// CSR stays usable through the gonum interfaces.
	out := mat.NewVecDense(3, nil)
	out.MulVec(csr, mat.NewVecDense(3, []float64{0, 1, 2}))
	assert.Equal(t, 5.0, out.AtVec(0))
	assert.Equal(t, -2.0, out.AtVec(2))
}
