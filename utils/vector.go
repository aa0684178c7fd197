package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum dense vector.
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v", n, len(dataO[0]))
			panic(err)
		}
		R = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		R = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) Set(i int, val float64) Vector { // Changes receiver
	v.V.SetVec(i, val)
	return v
}

func (v Vector) Dot(a Vector) float64 {
	return mat.Dot(v.V, a.V)
}
