package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a gonum dense matrix with chainable helpers sized for the small
// elimination systems of the flux reconstruction (2x2 through 4x4), though the
// dimensions are not restricted.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{m}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	R.M.CloneFrom(m.M)
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) MulVec(v Vector) (R Vector) { // Does not change receiver
	var (
		nr, _ = m.Dims()
	)
	R = NewVector(nr)
	R.V.MulVec(m.M, v.V)
	return
}

func (m Matrix) Add(A Matrix) Matrix { // Changes receiver
	m.M.Add(m.M, A.M)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	m.M.Scale(a, m.M)
	return m
}

// Inverse inverts the matrix out of place. A singular or near-singular system
// surfaces as an error, never a panic: the caller decides whether the
// configuration is fatal.
func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("cannot invert a non-square matrix, nr, nc = %v, %v", nr, nc)
		return
	}
	R = NewMatrix(nr, nc)
	if err = R.M.Inverse(m.M); err != nil {
		err = fmt.Errorf("matrix inversion failed: %w", err)
	}
	return
}

func (m Matrix) Print(msgI ...string) (o string) {
	var (
		name = ""
	)
	if len(msgI) != 0 {
		name = msgI[0]
	}
	o = fmt.Sprintf("%s = \n%8.5f\n", name, mat.Formatted(m.M, mat.Squeeze()))
	return
}
