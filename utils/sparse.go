package utils

import (
	"github.com/james-bowman/sparse"
	sparseblas "github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix used while scattering the
// per-region transmissibility stencils into the global operator.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)                    { return m.M.Dims() }
func (m DOK) At(i, j int) float64                 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix                       { return m.M.T() }
func (m DOK) RawMatrix() *sparseblas.SparseMatrix { return m.M.ToCSR().RawMatrix() }

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

// Accumulate adds val into entry (i,j).
func (m DOK) Accumulate(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

// ToCSR freezes the assembly into compressed sparse row form for repeated
// multiplication.
func (m DOK) ToCSR() *sparse.CSR {
	return m.M.ToCSR()
}
