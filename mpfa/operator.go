package mpfa

import (
	sparse "github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/darcygrid/mpflow/grid"
	"github.com/darcygrid/mpflow/utils"
)

// FluxOperator is the assembled global form of the reconstruction: a sparse
// matrix mapping the cell pressure vector to the stack of half-edge fluxes,
// plus the boundary forcing vector. Rows are the half edges of the mesh in
// cell-major order.
type FluxOperator struct {
	M       *sparse.CSR
	Forcing *mat.VecDense
	offsets []int
	nRows   int
}

// AssembleOperator builds the flux operator from the same per-region
// stencils the sweep evaluates. The pressure field plays no role in the
// coefficients, so the operator can be reused across pressure updates as
// long as mobilities are frozen.
func (rc *Reconstructor) AssembleOperator() (*FluxOperator, error) {
	var (
		msh     = rc.Mesh
		offsets = make([]int, msh.NumCells()+1)
	)
	for c := range msh.Cells {
		offsets[c+1] = offsets[c] + len(msh.Cells[c].Faces)
	}
	var (
		nRows   = offsets[msh.NumCells()]
		dok     = utils.NewDOK(nRows, msh.NumCells())
		forcing = mat.NewVecDense(nRows, nil)
	)

	scatter := func(home int, face *grid.HalfEdge, s *FluxStencil) {
		row := offsets[home] + face.Local
		for i, c := range s.Cells {
			dok.Accumulate(row, c, s.T[i])
		}
		forcing.SetVec(row, forcing.AtVec(row)+s.R)
	}

	for c := range msh.Cells {
		for f := range msh.Cells[c].Faces {
			reg, err := rc.locate(&msh.Cells[c], f)
			if err != nil {
				return nil, err
			}
			s1, s3, err := rc.assembleRegion(reg)
			if err != nil {
				return nil, err
			}
			if s1 != nil {
				scatter(c, reg.Face12, s1)
			}
			if s3 != nil {
				scatter(c, reg.Face13, s3)
			}
		}
	}
	return &FluxOperator{
		M:       dok.ToCSR(),
		Forcing: forcing,
		offsets: offsets,
		nRows:   nRows,
	}, nil
}

// Row returns the operator row index of face f of cell c.
func (op *FluxOperator) Row(c, f int) int { return op.offsets[c] + f }

// Apply evaluates all half-edge fluxes for the pressure vector p.
func (op *FluxOperator) Apply(p *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(op.nRows, nil)
	out.MulVec(op.M, p)
	out.AddVec(out, op.Forcing)
	return out
}

// Velocities reshapes the flux vector into a velocity field.
func (op *FluxOperator) Velocities(msh *grid.Mesh, fluxes *mat.VecDense) *VelocityField {
	vf := NewVelocityField(msh)
	for c := range msh.Cells {
		cell := &msh.Cells[c]
		for f := range cell.Faces {
			var (
				face = &cell.Faces[f]
				flux = fluxes.AtVec(op.Row(c, f))
			)
			vf.Vel[c][f] = face.Normal.Scale(flux / face.Vol)
			pot := vf.Vel[c][f].Dot(face.Normal)
			vf.PotentialW[c][f] = pot
			vf.PotentialN[c][f] = pot
		}
	}
	return vf
}
