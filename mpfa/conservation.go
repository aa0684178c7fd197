package mpfa

import (
	"fmt"
	"math"
)

// Imbalance records one cell whose face fluxes fail to balance its source.
type Imbalance struct {
	Cell     int
	Residual float64
	Relative float64
}

// ConservationReport summarizes a per-cell mass balance check of a
// reconstructed velocity field.
type ConservationReport struct {
	MaxRelative float64
	Violations  []Imbalance
}

func (r *ConservationReport) Conservative() bool { return len(r.Violations) == 0 }

// Audit checks local mass conservation: for every cell, the outward face
// fluxes must balance the integrated source within tol (relative). Violations
// are reported, never fatal.
func (rc *Reconstructor) Audit(vf *VelocityField, tol float64) *ConservationReport {
	rep := &ConservationReport{}
	for c := range rc.Mesh.Cells {
		var (
			cell    = &rc.Mesh.Cells[c]
			outflow float64
			scale   float64
		)
		for f := range cell.Faces {
			face := &cell.Faces[f]
			q := vf.Vel[c][f].Dot(face.Normal) * face.Vol
			outflow += q
			scale += math.Abs(q)
		}
		src := rc.Phys.Source(c) * cell.Volume
		scale += math.Abs(src)
		residual := outflow - src
		if scale == 0 {
			continue
		}
		rel := math.Abs(residual) / scale
		if rel > rep.MaxRelative {
			rep.MaxRelative = rel
		}
		if rel > tol {
			rep.Violations = append(rep.Violations, Imbalance{Cell: c, Residual: residual, Relative: rel})
			fmt.Printf("conservation violated in cell %d: residual %8.5g, relative %8.5g\n",
				c, residual, rel)
		}
	}
	return rep
}
