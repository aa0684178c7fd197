package mpfa

import (
	"fmt"
	"math"

	"github.com/darcygrid/mpflow/geom2d"
	"github.com/darcygrid/mpflow/twophase"
	"github.com/darcygrid/mpflow/utils"
)

// FluxStencil expresses one half-edge flux as a linear relation
// flux = T.p + R over the pressures of the region's cells, with R carrying
// the boundary forcing. Stencils are ephemeral per-region products.
type FluxStencil struct {
	Cells []int
	T     []float64
	R     float64
}

// Evaluate applies the stencil to the current pressure field.
func (s *FluxStencil) Evaluate(phys Physics) (f float64) {
	f = s.R
	for i, c := range s.Cells {
		f += s.T[i] * phys.Pressure(c)
	}
	return
}

// cellProbe carries one cell's two skew-rotated co-normal vectors, the
// parallelogram area they span, and the cell permeability. The interaction
// coefficients g = lambda * (n . K nu) / dF are all drawn from probes.
type cellProbe struct {
	K        geom2d.Tensor
	nuA, nuB geom2d.Vec2
	dF       float64
}

func newCellProbe(K geom2d.Tensor, nuA, nuB geom2d.Vec2) (p cellProbe, err error) {
	p = cellProbe{K: K, nuA: nuA, nuB: nuB}
	p.dF = math.Abs(nuA.Dot(nuB.Rot90()))
	if p.dF == 0 {
		err = fmt.Errorf("mpfa: degenerate co-normal parallelogram")
	}
	return
}

func (p cellProbe) g(lambda float64, n, nu geom2d.Vec2) float64 {
	return lambda * n.Dot(p.K.MulVec(nu)) / p.dF
}

// regionHandlers dispatches one transmissibility handler per region kind.
// Each handler returns the stencils for the home cell's two half edges;
// nil where the region contributes nothing to that half edge.
var regionHandlers = map[RegionKind]func(*Reconstructor, *Region) (s1, s3 *FluxStencil, err error){
	regionInterior:    (*Reconstructor).handleInterior,
	regionInteriorNN:  (*Reconstructor).handleInteriorNN,
	regionInteriorND:  (*Reconstructor).handleInteriorND,
	regionInteriorDN:  (*Reconstructor).handleInteriorDN,
	regionInteriorDD:  (*Reconstructor).handleInteriorDD,
	regionNeumannBD:   (*Reconstructor).handleNeumannBD,
	regionNeumannBN:   (*Reconstructor).handleNeumannBN,
	regionNeumannIN:   (*Reconstructor).handleNeumannIN,
	regionNeumannID:   (*Reconstructor).handleNeumannID,
	regionDirichletBD: (*Reconstructor).handleDirichletBD,
	regionDirichletBN: (*Reconstructor).handleDirichletBN,
	regionDirichletID: (*Reconstructor).handleDirichletID,
	regionDirichletIN: (*Reconstructor).handleDirichletIN,
}

func (rc *Reconstructor) assembleRegion(reg *Region) (s1, s3 *FluxStencil, err error) {
	handler, ok := regionHandlers[reg.Kind]
	if !ok {
		return nil, nil, fmt.Errorf("mpfa: unhandled region kind %d", reg.Kind)
	}
	if s1, s3, err = handler(rc, reg); err != nil {
		err = fmt.Errorf("cell %d face %d: %w", reg.Home.ID, reg.Face12.Local, err)
	}
	return
}

// volumetricRate converts a Neumann per-phase mass rate to a volumetric rate
// using the home cell's phase densities.
func (rc *Reconstructor) volumetricRate(homeCell int, bc *twophase.Condition) float64 {
	return bc.MassFlux[twophase.Wetting]/rc.Phys.Density(twophase.Wetting, homeCell) +
		bc.MassFlux[twophase.Nonwetting]/rc.Phys.Density(twophase.Nonwetting, homeCell)
}

// boundaryMobility rebuilds the total mobility of a Dirichlet virtual cell
// from the boundary saturation through the home cell's material law and phase
// viscosities. Without a boundary saturation the interior mobility is reused.
func (rc *Reconstructor) boundaryMobility(homeCell int, bc *twophase.Condition, interior float64) float64 {
	if !bc.HasSaturation {
		return interior
	}
	var (
		satW = rc.SatKind.WettingSaturation(bc.Saturation)
		krw  = rc.Phys.RelativePermeability(twophase.Wetting, satW, homeCell)
		krn  = rc.Phys.RelativePermeability(twophase.Nonwetting, satW, homeCell)
	)
	return krw/rc.Phys.Viscosity(twophase.Wetting, homeCell) +
		krn/rc.Phys.Viscosity(twophase.Nonwetting, homeCell)
}

// homeProbe builds cell 1's probe: nu11 skew-rotated from the center towards
// the successor face, nu21 from the home face back to the center.
func (rc *Reconstructor) homeProbe(reg *Region) (cellProbe, error) {
	return newCellProbe(
		rc.Phys.Permeability(reg.Home.ID),
		reg.Face13.Center.Sub(reg.Home.Center).Rot90(),
		reg.Home.Center.Sub(reg.Face12.Center).Rot90(),
	)
}

// cell2Probe builds cell 2's probe: nu12 towards its outer face, nu22 towards
// the shared home face.
func (rc *Reconstructor) cell2Probe(reg *Region) (cellProbe, error) {
	x2 := rc.Mesh.Cells[reg.Cell2].Center
	return newCellProbe(
		rc.Phys.Permeability(reg.Cell2),
		reg.Face24.Center.Sub(x2).Rot90(),
		reg.Face12.Center.Sub(x2).Rot90(),
	)
}

// cell3Probe builds cell 3's probe: nu13 from the successor face to its
// center, nu23 from its outer face to its center.
func (rc *Reconstructor) cell3Probe(reg *Region) (cellProbe, error) {
	x3 := rc.Mesh.Cells[reg.Cell3].Center
	return newCellProbe(
		rc.Phys.Permeability(reg.Cell3),
		x3.Sub(reg.Face13.Center).Rot90(),
		x3.Sub(reg.Face34.Center).Rot90(),
	)
}

// cell4Probe builds cell 4's probe: nu14 from cell 2's outer face to the
// center, nu24 from the center to cell 3's outer face.
func (rc *Reconstructor) cell4Probe(reg *Region) (cellProbe, error) {
	x4 := rc.Mesh.Cells[reg.Cell4].Center
	return newCellProbe(
		rc.Phys.Permeability(reg.Cell4),
		x4.Sub(reg.Face24.Center).Rot90(),
		reg.Face34.Center.Sub(x4).Rot90(),
	)
}

// handleInterior treats the full four-cell region: the 4x4 elimination system
// A couples the four auxiliary edge potentials; T = C A^-1 B + F maps the
// four cell pressures to the four half-edge fluxes, of which rows 0 and 2
// belong to the home cell.
func (rc *Reconstructor) handleInterior(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		l1 = rc.Phys.TotalMobility(reg.Home.ID)
		l2 = rc.Phys.TotalMobility(reg.Cell2)
		l3 = rc.Phys.TotalMobility(reg.Cell3)
		l4 = rc.Phys.TotalMobility(reg.Cell4)
		n1 = reg.Face12.ScaledNormal()
		n3 = reg.Face13.ScaledNormal()
		n4 = reg.Face24.ScaledNormal()
		n2 = reg.Face34.ScaledNormal()
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p2, err := rc.cell2Probe(reg)
	if err != nil {
		return
	}
	p3, err := rc.cell3Probe(reg)
	if err != nil {
		return
	}
	p4, err := rc.cell4Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(l1, n1, p1.nuA)
		g121 = p1.g(l1, n1, p1.nuB)
		g211 = p1.g(l1, n3, p1.nuA)
		g221 = p1.g(l1, n3, p1.nuB)
		g112 = p2.g(l2, n1, p2.nuA)
		g122 = p2.g(l2, n1, p2.nuB)
		g212 = p2.g(l2, n4, p2.nuA)
		g222 = p2.g(l2, n4, p2.nuB)
		g113 = p3.g(l3, n2, p3.nuA)
		g123 = p3.g(l3, n2, p3.nuB)
		g213 = p3.g(l3, n3, p3.nuA)
		g223 = p3.g(l3, n3, p3.nuB)
		g114 = p4.g(l4, n2, p4.nuA)
		g124 = p4.g(l4, n2, p4.nuB)
		g214 = p4.g(l4, n4, p4.nuA)
		g224 = p4.g(l4, n4, p4.nuB)
	)

	C := utils.NewMatrix(4, 4, []float64{
		-g111, 0, -g121, 0,
		0, g114, 0, g124,
		0, -g213, g223, 0,
		g212, 0, 0, -g222,
	})
	F := utils.NewMatrix(4, 4, []float64{
		g111 + g121, 0, 0, 0,
		0, 0, 0, -g114 - g124,
		0, 0, g213 - g223, 0,
		0, -g212 + g222, 0, 0,
	})
	A := utils.NewMatrix(4, 4, []float64{
		g111 + g112, 0, g121, -g122,
		0, g114 + g113, -g123, g124,
		g211, -g213, g223 + g221, 0,
		-g212, g214, 0, g222 + g224,
	})
	B := utils.NewMatrix(4, 4, []float64{
		g111 + g121, g112 - g122, 0, 0,
		0, 0, g113 - g123, g114 + g124,
		g211 + g221, 0, -g213 + g223, 0,
		0, -g212 + g222, 0, g214 + g224,
	})

	Ainv, err := A.Inverse()
	if err != nil {
		return
	}
	T := C.Mul(Ainv).Mul(B).Add(F)

	cells := []int{reg.Home.ID, reg.Cell2, reg.Cell3, reg.Cell4}
	s1 = &FluxStencil{Cells: cells, T: []float64{T.At(0, 0), T.At(0, 1), T.At(0, 2), T.At(0, 3)}}
	s3 = &FluxStencil{Cells: cells, T: []float64{T.At(2, 0), T.At(2, 1), T.At(2, 2), T.At(2, 3)}}
	return
}

// handleInteriorNN: interior home face, successor and outer face of cell 2
// both Neumann. Three auxiliary potentials survive; only the home face flux
// is produced.
func (rc *Reconstructor) handleInteriorNN(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		l1 = rc.Phys.TotalMobility(reg.Home.ID)
		l2 = rc.Phys.TotalMobility(reg.Cell2)
		n1 = reg.Face12.ScaledNormal()
		n3 = reg.Face13.ScaledNormal()
		n4 = reg.Face24.ScaledNormal()
		J3 = rc.volumetricRate(reg.Home.ID, reg.BC13)
		J4 = rc.volumetricRate(reg.Home.ID, reg.BC24)
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p2, err := rc.cell2Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(l1, n1, p1.nuA)
		g121 = p1.g(l1, n1, p1.nuB)
		g211 = p1.g(l1, n3, p1.nuA)
		g221 = p1.g(l1, n3, p1.nuB)
		g112 = p2.g(l2, n1, p2.nuA)
		g122 = p2.g(l2, n1, p2.nuB)
		g212 = p2.g(l2, n4, p2.nuA)
		g222 = p2.g(l2, n4, p2.nuB)
	)

	A := utils.NewMatrix(3, 3, []float64{
		g111 + g112, g121, -g122,
		g211, g221, 0,
		-g212, 0, g222,
	})
	B := utils.NewMatrix(3, 2, []float64{
		g111 + g121, g112 - g122,
		g211 + g221, 0,
		0, g222 - g212,
	})
	r1 := utils.NewVector(3, []float64{
		0,
		-J3 * reg.Face13.Vol / 2,
		-J4 * reg.Face24.Vol / 2,
	})

	Ainv, err := A.Inverse()
	if err != nil {
		return
	}
	T := Ainv.Mul(B)
	r := Ainv.MulVec(r1)

	s1 = &FluxStencil{
		Cells: []int{reg.Home.ID, reg.Cell2},
		T: []float64{
			g111 + g121 - g111*T.At(0, 0) - g121*T.At(1, 0),
			-(g111*T.At(0, 1) + g121*T.At(1, 1)),
		},
		R: -(g111*r.AtVec(0) + g121*r.AtVec(1)),
	}
	return
}

// handleInteriorND: successor Neumann, outer face of cell 2 Dirichlet. The
// Dirichlet potential is eliminated directly; only the home face flux is
// produced.
func (rc *Reconstructor) handleInteriorND(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		l1  = rc.Phys.TotalMobility(reg.Home.ID)
		al2 = rc.boundaryMobility(reg.Home.ID, reg.BC24, rc.Phys.TotalMobility(reg.Cell2))
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		J3  = rc.volumetricRate(reg.Home.ID, reg.BC13)
		g4  = reg.BC24.Pressure
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p2, err := rc.cell2Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(l1, n1, p1.nuA)
		g121 = p1.g(l1, n1, p1.nuB)
		g211 = p1.g(l1, n3, p1.nuA)
		g221 = p1.g(l1, n3, p1.nuB)
		g112 = p2.g(al2, n1, p2.nuA)
		g122 = p2.g(al2, n1, p2.nuB)
	)

	A := utils.NewMatrix(2, 2, []float64{
		g111 + g112, g121,
		g211, g221,
	})
	B := utils.NewMatrix(2, 2, []float64{
		g111 + g121, g112 - g122,
		g211 + g221, 0,
	})
	r1 := utils.NewVector(2, []float64{
		g122 * g4,
		-J3 * reg.Face13.Vol / 2,
	})

	Ainv, err := A.Inverse()
	if err != nil {
		return
	}
	T := Ainv.Mul(B)
	r := Ainv.MulVec(r1)

	s1 = &FluxStencil{
		Cells: []int{reg.Home.ID, reg.Cell2},
		T: []float64{
			g111 + g121 - g111*T.At(0, 0) - g121*T.At(1, 0),
			-(g111*T.At(0, 1) + g121*T.At(1, 1)),
		},
		R: -(g111*r.AtVec(0) + g121*r.AtVec(1)),
	}
	return
}

// handleInteriorDN: successor Dirichlet, outer face of cell 2 Neumann. Both
// home half edges receive fluxes.
func (rc *Reconstructor) handleInteriorDN(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		al1 = rc.boundaryMobility(reg.Home.ID, reg.BC13, rc.Phys.TotalMobility(reg.Home.ID))
		l2  = rc.Phys.TotalMobility(reg.Cell2)
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		n4  = reg.Face24.ScaledNormal()
		g3  = reg.BC13.Pressure
		J4  = rc.volumetricRate(reg.Home.ID, reg.BC24)
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p2, err := rc.cell2Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(al1, n1, p1.nuA)
		g121 = p1.g(al1, n1, p1.nuB)
		g211 = p1.g(al1, n3, p1.nuA)
		g221 = p1.g(al1, n3, p1.nuB)
		g112 = p2.g(l2, n1, p2.nuA)
		g122 = p2.g(l2, n1, p2.nuB)
		g212 = p2.g(l2, n4, p2.nuA)
		g222 = p2.g(l2, n4, p2.nuB)
	)

	A := utils.NewMatrix(2, 2, []float64{
		g111 + g112, -g122,
		-g212, g222,
	})
	B := utils.NewMatrix(2, 2, []float64{
		g111 + g121, g112 - g122,
		0, g222 - g212,
	})
	r1 := utils.NewVector(2, []float64{
		-g121 * g3,
		-J4 * reg.Face24.Vol / 2,
	})

	Ainv, err := A.Inverse()
	if err != nil {
		return
	}
	T := Ainv.Mul(B)
	r := Ainv.MulVec(r1)

	cells := []int{reg.Home.ID, reg.Cell2}
	s1 = &FluxStencil{
		Cells: cells,
		T: []float64{
			g111 + g121 - g111*T.At(0, 0),
			-g111 * T.At(0, 1),
		},
		R: -g121*g3 - g111*r.AtVec(0),
	}
	s3 = &FluxStencil{
		Cells: cells,
		T: []float64{
			g211 + g221 - g211*T.At(0, 0),
			-g211 * T.At(0, 1),
		},
		R: -g221*g3 - g211*r.AtVec(0),
	}
	return
}

// handleInteriorDD: successor and outer face of cell 2 both Dirichlet; the
// single surviving auxiliary potential eliminates in closed form.
func (rc *Reconstructor) handleInteriorDD(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		al1 = rc.boundaryMobility(reg.Home.ID, reg.BC13, rc.Phys.TotalMobility(reg.Home.ID))
		al2 = rc.boundaryMobility(reg.Home.ID, reg.BC24, rc.Phys.TotalMobility(reg.Cell2))
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		g3  = reg.BC13.Pressure
		g4  = reg.BC24.Pressure
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p2, err := rc.cell2Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(al1, n1, p1.nuA)
		g121 = p1.g(al1, n1, p1.nuB)
		g211 = p1.g(al1, n3, p1.nuA)
		g221 = p1.g(al1, n3, p1.nuB)
		g112 = p2.g(al2, n1, p2.nuA)
		g122 = p2.g(al2, n1, p2.nuB)
	)

	coe := g111 + g112
	if coe == 0 {
		return nil, nil, fmt.Errorf("mpfa: vanishing elimination coefficient")
	}

	cells := []int{reg.Home.ID, reg.Cell2}
	s1 = &FluxStencil{
		Cells: cells,
		T: []float64{
			g112 * (g111 + g121) / coe,
			-g111 * (g112 - g122) / coe,
		},
		R: -(g4*g122*g111 + g3*g112*g121) / coe,
	}
	s3 = &FluxStencil{
		Cells: cells,
		T: []float64{
			g221 + g211*(g112-g121)/coe,
			-g211 * (g112 - g122) / coe,
		},
		R: -g221*g3 + (g3*g211*g121-g4*g211*g122)/coe,
	}
	return
}

// neumannDirect is the prescribed-flux contribution of a Neumann home face:
// the full face volumetric rate, applied once, un-halved.
func (rc *Reconstructor) neumannDirect(reg *Region) *FluxStencil {
	J1 := rc.volumetricRate(reg.Home.ID, reg.BC12)
	return &FluxStencil{R: J1 * reg.Face12.Vol}
}

// handleNeumannBN: home Neumann, successor boundary Neumann. Only the direct
// term; the successor face is served by its own region. Such a region carries
// no pressure anchor of its own, which is acceptable only because the home
// flux is fully prescribed.
func (rc *Reconstructor) handleNeumannBN(reg *Region) (s1, s3 *FluxStencil, err error) {
	s1 = rc.neumannDirect(reg)
	return
}

// handleNeumannBD: home Neumann, successor boundary Dirichlet.
func (rc *Reconstructor) handleNeumannBD(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		al1 = rc.boundaryMobility(reg.Home.ID, reg.BC13, rc.Phys.TotalMobility(reg.Home.ID))
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		g3  = reg.BC13.Pressure
		J1  = rc.volumetricRate(reg.Home.ID, reg.BC12)
	)
	s1 = rc.neumannDirect(reg)

	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(al1, n1, p1.nuA)
		g121 = p1.g(al1, n1, p1.nuB)
		g211 = p1.g(al1, n3, p1.nuA)
		g221 = p1.g(al1, n3, p1.nuB)
	)
	if g111 == 0 {
		return nil, nil, fmt.Errorf("mpfa: vanishing elimination coefficient")
	}
	s3 = &FluxStencil{
		Cells: []int{reg.Home.ID},
		T:     []float64{g221 - g211*g121/g111},
		R:     (g211*g121/g111-g221)*g3 + g211*J1*reg.Face12.Vol/(2*g111),
	}
	return
}

// handleNeumannIN: home Neumann, successor interior, cell 3's outer face
// Neumann. Three auxiliary potentials, flux only on the successor half edge.
func (rc *Reconstructor) handleNeumannIN(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		l1 = rc.Phys.TotalMobility(reg.Home.ID)
		l3 = rc.Phys.TotalMobility(reg.Cell3)
		n1 = reg.Face12.ScaledNormal()
		n3 = reg.Face13.ScaledNormal()
		n2 = reg.Face34.ScaledNormal()
		J1 = rc.volumetricRate(reg.Home.ID, reg.BC12)
		J2 = rc.volumetricRate(reg.Home.ID, reg.BC34)
	)
	s1 = rc.neumannDirect(reg)

	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p3, err := rc.cell3Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(l1, n1, p1.nuA)
		g121 = p1.g(l1, n1, p1.nuB)
		g211 = p1.g(l1, n3, p1.nuA)
		g221 = p1.g(l1, n3, p1.nuB)
		g113 = p3.g(l3, n2, p3.nuA)
		g123 = p3.g(l3, n2, p3.nuB)
		g213 = p3.g(l3, n3, p3.nuA)
		g223 = p3.g(l3, n3, p3.nuB)
	)

	C := utils.NewMatrix(3, 3, []float64{
		-g111, 0, -g121,
		0, -g113, g123,
		0, -g213, g223,
	})
	A := utils.NewMatrix(3, 3, []float64{
		g111, 0, g121,
		0, g113, -g123,
		g211, -g213, g223 + g221,
	})
	F := utils.NewMatrix(3, 2, []float64{
		g111 + g121, 0,
		0, g113 - g123,
		0, g213 - g223,
	})
	B := utils.NewMatrix(3, 2, []float64{
		g111 + g121, 0,
		0, g113 - g123,
		g211 + g221, g223 - g213,
	})
	r1 := utils.NewVector(3, []float64{
		-J1 * reg.Face12.Vol / 2,
		-J2 * reg.Face34.Vol / 2,
		0,
	})

	Ainv, err := A.Inverse()
	if err != nil {
		return
	}
	CAinv := C.Mul(Ainv)
	T := CAinv.Mul(B).Add(F)
	r := CAinv.MulVec(r1)

	s3 = &FluxStencil{
		Cells: []int{reg.Home.ID, reg.Cell3},
		T:     []float64{T.At(2, 0), T.At(2, 1)},
		R:     r.AtVec(2),
	}
	return
}

// handleNeumannID: home Neumann, successor interior, cell 3's outer face
// Dirichlet.
func (rc *Reconstructor) handleNeumannID(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		l1  = rc.Phys.TotalMobility(reg.Home.ID)
		al3 = rc.boundaryMobility(reg.Home.ID, reg.BC34, rc.Phys.TotalMobility(reg.Cell3))
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		J1  = rc.volumetricRate(reg.Home.ID, reg.BC12)
		g2  = reg.BC34.Pressure
	)
	s1 = rc.neumannDirect(reg)

	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p3, err := rc.cell3Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(l1, n1, p1.nuA)
		g121 = p1.g(l1, n1, p1.nuB)
		g211 = p1.g(l1, n3, p1.nuA)
		g221 = p1.g(l1, n3, p1.nuB)
		g213 = p3.g(al3, n3, p3.nuA)
		g223 = p3.g(al3, n3, p3.nuB)
	)

	C := utils.NewMatrix(2, 2, []float64{
		-g111, -g121,
		0, g223,
	})
	F := utils.NewMatrix(2, 2, []float64{
		g111 + g121, 0,
		0, g213 - g223,
	})
	A := utils.NewMatrix(2, 2, []float64{
		g111, g121,
		g211, g223 + g221,
	})
	B := utils.NewMatrix(2, 2, []float64{
		g111 + g121, 0,
		g211 + g221, g223 - g213,
	})
	r1 := utils.NewVector(2, []float64{0, -g213 * g2})
	r2 := utils.NewVector(2, []float64{-J1 * reg.Face12.Vol / 2, g213 * g2})

	Ainv, err := A.Inverse()
	if err != nil {
		return
	}
	CAinv := C.Mul(Ainv)
	T := CAinv.Mul(B).Add(F)
	r := CAinv.MulVec(r2)

	s3 = &FluxStencil{
		Cells: []int{reg.Home.ID, reg.Cell3},
		T:     []float64{T.At(1, 0), T.At(1, 1)},
		R:     r.AtVec(1) + r1.AtVec(1),
	}
	return
}

// handleDirichletBD: home and successor both Dirichlet boundary faces; no
// auxiliary unknowns remain. The boundary mobility is taken from the
// successor face's condition, matching the reference behavior.
func (rc *Reconstructor) handleDirichletBD(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		al1 = rc.boundaryMobility(reg.Home.ID, reg.BC13, rc.Phys.TotalMobility(reg.Home.ID))
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		g1  = reg.BC12.Pressure
		g3  = reg.BC13.Pressure
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(al1, n1, p1.nuA)
		g121 = p1.g(al1, n1, p1.nuB)
		g211 = p1.g(al1, n3, p1.nuA)
		g221 = p1.g(al1, n3, p1.nuB)
	)
	s1 = &FluxStencil{
		Cells: []int{reg.Home.ID},
		T:     []float64{g111 + g121},
		R:     -(g111*g1 + g121*g3),
	}
	s3 = &FluxStencil{
		Cells: []int{reg.Home.ID},
		T:     []float64{g211 + g221},
		R:     -(g211*g1 + g221*g3),
	}
	return
}

// handleDirichletBN: home Dirichlet, successor boundary Neumann.
func (rc *Reconstructor) handleDirichletBN(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		al1 = rc.boundaryMobility(reg.Home.ID, reg.BC12, rc.Phys.TotalMobility(reg.Home.ID))
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		g1  = reg.BC12.Pressure
		J3  = rc.volumetricRate(reg.Home.ID, reg.BC13)
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(al1, n1, p1.nuA)
		g121 = p1.g(al1, n1, p1.nuB)
		g211 = p1.g(al1, n3, p1.nuA)
		g221 = p1.g(al1, n3, p1.nuB)
	)
	if g221 == 0 {
		return nil, nil, fmt.Errorf("mpfa: vanishing elimination coefficient")
	}
	T := g111 - g211*g121/g221
	s1 = &FluxStencil{
		Cells: []int{reg.Home.ID},
		T:     []float64{T},
		R:     -T*g1 + g121*J3*reg.Face13.Vol/(2*g221),
	}
	return
}

// handleDirichletID: home Dirichlet, successor interior, cell 3's outer face
// Dirichlet; closed-form elimination of the single auxiliary potential.
func (rc *Reconstructor) handleDirichletID(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		al1 = rc.boundaryMobility(reg.Home.ID, reg.BC12, rc.Phys.TotalMobility(reg.Home.ID))
		al3 = rc.boundaryMobility(reg.Home.ID, reg.BC34, rc.Phys.TotalMobility(reg.Cell3))
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		g1  = reg.BC12.Pressure
		g2  = reg.BC34.Pressure
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p3, err := rc.cell3Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(al1, n1, p1.nuA)
		g121 = p1.g(al1, n1, p1.nuB)
		g211 = p1.g(al1, n3, p1.nuA)
		g221 = p1.g(al1, n3, p1.nuB)
		g213 = p3.g(al3, n3, p3.nuA)
		g223 = p3.g(al3, n3, p3.nuB)
	)

	coe := g221 + g223
	if coe == 0 {
		return nil, nil, fmt.Errorf("mpfa: vanishing elimination coefficient")
	}

	cells := []int{reg.Home.ID, reg.Cell3}
	s1 = &FluxStencil{
		Cells: cells,
		T: []float64{
			g111 + g121*(g223-g211)/coe,
			-g121 * (g223 - g213) / coe,
		},
		R: -g111*g1 + (g1*g121*g211-g2*g213*g121)/coe,
	}
	s3 = &FluxStencil{
		Cells: cells,
		T: []float64{
			g223 * (g211 + g221) / coe,
			-g221 * (g223 - g213) / coe,
		},
		R: -(g1*g211*g223 + g2*g221*g213) / coe,
	}
	return
}

// handleDirichletIN: home Dirichlet, successor interior, cell 3's outer face
// Neumann.
func (rc *Reconstructor) handleDirichletIN(reg *Region) (s1, s3 *FluxStencil, err error) {
	var (
		al1 = rc.boundaryMobility(reg.Home.ID, reg.BC12, rc.Phys.TotalMobility(reg.Home.ID))
		l3  = rc.Phys.TotalMobility(reg.Cell3)
		n1  = reg.Face12.ScaledNormal()
		n3  = reg.Face13.ScaledNormal()
		n2  = reg.Face34.ScaledNormal()
		g1  = reg.BC12.Pressure
		J2  = rc.volumetricRate(reg.Home.ID, reg.BC34)
	)
	p1, err := rc.homeProbe(reg)
	if err != nil {
		return
	}
	p3, err := rc.cell3Probe(reg)
	if err != nil {
		return
	}
	var (
		g111 = p1.g(al1, n1, p1.nuA)
		g121 = p1.g(al1, n1, p1.nuB)
		g211 = p1.g(al1, n3, p1.nuA)
		g221 = p1.g(al1, n3, p1.nuB)
		g113 = p3.g(l3, n2, p3.nuA)
		g123 = p3.g(l3, n2, p3.nuB)
		g213 = p3.g(l3, n3, p3.nuA)
		g223 = p3.g(l3, n3, p3.nuB)
	)

	A := utils.NewMatrix(2, 2, []float64{
		g113, -g123,
		-g213, g221 + g223,
	})
	B := utils.NewMatrix(2, 2, []float64{
		0, g113 - g123,
		g211 + g221, g223 - g213,
	})
	r1 := utils.NewVector(2, []float64{
		-J2 * reg.Face34.Vol / 2,
		-g211 * g1,
	})

	Ainv, err := A.Inverse()
	if err != nil {
		return
	}
	T := Ainv.Mul(B)
	r := Ainv.MulVec(r1)

	cells := []int{reg.Home.ID, reg.Cell3}
	s1 = &FluxStencil{
		Cells: cells,
		T: []float64{
			g111 + g121 - g121*T.At(1, 0),
			-g121 * T.At(1, 1),
		},
		R: -(g111*g1 + g121*r.AtVec(1)),
	}
	s3 = &FluxStencil{
		Cells: cells,
		T: []float64{
			g211 + g221 - g221*T.At(1, 0),
			-g221 * T.At(1, 1),
		},
		R: -(g211*g1 + g221*r.AtVec(1)),
	}
	return
}
