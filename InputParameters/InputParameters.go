package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file
type CaseParameters struct {
	Title      string  `yaml:"Title"`
	Nx         int     `yaml:"Nx"`
	Ny         int     `yaml:"Ny"`
	Lx         float64 `yaml:"Lx"`
	Ly         float64 `yaml:"Ly"`
	Shear      float64 `yaml:"Shear"` // 0 = rectangular cells, else parallelograms
	PermXX     float64 `yaml:"PermXX"`
	PermXY     float64 `yaml:"PermXY"`
	PermYY     float64 `yaml:"PermYY"`
	MobilityW  float64 `yaml:"MobilityW"`
	MobilityN  float64 `yaml:"MobilityN"`
	ViscosityW float64 `yaml:"ViscosityW"`
	ViscosityN float64 `yaml:"ViscosityN"`
	DensityW   float64 `yaml:"DensityW"`
	DensityN   float64 `yaml:"DensityN"`
	// Cell pressures are sampled from P0 + GradX*x + GradY*y at the centers.
	P0      float64                       `yaml:"P0"`
	GradX   float64                       `yaml:"GradX"`
	GradY   float64                       `yaml:"GradY"`
	Sources map[int]float64               `yaml:"Sources"` // cell id -> volumetric rate
	BCs     map[string]map[string]float64 `yaml:"BCs"`     // First key is BC type, second is the domain side
}

func (cp *CaseParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, cp); err != nil {
		return err
	}
	return cp.validate()
}

func (cp *CaseParameters) validate() error {
	if cp.Nx < 1 || cp.Ny < 1 {
		return fmt.Errorf("case needs Nx, Ny >= 1, have %d, %d", cp.Nx, cp.Ny)
	}
	if cp.Lx <= 0 || cp.Ly <= 0 {
		return fmt.Errorf("case needs positive extents, have %g, %g", cp.Lx, cp.Ly)
	}
	for bcType, sides := range cp.BCs {
		if bcType != "Dirichlet" && bcType != "Neumann" {
			return fmt.Errorf("unknown BC type [%s], want Dirichlet or Neumann", bcType)
		}
		for side := range sides {
			switch side {
			case "West", "East", "South", "North":
			default:
				return fmt.Errorf("unknown domain side [%s] in BC type [%s]", side, bcType)
			}
		}
	}
	return nil
}

func (cp *CaseParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", cp.Title)
	fmt.Printf("[%d x %d]\t\t= Cells\n", cp.Nx, cp.Ny)
	fmt.Printf("%8.5f x %8.5f\t= Extents\n", cp.Lx, cp.Ly)
	fmt.Printf("%8.5f\t\t= Shear\n", cp.Shear)
	fmt.Printf("[%8.5f %8.5f; %8.5f %8.5f] = Permeability\n", cp.PermXX, cp.PermXY, cp.PermXY, cp.PermYY)
	fmt.Printf("%8.5f, %8.5f\t= Phase mobilities\n", cp.MobilityW, cp.MobilityN)
	keys := make([]string, len(cp.BCs))
	i := 0
	for k := range cp.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, cp.BCs[key])
	}
}
