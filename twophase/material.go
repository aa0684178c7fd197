package twophase

import "math"

// MaterialLaw maps the wetting saturation to phase relative permeabilities.
type MaterialLaw interface {
	Krw(satW float64) float64
	Krn(satW float64) float64
}

// LinearLaw is the linear relative-permeability relation kr_alpha = S_alpha.
type LinearLaw struct{}

func (LinearLaw) Krw(satW float64) float64 { return clampSat(satW) }
func (LinearLaw) Krn(satW float64) float64 { return 1 - clampSat(satW) }

// BrooksCorey is the Brooks-Corey relative-permeability relation with pore
// size distribution index Lambda and residual saturations Swr, Snr.
type BrooksCorey struct {
	Lambda   float64
	Swr, Snr float64
}

func (b BrooksCorey) effective(satW float64) float64 {
	se := (satW - b.Swr) / (1 - b.Swr - b.Snr)
	return clampSat(se)
}

func (b BrooksCorey) Krw(satW float64) float64 {
	se := b.effective(satW)
	return math.Pow(se, (2+3*b.Lambda)/b.Lambda)
}

func (b BrooksCorey) Krn(satW float64) float64 {
	se := b.effective(satW)
	return (1 - se) * (1 - se) * (1 - math.Pow(se, (2+b.Lambda)/b.Lambda))
}

func clampSat(s float64) float64 {
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}
