package pathloss

import (
	"math"

	"github.com/wiless/vlib"
)

// FreeSpace is the ideal line-of-sight model, L = 20log10(d) + 20log10(f) + 32.45
// with d in km and f in MHz.
type FreeSpace struct {
	wsettings ModelSetting
}

func NewFreeSpace() *FreeSpace {
	result := new(FreeSpace)
	result.wsettings.SetDefault()
	return result
}

func (w *FreeSpace) Set(s ModelSetting) {
	w.wsettings = s
}

func (w FreeSpace) Get() ModelSetting {
	return w.wsettings
}

func (w FreeSpace) IsSupported(freqGHz float64) bool {
	return freqGHz > 0
}

func (w FreeSpace) LossInDb3D(src, dest vlib.Location3D, freqGHz float64) (plDb float64, valid bool) {
	if freqGHz <= 0 {
		return math.NaN(), false
	}
	distance := src.DistanceFrom(dest)
	if distance <= w.wsettings.CutOffDistance {
		return 0, true
	}
	FreqMHz := freqGHz * 1.0e3
	result := 20*math.Log10(distance/1.0e3) + 20*math.Log10(FreqMHz) + 32.45
	return result, true
}
