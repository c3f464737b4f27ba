package pathloss

import (
	"math"

	CM "github.com/wiless/channelmodel"
	"github.com/wiless/vlib"
)

// CMAdapter plugs a github.com/wiless/channelmodel propagation model into
// the Model interface, so coverage simulations can run on the 3GPP models
// of that package.
type CMAdapter struct {
	PL        CM.PLModel
	wsettings ModelSetting
}

func NewCMAdapter(pl CM.PLModel) *CMAdapter {
	result := new(CMAdapter)
	result.PL = pl
	result.wsettings.SetDefault()
	result.wsettings.Name = pl.Env()
	return result
}

func (w *CMAdapter) Set(s ModelSetting) {
	w.wsettings = s
}

func (w CMAdapter) Get() ModelSetting {
	s := w.wsettings
	s.Name = w.PL.Env()
	return s
}

func (w CMAdapter) IsSupported(freqGHz float64) bool {
	return w.PL.IsSupported(freqGHz)
}

func (w CMAdapter) LossInDb3D(src, dest vlib.Location3D, freqGHz float64) (plDb float64, valid bool) {
	if !w.PL.IsSupported(freqGHz) {
		return math.NaN(), false
	}
	plDb, _, err := w.PL.PLbetween(src, dest)
	if err != nil {
		return math.NaN(), false
	}
	return plDb, true
}
