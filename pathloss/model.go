// Implements the propagation models plugged into coverage simulations
package pathloss

import (
	"encoding/json"
	"log"

	"github.com/wiless/vlib"
)

// Model is the propagation contract of a coverage simulation. LossInDb3D
// reports valid=false when the model cannot evaluate the link; callers
// substitute their own fallback loss.
type Model interface {
	Set(ModelSetting)
	Get() ModelSetting
	IsSupported(freqGHz float64) bool
	LossInDb3D(src, dest vlib.Location3D, freqGHz float64) (plDb float64, valid bool)
}

type ModelSetting struct {
	Name           string
	FreqHz         float64
	CutOffDistance float64 // metres below which the loss is taken as 0 dB
}

func (m *ModelSetting) SetDefault() {
	m.Name = "FreeSpace"
	m.FreqHz = 2.0e9
	m.CutOffDistance = 0
}

func NewModelSetting() *ModelSetting {
	result := new(ModelSetting)
	result.SetDefault()
	return result
}

func (s *ModelSetting) Set(str string) {
	err := json.Unmarshal([]byte(str), s)
	if err != nil {
		log.Print("Error ", err)
	}
}
