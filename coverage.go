package beamform

import (
	"fmt"
	"math"

	"github.com/wiless/beamform/pathloss"
	"github.com/wiless/vlib"
)

var DEFAULTERR_PL float64 = 999999

// floor on the normalized beam gain before conversion to dB, so nulls stay
// finite and exportable
const minGainDb = -120.0

// CoverageSetting carries the link-budget terms of a coverage run.
type CoverageSetting struct {
	TxPowerDBm float64
	TxHeight   float64
	RxHeight   float64
}

func (c *CoverageSetting) SetDefault() {
	c.TxPowerDBm = 46.0
	c.TxHeight = 35.0
	c.RxHeight = 1.5
}

func NewCoverageSetting() *CoverageSetting {
	result := new(CoverageSetting)
	result.SetDefault()
	return result
}

// CoverageMap holds received power in dBm over the sampled region.
// PowerDbm[r][c] pairs with (X[c], Y[r]) like IntensityMap.
type CoverageMap struct {
	X        vlib.VectorF
	Y        vlib.VectorF
	PowerDbm vlib.MatrixF
}

// SimulateCoverage overlays the path loss of model on the beam pattern: at
// every grid point received power = tx power + beam gain in dB - path loss.
// The transmitter sits above the local origin at cs.TxHeight, receivers at
// cs.RxHeight. Fails with ErrInvalidParameter when model does not support
// the operating frequency.
func (s *Simulator) SimulateCoverage(model pathloss.Model, cs CoverageSetting, g GridSpec) (CoverageMap, error) {
	fGHz := s.freqHz / 1e9
	if !model.IsSupported(fGHz) {
		return CoverageMap{}, fmt.Errorf("beamform: %s unsupported at %v GHz: %w", model.Get().Name, fGHz, ErrInvalidParameter)
	}
	im, err := s.SimulateGrid(g)
	if err != nil {
		return CoverageMap{}, err
	}
	cm := CoverageMap{X: im.X, Y: im.Y, PowerDbm: vlib.NewMatrixF(g.NY, g.NX)}
	txloc := vlib.Location3D{X: 0, Y: 0, Z: cs.TxHeight}
	var rxloc vlib.Location3D
	for yi := range im.Y {
		for xi := range im.X {
			rxloc.SetXYZ(im.X[xi], im.Y[yi], cs.RxHeight)
			plDb, valid := model.LossInDb3D(txloc, rxloc, fGHz)
			if !valid {
				plDb = DEFAULTERR_PL
			}
			cm.PowerDbm[yi][xi] = cs.TxPowerDBm + gainDb(im.Z[yi][xi]) - plDb
		}
	}
	return cm, nil
}

// gainDb converts a normalized intensity to dB with a side-lobe style floor.
func gainDb(intensity float64) float64 {
	return vlib.Db(math.Max(intensity, vlib.InvDb(minGainDb)))
}
