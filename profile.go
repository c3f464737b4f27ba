package beamform

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/wiless/beamform/array"
	"github.com/wiless/vlib"
)

// BeamProfile is the array factor sampled over a sweep of angles. Gain is
// not normalized.
type BeamProfile struct {
	AngleDeg vlib.VectorF
	Gain     vlib.VectorF
}

// ArrayFactor evaluates the array factor of the FIRST configured array at
// each angle in degree. Further arrays are ignored, and the steering term
// keeps its sign for curved arrays here, unlike SimulateGrid; both quirks
// are longstanding behavior, kept as is.
func (s *Simulator) ArrayFactor(anglesDeg vlib.VectorF) (BeamProfile, error) {
	if len(s.arrays) == 0 {
		return BeamProfile{}, fmt.Errorf("beamform: no arrays configured: %w", ErrEmptyConfiguration)
	}
	locations, err := s.arrays[0].Elements()
	if err != nil {
		return BeamProfile{}, err
	}
	steerRad := array.Radian(s.steerDeg)
	profile := BeamProfile{
		AngleDeg: vlib.NewVectorF(len(anglesDeg)),
		Gain:     vlib.NewVectorF(len(anglesDeg)),
	}
	copy(profile.AngleDeg, anglesDeg)
	for ai, deg := range anglesDeg {
		theta := array.Radian(deg)
		var af complex128
		for _, l := range locations {
			phase := -s.k * (l.X*math.Sin(steerRad) + l.Y*math.Cos(steerRad))
			af += cmplx.Exp(complex(0, s.k*(l.X*math.Sin(theta)+l.Y*math.Cos(theta))+phase))
		}
		profile.Gain[ai] = math.Pow(cmplx.Abs(af), 2)
	}
	return profile, nil
}

// Peak returns the angle and gain of the strongest sample.
func (p BeamProfile) Peak() (angleDeg, gain float64) {
	for i := range p.Gain {
		if i == 0 || p.Gain[i] > gain {
			gain = p.Gain[i]
			angleDeg = p.AngleDeg[i]
		}
	}
	return angleDeg, gain
}
