package beamform

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/beamform/array"
)

// ErrInvalidParameter aliases array.ErrInvalidParameter so callers match
// failures from either package with one errors.Is target.
var ErrInvalidParameter = array.ErrInvalidParameter

// ErrEmptyConfiguration indicates a simulation was requested while no arrays
// are configured.
var ErrEmptyConfiguration = errors.New("empty configuration")

// Simulator owns the operating frequency, the steering angle and the set of
// configured arrays. Frequency, wavelength and wave number only ever change
// together through SetFrequency. Simulation calls read the state, they never
// write it.
type Simulator struct {
	freqHz   float64
	steerDeg float64
	lamda    float64
	k        float64
	arrays   []array.ArrayConfig
}

func NewSimulator(freqHz, steerDeg float64, cfgs ...array.ArrayConfig) (*Simulator, error) {
	s := new(Simulator)
	if err := s.SetFrequency(freqHz); err != nil {
		return nil, err
	}
	s.SetSteering(steerDeg)
	if err := s.SetArrays(cfgs...); err != nil {
		return nil, err
	}
	return s, nil
}

// SetFrequency updates the carrier and the derived wavelength and wave
// number. The state is untouched when hz is rejected.
func (s *Simulator) SetFrequency(hz float64) error {
	if hz <= 0 {
		return fmt.Errorf("beamform: frequency %v Hz: %w", hz, ErrInvalidParameter)
	}
	s.freqHz = hz
	s.lamda = array.Wavelength(hz)
	s.k = array.WaveNumber(hz)
	log.Debugf("beamform: fc=%v Hz lamda=%v m", s.freqHz, s.lamda)
	return nil
}

// SetSteering updates the steering angle in degree. Any real value is
// accepted; values outside [-90,90] steer the main lobe backwards.
func (s *Simulator) SetSteering(deg float64) {
	s.steerDeg = deg
}

// SetArrays replaces the configured arrays wholesale.
func (s *Simulator) SetArrays(cfgs ...array.ArrayConfig) error {
	for i := range cfgs {
		if cfgs[i].N < 1 {
			return fmt.Errorf("beamform: array %d has %d elements: %w", i, cfgs[i].N, ErrInvalidParameter)
		}
		if cfgs[i].Spacing <= 0 {
			return fmt.Errorf("beamform: array %d spacing %v m: %w", i, cfgs[i].Spacing, ErrInvalidParameter)
		}
	}
	s.arrays = make([]array.ArrayConfig, len(cfgs))
	copy(s.arrays, cfgs)
	return nil
}

func (s *Simulator) FrequencyHz() float64 {
	return s.freqHz
}

func (s *Simulator) SteeringDeg() float64 {
	return s.steerDeg
}

// GetLamda returns the carrier wavelength in meters.
func (s *Simulator) GetLamda() float64 {
	return s.lamda
}

// GetWaveNumber returns 2*pi/lamda.
func (s *Simulator) GetWaveNumber() float64 {
	return s.k
}

func (s *Simulator) Arrays() []array.ArrayConfig {
	result := make([]array.ArrayConfig, len(s.arrays))
	copy(result, s.arrays)
	return result
}
