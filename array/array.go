// Implements element placement for linear and curved phased-array antennas
package array

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"
)

var cspeed float64 = 3.0e8

// ErrInvalidParameter indicates an out-of-range geometry or simulator
// parameter (element count < 1, non-positive spacing or frequency).
var ErrInvalidParameter = errors.New("invalid parameter")

// ArrayConfig describes one physical phased array. CurveWidthInDegree is the
// total angular span of the arc the elements are bent along; 0 keeps the
// array linear. Callers clamp it to [0,180] before rendering, the engine
// itself does not.
type ArrayConfig struct {
	N                  int     `json:"num_elements" mapstructure:"num_elements"`
	Spacing            float64 `json:"spacing" mapstructure:"spacing"` // in meters
	CurveWidthInDegree float64 `json:"curvature" mapstructure:"curvature"`
}

func (c *ArrayConfig) SetDefault() {
	c.N = 64
	c.Spacing = 0.05
	c.CurveWidthInDegree = 0
}

func NewArrayConfig() *ArrayConfig {
	result := new(ArrayConfig)
	result.SetDefault()
	return result
}

func (c *ArrayConfig) Set(str string) {
	err := json.Unmarshal([]byte(str), c)
	if err != nil {
		log.Print("Error ", err)
	}
}

// IsLinear reports whether the elements sit on a straight line rather than
// an arc.
func (c ArrayConfig) IsLinear() bool {
	return c.CurveWidthInDegree == 0
}

// Elements returns the local positions of the configured elements.
func (c ArrayConfig) Elements() ([]vlib.Location3D, error) {
	return Elements(c.N, c.Spacing, c.CurveWidthInDegree)
}

// Elements places n radiators spacing metres apart. With curveDeg == 0 they
// lie on a straight line centred on the local origin; otherwise they lie on
// a circular arc spanning curveDeg degree, re-centred so the arc apex sits
// at local x = 0. A single element always sits at the origin.
func Elements(n int, spacing, curveDeg float64) ([]vlib.Location3D, error) {
	if n < 1 {
		return nil, fmt.Errorf("array: %d elements: %w", n, ErrInvalidParameter)
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("array: spacing %v m: %w", spacing, ErrInvalidParameter)
	}
	elementLocations := make([]vlib.Location3D, n)
	if n == 1 {
		return elementLocations, nil
	}
	if curveDeg == 0 {
		for i := 0; i < n; i++ {
			elementLocations[i].SetXY(spacing*float64(i)-float64(n-1)*spacing/2.0, 0)
		}
		return elementLocations, nil
	}
	curveRad := Radian(curveDeg)
	radius := float64(n-1) * spacing / curveRad
	delTheta := curveRad / float64(n-1)
	for i := 0; i < n; i++ {
		angle := -curveRad/2.0 + delTheta*float64(i)
		elementLocations[i].SetXY(radius*math.Cos(angle)-radius, radius*math.Sin(angle))
	}
	return elementLocations, nil
}

// Wavelength returns the carrier wavelength in meters for freqHz.
func Wavelength(freqHz float64) float64 {
	return cspeed / freqHz
}

// WaveNumber returns the spatial angular frequency 2*pi/lamda for freqHz.
func WaveNumber(freqHz float64) float64 {
	return 2.0 * math.Pi / Wavelength(freqHz)
}
