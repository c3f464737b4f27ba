// Package scenario holds the named beamforming presets and the
// default-substitution policy of the interactive callers.
package scenario

import (
	"errors"
	"fmt"
	"io/ioutil"
	"math"

	"github.com/wiless/beamform/array"
	"gopkg.in/yaml.v3"
)

// ErrUnknownScenario indicates a preset lookup by an unlisted name. Callers
// typically substitute Default() and carry on.
var ErrUnknownScenario = errors.New("unknown scenario")

// Preset names one demonstration setup. SpacingLamda is the element spacing
// as a fraction of the carrier wavelength.
type Preset struct {
	Name         string  `yaml:"name" json:"name"`
	FrequencyHz  float64 `yaml:"frequency_hz" json:"frequency_hz"`
	SpacingLamda float64 `yaml:"spacing_lamda" json:"spacing_lamda"`
	CurveDeg     float64 `yaml:"curvature" json:"curvature"`
	N            int     `yaml:"num_elements" json:"num_elements"`
}

// Configure resolves the preset into simulator constructor arguments.
func (p Preset) Configure() (freqHz float64, cfg array.ArrayConfig) {
	cfg = array.ArrayConfig{
		N:                  p.N,
		Spacing:            p.SpacingLamda * array.Wavelength(p.FrequencyHz),
		CurveWidthInDegree: p.CurveDeg,
	}
	return p.FrequencyHz, cfg
}

// Catalog is an ordered preset list. Next cycles through it in order, the
// way the scenario toggle of the UI does.
type Catalog struct {
	Presets []Preset
}

// DefaultCatalog returns the built-in demonstration presets.
func DefaultCatalog() *Catalog {
	return &Catalog{Presets: []Preset{
		{Name: "5G", FrequencyHz: 30e9, SpacingLamda: 0.50, CurveDeg: 0, N: 32},
		{Name: "Ultrasound", FrequencyHz: 100e9, SpacingLamda: 0.10, CurveDeg: 90, N: 64},
		{Name: "Tumor Ablation", FrequencyHz: 50e9, SpacingLamda: 0.15, CurveDeg: 0, N: 128},
	}}
}

func (c *Catalog) index(name string) int {
	for indx, val := range c.Presets {
		if val.Name == name {
			return indx
		}
	}
	return -1
}

func (c *Catalog) Names() []string {
	names := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		names[i] = p.Name
	}
	return names
}

func (c *Catalog) Lookup(name string) (Preset, error) {
	indx := c.index(name)
	if indx == -1 {
		return Preset{}, fmt.Errorf("scenario: %q: %w", name, ErrUnknownScenario)
	}
	return c.Presets[indx], nil
}

// Next returns the preset after current, wrapping around. An empty or
// unlisted current starts the cycle at the first preset.
func (c *Catalog) Next(current string) Preset {
	indx := c.index(current)
	if indx == -1 {
		return c.Presets[0]
	}
	return c.Presets[(indx+1)%len(c.Presets)]
}

// LoadYAML merges the presets of a catalog file into c. A preset with a
// known name replaces the built-in one, new names are appended in file
// order.
func (c *Catalog) LoadYAML(fname string) error {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return fmt.Errorf("scenario: read catalog: %w", err)
	}
	var file struct {
		Presets []Preset `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("scenario: parse catalog: %w", err)
	}
	for _, p := range file.Presets {
		if indx := c.index(p.Name); indx != -1 {
			c.Presets[indx] = p
		} else {
			c.Presets = append(c.Presets, p)
		}
	}
	return nil
}

// Default is the array configuration substituted when a lookup misses.
func Default() array.ArrayConfig {
	return *array.NewArrayConfig()
}

// ClampCurve pins a curvature to the renderable [0,180] degree range, the
// clamp callers apply before building a configuration.
func ClampCurve(deg float64) float64 {
	return math.Max(0, math.Min(deg, 180))
}
