package beamform_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wiless/beamform"
	"github.com/wiless/beamform/array"
	"github.com/wiless/beamform/pathloss"
	"github.com/wiless/vlib"
)

type stubModel struct {
	supported bool
	valid     bool
	lossDb    float64
}

func (m *stubModel) Set(pathloss.ModelSetting) {}

func (m *stubModel) Get() pathloss.ModelSetting {
	return pathloss.ModelSetting{Name: "stub"}
}

func (m *stubModel) IsSupported(fGHz float64) bool {
	return m.supported
}

func (m *stubModel) LossInDb3D(src, dest vlib.Location3D, fGHz float64) (float64, bool) {
	return m.lossDb, m.valid
}

func fsplDb(dist, fGHz float64) float64 {
	return 20*math.Log10(dist/1.0e3) + 20*math.Log10(fGHz*1.0e3) + 32.45
}

// A single element radiates uniformly, so received power is just the link
// budget against free space loss.
func TestSimulateCoverageFreeSpace(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, array.ArrayConfig{N: 1, Spacing: 0.05})
	if err != nil {
		t.Fatal(err)
	}
	cs := beamform.NewCoverageSetting()
	g := beamform.GridSpec{XMin: -10, XMax: 10, YMin: 1, YMax: 10, NX: 5, NY: 5}
	cm, err := sim.SimulateCoverage(pathloss.NewFreeSpace(), *cs, g)
	if err != nil {
		t.Fatal(err)
	}
	for yi := range cm.PowerDbm {
		for xi := range cm.PowerDbm[yi] {
			d := math.Sqrt(cm.X[xi]*cm.X[xi] + cm.Y[yi]*cm.Y[yi] + (cs.TxHeight-cs.RxHeight)*(cs.TxHeight-cs.RxHeight))
			want := cs.TxPowerDBm - fsplDb(d, 2.4)
			if math.Abs(cm.PowerDbm[yi][xi]-want) > 1e-6 {
				t.Errorf("power at (%v,%v) = %v dBm, want %v", cm.X[xi], cm.Y[yi], cm.PowerDbm[yi][xi], want)
			}
		}
	}
}

func TestSimulateCoverageUnsupportedModel(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	model := &stubModel{supported: false}
	_, err = sim.SimulateCoverage(model, *beamform.NewCoverageSetting(), beamform.DefaultGrid())
	if !errors.Is(err, beamform.ErrInvalidParameter) {
		t.Errorf("err = %v, want ErrInvalidParameter", err)
	}
}

// Points the model cannot evaluate get the sentinel loss instead of failing
// the whole run.
func TestSimulateCoverageFallbackLoss(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	model := &stubModel{supported: true, valid: false}
	g := beamform.GridSpec{XMin: -2, XMax: 2, YMin: 0, YMax: 2, NX: 4, NY: 4}
	cm, err := sim.SimulateCoverage(model, *beamform.NewCoverageSetting(), g)
	if err != nil {
		t.Fatal(err)
	}
	for yi := range cm.PowerDbm {
		for xi := range cm.PowerDbm[yi] {
			if cm.PowerDbm[yi][xi] > -900000 {
				t.Fatalf("power at (%d,%d) = %v, sentinel loss not applied", yi, xi, cm.PowerDbm[yi][xi])
			}
		}
	}
}

func TestSimulateCoverageEmptyConfiguration(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0)
	if err != nil {
		t.Fatal(err)
	}
	model := &stubModel{supported: true, valid: true, lossDb: 100}
	_, err = sim.SimulateCoverage(model, *beamform.NewCoverageSetting(), beamform.DefaultGrid())
	if !errors.Is(err, beamform.ErrEmptyConfiguration) {
		t.Errorf("err = %v, want ErrEmptyConfiguration", err)
	}
}
