package beamform_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wiless/beamform"
	"github.com/wiless/beamform/array"
)

func newTestArray() array.ArrayConfig {
	return array.ArrayConfig{N: 8, Spacing: 0.0625, CurveWidthInDegree: 0}
}

func TestNewSimulator(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	t.Log("fc ", sim.FrequencyHz(), " lamda ", sim.GetLamda())
	if sim.FrequencyHz() != 2.4e9 {
		t.Errorf("frequency = %v", sim.FrequencyHz())
	}
	if math.Abs(sim.GetLamda()-0.125) > 1e-12 {
		t.Errorf("lamda = %v, want 0.125", sim.GetLamda())
	}
	want := 2 * math.Pi / 0.125
	if math.Abs(sim.GetWaveNumber()-want) > 1e-9 {
		t.Errorf("k = %v, want %v", sim.GetWaveNumber(), want)
	}
}

func TestNewSimulatorRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		freqHz float64
		cfgs   []array.ArrayConfig
	}{
		{"zero_frequency", 0, []array.ArrayConfig{newTestArray()}},
		{"negative_frequency", -2.4e9, []array.ArrayConfig{newTestArray()}},
		{"zero_elements", 2.4e9, []array.ArrayConfig{{N: 0, Spacing: 0.05}}},
		{"bad_spacing", 2.4e9, []array.ArrayConfig{{N: 4, Spacing: -1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := beamform.NewSimulator(tt.freqHz, 0, tt.cfgs...)
			if !errors.Is(err, beamform.ErrInvalidParameter) {
				t.Errorf("err = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

// A rejected frequency must leave the carrier and both derived quantities
// exactly as they were.
func TestSetFrequencyFailureKeepsState(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	fc, lamda, k := sim.FrequencyHz(), sim.GetLamda(), sim.GetWaveNumber()

	for _, hz := range []float64{0, -5e9} {
		if err := sim.SetFrequency(hz); !errors.Is(err, beamform.ErrInvalidParameter) {
			t.Errorf("SetFrequency(%v) err = %v, want ErrInvalidParameter", hz, err)
		}
		if sim.FrequencyHz() != fc || sim.GetLamda() != lamda || sim.GetWaveNumber() != k {
			t.Errorf("state changed after rejected SetFrequency(%v)", hz)
		}
	}
}

// Wavelength and wave number always move together with the carrier.
func TestDerivedQuantitiesTrackFrequency(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	for _, hz := range []float64{1e9, 30e9, 2.4e9} {
		if err := sim.SetFrequency(hz); err != nil {
			t.Fatal(err)
		}
		if got, want := sim.GetLamda(), 3.0e8/hz; math.Abs(got-want) > 1e-15*want {
			t.Errorf("lamda at %v Hz = %v, want %v", hz, got, want)
		}
		if got, want := sim.GetWaveNumber(), 2*math.Pi/sim.GetLamda(); math.Abs(got-want) > 1e-9 {
			t.Errorf("k at %v Hz = %v, want %v", hz, got, want)
		}
	}
}

func TestSetSteeringUnconditional(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	for _, deg := range []float64{-90, -180, 45, 270} {
		sim.SetSteering(deg)
		if sim.SteeringDeg() != deg {
			t.Errorf("steering = %v, want %v", sim.SteeringDeg(), deg)
		}
	}
}

func TestSetArraysReplacesWholesale(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, newTestArray(), newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	if len(sim.Arrays()) != 2 {
		t.Fatalf("got %d arrays", len(sim.Arrays()))
	}
	curved := array.ArrayConfig{N: 16, Spacing: 0.01, CurveWidthInDegree: 90}
	if err := sim.SetArrays(curved); err != nil {
		t.Fatal(err)
	}
	got := sim.Arrays()
	if len(got) != 1 || got[0] != curved {
		t.Errorf("arrays = %+v, want just %+v", got, curved)
	}
}

func TestSetArraysFailureKeepsList(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0, newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	bad := array.ArrayConfig{N: 4, Spacing: 0}
	if err := sim.SetArrays(bad); !errors.Is(err, beamform.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}
	got := sim.Arrays()
	if len(got) != 1 || got[0] != newTestArray() {
		t.Errorf("arrays after rejected SetArrays = %+v", got)
	}
}

// Constructing with no arrays is legal; only the simulation calls demand a
// non-empty list.
func TestEmptyConfiguration(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := sim.SimulateGrid(beamform.DefaultGrid()); !errors.Is(err, beamform.ErrEmptyConfiguration) {
		t.Errorf("SimulateGrid err = %v, want ErrEmptyConfiguration", err)
	}
	if _, err := sim.ArrayFactor(array.DefaultSweep()); !errors.Is(err, beamform.ErrEmptyConfiguration) {
		t.Errorf("ArrayFactor err = %v, want ErrEmptyConfiguration", err)
	}
}

// Simulation calls are read-only on the simulator.
func TestSimulateLeavesStateUntouched(t *testing.T) {
	sim, err := beamform.NewSimulator(2.4e9, 15, newTestArray())
	if err != nil {
		t.Fatal(err)
	}
	fc, steer, lamda := sim.FrequencyHz(), sim.SteeringDeg(), sim.GetLamda()
	before := sim.Arrays()

	if _, err := sim.SimulateGrid(beamform.GridSpec{XMin: -2, XMax: 2, YMin: 0, YMax: 2, NX: 20, NY: 20}); err != nil {
		t.Fatal(err)
	}
	if _, err := sim.ArrayFactor(array.Sweep(-90, 90, 50)); err != nil {
		t.Fatal(err)
	}

	if sim.FrequencyHz() != fc || sim.SteeringDeg() != steer || sim.GetLamda() != lamda {
		t.Error("scalar state changed by a simulation call")
	}
	after := sim.Arrays()
	if len(after) != len(before) {
		t.Fatal("array list length changed by a simulation call")
	}
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("array %d changed by a simulation call", i)
		}
	}
}
