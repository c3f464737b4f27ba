package beamform

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/wiless/beamform/array"
	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
)

// normEps keeps the normalization finite when the field cancels everywhere.
const normEps = 1e-10

const bandRows = 64

// GridSpec bounds the sampled region and its resolution.
type GridSpec struct {
	XMin, XMax float64
	YMin, YMax float64
	NX, NY     int
}

// DefaultGrid covers the region the interactive callers render.
func DefaultGrid() GridSpec {
	return GridSpec{XMin: -10, XMax: 10, YMin: 0, YMax: 10, NX: 200, NY: 200}
}

// IntensityMap holds |field|^2 over the sampled region, normalized to [0,1].
// Z[r][c] is the intensity at (X[c], Y[r]).
type IntensityMap struct {
	X vlib.VectorF
	Y vlib.VectorF
	Z vlib.MatrixF
}

// one radiating element with its steering phase folded in
type radiator struct {
	x, y, phase float64
}

// SimulateGrid coherently sums the contribution of every element of every
// configured array at each grid point and returns the normalized intensity.
func (s *Simulator) SimulateGrid(g GridSpec) (IntensityMap, error) {
	if len(s.arrays) == 0 {
		return IntensityMap{}, fmt.Errorf("beamform: no arrays configured: %w", ErrEmptyConfiguration)
	}
	if g.NX < 1 || g.NY < 1 {
		return IntensityMap{}, fmt.Errorf("beamform: grid %dx%d: %w", g.NX, g.NY, ErrInvalidParameter)
	}
	radiators, err := s.radiators()
	if err != nil {
		return IntensityMap{}, err
	}
	im := IntensityMap{
		X: axis(g.XMin, g.XMax, g.NX),
		Y: axis(g.YMin, g.YMax, g.NY),
		Z: vlib.NewMatrixF(g.NY, g.NX),
	}
	for y0 := 0; y0 < g.NY; y0 += bandRows {
		y1 := y0 + bandRows
		if y1 > g.NY {
			y1 = g.NY
		}
		s.fillBand(im, radiators, y0, y1)
	}
	var max float64
	for _, row := range im.Z {
		if m := floats.Max(row); m > max {
			max = m
		}
	}
	scale := 1.0 / (max + normEps)
	for _, row := range im.Z {
		floats.Scale(scale, row)
	}
	return im, nil
}

// fillBand fills |sum|^2 for rows [y0,y1). Bands only partition the rows;
// every point still accumulates its elements in configuration order.
func (s *Simulator) fillBand(im IntensityMap, rads []radiator, y0, y1 int) {
	for yi := y0; yi < y1; yi++ {
		y := im.Y[yi]
		for xi := range im.X {
			x := im.X[xi]
			var sum complex128
			for _, r := range rads {
				dist := math.Hypot(x-r.x, y-r.y)
				sum += cmplx.Exp(complex(0, s.k*dist+r.phase))
			}
			im.Z[yi][xi] = math.Pow(cmplx.Abs(sum), 2)
		}
	}
}

// radiators flattens the configured arrays into steered point sources. The
// steering term inside the sine flips sign for a linear array and keeps it
// for a curved one; longstanding behavior, kept as is.
func (s *Simulator) radiators() ([]radiator, error) {
	steerRad := array.Radian(s.steerDeg)
	var rads []radiator
	for i, cfg := range s.arrays {
		locations, err := cfg.Elements()
		if err != nil {
			return nil, fmt.Errorf("beamform: array %d: %w", i, err)
		}
		sign := 1.0
		if cfg.IsLinear() {
			sign = -1.0
		}
		for _, l := range locations {
			rads = append(rads, radiator{
				x:     l.X,
				y:     l.Y,
				phase: -s.k * (l.X*math.Sin(sign*steerRad) + l.Y*math.Cos(steerRad)),
			})
		}
	}
	return rads, nil
}

func axis(min, max float64, n int) vlib.VectorF {
	v := vlib.NewVectorF(n)
	if n == 1 {
		v[0] = min
		return v
	}
	floats.Span(v, min, max)
	return v
}
