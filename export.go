package beamform

import (
	"fmt"

	"github.com/wiless/vlib"
)

// ExportMatlab writes the axes and grid into m together with plot commands.
// Variables are prefixed so several results can share one file.
func (im IntensityMap) ExportMatlab(m *vlib.Matlab, prefix string) {
	m.Export(prefix+"X", im.X)
	m.Export(prefix+"Y", im.Y)
	m.Export(prefix+"Z", im.Z)
	m.Command(fmt.Sprintf("figure;imagesc(%sX,%sY,%sZ);axis xy;colorbar;", prefix, prefix, prefix))
	m.Command(fmt.Sprintf("title('%s intensity');xlabel('x (m)');ylabel('y (m)');", prefix))
}

// ExportMatlab writes the sweep into m together with a plot command.
func (p BeamProfile) ExportMatlab(m *vlib.Matlab, prefix string) {
	m.Export(prefix+"Angle", p.AngleDeg)
	m.Export(prefix+"AF", p.Gain)
	m.Command(fmt.Sprintf("figure;plot(%sAngle,%sAF);grid on;", prefix, prefix))
	m.Command(fmt.Sprintf("title('%s array factor');xlabel('angle (degree)');", prefix))
}

func (c CoverageMap) ExportMatlab(m *vlib.Matlab, prefix string) {
	m.Export(prefix+"X", c.X)
	m.Export(prefix+"Y", c.Y)
	m.Export(prefix+"PdBm", c.PowerDbm)
	m.Command(fmt.Sprintf("figure;imagesc(%sX,%sY,%sPdBm);axis xy;colorbar;", prefix, prefix, prefix))
	m.Command(fmt.Sprintf("title('%s coverage (dBm)');xlabel('x (m)');ylabel('y (m)');", prefix))
}
