package layout

import "github.com/san-kum/sonograph/internal/graph"

// Axis selects the coordinate a PositionForce acts on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// PositionForce is a very weak pull of one coordinate toward zero. It
// exists to stop long-term drift, not to shape the layout.
type PositionForce struct {
	Strength float64

	axis  Axis
	nodes []*graph.Node
}

func NewPositionForce(axis Axis, cfg Config) *PositionForce {
	return &PositionForce{Strength: cfg.PositionStrength, axis: axis}
}

func (f *PositionForce) Initialize(nodes []*graph.Node) { f.nodes = nodes }

func (f *PositionForce) Apply(alpha float64) {
	for _, n := range f.nodes {
		switch f.axis {
		case AxisX:
			n.VX += (0 - n.X) * f.Strength * alpha
		case AxisY:
			n.VY += (0 - n.Y) * f.Strength * alpha
		}
	}
}
