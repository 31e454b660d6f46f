package layout

import "github.com/san-kum/sonograph/internal/graph"

// axisDamping is a fixed per-application damping on vz, applied on top
// of the tick loop's global velocity decay. The planar forces never
// touch vz; without the extra damping the z spring rings for hundreds
// of ticks after a node appears far off the plane.
const axisDamping = 0.9

// AxisZForce supplies the third dimension the planar force set does not
// provide: a spring pulling each node's z toward Target, integrated
// here rather than in the tick loop.
type AxisZForce struct {
	Target   float64
	Strength float64

	nodes []*graph.Node
}

func NewAxisZForce(cfg Config) *AxisZForce {
	return &AxisZForce{Strength: cfg.ZStrength}
}

func (f *AxisZForce) Initialize(nodes []*graph.Node) { f.nodes = nodes }

func (f *AxisZForce) Apply(alpha float64) {
	for _, n := range f.nodes {
		n.VZ += alpha * f.Strength * (f.Target - n.Z)
		n.VZ *= axisDamping
		n.Z += n.VZ
	}
}
