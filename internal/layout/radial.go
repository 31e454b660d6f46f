package layout

import (
	"math"

	"github.com/san-kum/sonograph/internal/graph"
)

// RadialForce pulls each node toward a fixed planar radius from the
// origin. The central node's target radius is zero, anchoring the
// layout around it instead of letting the whole graph drift.
type RadialForce struct {
	Distance float64
	Strength float64

	nodes []*graph.Node
}

func NewRadialForce(cfg Config) *RadialForce {
	return &RadialForce{Distance: cfg.RadialDistance, Strength: cfg.RadialStrength}
}

func (f *RadialForce) Initialize(nodes []*graph.Node) { f.nodes = nodes }

func (f *RadialForce) Apply(alpha float64) {
	for _, n := range f.nodes {
		target := f.Distance
		if n.Role == graph.RoleCentral {
			target = 0
		}
		r := math.Hypot(n.X, n.Y)
		if r < jiggle {
			// At the origin the radial direction is undefined; a node
			// already there with a zero target needs no pull, anything
			// else will be picked up next tick once another force moves
			// it off center.
			continue
		}
		k := (target - r) * f.Strength * alpha / r
		n.VX += n.X * k
		n.VY += n.Y * k
	}
}
