package layout

import (
	"math"

	"github.com/san-kum/sonograph/internal/graph"
)

// ChargeForce makes every node repel every other node, with magnitude
// falling off with the square of planar distance and truncated beyond
// MaxDistance. It is what keeps the link springs from collapsing the
// graph onto itself. Node counts in this domain are small, so the
// pairwise O(n^2) sweep is fine.
type ChargeForce struct {
	Strength    float64
	MaxDistance float64

	nodes []*graph.Node
}

func NewChargeForce(cfg Config) *ChargeForce {
	return &ChargeForce{Strength: cfg.ChargeStrength, MaxDistance: cfg.ChargeMaxDistance}
}

func (f *ChargeForce) Initialize(nodes []*graph.Node) { f.nodes = nodes }

func (f *ChargeForce) Apply(alpha float64) {
	max2 := f.MaxDistance * f.MaxDistance
	for i, a := range f.nodes {
		for _, b := range f.nodes[i+1:] {
			dx := b.X - a.X
			dy := b.Y - a.Y
			d2 := dx*dx + dy*dy
			if d2 > max2 || d2 < jiggle*jiggle {
				// Beyond the cutoff, or coincident: the collision force
				// owns the coincident case.
				continue
			}
			k := f.Strength * alpha / (d2 * math.Sqrt(d2))
			a.VX -= dx * k
			a.VY -= dy * k
			b.VX += dx * k
			b.VY += dy * k
		}
	}
}
