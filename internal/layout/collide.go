package layout

import (
	"math"

	"github.com/san-kum/sonograph/internal/graph"
)

// CollideForce separates nodes whose true 3D distance is less than the
// sum of their collision radii. Candidate pairs are pruned with a 2D
// quadtree over the (x,y) plane; the overlap correction itself is 3D
// and applied with equal and opposite magnitude to both nodes.
type CollideForce struct {
	Padding  float64
	Strength float64

	nodes []*graph.Node
}

func NewCollideForce(cfg Config) *CollideForce {
	return &CollideForce{Padding: cfg.CollisionPadding, Strength: cfg.CollisionStrength}
}

func (f *CollideForce) Initialize(nodes []*graph.Node) { f.nodes = nodes }

func (f *CollideForce) Apply(alpha float64) {
	if len(f.nodes) < 2 {
		return
	}

	var index spatialIndex = newQuadtree(boundsOf(f.nodes))
	maxR := 0.0
	for i, n := range f.nodes {
		index.Insert(entry{x: n.X, y: n.Y, index: i, node: n})
		if r := n.CollisionRadius(); r > maxR {
			maxR = r
		}
	}

	for i, a := range f.nodes {
		ra := a.CollisionRadius()
		// The box must cover any node that could overlap a, whatever its
		// radius, so it extends by the largest radius in the set.
		ext := ra + maxR + 2*f.Padding
		box := rect{a.X - ext, a.Y - ext, a.X + ext, a.Y + ext}
		index.Query(box, func(e entry) {
			// Each unordered pair is resolved exactly once; both boxes
			// see the pair, the lower index acts for it.
			if e.index <= i {
				return
			}
			b := e.node
			rb := b.CollisionRadius()
			sum := ra + rb

			dx := b.X - a.X
			dy := b.Y - a.Y
			dz := b.Z - a.Z
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if d >= sum {
				return
			}
			if d == 0 {
				// Coincident nodes: a tiny deterministic planar offset
				// keeps the overlap formula at full strength instead of
				// dividing by zero.
				dx, d = jiggle, jiggle
			}
			k := (d - sum) / d * alpha * f.Strength
			hx := dx * k * 0.5
			hy := dy * k * 0.5
			hz := dz * k * 0.5
			// k is negative for an overlap, so a backs away from b and
			// b advances by the exact negation.
			a.VX += hx
			a.VY += hy
			a.VZ += hz
			b.VX -= hx
			b.VY -= hy
			b.VZ -= hz
		})
	}
}
