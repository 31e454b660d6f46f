package layout

import "github.com/san-kum/sonograph/internal/graph"

// CenterForce nudges the node set's centroid toward the origin. It
// shifts positions directly rather than velocities so it never injects
// kinetic energy of its own.
type CenterForce struct {
	Strength float64

	nodes []*graph.Node
}

func NewCenterForce(cfg Config) *CenterForce {
	return &CenterForce{Strength: cfg.CenterStrength}
}

func (f *CenterForce) Initialize(nodes []*graph.Node) { f.nodes = nodes }

func (f *CenterForce) Apply(alpha float64) {
	if len(f.nodes) == 0 {
		return
	}
	var cx, cy float64
	for _, n := range f.nodes {
		cx += n.X
		cy += n.Y
	}
	cx = cx / float64(len(f.nodes)) * f.Strength * alpha
	cy = cy / float64(len(f.nodes)) * f.Strength * alpha
	for _, n := range f.nodes {
		n.X -= cx
		n.Y -= cy
	}
}
