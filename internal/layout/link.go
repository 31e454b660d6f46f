package layout

import (
	"math"

	"github.com/san-kum/sonograph/internal/graph"
)

type resolvedLink struct {
	source *graph.Node
	target *graph.Node
	dist   float64
}

// LinkForce pulls each link's endpoints toward a role-dependent target
// separation. Distances are measured on predicted positions
// (position + velocity), which damps overshoot under the momentum-heavy
// velocity decay this engine runs with.
type LinkForce struct {
	DistanceCentral float64
	DistanceDefault float64
	Strength        float64

	links    func() []*graph.Link
	resolved []resolvedLink
}

func NewLinkForce(links func() []*graph.Link, cfg Config) *LinkForce {
	return &LinkForce{
		links:           links,
		DistanceCentral: cfg.LinkDistanceCentral,
		DistanceDefault: cfg.LinkDistanceDefault,
		Strength:        cfg.LinkStrength,
	}
}

func (f *LinkForce) Initialize(nodes []*graph.Node) {
	byID := make(map[string]*graph.Node, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}
	f.resolved = f.resolved[:0]
	for _, l := range f.links() {
		s, t := byID[l.SourceID], byID[l.TargetID]
		if s == nil || t == nil {
			// Unresolvable endpoint: the link is inert, never an error.
			continue
		}
		dist := f.DistanceDefault
		if s.Role == graph.RoleCentral || t.Role == graph.RoleCentral {
			dist = f.DistanceCentral
		}
		f.resolved = append(f.resolved, resolvedLink{source: s, target: t, dist: dist})
	}
}

func (f *LinkForce) Apply(alpha float64) {
	for _, l := range f.resolved {
		s, t := l.source, l.target
		dx := t.X + t.VX - s.X - s.VX
		dy := t.Y + t.VY - s.Y - s.VY
		d := math.Hypot(dx, dy)
		if d == 0 {
			dx, d = jiggle, jiggle
		}
		k := (d - l.dist) / d * f.Strength * alpha
		dx *= k
		dy *= k
		// Correction split evenly between the endpoints.
		t.VX -= dx * 0.5
		t.VY -= dy * 0.5
		s.VX += dx * 0.5
		s.VY += dy * 0.5
	}
}
