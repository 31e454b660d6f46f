package viz

import (
	"sort"

	"github.com/san-kum/sonograph/internal/graph"
)

// Scene projects the live graph onto a canvas. Edge endpoint geometry
// is cached and only re-read from node positions when the controller
// signals a refresh frame, so edges may lag node glyphs by a few
// frames. That staleness is the intended trade-off, not a bug.
type Scene struct {
	Camera *Camera

	g     *graph.Graph
	edges []edgeSeg
}

type edgeSeg struct {
	a, b Vec3
}

func NewScene(g *graph.Graph) *Scene {
	s := &Scene{Camera: NewCamera(), g: g}
	s.RefreshEdges()
	return s
}

// RefreshEdges re-reads edge endpoint positions from the node set.
func (s *Scene) RefreshEdges() {
	s.edges = s.edges[:0]
	for _, l := range s.g.Links {
		a, b := s.g.Node(l.SourceID), s.g.Node(l.TargetID)
		if a == nil || b == nil {
			continue
		}
		s.edges = append(s.edges, edgeSeg{
			a: Vec3{a.X, a.Y, a.Z},
			b: Vec3{b.X, b.Y, b.Z},
		})
	}
}

type projectedNode struct {
	node  *graph.Node
	col   int
	row   int
	depth float64
}

// Render draws cached edges and current node positions. The selected id
// gets a highlighted glyph.
func (s *Scene) Render(c *Canvas, selected string) {
	c.Clear()
	sw, sh := c.Width*2, c.Height*4

	for _, e := range s.edges {
		x0, y0, _, ok0 := s.Camera.Project(e.a, sw, sh)
		x1, y1, _, ok1 := s.Camera.Project(e.b, sw, sh)
		if ok0 || ok1 {
			c.Line(x0, y0, x1, y1)
		}
	}

	nodes := make([]projectedNode, 0, len(s.g.Nodes))
	for _, n := range s.g.Nodes {
		x, y, depth, ok := s.Camera.Project(Vec3{n.X, n.Y, n.Z}, sw, sh)
		if !ok {
			continue
		}
		nodes = append(nodes, projectedNode{node: n, col: x / 2, row: y / 4, depth: depth})
	}
	// Painter's order: far nodes first so near ones win the cell.
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].depth > nodes[j].depth })

	for _, p := range nodes {
		r := glyphFor(p.node, p.node.ID == selected)
		c.Glyph(p.col, p.row, r)
	}
}

func glyphFor(n *graph.Node, selected bool) rune {
	switch {
	case selected:
		return '◉'
	case n.Role == graph.RoleCentral:
		return '◎'
	default:
		return '●'
	}
}
