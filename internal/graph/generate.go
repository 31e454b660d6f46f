package graph

import (
	"fmt"
	"math"
	"math/rand"
)

// Initial placement spreads nodes on a phyllotaxis spiral so the first
// ticks never start from a degenerate all-coincident state. A small
// deterministic z offset gives the third-axis force something to do.
const initialRadius = 3.0

var goldenAngle = math.Pi * (3 - math.Sqrt(5))

func place(n *Node, i int) {
	r := initialRadius * math.Sqrt(float64(i)+0.5)
	a := float64(i) * goldenAngle
	n.X = r * math.Cos(a)
	n.Y = r * math.Sin(a)
	n.Z = float64(i%5-2) * 0.5
}

// Star builds a central hub with n leaves linked to it.
func Star(n int) *Graph {
	g := New()
	hub := &Node{ID: "hub", Role: RoleCentral}
	g.AddNode(hub)
	for i := 0; i < n; i++ {
		leaf := &Node{ID: fmt.Sprintf("leaf-%d", i)}
		place(leaf, i+1)
		g.AddNode(leaf)
		g.AddLink(&Link{SourceID: hub.ID, TargetID: leaf.ID})
	}
	return g
}

// Chain builds n nodes linked in sequence; the first is the anchor.
func Chain(n int) *Graph {
	g := New()
	var prev *Node
	for i := 0; i < n; i++ {
		node := &Node{ID: fmt.Sprintf("n%d", i)}
		if i == 0 {
			node.Role = RoleCentral
		}
		place(node, i)
		g.AddNode(node)
		if prev != nil {
			g.AddLink(&Link{SourceID: prev.ID, TargetID: node.ID})
		}
		prev = node
	}
	return g
}

// Mesh builds a rows x cols grid with orthogonal links. The corner node
// anchors the layout.
func Mesh(rows, cols int) *Graph {
	g := New()
	id := func(r, c int) string { return fmt.Sprintf("m%d-%d", r, c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			node := &Node{ID: id(r, c)}
			if r == 0 && c == 0 {
				node.Role = RoleCentral
			}
			place(node, r*cols+c)
			g.AddNode(node)
			if c > 0 {
				g.AddLink(&Link{SourceID: id(r, c-1), TargetID: id(r, c)})
			}
			if r > 0 {
				g.AddLink(&Link{SourceID: id(r-1, c), TargetID: id(r, c)})
			}
		}
	}
	return g
}

// Random builds n nodes with a spanning chain plus extra random links,
// reproducible from the seed.
func Random(n, extraLinks int, seed int64) *Graph {
	rng := rand.New(rand.NewSource(seed))
	g := Chain(n)
	for i := 0; i < extraLinks && n > 1; i++ {
		a := rng.Intn(n)
		b := rng.Intn(n)
		if a == b {
			continue
		}
		g.AddLink(&Link{
			SourceID: fmt.Sprintf("n%d", a),
			TargetID: fmt.Sprintf("n%d", b),
		})
	}
	return g
}
