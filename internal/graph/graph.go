package graph

import "fmt"

// Graph owns the live node and link slices. The layout simulation and
// its collaborators share these slices by reference; all mutation goes
// through the Graph (or the simulation wrapping it) on a single logical
// thread.
type Graph struct {
	Nodes []*Node
	Links []*Link

	byID map[string]*Node
}

func New() *Graph {
	return &Graph{byID: make(map[string]*Node)}
}

// AddNode appends a node to the live set. Duplicate ids are rejected:
// silently shadowed entries would make link resolution ambiguous.
func (g *Graph) AddNode(n *Node) error {
	if n.ID == "" {
		return ErrEmptyID
	}
	if _, ok := g.byID[n.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	g.byID[n.ID] = n
	g.Nodes = append(g.Nodes, n)
	return nil
}

// AddLink appends a link. Endpoints are not validated here: a link whose
// endpoint id never resolves simply contributes no force.
func (g *Graph) AddLink(l *Link) {
	g.Links = append(g.Links, l)
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.byID[id]
}

// RemoveNode deletes a node from the live set and prunes every link
// referencing it. Reports whether the node existed.
func (g *Graph) RemoveNode(id string) bool {
	n, ok := g.byID[id]
	if !ok {
		return false
	}
	delete(g.byID, id)

	nodes := g.Nodes[:0]
	for _, m := range g.Nodes {
		if m != n {
			nodes = append(nodes, m)
		}
	}
	g.Nodes = nodes

	links := g.Links[:0]
	for _, l := range g.Links {
		if l.SourceID != id && l.TargetID != id {
			links = append(links, l)
		}
	}
	g.Links = links
	return true
}

// Central returns the first node with RoleCentral, or nil.
func (g *Graph) Central() *Node {
	for _, n := range g.Nodes {
		if n.Role == RoleCentral {
			return n
		}
	}
	return nil
}

// Degree returns the number of resolvable links touching the node.
func (g *Graph) Degree(id string) int {
	d := 0
	for _, l := range g.Links {
		if l.SourceID == id || l.TargetID == id {
			d++
		}
	}
	return d
}
