package layout

import "github.com/san-kum/sonograph/internal/graph"

// The collision force only needs planar candidate pruning, so the
// spatial index stays two-dimensional even though overlap resolution is
// 3D. It is rebuilt from scratch every application; with the node
// counts this engine sees, the rebuild is cheaper than maintaining an
// incremental structure, and the seam below keeps it replaceable.

// spatialIndex is the seam between the collision force and whatever
// structure prunes its candidate pairs.
type spatialIndex interface {
	Insert(e entry)
	Query(r rect, visit func(entry))
}

// entry is a node snapshot stored in the index: position on the (x,y)
// plane plus the node's position in the live slice, used for symmetric
// pair pruning.
type entry struct {
	x, y  float64
	index int
	node  *graph.Node
}

type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x0 && x <= r.x1 && y >= r.y0 && y <= r.y1
}

func (r rect) overlaps(o rect) bool {
	return r.x0 <= o.x1 && o.x0 <= r.x1 && r.y0 <= o.y1 && o.y0 <= r.y1
}

const (
	quadCapacity = 8
	// maxQuadDepth bounds subdivision so clusters of coincident points
	// cannot recurse until the cell width underflows.
	maxQuadDepth = 16
)

// quadtree is a bucketed point quadtree over the (x,y) plane.
type quadtree struct {
	bounds   rect
	depth    int
	entries  []entry
	children *[4]quadtree
}

// newQuadtree builds an index covering at least the given bounds,
// padded slightly so boundary points always insert.
func newQuadtree(bounds rect) *quadtree {
	const pad = 1e-9
	bounds.x0 -= pad
	bounds.y0 -= pad
	bounds.x1 += pad
	bounds.y1 += pad
	return &quadtree{bounds: bounds}
}

// boundsOf computes the bounding rectangle of the node set. An empty
// set yields a unit rect around the origin.
func boundsOf(nodes []*graph.Node) rect {
	if len(nodes) == 0 {
		return rect{-1, -1, 1, 1}
	}
	b := rect{nodes[0].X, nodes[0].Y, nodes[0].X, nodes[0].Y}
	for _, n := range nodes[1:] {
		if n.X < b.x0 {
			b.x0 = n.X
		}
		if n.X > b.x1 {
			b.x1 = n.X
		}
		if n.Y < b.y0 {
			b.y0 = n.Y
		}
		if n.Y > b.y1 {
			b.y1 = n.Y
		}
	}
	return b
}

func (q *quadtree) Insert(e entry) {
	if !q.bounds.contains(e.x, e.y) {
		return
	}
	if q.children == nil {
		if len(q.entries) < quadCapacity || !q.subdivide() {
			q.entries = append(q.entries, e)
			return
		}
	}
	for i := range q.children {
		if q.children[i].bounds.contains(e.x, e.y) {
			q.children[i].Insert(e)
			return
		}
	}
	// Children tile the cell, so this is unreachable for contained
	// points; keep the entry rather than drop it if it ever happens.
	q.entries = append(q.entries, e)
}

// subdivide splits the cell and redistributes its entries. Cells at the
// depth limit or too small to split keep accepting entries in place.
func (q *quadtree) subdivide() bool {
	mx := (q.bounds.x0 + q.bounds.x1) / 2
	my := (q.bounds.y0 + q.bounds.y1) / 2
	if q.depth >= maxQuadDepth || mx <= q.bounds.x0 || my <= q.bounds.y0 {
		return false
	}
	d := q.depth + 1
	q.children = &[4]quadtree{
		{bounds: rect{q.bounds.x0, q.bounds.y0, mx, my}, depth: d},
		{bounds: rect{mx, q.bounds.y0, q.bounds.x1, my}, depth: d},
		{bounds: rect{q.bounds.x0, my, mx, q.bounds.y1}, depth: d},
		{bounds: rect{mx, my, q.bounds.x1, q.bounds.y1}, depth: d},
	}
	old := q.entries
	q.entries = nil
	for _, e := range old {
		q.Insert(e)
	}
	return true
}

func (q *quadtree) Query(r rect, visit func(entry)) {
	if !q.bounds.overlaps(r) {
		return
	}
	for _, e := range q.entries {
		if r.contains(e.x, e.y) {
			visit(e)
		}
	}
	if q.children != nil {
		for i := range q.children {
			q.children[i].Query(r, visit)
		}
	}
}
