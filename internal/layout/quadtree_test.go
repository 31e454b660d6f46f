package layout

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/san-kum/sonograph/internal/graph"
)

func TestQuadtreeQueryMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	var entries []entry
	for i := 0; i < 250; i++ {
		entries = append(entries, entry{
			x:     rng.Float64()*80 - 40,
			y:     rng.Float64()*80 - 40,
			index: i,
		})
	}

	b := rect{-40, -40, 40, 40}
	qt := newQuadtree(b)
	for _, e := range entries {
		qt.Insert(e)
	}

	for trial := 0; trial < 50; trial++ {
		x := rng.Float64()*80 - 40
		y := rng.Float64()*80 - 40
		ext := rng.Float64() * 15
		box := rect{x - ext, y - ext, x + ext, y + ext}

		var got []int
		qt.Query(box, func(e entry) { got = append(got, e.index) })

		var want []int
		for _, e := range entries {
			if box.contains(e.x, e.y) {
				want = append(want, e.index)
			}
		}

		sort.Ints(got)
		if len(got) != len(want) {
			t.Fatalf("trial %d: expected %d hits, got %d", trial, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("trial %d: hit %d: expected index %d, got %d", trial, i, want[i], got[i])
			}
		}
	}
}

func TestQuadtreeCoincidentPoints(t *testing.T) {
	// More coincident points than a cell holds: subdivision must give up
	// instead of recursing forever.
	qt := newQuadtree(rect{-1, -1, 1, 1})
	for i := 0; i < 5*quadCapacity; i++ {
		qt.Insert(entry{x: 0.5, y: 0.5, index: i})
	}
	count := 0
	qt.Query(rect{0, 0, 1, 1}, func(entry) { count++ })
	if count != 5*quadCapacity {
		t.Errorf("expected %d entries, got %d", 5*quadCapacity, count)
	}
}

func TestBoundsOf(t *testing.T) {
	nodes := []*graph.Node{
		{ID: "a", X: -3, Y: 7},
		{ID: "b", X: 5, Y: -2},
		{ID: "c", X: 1, Y: 1},
	}
	b := boundsOf(nodes)
	if b.x0 != -3 || b.y0 != -2 || b.x1 != 5 || b.y1 != 7 {
		t.Errorf("unexpected bounds: %+v", b)
	}
}
