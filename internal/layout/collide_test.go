package layout

import (
	"math"
	"testing"

	"github.com/san-kum/sonograph/internal/graph"
)

func collideFixture(t *testing.T, nodes ...*graph.Node) (*Simulation, *CollideForce) {
	t.Helper()
	g := graph.New()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("add node: %v", err)
		}
	}
	sim, err := NewSimulation(g, DefaultConfig())
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	return sim, sim.Force(ForceCollide).(*CollideForce)
}

func TestCollideSymmetry(t *testing.T) {
	a := &graph.Node{ID: "a"}
	b := &graph.Node{ID: "b", X: 1, Y: 0.5, Z: 0.2}
	_, collide := collideFixture(t, a, b)

	collide.Apply(1)

	if a.VX == 0 && a.VY == 0 && a.VZ == 0 {
		t.Fatal("expected overlap correction, got none")
	}
	if a.VX != -b.VX || a.VY != -b.VY || a.VZ != -b.VZ {
		t.Errorf("correction not symmetric: a=(%g,%g,%g) b=(%g,%g,%g)",
			a.VX, a.VY, a.VZ, b.VX, b.VY, b.VZ)
	}
}

func TestCollideUsesTrue3DDistance(t *testing.T) {
	// Planar distance zero, 3D distance above the radius sum: no
	// planar-only implementation would leave these untouched.
	a := &graph.Node{ID: "a", Radius: 1}
	b := &graph.Node{ID: "b", Z: 5, Radius: 1}
	_, collide := collideFixture(t, a, b)

	collide.Apply(1)

	if a.VX != 0 || a.VY != 0 || a.VZ != 0 {
		t.Errorf("separated nodes corrected: (%g,%g,%g)", a.VX, a.VY, a.VZ)
	}

	// And overlapping only through z is still resolved.
	c := &graph.Node{ID: "c", X: 10}
	d := &graph.Node{ID: "d", X: 10, Z: 1.5}
	_, collide = collideFixture(t, c, d)
	collide.Apply(1)
	if c.VZ == 0 || d.VZ == 0 {
		t.Error("z-overlapping nodes were not separated")
	}
}

func TestCollideResolvesShallowOverlap(t *testing.T) {
	// Separation just under the radius sum: the pair must still be
	// visited even though b sits outside a's own radius-plus-padding
	// neighborhood.
	a := &graph.Node{ID: "a", Radius: 1}
	b := &graph.Node{ID: "b", X: 1.8, Radius: 1}
	_, collide := collideFixture(t, a, b)

	collide.Apply(1)

	if a.VX == 0 && b.VX == 0 {
		t.Fatal("shallow overlap received no correction")
	}
	if a.VX >= 0 || b.VX <= 0 {
		t.Errorf("correction points the wrong way: a.VX=%g b.VX=%g", a.VX, b.VX)
	}
}

func TestCollideZeroDistanceGuard(t *testing.T) {
	a := &graph.Node{ID: "a", X: 2, Y: 3, Z: 1}
	b := &graph.Node{ID: "b", X: 2, Y: 3, Z: 1}
	sim, collide := collideFixture(t, a, b)

	collide.Apply(1)

	if !Finite(sim.Graph().Nodes) {
		t.Fatal("coincident nodes produced non-finite state")
	}
	if a.VX == 0 && b.VX == 0 {
		t.Error("coincident nodes were not separated")
	}
	if a.VX != -b.VX {
		t.Errorf("coincident separation not symmetric: %g vs %g", a.VX, b.VX)
	}

	sim.Tick()
	if !Finite(sim.Graph().Nodes) {
		t.Fatal("non-finite state one tick after coincident start")
	}
}

func TestCollideSeparatesCluster(t *testing.T) {
	g := graph.New()
	// Nine nodes packed into a unit cube corner, radii 1: heavily
	// overlapped. A few hundred ticks must spread them apart.
	for i := 0; i < 9; i++ {
		g.AddNode(&graph.Node{
			ID: string(rune('a' + i)),
			X:  float64(i%3) * 0.3,
			Y:  float64((i/3)%3) * 0.3,
			Z:  float64(i%2) * 0.3,
		})
	}
	cfg := DefaultConfig()
	cfg.LinkDistanceDefault = 0 // no links anyway
	sim, err := NewSimulation(g, cfg)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	for i := 0; i < 300; i++ {
		sim.Tick()
	}
	if !Finite(g.Nodes) {
		t.Fatal("cluster separation went non-finite")
	}
	for i, a := range g.Nodes {
		for _, b := range g.Nodes[i+1:] {
			dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
			d := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if d < 1.0 { // radius sum is 2; allow slack, alpha dies out
				t.Errorf("nodes %s and %s still overlapping badly: d=%.3f", a.ID, b.ID, d)
			}
		}
	}
}
