package layout

import (
	"testing"

	"github.com/san-kum/sonograph/internal/graph"
)

func controllerFixture(t *testing.T, cfg Config) (*Simulation, *Controller) {
	t.Helper()
	sim, err := NewSimulation(graph.Star(5), cfg)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	return sim, NewController(sim)
}

func snapshotPositions(g *graph.Graph) map[string][3]float64 {
	m := make(map[string][3]float64, len(g.Nodes))
	for _, n := range g.Nodes {
		m[n.ID] = [3]float64{n.X, n.Y, n.Z}
	}
	return m
}

func TestControllerFreezeIsTerminal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FreezeAfterFrames = 10
	sim, ctrl := controllerFixture(t, cfg)

	for i := 0; i < 10; i++ {
		ctrl.Step()
	}
	if ctrl.Running() {
		t.Fatal("expected controller frozen after frame budget")
	}

	before := snapshotPositions(sim.Graph())
	for i := 0; i < 20; i++ {
		ctrl.Step()
	}
	after := snapshotPositions(sim.Graph())
	for id, p := range before {
		if after[id] != p {
			t.Errorf("node %s moved after freeze: %v -> %v", id, p, after[id])
		}
	}
	if ctrl.Frames() != 10 {
		t.Errorf("frozen controller kept counting frames: %d", ctrl.Frames())
	}
}

func TestControllerResumesOnGrowth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FreezeAfterFrames = 5
	sim, ctrl := controllerFixture(t, cfg)

	for i := 0; i < 8; i++ {
		ctrl.Step()
	}
	if ctrl.Running() {
		t.Fatal("expected frozen controller")
	}

	if err := sim.AddNode(&graph.Node{ID: "late", X: 15}); err != nil {
		t.Fatalf("add node: %v", err)
	}
	before := snapshotPositions(sim.Graph())
	ctrl.Step()
	if !ctrl.Running() {
		t.Error("expected controller running after growth")
	}
	after := snapshotPositions(sim.Graph())
	same := true
	for id, p := range before {
		if after[id] != p {
			same = false
		}
	}
	if same {
		t.Error("expected positions to move after growth re-activation")
	}
}

func TestControllerEdgeRefreshCadence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EdgeRefreshInterval = 5
	cfg.FreezeAfterFrames = 20
	_, ctrl := controllerFixture(t, cfg)

	for i := 1; i <= 20; i++ {
		refresh := ctrl.Step()
		if want := i%5 == 0; refresh != want {
			t.Errorf("frame %d: refresh=%v, want %v", i, refresh, want)
		}
	}
}

func TestControllerAlphaEpsilonFreeze(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FreezeAfterFrames = 10000
	cfg.FreezeAlphaEpsilon = 0.01
	_, ctrl := controllerFixture(t, cfg)

	steps := 0
	for ctrl.Running() && steps < 1000 {
		ctrl.Step()
		steps++
	}
	if steps >= 1000 {
		t.Fatal("controller never froze on alpha epsilon")
	}
	// alpha = 0.85^k drops below 0.01 just before step 29
	if steps < 20 || steps > 40 {
		t.Errorf("unexpected freeze point: %d steps", steps)
	}
}
