package layout

import (
	"fmt"
	"testing"

	"github.com/san-kum/sonograph/internal/graph"
)

func BenchmarkTick(b *testing.B) {
	for _, size := range []int{10, 50, 200} {
		b.Run(fmt.Sprintf("nodes-%d", size), func(b *testing.B) {
			g := graph.Random(size, size/2, 1)
			sim, err := NewSimulation(g, DefaultConfig())
			if err != nil {
				b.Fatalf("new simulation: %v", err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sim.Tick()
			}
		})
	}
}

func BenchmarkCollideRebuild(b *testing.B) {
	g := graph.Random(200, 100, 1)
	sim, err := NewSimulation(g, DefaultConfig())
	if err != nil {
		b.Fatalf("new simulation: %v", err)
	}
	collide := sim.Force(ForceCollide).(*CollideForce)
	// Spread the layout first so the index has realistic structure.
	for i := 0; i < 50; i++ {
		sim.Tick()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		collide.Apply(0.1)
	}
}
