package audio

import (
	"math"
	"testing"

	"github.com/san-kum/sonograph/internal/graph"
)

func TestTriangleRange(t *testing.T) {
	for p := 0.0; p < 3; p += 0.01 {
		v := triangle(p)
		if v < -1.0001 || v > 1.0001 {
			t.Fatalf("triangle(%f) = %f out of [-1,1]", p, v)
		}
	}
	if triangle(0) != 1 || triangle(0.5) != -1 {
		t.Fatalf("triangle extrema wrong: %f %f", triangle(0), triangle(0.5))
	}
}

func TestFrameAssignsStablePitch(t *testing.T) {
	e := NewEngine(0.25)
	nodes := []*graph.Node{{ID: "a"}, {ID: "b", X: 30}}
	e.Frame(nodes, "", 1)
	fa := e.voices["a"].freq
	e.Frame(nodes, "", 0.5)
	if e.voices["a"].freq != fa {
		t.Fatal("node pitch changed between frames")
	}
}

func TestFramePanAndGain(t *testing.T) {
	e := NewEngine(0.25)
	nodes := []*graph.Node{
		{ID: "left", X: -30},
		{ID: "near"},
		{ID: "far", X: 100},
	}
	e.Frame(nodes, "", 1)
	if e.voices["left"].targetPan != -1 {
		t.Fatalf("pan not clamped: %f", e.voices["left"].targetPan)
	}
	if e.voices["near"].targetGain <= e.voices["far"].targetGain {
		t.Fatal("distant node should be quieter than one at the origin")
	}
}

func TestFrameRetiresSilentVoices(t *testing.T) {
	e := NewEngine(0.25)
	e.Frame([]*graph.Node{{ID: "a"}}, "", 1)
	// node gone, voice gain never ramped up, so it drops immediately
	e.Frame(nil, "", 1)
	if _, ok := e.voices["a"]; ok {
		t.Fatal("orphan voice not retired")
	}
}

func TestProcessProducesFiniteSamples(t *testing.T) {
	e := NewEngine(0.25)
	e.Frame([]*graph.Node{{ID: "a"}, {ID: "b", X: 5, Z: 3}}, "a", 0.8)
	out := [][]float32{make([]float32, BufferSize), make([]float32, BufferSize)}
	for i := 0; i < 10; i++ {
		e.process(out)
	}
	for ch := range out {
		for _, s := range out[ch] {
			f := float64(s)
			if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > 1 {
				t.Fatalf("bad sample %f", f)
			}
		}
	}
}
