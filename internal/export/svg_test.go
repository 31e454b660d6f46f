package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/sonograph/internal/graph"
	"github.com/san-kum/sonograph/internal/viz"
)

func TestGraphToSVG(t *testing.T) {
	g := graph.Star(4)
	svg := GraphToSVG(g, viz.NewCamera(), 640, 480)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Fatal("missing xml header")
	}
	if strings.Count(svg, "<circle") != 5 {
		t.Fatalf("expected 5 node circles, got %d", strings.Count(svg, "<circle"))
	}
	if strings.Count(svg, "<line") != 4 {
		t.Fatalf("expected 4 edge lines, got %d", strings.Count(svg, "<line"))
	}
	if !strings.Contains(svg, fillCentral) {
		t.Fatal("hub not rendered with the central fill")
	}
}

func TestGraphToSVGSkipsDanglingLink(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "a"})
	g.AddLink(&graph.Link{SourceID: "a", TargetID: "ghost"})

	svg := GraphToSVG(g, viz.NewCamera(), 100, 100)
	if strings.Contains(svg, "<line") {
		t.Fatal("dangling link should not produce an edge")
	}
}

func TestWriteSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.svg")
	if err := WriteSVG(path, graph.Chain(3), viz.NewCamera(), 320, 240); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Fatal("truncated svg")
	}
}

func TestEnergyToSVG(t *testing.T) {
	svg := EnergyToSVG([]float64{2, 1, 0.5, 0.1, 0.01}, 400, 120)
	if !strings.Contains(svg, "<path") {
		t.Fatal("missing polyline")
	}
	if EnergyToSVG([]float64{1}, 400, 120) != "" {
		t.Fatal("single sample should render nothing")
	}
}
