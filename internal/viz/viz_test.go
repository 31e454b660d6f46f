package viz

import (
	"math"
	"strings"
	"testing"
)

func TestCanvasLineLandsOnEndpoints(t *testing.T) {
	c := NewCanvas(20, 10)
	c.Line(0, 0, 38, 38)
	s := c.String()
	if strings.TrimSpace(s) == "" {
		t.Fatal("line drew nothing")
	}
	rows := strings.Split(s, "\n")
	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
}

func TestCanvasGlyphWinsOverBraille(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Dot(0, 0)
	c.Glyph(0, 0, '●')
	rows := strings.Split(c.String(), "\n")
	if []rune(rows[0])[0] != '●' {
		t.Fatalf("expected glyph in cell, got %q", rows[0])
	}
}

func TestCameraProjectCentersOrigin(t *testing.T) {
	cam := NewCamera()
	x, y, _, ok := cam.Project(Vec3{}, 80, 40)
	if !ok {
		t.Fatal("origin not visible")
	}
	if x != 40 || y != 20 {
		t.Fatalf("origin projected to (%d, %d), want screen center", x, y)
	}
}

func TestCameraZoomBounds(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 50; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 8.01 {
		t.Fatalf("zoom exceeded cap: %f", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.124 {
		t.Fatalf("zoom under floor: %f", cam.Zoom)
	}
}

func TestCameraPitchClamp(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 100; i++ {
		cam.Orbit(0, 0.5)
	}
	if cam.Pitch >= math.Pi/2 {
		t.Fatalf("pitch hit the pole: %f", cam.Pitch)
	}
}
