// Package export renders a settled layout to SVG. Nodes project through
// the same orbit camera the terminal view uses, so an exported frame
// matches what was on screen.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/sonograph/internal/graph"
	"github.com/san-kum/sonograph/internal/viz"
)

const (
	fillBackground = "#0a0a14"
	strokeEdge     = "#3a4a6a"
	fillNode       = "#7ec8e3"
	fillCentral    = "#ffd166"
)

type point struct {
	x, y  float64
	depth float64
}

// GraphToSVG projects the graph through cam onto a width x height image.
func GraphToSVG(g *graph.Graph, cam *viz.Camera, width, height int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, fillBackground))

	// The camera speaks canvas cells; feeding it pixel dimensions just
	// scales the world-unit mapping up.
	project := func(n *graph.Node) (point, bool) {
		x, y, depth, ok := cam.Project(viz.Vec3{X: n.X, Y: n.Y, Z: n.Z}, width, height)
		return point{x: float64(x), y: float64(y), depth: depth}, ok
	}

	sb.WriteString(fmt.Sprintf("<g stroke=\"%s\" stroke-width=\"1\">\n", strokeEdge))
	for _, l := range g.Links {
		s, t := g.Node(l.SourceID), g.Node(l.TargetID)
		if s == nil || t == nil {
			continue
		}
		ps, okS := project(s)
		pt, okT := project(t)
		if !okS || !okT {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, ps.x, ps.y, pt.x, pt.y))
	}
	sb.WriteString("</g>\n")

	for _, n := range g.Nodes {
		p, ok := project(n)
		if !ok {
			continue
		}
		fill := fillNode
		if n.Role == graph.RoleCentral {
			fill = fillCentral
		}
		// shrink with depth so the projection keeps its depth cue
		r := n.CollisionRadius() * 4.0 * cam.Distance / p.depth
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, p.x, p.y, r, fill))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSVG renders the graph and writes it to path.
func WriteSVG(path string, g *graph.Graph, cam *viz.Camera, width, height int) error {
	return os.WriteFile(path, []byte(GraphToSVG(g, cam, width, height)), 0644)
}

// EnergyToSVG plots a kinetic energy trace as a polyline, for a quick
// look at how a stored run converged.
func EnergyToSVG(energy []float64, width, height int) string {
	if len(energy) < 2 {
		return ""
	}

	maxE := energy[0]
	for _, e := range energy {
		if e > maxE {
			maxE = e
		}
	}
	if maxE == 0 {
		maxE = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, fillBackground, fillNode))

	for i, e := range energy {
		x := float64(i) / float64(len(energy)-1) * float64(width)
		y := float64(height) - e/maxE*float64(height)*0.9 - float64(height)*0.05
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
