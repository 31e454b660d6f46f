package layout

import (
	"math"

	"github.com/san-kum/sonograph/internal/graph"
)

// KineticEnergy sums the squared speed of every node. It is the number
// the TUI sparkline and the audio engine's intensity tracking watch
// settle toward zero.
func KineticEnergy(nodes []*graph.Node) float64 {
	e := 0.0
	for _, n := range nodes {
		e += n.VX*n.VX + n.VY*n.VY + n.VZ*n.VZ
	}
	return e
}

// MaxSpeed returns the largest per-tick displacement magnitude across
// the node set.
func MaxSpeed(nodes []*graph.Node) float64 {
	m := 0.0
	for _, n := range nodes {
		s := math.Sqrt(n.VX*n.VX + n.VY*n.VY + n.VZ*n.VZ)
		if s > m {
			m = s
		}
	}
	return m
}

// Finite reports whether every position and velocity component in the
// node set is a finite number.
func Finite(nodes []*graph.Node) bool {
	for _, n := range nodes {
		for _, v := range [6]float64{n.X, n.Y, n.Z, n.VX, n.VY, n.VZ} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}
