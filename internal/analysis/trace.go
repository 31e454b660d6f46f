package analysis

import (
	"math"

	"github.com/san-kum/sonograph/internal/graph"
)

// Recorder captures per-node radial distance once per frame during a
// headless run, producing the traces the spectral analysis consumes.
type Recorder struct {
	traces map[string][]float64
	order  []string
}

func NewRecorder() *Recorder {
	return &Recorder{traces: make(map[string][]float64)}
}

func (r *Recorder) Record(nodes []*graph.Node) {
	for _, n := range nodes {
		if _, ok := r.traces[n.ID]; !ok {
			r.order = append(r.order, n.ID)
		}
		d := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
		r.traces[n.ID] = append(r.traces[n.ID], d)
	}
}

func (r *Recorder) Trace(id string) []float64 { return r.traces[id] }

// NodeReport summarizes one node's motion over the run.
type NodeReport struct {
	ID            string
	DominantFreq  float64
	DominantPower float64
	Oscillating   bool
}

// Report analyzes every recorded trace in first-seen order.
func (r *Recorder) Report(window int, eps float64) []NodeReport {
	reports := make([]NodeReport, 0, len(r.order))
	for _, id := range r.order {
		trace := r.traces[id]
		spec := MotionSpectrum(trace)
		freq, power := spec.Dominant()
		reports = append(reports, NodeReport{
			ID:            id,
			DominantFreq:  freq,
			DominantPower: power,
			Oscillating:   Oscillating(trace, window, eps),
		})
	}
	return reports
}
