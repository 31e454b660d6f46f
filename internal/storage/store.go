// Package storage persists layout runs: one directory per run holding
// JSON metadata, the settled node positions as CSV, and the per-frame
// kinetic energy trace.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/sonograph/internal/graph"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Shape      string             `json:"shape"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Frames     int                `json:"frames"`
	FinalAlpha float64            `json:"final_alpha"`
	Nodes      int                `json:"nodes"`
	Links      int                `json:"links"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(shape string, seed int64, frames int, finalAlpha float64, g *graph.Graph, metrics map[string]float64, energy []float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", shape, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Shape:      shape,
		Timestamp:  time.Now(),
		Seed:       seed,
		Frames:     frames,
		FinalAlpha: finalAlpha,
		Nodes:      len(g.Nodes),
		Links:      len(g.Links),
		Metrics:    metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.writeLayout(runDir, g); err != nil {
		return "", err
	}
	if err := s.writeEnergy(runDir, energy); err != nil {
		return "", err
	}
	return runID, nil
}

func (s *Store) writeLayout(runDir string, g *graph.Graph) error {
	f, err := os.Create(filepath.Join(runDir, "layout.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"id", "role", "x", "y", "z", "radius"}); err != nil {
		return err
	}
	for _, n := range g.Nodes {
		row := []string{
			n.ID,
			strconv.Itoa(int(n.Role)),
			strconv.FormatFloat(n.X, 'f', 6, 64),
			strconv.FormatFloat(n.Y, 'f', 6, 64),
			strconv.FormatFloat(n.Z, 'f', 6, 64),
			strconv.FormatFloat(n.Radius, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	for _, l := range g.Links {
		if err := w.Write([]string{"link", l.SourceID, l.TargetID}); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) writeEnergy(runDir string, energy []float64) error {
	f, err := os.Create(filepath.Join(runDir, "energy.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"frame", "kinetic_energy"}); err != nil {
		return err
	}
	for i, e := range energy {
		row := []string{strconv.Itoa(i), strconv.FormatFloat(e, 'f', 6, 64)}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadLayout rebuilds the saved graph, positions and links included.
func (s *Store) LoadLayout(runID string) (*graph.Graph, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "layout.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	g := graph.New()
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) == 3 && rec[0] == "link" {
			g.AddLink(&graph.Link{SourceID: rec[1], TargetID: rec[2]})
			continue
		}
		if len(rec) != 6 {
			continue
		}
		role, _ := strconv.Atoi(rec[1])
		x, _ := strconv.ParseFloat(rec[2], 64)
		y, _ := strconv.ParseFloat(rec[3], 64)
		z, _ := strconv.ParseFloat(rec[4], 64)
		radius, _ := strconv.ParseFloat(rec[5], 64)
		if err := g.AddNode(&graph.Node{
			ID: rec[0], Role: graph.Role(role),
			X: x, Y: y, Z: z, Radius: radius,
		}); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (s *Store) LoadEnergy(runID string) ([]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "energy.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	energy := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		energy = append(energy, v)
	}
	return energy, nil
}
