// Package store persists ensemble runs to disk: one directory per run
// holding metadata.json and a CSV per trajectory.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/sim"
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
	System     string             `json:"system"`
	Timestamp  time.Time          `json:"timestamp"`
	Params     map[string]float64 `json:"params"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Tolerance  float64            `json:"tolerance"`
	Integrator string             `json:"integrator"`
	Count      int                `json:"count"`
	Epsilon    float64            `json:"epsilon"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes the ensemble and returns the generated run ID.
func (s *Store) Save(meta RunMetadata, trajs []*sim.Trajectory) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.System, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Count = len(trajs)

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

	for k, tr := range trajs {
		if err := s.writeTrajectory(runDir, k, tr); err != nil {
			return "", err
		}
	}
	return runID, nil
}

func (s *Store) writeTrajectory(runDir string, k int, tr *sim.Trajectory) error {
	file, err := os.Create(filepath.Join(runDir, trajFile(k)))
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"t", "x", "y", "z"}); err != nil {
		return err
	}
	for i, x := range tr.States {
		row := make([]string, 0, len(x)+1)
		row = append(row, strconv.FormatFloat(tr.Times[i], 'g', -1, 64))
		for _, v := range x {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func trajFile(k int) string { return fmt.Sprintf("traj_%d.csv", k) }

// Load reads a run's metadata by ID.
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

// LoadTrajectories reads every member CSV of a run, in member order.
func (s *Store) LoadTrajectories(runID string) ([]*sim.Trajectory, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	trajs := make([]*sim.Trajectory, meta.Count)
	for k := range trajs {
		tr, err := s.loadTrajectory(runID, k)
		if err != nil {
			return nil, fmt.Errorf("member %d: %w", k, err)
		}
		trajs[k] = tr
	}
	return trajs, nil
}

func (s *Store) loadTrajectory(runID string, k int) (*sim.Trajectory, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, trajFile(k)))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("empty trajectory file")
	}

	out := &sim.Trajectory{
		Times:  make([]float64, 0, len(rows)-1),
		States: make([]dynamo.State, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, err
		}
		x := make(dynamo.State, len(row)-1)
		for i, f := range row[1:] {
			if x[i], err = strconv.ParseFloat(f, 64); err != nil {
				return nil, err
			}
		}
		out.Times = append(out.Times, t)
		out.States = append(out.States, x)
	}
	return out, nil
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]*RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]*RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}
