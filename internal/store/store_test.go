package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/attractor/internal/dynamo"
	"github.com/san-kum/attractor/internal/sim"
)

func sampleTrajs() []*sim.Trajectory {
	return []*sim.Trajectory{
		{
			Times:  []float64{0, 0.01},
			States: []dynamo.State{{10, 10, 10}, {10.0, 11.7, 10.7}},
		},
		{
			Times:  []float64{0, 0.01},
			States: []dynamo.State{{10, 10, 10.00001}, {10.0, 11.7, 10.70002}},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		System:     "lorenz",
		Params:     map[string]float64{"sigma": 10, "rho": 28, "beta": 8.0 / 3.0},
		Dt:         0.01,
		Duration:   15,
		Tolerance:  1e-6,
		Integrator: "rk45",
		Epsilon:    1e-5,
		Metrics:    map[string]float64{"max_abs_coord": 47.8},
	}

	runID, err := st.Save(meta, sampleTrajs())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.System != "lorenz" {
		t.Errorf("expected system lorenz, got %s", loaded.System)
	}
	if loaded.Count != 2 {
		t.Errorf("expected 2 members, got %d", loaded.Count)
	}
	if loaded.Params["rho"] != 28 {
		t.Errorf("expected rho 28, got %f", loaded.Params["rho"])
	}
	if loaded.Metrics["max_abs_coord"] != 47.8 {
		t.Errorf("metrics not round-tripped: %v", loaded.Metrics)
	}
}

func TestStoreTrajectoryRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	orig := sampleTrajs()
	runID, err := st.Save(RunMetadata{System: "lorenz"}, orig)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	trajs, err := st.LoadTrajectories(runID)
	if err != nil {
		t.Fatalf("load trajectories failed: %v", err)
	}
	if len(trajs) != 2 {
		t.Fatalf("expected 2 trajectories, got %d", len(trajs))
	}

	for k := range orig {
		if trajs[k].Len() != orig[k].Len() {
			t.Fatalf("member %d: length %d, want %d", k, trajs[k].Len(), orig[k].Len())
		}
		for i := range orig[k].States {
			if trajs[k].States[i].Dist(orig[k].States[i]) > 1e-12 {
				t.Errorf("member %d sample %d not exact: %v vs %v",
					k, i, trajs[k].States[i], orig[k].States[i])
			}
			if trajs[k].Times[i] != orig[k].Times[i] {
				t.Errorf("member %d time %d not exact", k, i)
			}
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(RunMetadata{System: "lorenz"}, sampleTrajs()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{System: "lorenz"}, sampleTrajs())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(dir, runID)
	for _, name := range []string{"metadata.json", "traj_0.csv", "traj_1.csv"} {
		if _, err := os.Stat(filepath.Join(runDir, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}
