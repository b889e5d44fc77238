package storage

import (
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := TraceMetadata{
		Scenario:    "pointer",
		Preset:      "stiff",
		Axis:        "vertical",
		Items:       3,
		Ticks:       120,
		RestTick:    80,
		MaxResidual: 60,
		FinalOrder:  []int{1, 0, 2},
	}
	residuals := []float64{60, 30, 10, 1, 0.05}

	runID, err := st.Save(meta, residuals)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Scenario != "pointer" {
		t.Errorf("expected scenario pointer, got %s", loaded.Scenario)
	}
	if len(loaded.FinalOrder) != 3 || loaded.FinalOrder[0] != 1 {
		t.Errorf("expected final order [1 0 2], got %v", loaded.FinalOrder)
	}

	series, err := st.LoadResiduals(runID)
	if err != nil {
		t.Fatalf("load residuals failed: %v", err)
	}
	if len(series) != 5 {
		t.Fatalf("expected 5 residuals, got %d", len(series))
	}
	if series[0] != 60 || series[4] != 0.05 {
		t.Errorf("expected residual round trip, got %v", series)
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := st.Save(TraceMetadata{Scenario: "settle", Items: 4}, []float64{1}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Scenario != "settle" {
		t.Errorf("expected scenario settle, got %s", runs[0].Scenario)
	}
}
