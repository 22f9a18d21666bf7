package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/marcopapini/librbd-sub002/rbd"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MinBatch != 8 {
		t.Errorf("MinBatch = %d, want 8", cfg.MinBatch)
	}
	if cfg.MaxWorkers != 0 {
		t.Errorf("MaxWorkers = %d, want 0", cfg.MaxWorkers)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rbd.yaml")
	content := "min_batch: 16\nmax_workers: 4\nforce_tier: width4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MinBatch != 16 {
		t.Errorf("MinBatch = %d, want 16", cfg.MinBatch)
	}
	if cfg.MaxWorkers != 4 {
		t.Errorf("MaxWorkers = %d, want 4", cfg.MaxWorkers)
	}
	if cfg.ForceTier != "width4" {
		t.Errorf("ForceTier = %q, want width4", cfg.ForceTier)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing file) = nil error, want non-nil")
	}
}

func TestLoad_ZeroMinBatchFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rbd.yaml")
	if err := os.WriteFile(path, []byte("max_workers: 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MinBatch != Default().MinBatch {
		t.Errorf("MinBatch = %d, want default %d", cfg.MinBatch, Default().MinBatch)
	}
}

// TestApply_IsDeterministicAcrossRepeatedLoads checks that applying the same
// config file twice pins the library to the same tier and batch size both
// times, so a deployment's reliability numbers don't depend on load order.
func TestApply_IsDeterministicAcrossRepeatedLoads(t *testing.T) {
	defer rbd.ResetTierOverride()
	origMinBatch, origMaxWorkers := rbd.MinBatch, rbd.MaxWorkers
	defer func() { rbd.MinBatch, rbd.MaxWorkers = origMinBatch, origMaxWorkers }()

	dir := t.TempDir()
	path := filepath.Join(dir, "rbd.yaml")
	content := "min_batch: 32\nmax_workers: 2\nforce_tier: scalar\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for i := 0; i < 2; i++ {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if err := Apply(cfg); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if rbd.MinBatch != 32 {
			t.Errorf("iteration %d: MinBatch = %d, want 32", i, rbd.MinBatch)
		}
		if rbd.MaxWorkers != 2 {
			t.Errorf("iteration %d: MaxWorkers = %d, want 2", i, rbd.MaxWorkers)
		}
		if rbd.CurrentTier() != rbd.TierScalar {
			t.Errorf("iteration %d: CurrentTier() = %v, want TierScalar", i, rbd.CurrentTier())
		}
	}
}

func TestApply_UnknownForceTier(t *testing.T) {
	if err := Apply(Config{ForceTier: "bogus"}); err == nil {
		t.Error("Apply with unknown ForceTier = nil error, want non-nil")
	}
}
