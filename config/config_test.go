package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.FilePrefix != "Leistungsbeschreibung_" || cfg.FileExt != ".pdf" {
		t.Errorf("file naming = %q %q", cfg.FilePrefix, cfg.FileExt)
	}
	if cfg.Layout.UValueCeiling != 0.50 || cfg.Layout.SCOPMax != 6 {
		t.Errorf("chart scales = %v %v", cfg.Layout.UValueCeiling, cfg.Layout.SCOPMax)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hausdoc.yaml")
	data := []byte("output_dir: /tmp/out\nlayout:\n  notes_char_budget: 200\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/out" || cfg.Layout.NotesCharBudget != 200 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Layout.FloorCellWidth != 140 || cfg.Company.Email == "" {
		t.Error("unset fields lost their defaults")
	}
}

func TestLoadRejectsBadScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("layout:\n  scop_max: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for scop_max 0")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil || cfg == nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.OutputDir != Default().OutputDir {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hausdoc.yaml")
	cfg := Default()
	cfg.Company.Name = "Test Haus GmbH"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Company.Name != "Test Haus GmbH" || len(got.Company.Certifications) != 3 {
		t.Errorf("got %+v", got.Company)
	}
}
