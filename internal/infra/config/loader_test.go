package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mechkit/fourbar/internal/domain"
)

func TestLoad_ParsesFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "fourbar.yaml")

	content := `
bounds:
  input:
    min: 15
    max: 250
presets:
  - name: classroom
    frame: 200
    input: 80
    coupler: 180
    output: 140
    angle: 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Bounds.Input != (Range{Min: 15, Max: 250}) {
		t.Errorf("input bounds = %+v", cfg.Bounds.Input)
	}
	if len(cfg.Presets) != 1 || cfg.Presets[0].Name != "classroom" {
		t.Fatalf("presets = %+v", cfg.Presets)
	}
	if cfg.Presets[0].AngleDeg != 60 {
		t.Errorf("angle = %v, want 60", cfg.Presets[0].AngleDeg)
	}
}

func TestLoad_MissingFileIsNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("got %v, want KindNotFound", err)
	}
}

func TestLoad_MalformedYAMLIsInvalidConfig(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "fourbar.yaml")
	if err := os.WriteFile(path, []byte("bounds: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("got %v, want KindInvalidConfig", err)
	}
}
