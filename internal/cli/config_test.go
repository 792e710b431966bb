package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/printworks/rainbowpress/pkg/errors"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, `
[fingerprint]
width = 0.5
height = 0.8
spacing = 120.0
min_inner = 10

[page]
paper = "A4"
orientation = "landscape"
margin = 0.75
auto = true
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("loadConfig() = nil, want config")
	}

	if cfg.Fingerprint.Width != 0.5 || cfg.Fingerprint.Height != 0.8 {
		t.Errorf("fingerprint = %+v, want 0.5x0.8", cfg.Fingerprint)
	}
	if cfg.Fingerprint.Spacing != 120 {
		t.Errorf("spacing = %g, want 120", cfg.Fingerprint.Spacing)
	}
	if cfg.Fingerprint.MinInner != 10 {
		t.Errorf("min_inner = %d, want 10", cfg.Fingerprint.MinInner)
	}
	if cfg.Page.Paper != "A4" {
		t.Errorf("paper = %q, want A4", cfg.Page.Paper)
	}
	if cfg.Page.Orientation != "landscape" {
		t.Errorf("orientation = %q, want landscape", cfg.Page.Orientation)
	}
	if cfg.Page.Margin == nil || *cfg.Page.Margin != 0.75 {
		t.Errorf("margin = %v, want 0.75", cfg.Page.Margin)
	}
	if !cfg.Page.Auto {
		t.Error("auto = false, want true")
	}
}

func TestLoadConfigZeroMargin(t *testing.T) {
	path := writeTempConfig(t, `
[page]
margin = 0.0
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Page.Margin == nil {
		t.Fatal("margin = nil, want pointer to 0")
	}
	if *cfg.Page.Margin != 0 {
		t.Errorf("margin = %g, want 0", *cfg.Page.Margin)
	}
}

func TestLoadConfigMarginUnset(t *testing.T) {
	path := writeTempConfig(t, `
[page]
paper = "Letter (US)"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Page.Margin != nil {
		t.Errorf("margin = %v, want nil when not set", *cfg.Page.Margin)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestLoadConfigDefaultMissing(t *testing.T) {
	// Point the user config dir at an empty temp dir so the default
	// location does not exist.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error = %v, want nil for missing default", err)
	}
	if cfg != nil {
		t.Errorf("loadConfig() = %+v, want nil", cfg)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeTempConfig(t, `[fingerprint
width = `)

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
	}
}
