package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/fireworks/pkg/embedded"
)

func TestLoadConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{}, fstest.MapFS{
		DefaultConfigPath: {Data: []byte("hueStep: 1.5\nsoundEnabled: false\n")},
	})
	defer embedded.Reset()

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error: %v", err)
	}
	if cfg.HueStep != 1.5 {
		t.Errorf("HueStep = %v, want 1.5", cfg.HueStep)
	}
	if cfg.SoundEnabled {
		t.Error("SoundEnabled = true, want false")
	}
	// 未写出的字段保持默认值
	if cfg.AutoLaunchTicks != 80 {
		t.Errorf("AutoLaunchTicks = %d, want 80", cfg.AutoLaunchTicks)
	}
}

func TestLoadConfigMissingEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{}, fstest.MapFS{})
	defer embedded.Reset()

	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error when the embedded config is missing")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("autoLaunchTicks: 40\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig(%q) error: %v", path, err)
	}
	if cfg.AutoLaunchTicks != 40 {
		t.Errorf("AutoLaunchTicks = %d, want 40", cfg.AutoLaunchTicks)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing override file")
	}
}
