package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Defaults.TypeScript {
			t.Error("Expected typescript default to be false")
		}
		if !cfg.Defaults.TailwindEnabled() {
			t.Error("Expected tailwind to default to enabled")
		}
		if cfg.PackageManager != "" {
			t.Errorf("Expected empty package manager, got %q", cfg.PackageManager)
		}
	})

	t.Run("parses defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "defaults:\n  typescript: true\n  tailwind: false\n  template: blog\npackage_manager: pnpm\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !cfg.Defaults.TypeScript {
			t.Error("Expected typescript true")
		}
		if cfg.Defaults.TailwindEnabled() {
			t.Error("Expected tailwind disabled")
		}
		if cfg.Defaults.Template != "blog" {
			t.Errorf("Expected template blog, got %q", cfg.Defaults.Template)
		}
		if cfg.PackageManager != "pnpm" {
			t.Errorf("Expected pnpm, got %q", cfg.PackageManager)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("defaults: [oops"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Expected parse error")
		}
	})
}

func TestPath(t *testing.T) {
	t.Run("env override wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/tmp/custom.yaml")
		path, err := Path()
		if err != nil {
			t.Fatalf("Path failed: %v", err)
		}
		if path != "/tmp/custom.yaml" {
			t.Errorf("Expected override path, got %q", path)
		}
	})

	t.Run("defaults under user config dir", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		path, err := Path()
		if err != nil {
			t.Skipf("no user config dir in this environment: %v", err)
		}
		if filepath.Base(path) != "config.yaml" {
			t.Errorf("Expected config.yaml, got %q", path)
		}
	})
}
