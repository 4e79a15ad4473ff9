package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/config"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneID     string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"single scene", "single", false},
		{"focus scene", "focus", false},
		{"random scene", "random", false},
		{"cover scene", "cover", false},
		{"sphere grid scene", "sphere-grid", false},

		// Scene files
		{"scene file by ID", "file:hollow-glass", false},
		{"scene file by path", "scenes/sunset-mirrors.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"missing scene file", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Scene = tt.sceneID
			cfg.Width, cfg.Height = 300, 100

			sc, err := createScene(cfg)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneID)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene '%s'", tt.sceneID)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneID, err)
			}
			if sc.GetPrimitiveCount() == 0 {
				t.Errorf("Scene '%s' has no spheres", tt.sceneID)
			}
			if sc.CameraConfig.AspectRatio != 3.0 {
				t.Errorf("Expected camera aspect 3 from a 300x100 image, got %f", sc.CameraConfig.AspectRatio)
			}
		})
	}
}

func TestCreateScene_UnknownIsSentinel(t *testing.T) {
	cfg := config.Default()
	cfg.Scene = "cornell"

	if _, err := createScene(cfg); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.json")
	if err := os.WriteFile(path, []byte(`{"width": 64, "height": 32, "samples_per_pixel": 4}`), 0644); err != nil {
		t.Fatal(err)
	}

	seed := int64(7)
	cfg, err := loadConfig(path, config.Flags{Height: 48, Seed: &seed})
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 || cfg.SamplesPerPixel != 4 || cfg.Seed != 7 {
		t.Errorf("Unexpected config: %+v", cfg)
	}

	if _, err := loadConfig("", config.Flags{Supersample: -1}); err != nil {
		t.Errorf("Negative flag values are ignored, got %v", err)
	}

	workers := -1
	if _, err := loadConfig("", config.Flags{Workers: &workers}); !errors.Is(err, config.ErrInvalidWorkers) {
		t.Errorf("Expected ErrInvalidWorkers, got %v", err)
	}
}

func TestWriteCatalog(t *testing.T) {
	catalog, err := scene.ListAllScenes("scenes")
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	var buf bytes.Buffer
	if err := writeCatalog(&buf, catalog); err != nil {
		t.Fatalf("writeCatalog() error: %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"ID", "default", "random", "file:hollow-glass", "Sunset Mirrors"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Catalog output missing %q:\n%s", expected, output)
		}
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		v, vv       bool
		expected    log.Level
		expectError bool
	}{
		{"default", "", false, false, log.Notice, false},
		{"verbose", "", true, false, log.Info, false},
		{"very verbose", "", true, true, log.Debug, false},
		{"explicit level wins", "warning", true, true, log.Warning, false},
		{"explicit error", "ERROR", false, false, log.Error, false},
		{"unknown level", "loud", false, false, log.Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := logLevel(tt.level, tt.v, tt.vv)
			if (err != nil) != tt.expectError {
				t.Fatalf("logLevel(%q) error = %v, expectError %t", tt.level, err, tt.expectError)
			}
			if level != tt.expected {
				t.Errorf("logLevel(%q, %t, %t) = %d, want %d", tt.level, tt.v, tt.vv, level, tt.expected)
			}
		})
	}
}
