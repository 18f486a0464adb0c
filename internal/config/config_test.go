package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, meta, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, Default())
	}
	if meta.FileNotFound || meta.FileUsed != "" {
		t.Errorf("meta = %+v, want zero", meta)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := writeFile(t, "shapefall.toml", `
[window]
width = 1024

[simulation]
spawn_rate = 3
seed = 42

[log]
level = "debug"
`)
	cfg, meta, err := Load(nil, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if meta.FileUsed != path {
		t.Errorf("FileUsed = %q, want %q", meta.FileUsed, path)
	}
	if cfg.Window.Width != 1024 {
		t.Errorf("Width = %d, want 1024", cfg.Window.Width)
	}
	if cfg.Window.Height != 450 {
		t.Errorf("Height = %d, want default 450", cfg.Window.Height)
	}
	if cfg.Simulation.SpawnRate != 3 || cfg.Simulation.Seed != 42 {
		t.Errorf("simulation = %+v", cfg.Simulation)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeFile(t, "shapefall.yaml", "simulation:\n  gravity_rate: 2.5\nhud:\n  show_fps: false\n")
	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.GravityRate != 2.5 {
		t.Errorf("GravityRate = %v, want 2.5", cfg.Simulation.GravityRate)
	}
	if cfg.HUD.ShowFPS {
		t.Error("ShowFPS should be false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, meta, err := Load(nil, filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !meta.FileNotFound {
		t.Error("FileNotFound should be set")
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadBadFile(t *testing.T) {
	path := writeFile(t, "broken.toml", "[window\nwidth = ")
	if _, _, err := Load(nil, path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SHAPEFALL_SIMULATION_SPAWN_RATE", "2.5")
	t.Setenv("SHAPEFALL_WINDOW_TITLE", "from env")
	cfg, _, err := Load(nil, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.SpawnRate != 2.5 {
		t.Errorf("SpawnRate = %v, want 2.5", cfg.Simulation.SpawnRate)
	}
	if cfg.Window.Title != "from env" {
		t.Errorf("Title = %q, want %q", cfg.Window.Title, "from env")
	}
}

func TestLoadFlagsOverrideEnvAndFile(t *testing.T) {
	path := writeFile(t, "shapefall.toml", "[simulation]\ngravity_rate = 3\nspawn_rate = 4\n")
	t.Setenv("SHAPEFALL_SIMULATION_GRAVITY_RATE", "5")

	cmd := &cobra.Command{Use: "test"}
	DefineFlags(cmd)
	if err := cmd.Flags().Set("gravity", "7"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("show-controls", "false"); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(cmd, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.GravityRate != 7 {
		t.Errorf("GravityRate = %v, want flag value 7", cfg.Simulation.GravityRate)
	}
	if cfg.Simulation.SpawnRate != 4 {
		t.Errorf("SpawnRate = %v, want file value 4", cfg.Simulation.SpawnRate)
	}
	if cfg.HUD.ShowControls {
		t.Error("ShowControls should be false from flag")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("SHAPEFALL_SIMULATION_SPAWN_RATE", "0")
	if _, _, err := Load(nil, ""); err == nil {
		t.Error("expected error for zero spawn rate")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, false},
		{"zero fps", func(c *Config) { c.Window.FPSMax = 0 }, false},
		{"negative spawn", func(c *Config) { c.Simulation.SpawnRate = -1 }, false},
		{"zero gravity", func(c *Config) { c.Simulation.GravityRate = 0 }, false},
		{"small rates", func(c *Config) { c.Simulation.SpawnRate, c.Simulation.GravityRate = 0.01, 0.01 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestMarshalTOMLRoundTrip(t *testing.T) {
	want := Default()
	want.Simulation.Seed = 7
	want.Window.Title = "round trip"
	data, err := MarshalTOML(want)
	if err != nil {
		t.Fatalf("MarshalTOML: %v", err)
	}
	path := writeFile(t, "generated.toml", string(data))
	got, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestDefineFlagsDefaults(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	DefineFlags(cmd)
	for key, flag := range flagKeys {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("flag %q for key %q not defined", flag, key)
		}
	}
	if got := cmd.Flags().Lookup("fps-max").DefValue; got != "60" {
		t.Errorf("fps-max default = %q, want 60", got)
	}
}
