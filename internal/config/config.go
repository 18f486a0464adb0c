// Package config loads shapefall settings from a config file, environment
// variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable. Nested keys join with
// underscores, e.g. SHAPEFALL_SIMULATION_SPAWN_RATE.
const EnvPrefix = "SHAPEFALL"

// Config is the complete application configuration.
type Config struct {
	Window     Window     `mapstructure:"window" toml:"window"`
	Simulation Simulation `mapstructure:"simulation" toml:"simulation"`
	HUD        HUD        `mapstructure:"hud" toml:"hud"`
	Log        Log        `mapstructure:"log" toml:"log"`

	// Script is an optional JSON test script replayed on start.
	Script string `mapstructure:"script" toml:"script"`
	// ScreenshotDir receives PNGs from screenshot steps.
	ScreenshotDir string `mapstructure:"screenshot_dir" toml:"screenshot_dir"`
	// Debug logs per-frame stats.
	Debug bool `mapstructure:"debug" toml:"debug"`
}

// Window configures the canvas.
type Window struct {
	Title  string `mapstructure:"title" toml:"title"`
	Width  int    `mapstructure:"width" toml:"width"`
	Height int    `mapstructure:"height" toml:"height"`
	FPSMax int    `mapstructure:"fps_max" toml:"fps_max"`
}

// Simulation configures the initial rates.
type Simulation struct {
	SpawnRate   float64 `mapstructure:"spawn_rate" toml:"spawn_rate"`
	GravityRate float64 `mapstructure:"gravity_rate" toml:"gravity_rate"`
	// Seed makes shape geometry reproducible; 0 seeds randomly.
	Seed uint64 `mapstructure:"seed" toml:"seed"`
}

// HUD toggles the on-canvas elements.
type HUD struct {
	ShowFPS      bool `mapstructure:"show_fps" toml:"show_fps"`
	ShowStats    bool `mapstructure:"show_stats" toml:"show_stats"`
	ShowControls bool `mapstructure:"show_controls" toml:"show_controls"`
}

// Log configures logging output.
type Log struct {
	Level string `mapstructure:"level" toml:"level"`
	File  string `mapstructure:"file" toml:"file"`
}

// Meta describes how the config was resolved.
type Meta struct {
	FileNotFound bool
	FileUsed     string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "shapefall",
			Width:  800,
			Height: 450,
			FPSMax: 60,
		},
		Simulation: Simulation{
			SpawnRate:   1,
			GravityRate: 1,
		},
		HUD: HUD{
			ShowFPS:      true,
			ShowStats:    true,
			ShowControls: true,
		},
		Log: Log{
			Level: "info",
		},
		ScreenshotDir: "screenshots",
	}
}

// flagKeys maps config keys to the flag names DefineFlags registers.
var flagKeys = map[string]string{
	"window.title":            "title",
	"window.width":            "width",
	"window.height":           "height",
	"window.fps_max":          "fps-max",
	"simulation.spawn_rate":   "spawn-rate",
	"simulation.gravity_rate": "gravity",
	"simulation.seed":         "seed",
	"hud.show_fps":            "show-fps",
	"hud.show_stats":          "show-stats",
	"hud.show_controls":       "show-controls",
	"log.level":               "log.level",
	"log.file":                "log.file",
	"script":                  "script",
	"screenshot_dir":          "screenshot-dir",
	"debug":                   "debug",
}

// DefineFlags registers the configuration flags on cmd with their defaults.
func DefineFlags(cmd *cobra.Command) {
	d := Default()
	f := cmd.Flags()
	f.String("title", d.Window.Title, "window title")
	f.Int("width", d.Window.Width, "canvas width in pixels")
	f.Int("height", d.Window.Height, "canvas height in pixels; shapes are removed once they fall past it")
	f.Int("fps-max", d.Window.FPSMax, "updates per second (maximum frame rate)")
	f.Float64("spawn-rate", d.Simulation.SpawnRate, "shapes spawned per second")
	f.Float64("gravity", d.Simulation.GravityRate, "pixels fallen per frame")
	f.Uint64("seed", d.Simulation.Seed, "random seed for shape geometry (0 = random)")
	f.Bool("show-fps", d.HUD.ShowFPS, "show the FPS readout")
	f.Bool("show-stats", d.HUD.ShowStats, "show shape count and occupied area")
	f.Bool("show-controls", d.HUD.ShowControls, "show rate adjustment buttons")
	f.String("log.level", d.Log.Level, "log level: trace, debug, info, warn, error, none")
	f.String("log.file", d.Log.File, "write logs to this file instead of stdout")
	f.String("script", d.Script, "JSON test script to replay")
	f.String("screenshot-dir", d.ScreenshotDir, "directory for screenshots")
	f.Bool("debug", d.Debug, "log per-frame stats")
}

// Load resolves the configuration from defaults, the optional config file,
// SHAPEFALL_* environment variables and flags on cmd (if non-nil), in
// increasing order of precedence.
func Load(cmd *cobra.Command, configFile string) (Config, Meta, error) {
	v := viper.NewWithOptions(viper.WithDecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))

	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, flag := range flagKeys {
			if fl := cmd.Flags().Lookup(flag); fl != nil {
				_ = v.BindPFlag(key, fl)
			}
		}
	}

	meta := Meta{}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var pathErr *fs.PathError
			if !errors.As(err, &pathErr) {
				return Config{}, Meta{}, fmt.Errorf("error reading config file %s: %w", configFile, err)
			}
			meta.FileNotFound = true
		} else {
			meta.FileUsed = v.ConfigFileUsed()
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, Meta{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, Meta{}, err
	}
	return conf, meta, nil
}

// setDefaults registers every key so that AutomaticEnv can find env-only
// overrides during Unmarshal.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.fps_max", d.Window.FPSMax)
	v.SetDefault("simulation.spawn_rate", d.Simulation.SpawnRate)
	v.SetDefault("simulation.gravity_rate", d.Simulation.GravityRate)
	v.SetDefault("simulation.seed", d.Simulation.Seed)
	v.SetDefault("hud.show_fps", d.HUD.ShowFPS)
	v.SetDefault("hud.show_stats", d.HUD.ShowStats)
	v.SetDefault("hud.show_controls", d.HUD.ShowControls)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("script", d.Script)
	v.SetDefault("screenshot_dir", d.ScreenshotDir)
	v.SetDefault("debug", d.Debug)
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSMax <= 0 {
		return fmt.Errorf("fps_max must be positive, got %d", c.Window.FPSMax)
	}
	if !(c.Simulation.SpawnRate > 0) {
		return fmt.Errorf("spawn_rate must be positive, got %v", c.Simulation.SpawnRate)
	}
	if !(c.Simulation.GravityRate > 0) {
		return fmt.Errorf("gravity_rate must be positive, got %v", c.Simulation.GravityRate)
	}
	return nil
}

// MarshalTOML renders c as a TOML document suitable for a config file.
func MarshalTOML(c Config) ([]byte, error) {
	b, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("error marshaling config: %w", err)
	}
	return b, nil
}
