// Command shapefall opens a window of falling shapes. Click a shape to remove
// it, click empty canvas to spawn one, and use the buttons or arrow keys to
// change the spawn and gravity rates.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/shapefall"
	"github.com/phanxgames/shapefall/internal/config"
	"github.com/phanxgames/shapefall/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "shapefall",
		Short:        "Falling shapes simulation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, meta, err := config.Load(cmd, configFile)
			if err != nil {
				return err
			}
			closeLog, err := logging.Setup(cfg.Log)
			defer closeLog()
			if err != nil {
				return err
			}
			if meta.FileNotFound {
				log.Warn().Str("path", configFile).Msg("config file not found, using defaults")
			} else if meta.FileUsed != "" {
				log.Info().Str("path", meta.FileUsed).Msg("using config file")
			}
			return run(cfg)
		},
	}
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to a config file (toml, yaml or json)")
	config.DefineFlags(rootCmd)

	rootCmd.AddCommand(newVersionCmd(), newGenConfigCmd())
	return rootCmd
}

func run(cfg config.Config) error {
	sim := shapefall.NewSimulation(shapefall.SimConfig{
		SpawnRate:   cfg.Simulation.SpawnRate,
		GravityRate: cfg.Simulation.GravityRate,
		ViewWidth:   float64(cfg.Window.Width),
		ViewHeight:  float64(cfg.Window.Height),
		Seed:        cfg.Simulation.Seed,
	})
	game := shapefall.NewGame(sim, shapefall.RunConfig{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		TPS:           cfg.Window.FPSMax,
		ShowFPS:       cfg.HUD.ShowFPS,
		ShowStats:     cfg.HUD.ShowStats,
		ShowControls:  cfg.HUD.ShowControls,
		ScreenshotDir: cfg.ScreenshotDir,
		Debug:         cfg.Debug,
	})

	if cfg.Script != "" {
		runner, err := shapefall.LoadTestScriptFile(cfg.Script)
		if err != nil {
			return err
		}
		game.SetTestRunner(runner)
		game.SetUpdateFunc(func() error {
			if runner.Done() {
				log.Info().Str("script", cfg.Script).Msg("test script finished")
				return errScriptDone
			}
			return nil
		})
	}

	log.Info().
		Int("width", cfg.Window.Width).
		Int("height", cfg.Window.Height).
		Float64("spawn_rate", sim.State.SpawnRate).
		Float64("gravity_rate", sim.State.GravityRate).
		Msg("starting")

	err := shapefall.Run(game)
	if errors.Is(err, errScriptDone) {
		return nil
	}
	return err
}

// errScriptDone ends the game loop once a test script has run to completion.
var errScriptDone = errors.New("test script done")

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shapefall version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "shapefall %s\n", version)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "genconfig",
		Short: "Write a config file with the default settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.MarshalTOML(config.Default())
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if _, err := os.Stat(output); err == nil {
				return fmt.Errorf("output file %s already exists", output)
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("error writing config file: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "config.toml", "output path, - for stdout")
	return cmd
}
