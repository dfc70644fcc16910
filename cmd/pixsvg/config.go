package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

//go:embed sample_config.toml
var sampleConfig string

// defaultConfigFile is the config file looked up in the working directory
// when no --config flag is given.
const defaultConfigFile = "pixsvg.toml"

// Color modes accepted by the "color" setting.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// config holds the CLI settings. Flags override file values.
type config struct {
	// OutputDir is the directory the generated SVG files are written to.
	OutputDir string `toml:"output_dir"`
	// Workers is the number of files converted concurrently, 0 meaning
	// one worker per CPU.
	Workers int `toml:"workers"`
	// Color selects colored terminal output: auto, always or never.
	Color string `toml:"color"`
}

func defaultConfig() config {
	return config{
		OutputDir: "converted_svgs",
		Workers:   0,
		Color:     colorAuto,
	}
}

// loadConfig reads the TOML config from path, falling back to the defaults
// when path is empty and no pixsvg.toml exists in the working directory.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read the config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse %s: %w", path, err)
	}

	switch cfg.Color {
	case colorAuto, colorAlways, colorNever:
	default:
		return cfg, fmt.Errorf("invalid color mode %q: expected auto, always or never", cfg.Color)
	}
	if cfg.OutputDir == "" {
		return cfg, fmt.Errorf("output_dir must not be empty")
	}
	return cfg, nil
}

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pixsvg configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a sample configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
				return fmt.Errorf("could not write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sample configuration written to %s\n", path)
			return nil
		},
	}

	configCmd.AddCommand(initCmd)
	return configCmd
}
