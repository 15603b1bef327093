package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// configName is looked up in the working directory and every parent, so
// a repository can pin formatter defaults at its root.
const configName = ".yars.toml"

type fileConfig struct {
	Format formatConfig `toml:"format"`
}

type formatConfig struct {
	Jobs    int    `toml:"jobs"`
	Color   string `toml:"color"`
	Verbose bool   `toml:"verbose"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, toml.MetaData, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, meta, nil
}

// applyConfig fills in options the command line left untouched. Flags
// always win over the config file.
func applyConfig(cmd *cobra.Command, o *options) error {
	return applyConfigFrom(cmd, o, "")
}

func applyConfigFrom(cmd *cobra.Command, o *options, startDir string) error {
	path, ok, err := findConfig(startDir)
	if err != nil || !ok {
		return err
	}
	cfg, meta, err := loadFileConfig(path)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if meta.IsDefined("format", "jobs") && !flags.Changed("jobs") {
		jobs, err := safecast.Conv[uint](cfg.Format.Jobs)
		if err != nil {
			return fmt.Errorf("%s: [format].jobs: %w", path, err)
		}
		o.jobs = jobs
	}
	if meta.IsDefined("format", "color") && !flags.Changed("color") {
		o.colorMode = cfg.Format.Color
	}
	if meta.IsDefined("format", "verbose") && !flags.Changed("verbose") {
		o.verbose = cfg.Format.Verbose
	}
	return nil
}
