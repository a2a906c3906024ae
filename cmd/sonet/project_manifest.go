package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"sonet/internal/codec"
	"sonet/internal/driver"
	"sonet/internal/format"
)

type projectConfig struct {
	Format formatConfig `toml:"format"`
	Codec  codecConfig  `toml:"codec"`
}

type formatConfig struct {
	IndentWidth int `toml:"indent_width"`
	MaxWidth    int `toml:"max_width"`
}

type codecConfig struct {
	MaxRounds int `toml:"max_rounds"`
}

// findSonetToml ищет sonet.toml от startDir вверх по дереву каталогов.
func findSonetToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "sonet.toml")
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

// loadDriverOptions resolves the effective options: sonet.toml when
// present, package defaults otherwise (indent 4, width 80, 100 rounds).
func loadDriverOptions(startDir string) (driver.Options, error) {
	path, ok, err := findSonetToml(startDir)
	if err != nil {
		return driver.Options{}, err
	}
	if !ok {
		return driver.Options{}, nil
	}

	var cfg projectConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return driver.Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	return driver.Options{
		Format: format.Options{
			IndentWidth: cfg.Format.IndentWidth,
			MaxWidth:    cfg.Format.MaxWidth,
		},
		Codec: codec.Options{
			MaxRounds: cfg.Codec.MaxRounds,
		},
	}, nil
}
