package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"

	"github.com/mitchellh/mapstructure"
)

const FileName = "config.json"

// Config holds the CLI defaults; every field can be overridden by a flag
type Config struct {
	Format          string // text, csv or json
	Verbose         bool   // Log progress of every walk
	SurvivorLimit   int    // Maximum number of surviving arrangements listed at the end (0 disables the listing)
	Suggest         bool   // Propose a ceremony after every report
	ReportEachEvent bool   // Print a report after every event instead of once per step
}

func Default() Config {
	return Config{
		Format:        "text",
		SurvivorLimit: 0,
	}
}

// Reads the config file; a missing file yields the defaults
func Load(file string) (Config, error) {
	config := Default()

	bytes, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return config, fmt.Errorf("cannot read config file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return config, fmt.Errorf("cannot parse config file %v: %w", file, err)
	}

	if err := mapstructure.Decode(inputJson, &config); err != nil {
		return config, fmt.Errorf("cannot decode config file %v: %w", file, err)
	}
	if config.SurvivorLimit < 0 {
		return config, fmt.Errorf("survivorLimit must not be negative: %v", config.SurvivorLimit)
	}
	return config, nil
}

// Returns the path of the config file sitting next to the executable
func ExecutablePath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot determine executable path: %w", err)
	}
	return path.Join(path.Dir(execPath), FileName), nil
}
