package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Verbosity levels of the terminal output.
const (
	VerbosityLow  = "low"
	VerbosityHigh = "high"
)

// Settings holds the process-wide configuration: where the data files live
// and how chatty the output is. It is constructed at startup from the
// settings file (when present) and mutated only by the explicit datapath
// and verbosity commands.
type Settings struct {
	DataPath  string `toml:"data_path"`
	Verbosity string `toml:"verbosity"`

	path string // file the settings were loaded from
}

// LoadSettings reads the settings file, falling back to defaults when the
// file does not exist.
func LoadSettings(path string) (*Settings, error) {
	settings := &Settings{DataPath: "data", Verbosity: VerbosityLow, path: path}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read settings file %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("cannot parse settings file %q: %w", path, err)
	}
	if settings.Verbosity != VerbosityLow && settings.Verbosity != VerbosityHigh {
		return nil, fmt.Errorf("invalid verbosity %q in %q, want %q or %q",
			settings.Verbosity, path, VerbosityLow, VerbosityHigh)
	}
	return settings, nil
}

// Save writes the settings back to the file they were loaded from.
func (s *Settings) Save() error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("cannot write settings file %q: %w", s.path, err)
	}
	return nil
}

// Toggle switches the verbosity between low and high.
func (s *Settings) Toggle() {
	if s.Verbosity == VerbosityLow {
		s.Verbosity = VerbosityHigh
	} else {
		s.Verbosity = VerbosityLow
	}
}
