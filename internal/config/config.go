// Package config loads the solver's rule configuration from YAML: board
// geometry, marker alphabet, and the same rule-level knobs the deducer
// exposes, so the CLI and HTTP service can seed a run from a file instead
// of flag-by-flag.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sudokuengine/core/internal/deducer"
	"github.com/sudokuengine/core/internal/format"
	"github.com/sudokuengine/core/internal/grid"
)

// InvalidInputError reports malformed YAML or an out-of-range field; it
// never wraps an I/O error, so callers can distinguish "no such file"
// from "file exists but is broken".
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("config: invalid input: %s", e.Reason)
}

// MaxLevels mirrors deducer.Config's three rule caps, YAML-tagged.
type MaxLevels struct {
	Naked  int `yaml:"naked"`
	Hidden int `yaml:"hidden"`
	Linked int `yaml:"linked"`
}

// Solver is the on-disk shape of a solver configuration.
type Solver struct {
	BlockHeight     int       `yaml:"blockHeight"`
	BlockWidth      int       `yaml:"blockWidth"`
	Marks           string    `yaml:"marks"`
	LowerLevelFirst bool      `yaml:"lowerLevelFirst"`
	MaxLevels       MaxLevels `yaml:"maxLevels"`
	MaxSolutions    int       `yaml:"maxSolutions"`
}

// Default returns the library defaults: a standard 9x9 board, the
// default marker alphabet, every rule family unlimited, and a
// maxSolutions of 2 (enough to tell "unique" from "ambiguous").
func Default() Solver {
	return Solver{
		BlockHeight:     3,
		BlockWidth:      3,
		Marks:           format.DefaultMarks[:9],
		LowerLevelFirst: true,
		MaxLevels:       MaxLevels{Naked: -1, Hidden: -1, Linked: -1},
		MaxSolutions:    2,
	}
}

// Load reads and parses a solver configuration from path. A missing file
// is not an error: it returns Default() unchanged, matching spec.md's
// "absent file -> library defaults".
func Load(path string) (Solver, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Solver{}, err
	}
	return Parse(data)
}

// Parse decodes a solver configuration from raw YAML bytes.
func Parse(data []byte) (Solver, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Solver{}, &InvalidInputError{Reason: err.Error()}
	}
	return cfg, nil
}

// Grid constructs the grid.Grid this configuration describes.
func (s Solver) Grid() (*grid.Grid, error) {
	return grid.New(s.BlockHeight, s.BlockWidth)
}

// DeducerConfig projects the rule-level knobs onto deducer.Config.
func (s Solver) DeducerConfig() deducer.Config {
	return deducer.Config{
		NakedMaxLevel:   s.MaxLevels.Naked,
		HiddenMaxLevel:  s.MaxLevels.Hidden,
		LinkedMaxLevel:  s.MaxLevels.Linked,
		LowerLevelFirst: s.LowerLevelFirst,
	}
}
