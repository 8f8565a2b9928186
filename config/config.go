// Package config loads the machine configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/regvm/cpu"
)

// Config is the machine configuration.
type Config struct {
	Speed      int            `yaml:"speed"`       // Steps per second.
	StackCells int            `yaml:"stack_cells"` // Initial stack cells.
	EntryLabel string         `yaml:"entry_label"` // Label where execution starts.
	Language   string         `yaml:"language"`    // BCP 47 tag for messages.
	LineEdit   bool           `yaml:"line_edit"`   // Interactive line editing for 'in'.
	Verbose    bool           `yaml:"verbose"`     // Verbose logging.
	Defines    map[string]int `yaml:"defines"`     // Constants for $(...) operands.
}

// ErrInvalid aggregates configuration validation failures.
type ErrInvalid struct {
	Issues []string
}

func (err *ErrInvalid) Error() string {
	return f("invalid configuration: %v", strings.Join(err.Issues, "; "))
}

// Default returns the default configuration.
func Default() (conf *Config) {
	conf = &Config{
		Speed:      cpu.SPEED,
		StackCells: cpu.STACK_CELLS,
		EntryLabel: cpu.ENTRY_LABEL,
		Defines:    map[string]int{},
	}

	return
}

// Load reads and validates the configuration file at path.
func Load(path string) (conf *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	conf, err = Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}

// Parse decodes and validates a configuration. Fields not set keep their
// defaults; an empty document is the default configuration.
func Parse(input io.Reader) (conf *Config, err error) {
	conf = Default()

	decoder := yaml.NewDecoder(input)
	decoder.KnownFields(true)

	err = decoder.Decode(conf)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		conf = nil
		return
	}

	if conf.Defines == nil {
		conf.Defines = map[string]int{}
	}

	err = conf.Validate()
	if err != nil {
		conf = nil
		return
	}

	return
}

// Validate checks the configuration values.
func (conf *Config) Validate() (err error) {
	var invalid ErrInvalid

	if conf.Speed <= 0 {
		invalid.Issues = append(invalid.Issues, f("speed must be positive, not %d", conf.Speed))
	}
	if conf.StackCells <= 0 {
		invalid.Issues = append(invalid.Issues, f("stack_cells must be positive, not %d", conf.StackCells))
	}
	if len(strings.TrimSpace(conf.EntryLabel)) == 0 {
		invalid.Issues = append(invalid.Issues, f("entry_label must be provided"))
	}
	for name := range conf.Defines {
		if !isIdentifier(name) {
			invalid.Issues = append(invalid.Issues, f("defines: %q is not an identifier", name))
		}
	}

	if len(invalid.Issues) != 0 {
		err = &invalid
	}

	return
}

// isIdentifier checks that name can be used in a $(...) expression.
func isIdentifier(name string) bool {
	if len(name) == 0 {
		return false
	}

	for n, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case n > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}

	return true
}
