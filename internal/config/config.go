// Package config loads phonebook settings from an optional CUE file.
//
// The file is unified with an embedded closed schema (schema.cue), so typos
// and wrong types are reported with CUE positions. Missing fields take the
// schema defaults. Command-line flags are applied on top by the cli package.
//
// Example file:
//
//	file:    "contacts.db"
//	backend: "sqlite"
//	verbose: true
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/phonebook/internal/store"
)

//go:embed schema.cue
var schemaCUE string

// Config holds the resolved settings.
type Config struct {
	File    string `json:"file"`
	Backend string `json:"backend"`
	Verbose bool   `json:"verbose"`
}

// Default returns the settings used when no file is given.
// schema.cue declares the same defaults.
func Default() Config {
	return Config{File: store.DefaultCSVPath, Backend: store.KindCSV}
}

// Load reads and validates the CUE file at path.
// An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(path, data)
}

// Parse validates CUE source against the schema and decodes it.
// filename is used in error positions only.
func Parse(filename string, data []byte) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	unified := def.Unify(value)
	if err := unified.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}
