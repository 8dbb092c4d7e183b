// Package config loads and saves the on-disk engine configuration: a default
// optimization level, a pass list, re-verification and provenance toggles, a
// persistence toggle, and the default report format.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the engine's on-disk configuration.
type Config struct {
	// DefaultOptLevel names an optimization level (e.g. "O2"). It is loaded
	// and saved with the file; no package in this module reads it, and the
	// pass pipeline a session runs does not depend on it.
	DefaultOptLevel string `yaml:"defaultOptLevel"`

	// Passes is an ordered list of pass names, loaded and saved with the
	// file. The session orchestrator does not read it: a session runs
	// Options.Pipeline, or passpipeline.NewDefault() when that is nil.
	Passes []string `yaml:"passes"`

	// ReVerifyAfterPipeline re-runs IR verification after the pass pipeline
	// completes, catching a pass that produced malformed IR.
	ReVerifyAfterPipeline bool `yaml:"reVerifyAfterPipeline"`

	// CollectProvenance attaches a host snapshot to every session.
	CollectProvenance bool `yaml:"collectProvenance"`

	// PersistSessions is loaded and saved with the file; no package in this
	// module reads it, and cmd/aion-diag does not write sessions to the store.
	PersistSessions bool `yaml:"persistSessions"`

	// ReportFormat is the default reporter used by cmd/aion-diag when
	// no --format flag is given ("text" or "json").
	ReportFormat string `yaml:"reportFormat"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		DefaultOptLevel:       "O2",
		Passes:                []string{"instcombine", "simplifycfg", "adce"},
		ReVerifyAfterPipeline: true,
		CollectProvenance:     true,
		PersistSessions:       false,
		ReportFormat:          "text",
	}
}

// Load reads a YAML config file at path. A missing file is not an error: the
// default configuration is returned instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Default(), err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
