// Copyright 2025 Gharkhoj Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dataset

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Source file names as exported by the listing platform.
const (
	ProjectFile       = "project.csv"
	AddressFile       = "ProjectAddress.csv"
	ConfigurationFile = "ProjectConfiguration.csv"
	VariantFile       = "ProjectConfigurationVariant.csv"
)

// Config holds the paths of the four listing source files.
type Config struct {
	// ProjectPath is the projects export (one row per project).
	ProjectPath string

	// AddressPath is the addresses export (keyed by project id).
	AddressPath string

	// ConfigurationPath is the configurations export (keyed by project id).
	ConfigurationPath string

	// VariantPath is the configuration variants export (keyed by
	// configuration id).
	VariantPath string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDataDir points all four sources at their standard file names
// under one directory.
func WithDataDir(dir string) ConfigOption {
	return func(c *Config) {
		c.ProjectPath = filepath.Join(dir, ProjectFile)
		c.AddressPath = filepath.Join(dir, AddressFile)
		c.ConfigurationPath = filepath.Join(dir, ConfigurationFile)
		c.VariantPath = filepath.Join(dir, VariantFile)
	}
}

// WithProjectPath sets the projects export path.
func WithProjectPath(path string) ConfigOption {
	return func(c *Config) {
		c.ProjectPath = path
	}
}

// WithAddressPath sets the addresses export path.
func WithAddressPath(path string) ConfigOption {
	return func(c *Config) {
		c.AddressPath = path
	}
}

// WithConfigurationPath sets the configurations export path.
func WithConfigurationPath(path string) ConfigOption {
	return func(c *Config) {
		c.ConfigurationPath = path
	}
}

// WithVariantPath sets the configuration variants export path.
func WithVariantPath(path string) ConfigOption {
	return func(c *Config) {
		c.VariantPath = path
	}
}

// DefaultConfig returns a Config pointing at the standard file names
// under ./data.
func DefaultConfig() *Config {
	cfg := &Config{}
	WithDataDir("data")(cfg)
	return cfg
}

// NewConfig creates a Config with the default paths and applies the
// provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithDataDir("/var/lib/gharkhoj"),
//	    WithProjectPath("/tmp/project-fresh.csv"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// LoadEnv builds a Config from the environment, reading a .env file
// first when one exists. DATA_DIR points all sources at one directory;
// PROJECT_CSV, ADDRESS_CSV, CONFIGURATION_CSV and VARIANT_CSV override
// individual paths.
func LoadEnv() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	cfg := DefaultConfig()
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		WithDataDir(dir)(cfg)
	}
	cfg.ProjectPath = getEnv("PROJECT_CSV", cfg.ProjectPath)
	cfg.AddressPath = getEnv("ADDRESS_CSV", cfg.AddressPath)
	cfg.ConfigurationPath = getEnv("CONFIGURATION_CSV", cfg.ConfigurationPath)
	cfg.VariantPath = getEnv("VARIANT_CSV", cfg.VariantPath)
	return cfg
}

// Validate checks that the configuration is complete.
func (c *Config) Validate() error {
	if c.ProjectPath == "" {
		return errors.New("dataset config: ProjectPath is required")
	}
	if c.AddressPath == "" {
		return errors.New("dataset config: AddressPath is required")
	}
	if c.ConfigurationPath == "" {
		return errors.New("dataset config: ConfigurationPath is required")
	}
	if c.VariantPath == "" {
		return errors.New("dataset config: VariantPath is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
