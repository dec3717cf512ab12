/*
Copyright © 2025 Peridio, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package config resolves CLI settings from config files, environment
// variables, and flags. Precedence, lowest to highest: defaults,
// profile from config.yaml/credentials.yaml, PERIDIO_* environment
// variables, command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the production fleet-management API endpoint.
const DefaultBaseURL = "https://api.cremini.peridio.com"

// Environment variable names recognized by the CLI.
const (
	EnvAPIKey          = "PERIDIO_API_KEY"
	EnvBaseURL         = "PERIDIO_BASE_URL"
	EnvOrganizationPrn = "PERIDIO_ORGANIZATION_PRN"
	EnvConfigDir       = "PERIDIO_CONFIG_DIR"
)

// Config is the fully resolved CLI configuration.
type Config struct {
	BaseURL         string `yaml:"base_url"`
	APIKey          string `yaml:"-"`
	OrganizationPrn string `yaml:"organization_prn"`
}

// Profile is a named configuration section in config.yaml.
type Profile struct {
	BaseURL         string `yaml:"base_url,omitempty"`
	OrganizationPrn string `yaml:"organization_prn,omitempty"`
}

// Credential is a named section in credentials.yaml. Kept separate
// from Profile so api keys never land in the shareable config file.
type Credential struct {
	APIKey string `yaml:"api_key,omitempty"`
}

type configFile struct {
	Version  int                `yaml:"version"`
	Profiles map[string]Profile `yaml:"profiles"`
}

type credentialsFile map[string]Credential

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
	}
}

// Dir returns the configuration directory: the explicit dir argument
// if non-empty, then $PERIDIO_CONFIG_DIR, then
// $XDG_CONFIG_HOME/peridio (or ~/.config/peridio).
func Dir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, "peridio"), nil
}

// Load resolves the configuration for the named profile. A missing
// config or credentials file is not an error; an explicitly named
// profile that does not exist is.
func Load(dir, profile string) (*Config, error) {
	cfg := DefaultConfig()

	confDir, err := Dir(dir)
	if err != nil {
		return nil, err
	}

	profiles, err := readConfigFile(filepath.Join(confDir, "config.yaml"))
	if err != nil {
		return nil, err
	}
	creds, err := readCredentialsFile(filepath.Join(confDir, "credentials.yaml"))
	if err != nil {
		return nil, err
	}

	if profile != "" {
		p, ok := profiles[profile]
		if !ok {
			return nil, fmt.Errorf("profile %q not found in %s", profile, confDir)
		}
		if p.BaseURL != "" {
			cfg.BaseURL = p.BaseURL
		}
		cfg.OrganizationPrn = p.OrganizationPrn

		if c, ok := creds[profile]; ok {
			cfg.APIKey = c.APIKey
		}
	}

	// Environment overrides file values.
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvOrganizationPrn); v != "" {
		cfg.OrganizationPrn = v
	}

	return cfg, nil
}

func readConfigFile(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f configFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f.Profiles, nil
}

func readCredentialsFile(path string) (credentialsFile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f credentialsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}
