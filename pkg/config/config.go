// Copyright (c) 2025, the nodescope authors.  All rights reserved.
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

// Package config loads daemon configuration: defaults, then the YAML
// config file, then environment variables, each layer overriding the one
// before it. A .env file next to the process is honored for the env layer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the daemon's full configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Report   Report   `yaml:"report"`
	Identity Identity `yaml:"identity"`
	LogLevel string   `yaml:"logLevel"`
}

// Server configures the HTTP API listener.
type Server struct {
	Address        string  `yaml:"address"`
	Port           int     `yaml:"port"`
	RateLimit      float64 `yaml:"rateLimit"`
	RateLimitBurst int     `yaml:"rateLimitBurst"`
}

// Report configures the collection pipeline.
type Report struct {
	// CachePath is where the persisted report envelope lives.
	CachePath string `yaml:"cachePath"`

	// MaxAgeSeconds is the staleness boundary for cached reports.
	MaxAgeSeconds int64 `yaml:"maxAgeSeconds"`

	// RefreshIntervalSeconds drives the daemon's collection ticker.
	RefreshIntervalSeconds int64 `yaml:"refreshIntervalSeconds"`
}

// Identity configures the declared identity loader.
type Identity struct {
	Path        string   `yaml:"path"`
	OverlayDirs []string `yaml:"overlayDirs"`
	RedactPaths []string `yaml:"redactPaths"`
}

// DefaultPath returns <user config dir>/nodescope/config.yaml.
func DefaultPath() string {
	return filepath.Join(configDir(), "nodescope", "config.yaml")
}

func configDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: Server{
			Address:        "127.0.0.1",
			Port:           9100,
			RateLimit:      100,
			RateLimitBurst: 200,
		},
		Report: Report{
			CachePath:              filepath.Join(configDir(), "nodescope", "report.json"),
			MaxAgeSeconds:          600,
			RefreshIntervalSeconds: 300,
		},
		LogLevel: "info",
	}
}

// Load builds the effective configuration from the file at path. A missing
// file is fine; a present but malformed one is an error.
func Load(path string) (*Config, error) {
	// .env is a development convenience; absence is the normal case
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides selected settings from the environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("NODESCOPE_REPORT_PATH"); v != "" {
		cfg.Report.CachePath = v
	}
	if v := os.Getenv("NODESCOPE_MAX_AGE_SECONDS"); v != "" {
		if seconds, err := strconv.ParseInt(v, 10, 64); err == nil && seconds >= 0 {
			cfg.Report.MaxAgeSeconds = seconds
		}
	}
	if v := os.Getenv("NODESCOPE_REFRESH_INTERVAL_SECONDS"); v != "" {
		if seconds, err := strconv.ParseInt(v, 10, 64); err == nil && seconds > 0 {
			cfg.Report.RefreshIntervalSeconds = seconds
		}
	}
	if v := os.Getenv("NODESCOPE_IDENTITY_PATH"); v != "" {
		cfg.Identity.Path = v
	}
}
