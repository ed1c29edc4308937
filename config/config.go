// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Process-wide store holding the loaded texeldock.json.
// Usage: System() loads lazily; Reload picks up edits; Update changes and persists.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

// store is the loaded system config. The zero value loads on first use.
type store struct {
	mu     sync.Mutex
	loaded bool
	cfg    Config
	err    error
}

var system store

func (s *store) ensureLocked() {
	if !s.loaded {
		s.cfg, s.err = loadSystem()
		s.loaded = true
	}
}

// System returns the system configuration. Callers must not modify it; use
// Update instead.
func System() Config {
	system.mu.Lock()
	defer system.mu.Unlock()
	system.ensureLocked()
	return system.cfg
}

// Err returns the error of the most recent load, if any. Defaults are still
// served after an error.
func Err() error {
	system.mu.Lock()
	defer system.mu.Unlock()
	system.ensureLocked()
	return system.err
}

// Reload reads the system config from disk again.
func Reload() error {
	system.mu.Lock()
	defer system.mu.Unlock()
	system.cfg, system.err = loadSystem()
	system.loaded = true
	return system.err
}

// Update applies fn to a copy of the system config and writes the result to
// disk. The in-memory config only changes when the write succeeds.
func Update(fn func(Config)) error {
	system.mu.Lock()
	defer system.mu.Unlock()
	system.ensureLocked()

	path, err := Path()
	if err != nil {
		return err
	}
	next := Clone(system.cfg)
	fn(next)
	if err := writeConfig(path, next); err != nil {
		return fmt.Errorf("config: save %s: %w", path, err)
	}
	system.cfg = next
	return nil
}

// reset forgets the loaded config so the next call loads again.
func reset() {
	system.mu.Lock()
	defer system.mu.Unlock()
	system.loaded = false
	system.cfg = nil
	system.err = nil
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
