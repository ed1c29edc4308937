// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Loads texeldock.json, seeding it from the embedded defaults.

package config

import "log"

// loadSystem reads the system config and fills in missing defaults. A missing
// or empty file is replaced by the embedded defaults. On a read or parse
// error the defaults are returned together with the error.
func loadSystem() (Config, error) {
	path, err := Path()
	if err != nil {
		log.Printf("Config: cannot resolve config path: %v", err)
		return withDefaults(nil), err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: %v", readErr)
		return withDefaults(nil), readErr
	}
	if exists && len(cfg) > 0 {
		applySystemDefaults(cfg)
		log.Printf("Config: loaded %s", path)
		return cfg, nil
	}

	cfg = withDefaults(defaultSystemConfig())
	if err := writeConfig(path, cfg); err != nil {
		log.Printf("Config: cannot write defaults to %s: %v", path, err)
		return cfg, err
	}
	log.Printf("Config: wrote defaults to %s", path)
	return cfg, nil
}

func withDefaults(cfg Config) Config {
	if cfg == nil {
		cfg = make(Config)
	}
	applySystemDefaults(cfg)
	return cfg
}
