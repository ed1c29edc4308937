// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Locates texeldock.json.

package config

import (
	"os"
	"path/filepath"
)

// PathEnv names an environment variable holding an explicit config file path.
const PathEnv = "TEXELDOCK_CONFIG"

const systemConfigName = "texeldock.json"

// Path returns the location of the system config file: $TEXELDOCK_CONFIG when
// set, otherwise texeldock/texeldock.json under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return filepath.Clean(p), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "texeldock", systemConfigName), nil
}
