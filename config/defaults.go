// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Built-in values for every texeldock.json key.

package config

const (
	sectionLayout  = "layout"
	sectionMetrics = "metrics"

	defaultResizeMargin = 0.05
	defaultSumTolerance = 1e-9
	defaultRootAxis     = "horizontal"
	defaultSidebarSize  = 0.25
)

// SidebarNames lists the sidebar sections in display order.
var SidebarNames = []string{"left", "right", "bottom"}

func sidebarSection(name string) string { return "sidebars." + name }

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults(sectionLayout, Section{
		"resize_margin": defaultResizeMargin,
		"sum_tolerance": defaultSumTolerance,
		"root_axis":     defaultRootAxis,
	})
	for _, name := range SidebarNames {
		cfg.RegisterDefaults(sidebarSection(name), Section{
			"enabled": true,
			"size":    defaultSidebarSize,
		})
	}
	cfg.RegisterDefaults(sectionMetrics, Section{
		"listen": "",
	})
}
