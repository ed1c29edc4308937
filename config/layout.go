// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/layout.go
// Summary: Typed views of the layout, sidebars and metrics sections.

package config

// Layout is the "layout" section.
type Layout struct {
	ResizeMargin float64
	SumTolerance float64
	RootAxis     string
}

// Sidebar is one "sidebars.<name>" section.
type Sidebar struct {
	Enabled bool
	Size    float64
}

// Layout reads the layout section. A non-positive tolerance and an unknown
// root axis fall back to the defaults.
func (c Config) Layout() Layout {
	l := Layout{
		ResizeMargin: c.GetFraction(sectionLayout, "resize_margin", defaultResizeMargin),
		SumTolerance: c.GetFloat(sectionLayout, "sum_tolerance", defaultSumTolerance),
		RootAxis:     c.GetString(sectionLayout, "root_axis", defaultRootAxis),
	}
	if l.SumTolerance <= 0 {
		l.SumTolerance = defaultSumTolerance
	}
	if l.RootAxis != "horizontal" && l.RootAxis != "vertical" {
		l.RootAxis = defaultRootAxis
	}
	return l
}

// Sidebar reads the section of the named sidebar, with its size clamped to [0,1].
func (c Config) Sidebar(name string) Sidebar {
	section := sidebarSection(name)
	return Sidebar{
		Enabled: c.GetBool(section, "enabled", true),
		Size:    c.GetFraction(section, "size", defaultSidebarSize),
	}
}

// SetSidebar stores a sidebar's state, keeping any other keys of its section.
func (c Config) SetSidebar(name string, s Sidebar) {
	section := sidebarSection(name)
	target := c.Section(section)
	if target == nil {
		target = make(Section, 2)
		c[section] = target
	}
	target["enabled"] = s.Enabled
	target["size"] = s.Size
}

// MetricsListen is the address the metrics endpoint should serve on, or "".
func (c Config) MetricsListen() string {
	return c.GetString(sectionMetrics, "listen", "")
}
