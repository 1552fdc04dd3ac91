/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"charm.land/lipgloss/v2"
)

// Styles contains the styles for rendering run results
type Styles struct {
	Pass   lipgloss.Style
	Fail   lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Subtle lipgloss.Style
}

// NewStyles builds the result styles. With colour disabled every style is a
// no-op.
func NewStyles(useColour bool) *Styles {
	s := &Styles{}

	if useColour {
		s.Pass = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // ANSI Green
		s.Fail = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // ANSI Red
		s.Label = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))           // ANSI Cyan
		s.Value = lipgloss.NewStyle()
		s.Subtle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")) // Dark Grey
		return s
	}

	s.Pass = lipgloss.NewStyle()
	s.Fail = lipgloss.NewStyle()
	s.Label = lipgloss.NewStyle()
	s.Value = lipgloss.NewStyle()
	s.Subtle = lipgloss.NewStyle()
	return s
}
