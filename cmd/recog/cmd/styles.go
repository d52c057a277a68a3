// SPDX-FileCopyrightText: © 2021 The recog authors <https://github.com/golangee/recog/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/golangee/recog/config"
)

var (
	diagnosticStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// render applies style to s if colors are enabled.
func render(cfg config.Config, style lipgloss.Style, s string) string {
	if !cfg.Color {
		return s
	}

	return style.Render(s)
}
