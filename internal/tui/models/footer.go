// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/giovanamalaia/soundmatch/internal/tui/styles"
)

// RenderFooter creates a standardized footer from the help text of bindings.
func RenderFooter(styleConfig *styles.Styles, width int, bindings []key.Binding) string {
	actionStrings := make([]string, 0, len(bindings))

	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}

		help := binding.Help()
		actionStrings = append(actionStrings, styleConfig.Keybinding(help.Key, help.Desc))
	}

	footer := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styleConfig.Muted)

	if width > 0 {
		footer = footer.Width(width)
	}

	return footer.Render(strings.Join(actionStrings, "   "))
}
