// SPDX-FileCopyrightText: 2025 The SoundMatch Authors
// SPDX-License-Identifier: EUPL-1.2

package models

// NavigateMsg is a message sent to request navigation to a specific screen.
type NavigateMsg struct {
	Screen int
}

// Screen constants for navigation.
const (
	SearchScreen = iota
	HelpScreen
)

// Common messages.
const (
	GoodbyeMessage = "Até logo!\n"
)
