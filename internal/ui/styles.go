// Package ui renders the user-facing diagnostic lines of the generator.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Theme colors
	successColor = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	// SuccessStyle is used for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// BlockingStyle is used for convention violations
	BlockingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	// DescriptionStyle is used for detail lines
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(mutedColor)
)

// Message labels
const (
	ErrorLabel    = "❌ Error: "
	BlockingLabel = "❌ BLOCKING ERROR: "
	SuccessLabel  = "✅ System: "
)

// Error formats a fatal error line
func Error(msg string) string {
	return ErrorStyle.Render(ErrorLabel + msg)
}

// Blocking formats a convention violation line
func Blocking(msg string) string {
	return BlockingStyle.Render(BlockingLabel + msg)
}

// Success formats the confirmation line
func Success(msg string) string {
	return SuccessStyle.Render(SuccessLabel + msg)
}

// Detail formats a secondary line
func Detail(msg string) string {
	return DescriptionStyle.Render("   " + msg)
}
