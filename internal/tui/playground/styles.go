package playground

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("99")  // Purple
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(mutedColor)

	focusedHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				Underline(true)

	itemStyle = lipgloss.NewStyle()

	activeItemStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(successColor)

	disabledItemStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Strikethrough(true)

	dimmedItemStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Faint(true)

	panelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(4)

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)
)

// ApplyMaxWidth bounds the panel style to the terminal width.
func ApplyMaxWidth(width int) {
	if width <= 8 {
		return
	}
	panelStyle = panelStyle.Width(width - 4)
}
