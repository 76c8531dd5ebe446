package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	StreetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ActionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FAFAFA"}).
			Bold(true)

	UsedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3C3C3C"))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#04B575")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// ApplyTheme adjusts the card colours for the configured theme: "dark",
// "light", or "default" to follow the terminal background.
func ApplyTheme(theme string) {
	switch theme {
	case "dark":
		BlackCardStyle = BlackCardStyle.Foreground(lipgloss.Color("#FAFAFA"))
		UsedCardStyle = UsedCardStyle.Foreground(lipgloss.Color("#3C3C3C"))
	case "light":
		BlackCardStyle = BlackCardStyle.Foreground(lipgloss.Color("#000000"))
		UsedCardStyle = UsedCardStyle.Foreground(lipgloss.Color("#C0C0C0"))
	default:
		BlackCardStyle = BlackCardStyle.Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FAFAFA"})
		UsedCardStyle = UsedCardStyle.Foreground(lipgloss.AdaptiveColor{Light: "#C0C0C0", Dark: "#3C3C3C"})
	}
}
