package ui

import "github.com/charmbracelet/lipgloss"

// Plain ANSI colors so output follows the terminal theme.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// Composed records
	NameStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	IDStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	AttachmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true)
	BubbleStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)
