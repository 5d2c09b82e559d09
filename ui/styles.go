package ui

import "github.com/charmbracelet/lipgloss"

// 16-color ANSI Dracula palette
var (
	DraculaForeground = lipgloss.AdaptiveColor{Light: "0", Dark: "255"}
	DraculaPurple     = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	DraculaPink       = lipgloss.AdaptiveColor{Light: "13", Dark: "13"}
	DraculaCyan       = lipgloss.AdaptiveColor{Light: "14", Dark: "14"}
	DraculaGreen      = lipgloss.AdaptiveColor{Light: "10", Dark: "10"}
	DraculaComment    = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
	DraculaRed        = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}

	TitleStyle = lipgloss.NewStyle().
			Foreground(DraculaPink).
			Bold(true).
			Padding(0, 1)

	// Search bar
	SearchStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(DraculaComment).
			Padding(0, 1)
	SearchFocusedStyle = SearchStyle.
				BorderForeground(DraculaPink)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(DraculaRed).
			Bold(true)
	EmptyStyle = lipgloss.NewStyle().
			Foreground(DraculaComment).
			Italic(true).
			Padding(1, 2)

	// Card styles
	CardNameStyle = lipgloss.NewStyle().
			Foreground(DraculaCyan).
			Bold(true)
	CardPhotoStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	CardLabelStyle = lipgloss.NewStyle().
			Foreground(DraculaPurple).
			Width(16)
	CardValueStyle = lipgloss.NewStyle().
			Foreground(DraculaForeground)
	ExpandIconStyle = lipgloss.NewStyle().
			Foreground(DraculaComment)
	ExpandIconOpenStyle = lipgloss.NewStyle().
				Foreground(DraculaPink).
				Bold(true)

	SelectedItemStyle = lipgloss.NewStyle().
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(DraculaPink).
				PaddingLeft(1)
	ItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)
