package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/squarecontrol/internal/core"
)

// palette maps core colors to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:       lipgloss.Color("16"),
	core.ColorRed:         lipgloss.Color("203"),
	core.ColorGreen:       lipgloss.Color("78"),
	core.ColorYellow:      lipgloss.Color("221"),
	core.ColorBlue:        lipgloss.Color("75"),
	core.ColorCyan:        lipgloss.Color("87"),
	core.ColorWhite:       lipgloss.Color("252"),
	core.ColorGray:        lipgloss.Color("245"),
	core.ColorDarkGray:    lipgloss.Color("237"),
	core.ColorOrange:      lipgloss.Color("208"),
	core.ColorBrightWhite: lipgloss.Color("255"),
}

// Theme holds the cell styles of the puzzle screen and the
// lipgloss styles of the surrounding chrome.
type Theme struct {
	// Board cells
	Square      core.Style
	TintedBg    core.Color
	Wall        core.Style
	WhitePiece  core.Style
	BlackPiece  core.Style
	Target      core.Style
	TargetMet   core.Style
	TargetOver  core.Style
	TargetShort core.Style
	Highlight   core.Color
	Selected    core.Color
	Cursor      core.Style
	Frame       core.Style

	// HUD
	Title    core.Style
	HUDLabel core.Style
	HUDValue core.Style
	Solved   core.Style
	Error    core.Style

	// Chrome around the screen buffer
	Help            lipgloss.Style
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
	TableHeader     lipgloss.Style
	TableSelected   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Square:      core.Fg(core.ColorGray),
		TintedBg:    core.ColorDarkGray,
		Wall:        core.Plain,
		WhitePiece:  core.Fg(core.ColorBrightWhite).WithBold(),
		BlackPiece:  core.Fg(core.ColorOrange).WithBold(),
		Target:      core.Fg(core.ColorWhite),
		TargetMet:   core.Fg(core.ColorGreen).WithBold(),
		TargetOver:  core.Fg(core.ColorRed).WithBold(),
		TargetShort: core.Fg(core.ColorYellow),
		Highlight:   core.ColorBlue,
		Selected:    core.ColorYellow,
		Cursor:      core.Fg(core.ColorCyan).WithBold(),
		Frame:       core.Fg(core.ColorGray),

		Title:    core.Fg(core.ColorCyan).WithBold(),
		HUDLabel: core.Fg(core.ColorGray),
		HUDValue: core.Fg(core.ColorBrightWhite),
		Solved:   core.Fg(core.ColorGreen).WithBold(),
		Error:    core.Fg(core.ColorRed),

		Help:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// lipglossStyle converts a cell style to a lipgloss style.
func lipglossStyle(st core.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if c, ok := palette[st.Fg]; ok {
		ls = ls.Foreground(c)
	}
	if c, ok := palette[st.Bg]; ok {
		ls = ls.Background(c)
	}
	if st.Bold {
		ls = ls.Bold(true)
	}
	return ls
}
