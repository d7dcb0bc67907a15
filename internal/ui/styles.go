package ui

import "github.com/charmbracelet/lipgloss"

// Color definitions
var (
	CCyan   = lipgloss.Color("39")  // Cyan
	CGreen  = lipgloss.Color("42")  // Green
	CRed    = lipgloss.Color("196") // Red
	CYellow = lipgloss.Color("220") // Yellow
	CGray   = lipgloss.Color("240") // Gray
)

// Lipgloss styles
var (
	StyleHeader    = lipgloss.NewStyle().Foreground(CCyan).Bold(true)
	StyleTimestamp = lipgloss.NewStyle().Foreground(CCyan)
	StyleNormal    = lipgloss.NewStyle().Foreground(CGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(CRed)
	StyleReason    = lipgloss.NewStyle().Foreground(CYellow)
	StyleEmpty     = lipgloss.NewStyle().Foreground(CYellow)
	StyleKey       = lipgloss.NewStyle().Foreground(CGreen)
	StyleDim       = lipgloss.NewStyle().Foreground(CGray)
	StyleErr       = lipgloss.NewStyle().Foreground(CRed)
)
