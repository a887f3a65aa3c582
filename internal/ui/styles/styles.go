// Package styles provides shared lipgloss styles for the picker and labels.
//
// Colors come from the active [Theme]. Call [Init] once after loading
// configuration and before rendering anything.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active theme.
var (
	Primary color.Color = DefaultTheme.Primary
	Accent  color.Color = DefaultTheme.Accent
	Muted   color.Color = DefaultTheme.Muted
	Normal  color.Color = DefaultTheme.Normal
	Info    color.Color = DefaultTheme.Info
	Warning color.Color = DefaultTheme.Warning
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle marks the selected row
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	MutedStyle  = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)
	InfoStyle   = lipgloss.NewStyle().
			Foreground(Info).
			Italic(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// HighlightStyle for fuzzy-matched characters (pink, bold, underline)
	HighlightStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Underline(true)
)

// Label segment styles
var (
	TagStyle     = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	SubjectStyle = lipgloss.NewStyle().Foreground(Accent)
	AuthorStyle  = lipgloss.NewStyle().Foreground(Warning)
	TimeStyle    = lipgloss.NewStyle().Foreground(Muted)
)
