package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles used by the browser.
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	ActiveTag   lipgloss.Style
	Tag         lipgloss.Style
	ItemTitle   lipgloss.Style
	Description lipgloss.Style
	Muted       lipgloss.Style
	Status      lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultStyles returns the default colour scheme.
func DefaultStyles() Styles {
	primary := lipgloss.Color("#2563EB")
	muted := lipgloss.Color("#6B7280")

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Label:       lipgloss.NewStyle().Bold(true),
		ActiveTag:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Padding(0, 1),
		Tag:         lipgloss.NewStyle().Foreground(primary).Padding(0, 1),
		ItemTitle:   lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().PaddingLeft(2),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Status:      lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Empty:       lipgloss.NewStyle().Italic(true).Foreground(muted).MarginTop(1),
	}
}
