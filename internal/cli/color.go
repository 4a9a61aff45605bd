package cli

import (
	"github.com/JonMunkholm/IRM/internal/core"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
	silentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

var tierStyles = map[core.Tier]lipgloss.Style{
	core.TierPartner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22C55E")),
	core.TierAdvocate:  lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
	core.TierSupporter: lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")),
	core.TierExplorer:  lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
}

func Primary(text string) string { return primaryStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }
func Silent(text string) string  { return silentStyle.Render(text) }

// TierText renders a tier name in its tier color.
func TierText(tier core.Tier) string {
	if style, ok := tierStyles[tier]; ok {
		return style.Render(string(tier))
	}
	return string(tier)
}
