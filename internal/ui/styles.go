package ui

import "github.com/charmbracelet/lipgloss"

// emotionColors carries the fixed per-emotion accent colors. Color
// assignment is presentation-only; nothing below the UI depends on it.
var emotionColors = map[string]string{
	"Energetic":   "#FF6B6B",
	"Motivated":   "#4ECDC4",
	"Neutral":     "#95A5A6",
	"Tired":       "#9B59B6",
	"Sad":         "#3498DB",
	"Angry":       "#E74C3C",
	"Stressed":    "#F39C12",
	"Overwhelmed": "#E91E63",
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	stressLow   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	stressMid   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308"))
	stressHigh  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	promptStyle = lipgloss.NewStyle().Bold(true)
)

// EmotionStyle returns the accent style for an emotion label.
func EmotionStyle(label string) lipgloss.Style {
	if hex, ok := emotionColors[label]; ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return lipgloss.NewStyle()
}

// StressStyle grades a stress score green/yellow/red.
func StressStyle(stress int) lipgloss.Style {
	switch {
	case stress < 40:
		return stressLow
	case stress < 70:
		return stressMid
	default:
		return stressHigh
	}
}
