package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles derived from the active theme. The TUI re-reads these after a
// theme switch, so they are functions rather than package vars.

// PanelStyle wraps scene and sidebar content in a rounded border.
func PanelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Muted).
		Padding(0, 1)
}

// TitleStyle renders the simulation title bar.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(CurrentTheme.Primary)
}

// CanvasStyle colors the braille scene.
func CanvasStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Secondary)
}

// LabelStyle renders parameter and readout labels.
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
}

// ValueStyle renders numeric readouts.
func ValueStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent)
}

// SelectedStyle highlights the focused list entry or parameter.
func SelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(CurrentTheme.Background).
		Background(CurrentTheme.Primary)
}

// StatusStyle colors the run-state indicator.
func StatusStyle(running bool) lipgloss.Style {
	if running {
		return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Success)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Warning)
}

// RecordingStyle marks an active GIF capture.
func RecordingStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Error).Blink(true)
}

// HelpStyle renders key hints.
func HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Italic(true)
}

// ProgressBar renders a fraction in [0, 1] as a fixed-width bar.
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return ValueStyle().Render(bar)
}

// Slider renders a parameter value as a position marker on a track.
func Slider(value, min, max float64, width int) string {
	if width < 3 {
		width = 3
	}
	pos := 0
	if max > min {
		pos = int((value - min) / (max - min) * float64(width-1))
	}
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	track := []rune(strings.Repeat("─", width))
	track[pos] = '●'
	return LabelStyle().Render(string(track[:pos])) +
		ValueStyle().Render(string(track[pos:pos+1])) +
		LabelStyle().Render(string(track[pos+1:]))
}

// Sparkline renders recent values as a one-line mini chart.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return LabelStyle().Render(strings.Repeat("─", width))
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		b.WriteRune(chars[idx])
	}
	return CanvasStyle().Render(b.String())
}

// Separator renders a muted horizontal rule.
func Separator(width int) string {
	return LabelStyle().Render(strings.Repeat("─", width))
}
