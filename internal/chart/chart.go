// Package chart renders sparklines of reading history for the display
// surface. Channels are drawn in a fixed color each, scaled to the
// channel's nominal range.
package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/luki/woundguard/internal/history"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

var (
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	tickStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
)

// RenderSparkline renders points as a sparkline of the given width,
// scaled to [rangeMin, rangeMax] and colored with the channel color.
// Missing leading points are padded with dashes; a subtle pipe marks
// each minute boundary.
func RenderSparkline(points []history.Point, width int, rangeMin, rangeMax float64, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}

	if len(points) == 0 {
		return dimStyle.Render(strings.Repeat("╌", width))
	}

	if len(points) > width {
		points = points[len(points)-width:]
	}

	padLen := width - len(points)
	span := rangeMax - rangeMin
	if span <= 0 {
		span = 1
	}

	var sb strings.Builder
	for i := 0; i < padLen; i++ {
		sb.WriteString(dimStyle.Render("╌"))
	}

	valStyle := lipgloss.NewStyle().Foreground(color)

	for i, p := range points {
		if isMinuteTick(points, i) {
			sb.WriteString(tickStyle.Render("│"))
			continue
		}

		norm := (p.Value - rangeMin) / span
		norm = math.Max(0, math.Min(1, norm))
		idx := int(norm * 7)
		if idx > 7 {
			idx = 7
		}
		sb.WriteString(valStyle.Render(string(sparkBlocks[idx])))
	}

	return sb.String()
}

func isMinuteTick(points []history.Point, i int) bool {
	p := points[i]
	if p.Time.IsZero() {
		return false
	}
	if p.Time.Second() == 0 {
		return true
	}
	if i > 0 && !points[i-1].Time.IsZero() {
		return p.Time.Minute() != points[i-1].Time.Minute()
	}
	return false
}
