package output

import (
	"fmt"
	"strings"
)

// sparkLevels are the block glyphs used by Sparkline, lowest to highest.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a compact bar series for the given values, e.g. recent
// session distances. Values are scaled against the series maximum; an empty
// or all-zero series renders flat.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	var sb strings.Builder
	for _, v := range values {
		idx := 0
		if max > 0 && v > 0 {
			idx = int(v / max * float64(len(sparkLevels)-1))
			if idx >= len(sparkLevels) {
				idx = len(sparkLevels) - 1
			}
		}
		sb.WriteRune(sparkLevels[idx])
	}
	return StyleSuccess.Render(sb.String())
}

// TrendArrowPercent returns a styled trend indicator for a percentage delta.
// Positive deltas show an up arrow, negative show down, zero shows a dash.
func TrendArrowPercent(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter)

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.0f%%", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.0f%%", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// FormatDistance renders meters as "1.5 km" above a kilometer, "850 m" below.
func FormatDistance(meters float64) string {
	if meters <= 0 {
		return "0 m"
	}
	if meters >= 1000 {
		return fmt.Sprintf("%.1f km", meters/1000)
	}
	return fmt.Sprintf("%.0f m", meters)
}

// FormatDuration renders minutes as "1h 20m" above an hour, "45 min" below.
func FormatDuration(minutes float64) string {
	if minutes <= 0 {
		return "—"
	}
	h := int(minutes) / 60
	m := int(minutes) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%d min", m)
}
