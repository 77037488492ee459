package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clamp(pct)
	return fmt.Sprintf("[%s] %3.0f%%", progressStyle(pct).Render(bar(pct, width)), pct*100)
}

// RenderCompactBar renders only the blocks, without brackets or percentage.
// Dimmed bars are used for collapsed or inactive rows.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clamp(pct)
	if dim {
		return StyleDim.Render(bar(pct, width))
	}
	return progressStyle(pct).Render(bar(pct, width))
}

// Fraction renders a done/total count such as (3/5). A complete count is green.
func Fraction(done, total int) string {
	s := fmt.Sprintf("(%d/%d)", done, total)
	if total > 0 && done == total {
		return StyleGreen.Render(s)
	}
	return StyleDim.Render(s)
}

// Ratio returns done/total, or 0 when total is zero.
func Ratio(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func progressStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 0.33:
		return StyleRed
	case pct < 0.66:
		return StyleYellow
	default:
		return StyleGreen
	}
}

func clamp(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
