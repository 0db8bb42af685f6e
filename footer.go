package carbonboard

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"carbonboard/style"
)

// RenderFooter renders the status line: filtered/total counts on the left,
// refresh state on the right.
func RenderFooter(shown, total int, refreshed time.Time, refreshing bool, stale bool, width int) string {

	left := fmt.Sprintf("%d/%d projects", shown, total)

	var right string
	switch {
	case refreshing:
		right = "refreshing…"
	case refreshed.IsZero():
		right = "never refreshed"
	default:
		right = "refreshed " + refreshed.Format("15:04:05")
	}
	if stale {
		right = style.StaleStyle.Render("archived data, registry unreachable") + "  " + right
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return style.MutedStyle.Render(left) + strings.Repeat(" ", padding) + style.MutedStyle.Render(right)
}
