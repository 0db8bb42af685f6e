package style

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var (
	TableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Subtle warm grey border
	HlRowStyle       = lipgloss.NewStyle().Background(lipgloss.Color("235")) // Very subtle warm grey row
	MutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("246")) // Warm muted grey text
	UnStyle          = lipgloss.NewStyle()

	TitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("108")).Bold(true) // Sage green headers
	ValueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("151"))            // Pale green figures
	AlertStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("174"))            // Dusty rose errors
	BarStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))            // Chart bars
	BarDimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))            // Chart bar remainder
	StaleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("180"))            // Archived-data notice
	FocusedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))            // Focused input

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// RowStyler returns a StyleFunc that highlights the selected row
func RowStyler(selectedRow int) func(row, col int) lipgloss.Style {
	return func(row, col int) lipgloss.Style {
		if row == selectedRow {
			return HlRowStyle
		}
		return UnStyle
	}
}

// StyleTable applies consistent table styling for borders and separators
func StyleTable(tbl *table.Table) {
	tbl.Border(lipgloss.Border{
		Top:         "─", // Horizontal parts of separator
		Middle:      "─", // Between columns in separator
		MiddleLeft:  "─", // Left edge of separator
		MiddleRight: "─", // Right edge of separator
	}).
		BorderTop(false).    // Disable top border
		BorderBottom(false). // Disable bottom border
		BorderLeft(false).   // Disable left border
		BorderRight(false).  // Disable right border
		BorderColumn(false). // Disable column separators
		BorderStyle(TableBorderStyle)
}
