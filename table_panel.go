package carbonboard

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/pkg/errors"

	nt "carbonboard/entity"
	"carbonboard/format"
	"carbonboard/style"
)

const (
	headerHeight = 2
)

// TablePanel displays the filtered project list with navigation state.
type TablePanel struct {
	Selected int // Absolute position (0 to Total-1) of selected project
	Offset   int // First visible row
	Total    int // Projects after filtering

	Width   int
	Height  int
	Focused bool

	columns    []nt.Column
	formatters []func(nt.Project) string
	table      *table.Table
}

func NewTablePanel(columns []nt.Column) TablePanel {

	lgt := table.New()
	style.StyleTable(lgt)

	pnl := TablePanel{
		Focused: true,
		table:   lgt,
	}

	return pnl.SetColumns(columns)
}

// SetColumns resolves columns to per-project formatters and sets headers.
func (pnl TablePanel) SetColumns(columns []nt.Column) TablePanel {

	pnl.columns = nil
	pnl.formatters = nil

	var headers []string
	for _, col := range columns {
		if col.Hidden {
			continue
		}

		title := col.Title
		if title == "" {
			title = col.Field
		}

		pnl.columns = append(pnl.columns, col)
		pnl.formatters = append(pnl.formatters, makeFormatter(col))
		headers = append(headers, fmt.Sprintf("%-*s", col.Width+1, title))
	}
	pnl.table.Headers(headers...)

	return pnl
}

// SetTotal updates the filtered count, clamping the selection.
func (pnl TablePanel) SetTotal(total int) TablePanel {

	pnl.Total = total
	if pnl.Selected >= total {
		pnl.Selected = total - 1
	}
	if pnl.Selected < 0 {
		pnl.Selected = 0
	}
	if pnl.Offset > pnl.Selected {
		pnl.Offset = pnl.Selected
	}
	return pnl
}

func (pnl TablePanel) SetSize(width, height int) TablePanel {

	pnl.Width = width
	pnl.Height = height
	return pnl
}

func (pnl TablePanel) Update(msg tea.Msg) (TablePanel, tea.Cmd) {

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !pnl.Focused {
		return pnl, nil
	}

	pageSize := pnl.pageSize()

	switch keyMsg.String() {
	case "up", "k":
		if pnl.Selected > 0 {
			pnl.Selected--
		}

	case "down", "j":
		if pnl.Selected < pnl.Total-1 {
			pnl.Selected++
		}

	case "pgup", "ctrl+u":
		pnl.Selected -= pageSize
		if pnl.Selected < 0 {
			pnl.Selected = 0
		}

	case "pgdown", "ctrl+d":
		pnl.Selected += pageSize
		if pnl.Selected >= pnl.Total {
			pnl.Selected = pnl.Total - 1
		}

	case "g":
		pnl.Selected = 0

	case "G":
		pnl.Selected = pnl.Total - 1
	}

	// an empty list leaves the Total-1 clamps at -1
	if pnl.Selected < 0 {
		pnl.Selected = 0
	}

	// keep selection visible
	if pnl.Selected < pnl.Offset {
		pnl.Offset = pnl.Selected
	} else if pnl.Selected >= pnl.Offset+pageSize {
		pnl.Offset = pnl.Selected - pageSize + 1
	}

	return pnl, nil
}

// SelectedProject returns the project under the cursor.
func (pnl TablePanel) SelectedProject(projects []nt.Project) (prj nt.Project, err error) {

	if len(projects) == 0 || pnl.Selected >= len(projects) {
		err = errors.Errorf("selection %d is out of bounds of %d projects", pnl.Selected, len(projects))
		return
	}

	prj = projects[pnl.Selected]
	return
}

// Render renders the visible window of the filtered projects.
func (pnl TablePanel) Render(projects []nt.Project) string {

	offset := pnl.Offset
	if offset > len(projects) {
		offset = len(projects)
	}
	end := offset + pnl.pageSize()
	if end > len(projects) {
		end = len(projects)
	}
	window := projects[offset:end]

	pnl.table.StyleFunc(style.RowStyler(pnl.Selected - offset))

	pnl.table.ClearRows()
	for _, prj := range window {
		var row []string
		for i, col := range pnl.columns {
			row = append(row, truncate(pnl.formatters[i](prj), col.Width))
		}
		pnl.table.Row(row...)
	}

	return pnl.table.Render()
}

// unexported

func (pnl TablePanel) pageSize() int {

	size := pnl.Height - headerHeight
	if size < 1 {
		size = 1
	}
	return size
}

// makeFormatter picks the project field and display format for a column.
func makeFormatter(col nt.Column) func(nt.Project) string {

	switch col.Field {
	case "name":
		return func(prj nt.Project) string { return prj.Name }
	case "location":
		return func(prj nt.Project) string { return prj.Location }
	case "type":
		return func(prj nt.Project) string { return prj.Type }
	case "registry":
		return func(prj nt.Project) string { return prj.Registry }
	case "methodology":
		return func(prj nt.Project) string { return prj.Methodology }
	case "vintage":
		return func(prj nt.Project) string { return strconv.Itoa(prj.Vintage) }
	case "supply":
		return numeric(col.Format, func(prj nt.Project) float64 { return prj.Supply })
	case "retired":
		return numeric(col.Format, func(prj nt.Project) float64 { return prj.Retired })
	case "price":
		return numeric(col.Format, func(prj nt.Project) float64 { return prj.PriceUSD })
	case "retired_pct":
		return func(prj nt.Project) string {
			if prj.Supply == 0 {
				return format.Percent(0, 1)
			}
			return format.Percent(prj.Retired/prj.Supply, 1)
		}
	default:
		return func(nt.Project) string { return "" }
	}
}

func numeric(formatName string, field func(nt.Project) float64) func(nt.Project) string {

	switch formatName {
	case "currency":
		return func(prj nt.Project) string { return format.Currency(field(prj)) }
	default:
		return func(prj nt.Project) string { return format.Compact(field(prj)) }
	}
}

func truncate(in string, width int) string {

	if len(in) <= width {
		return in
	}

	return in[:width-1] + style.MutedStyle.Render("…")
}
