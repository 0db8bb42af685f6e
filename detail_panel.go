package carbonboard

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	nt "carbonboard/entity"
	"carbonboard/format"
	"carbonboard/style"
)

// DetailPanel displays one project's full record.
type DetailPanel struct {
	project nt.Project
	Width   int
	Height  int
}

func (pnl DetailPanel) SetProject(prj nt.Project) DetailPanel {
	pnl.project = prj
	return pnl
}

func (pnl DetailPanel) SetSize(width, height int) DetailPanel {
	pnl.Width = width
	pnl.Height = height
	return pnl
}

func (pnl DetailPanel) Render() string {

	prj := pnl.project

	retiredPct := 0.0
	if prj.Supply > 0 {
		retiredPct = prj.Retired / prj.Supply
	}

	rows := []struct {
		label string
		value string
	}{
		{"ID", prj.ID},
		{"Name", prj.Name},
		{"Location", prj.Location},
		{"Type", prj.Type},
		{"Registry", prj.Registry},
		{"Methodology", prj.Methodology},
		{"Vintage", strconv.Itoa(prj.Vintage)},
		{"Supply", format.Compact(prj.Supply) + " tCO2e"},
		{"Retired", format.Compact(prj.Retired) + " tCO2e (" + format.Percent(retiredPct, 1) + ")"},
		{"Price", format.Currency(prj.PriceUSD) + " / t"},
		{"Market Value", format.Currency(prj.Supply * prj.PriceUSD)},
	}

	var content strings.Builder
	for _, row := range rows {
		content.WriteString(fmt.Sprintf("%s %s\n",
			style.MutedStyle.Render(fmt.Sprintf("%-13s", row.label)),
			style.ValueStyle.Render(row.value)))
	}
	content.WriteString("\n" + style.MutedStyle.Render("esc: back  q: quit"))

	box := style.CardStyle.Render(content.String())

	// center when we know the screen size
	if pnl.Width > 0 && pnl.Height > 0 {
		return lipgloss.Place(pnl.Width, pnl.Height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
