package carbonboard

import (
	"fmt"
	"sort"
	"strings"

	nt "carbonboard/entity"
	"carbonboard/format"
	"carbonboard/style"
)

const (
	barWidth     = 30
	maxChartRows = 8
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// ChartPanel renders supply-by-type bars for the current filtered set and
// a sparkline of archived total supply over time.
type ChartPanel struct {
	bars    []chartBar
	history []nt.SupplyPoint
}

type chartBar struct {
	label string
	value float64
}

// SetProjects rebuilds the bars from the filtered project list.
func (pnl ChartPanel) SetProjects(projects []nt.Project) ChartPanel {

	byType := map[string]float64{}
	for _, prj := range projects {
		byType[prj.Type] += prj.Supply
	}

	pnl.bars = nil
	for label, value := range byType {
		pnl.bars = append(pnl.bars, chartBar{label: label, value: value})
	}
	sort.Slice(pnl.bars, func(i, j int) bool {
		return pnl.bars[i].value > pnl.bars[j].value
	})

	if len(pnl.bars) > maxChartRows {
		pnl.bars = pnl.bars[:maxChartRows]
	}
	return pnl
}

// SetHistory swaps in the archived supply series.
func (pnl ChartPanel) SetHistory(points []nt.SupplyPoint) ChartPanel {
	pnl.history = points
	return pnl
}

func (pnl ChartPanel) Render() string {

	var out strings.Builder

	out.WriteString(style.TitleStyle.Render("Supply by project type") + "\n")
	if len(pnl.bars) == 0 {
		out.WriteString(style.MutedStyle.Render("(no data)") + "\n")
	}

	max := 0.0
	labelWidth := 0
	for _, bar := range pnl.bars {
		if bar.value > max {
			max = bar.value
		}
		if len(bar.label) > labelWidth {
			labelWidth = len(bar.label)
		}
	}

	for _, bar := range pnl.bars {
		filled := 0
		if max > 0 {
			filled = int(bar.value / max * barWidth)
		}

		out.WriteString(fmt.Sprintf("%-*s %s%s %s\n",
			labelWidth, bar.label,
			style.BarStyle.Render(strings.Repeat("█", filled)),
			style.BarDimStyle.Render(strings.Repeat("░", barWidth-filled)),
			style.MutedStyle.Render(format.Compact(bar.value)),
		))
	}

	if len(pnl.history) > 1 {
		out.WriteString("\n" + style.TitleStyle.Render("Total supply, recent snapshots") + "\n")
		out.WriteString(style.BarStyle.Render(sparkline(pnl.history)) + "\n")
	}

	return out.String()
}

// unexported

func sparkline(points []nt.SupplyPoint) string {

	min, max := points[0].Supply, points[0].Supply
	for _, point := range points {
		if point.Supply < min {
			min = point.Supply
		}
		if point.Supply > max {
			max = point.Supply
		}
	}

	var out strings.Builder
	for _, point := range points {
		idx := 0
		if max > min {
			idx = int((point.Supply - min) / (max - min) * float64(len(sparkRunes)-1))
		}
		out.WriteRune(sparkRunes[idx])
	}
	return out.String()
}
