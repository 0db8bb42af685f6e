package carbonboard

import (
	"math"
	"strconv"

	"charm.land/lipgloss/v2"

	nt "carbonboard/entity"
	"carbonboard/format"
	"carbonboard/style"
)

// StatsPanel renders the dashboard stat cards.  Shown values ease toward
// their targets a step per animation tick so fresh figures roll in rather
// than jump.
type StatsPanel struct {
	cards []statCard
}

type statCard struct {
	title  string
	target float64
	shown  float64
	render func(float64) string
}

func NewStatsPanel() StatsPanel {

	plain := func(val float64) string { return strconv.Itoa(int(val)) }
	compact := func(val float64) string { return format.Compact(val) }
	currency := func(val float64) string { return format.Currency(val) }

	return StatsPanel{
		cards: []statCard{
			{title: "Projects", render: plain},
			{title: "Supply (tCO2e)", render: compact},
			{title: "Retired (tCO2e)", render: compact},
			{title: "Market Value", render: currency},
			{title: "Bridged On-Chain", render: compact},
		},
	}
}

// SetTargets points the counters at freshly fetched figures.
func (pnl StatsPanel) SetTargets(totals nt.Totals, ret nt.RetirementStats, tok nt.TokenStats) StatsPanel {

	targets := []float64{
		float64(totals.Count),
		totals.Supply,
		ret.TotalRetired,
		totals.ValueUSD,
		tok.Bridged,
	}
	for i := range pnl.cards {
		pnl.cards[i].target = targets[i]
	}
	return pnl
}

// Step advances each counter one tick; settled is true once all have
// landed on their targets.
func (pnl StatsPanel) Step() (StatsPanel, bool) {

	settled := true
	for i := range pnl.cards {
		card := &pnl.cards[i]

		delta := card.target - card.shown
		if math.Abs(delta) < math.Abs(card.target)*0.002+0.5 {
			card.shown = card.target
			continue
		}

		card.shown += delta * 0.25
		settled = false
	}
	return pnl, settled
}

func (pnl StatsPanel) Render() string {

	var rendered []string
	for _, card := range pnl.cards {
		body := style.TitleStyle.Render(card.title) + "\n" +
			style.ValueStyle.Render(card.render(card.shown))
		rendered = append(rendered, style.CardStyle.Render(body))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
