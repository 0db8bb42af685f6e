package entity

import "time"

// Project is a carbon-credit project record as validated at the api
// boundary.  Quantities are in tonnes of CO2e unless noted.
type Project struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Type        string  `json:"type"`
	Registry    string  `json:"registry"`
	Methodology string  `json:"methodology"`
	Supply      float64 `json:"supply"`
	Retired     float64 `json:"retired"`
	PriceUSD    float64 `json:"price_usd"`
	Vintage     int     `json:"vintage"`
}

// Snapshot is one full fetch of the registry dataset.
type Snapshot struct {
	Projects  []Project
	FetchedAt time.Time
}

// RetirementStats is the registry's retirement aggregate record.
type RetirementStats struct {
	TotalRetired  float64 `json:"total_retired"`
	RetiredToday  float64 `json:"retired_today"`
	Beneficiaries int     `json:"beneficiaries"`
}

// TokenStats is the registry's tokenization aggregate record.
type TokenStats struct {
	Bridged     float64 `json:"bridged"`
	Outstanding float64 `json:"outstanding"`
	MarketCap   float64 `json:"market_cap_usd"`
}

// Totals are the figures behind the dashboard stat cards.
type Totals struct {
	Count        int
	Supply       float64
	Retired      float64
	RetiredRatio float64
	ValueUSD     float64
}

// Total aggregates projects into stat card figures.
func Total(projects []Project) (totals Totals) {

	totals.Count = len(projects)
	for _, prj := range projects {
		totals.Supply += prj.Supply
		totals.Retired += prj.Retired
		totals.ValueUSD += prj.Supply * prj.PriceUSD
	}

	if totals.Supply > 0 {
		totals.RetiredRatio = totals.Retired / totals.Supply
	}
	return
}

// SupplyPoint is one snapshot's place in the supply history series.
type SupplyPoint struct {
	FetchedAt time.Time
	Supply    float64
	Retired   float64
}
