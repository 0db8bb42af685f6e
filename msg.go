package carbonboard

import (
	"time"

	nt "carbonboard/entity"
)

// snapshotMsg carries a successful registry refresh
type snapshotMsg struct {
	snap nt.Snapshot
	ret  nt.RetirementStats
	tok  nt.TokenStats
}

// errorMsg carries a failed refresh; prior state stays untouched
type errorMsg struct {
	err error
}

// archivedMsg carries the fallback snapshot loaded from the archive
type archivedMsg struct {
	snap nt.Snapshot
	ok   bool
}

// historyMsg carries the supply history series after an archive save
type historyMsg struct {
	points []nt.SupplyPoint
}

// filteredMsg carries the filter engine's latest output
type filteredMsg struct {
	projects []nt.Project
}

// criteriaMsg signals that the filter bar's criteria changed
type criteriaMsg struct {
	criteria nt.Criteria
}

// pollMsg is a scheduled refresh tick
type pollMsg time.Time

// counterMsg is a stat card animation tick
type counterMsg time.Time
