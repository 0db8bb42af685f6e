// Package carbonboard is a terminal dashboard for carbon-credit project
// data: it polls a registry api, filters the project list client-side with
// a debounced predicate engine, and renders stat cards, charts, and a
// project table.
package carbonboard

import (
	"context"

	nt "carbonboard/entity"
)

// Registry fetches dashboard data from the carbon registry api.
type Registry interface {
	// Refresh fetches a full dataset, cancelling any fetch still in flight
	Refresh(ctx context.Context) (snap nt.Snapshot, ret nt.RetirementStats, tok nt.TokenStats, err error)
}

// Archive persists snapshots between sessions.
type Archive interface {
	// Save archives one snapshot
	Save(snap nt.Snapshot) (err error)
	// Last returns the most recent archived snapshot, ok false when empty
	Last() (snap nt.Snapshot, ok bool, err error)
	// History returns up to limit supply points, oldest first
	History(limit int) (points []nt.SupplyPoint, err error)
}
