package carbonboard

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"carbonboard/filter"
)

// refresh fetches a full dataset from the registry.  The client cancels
// any fetch still in flight, so firing this mid-refresh is safe.
func (m Model) refresh() tea.Cmd {

	return func() tea.Msg {

		snap, ret, tok, err := m.registry.Refresh(m.ctx)
		if err != nil {
			return errorMsg{err: err}
		}

		return snapshotMsg{snap: snap, ret: ret, tok: tok}
	}
}

// schedulePoll ticks once after the poll interval; nil when polling is off.
func (m Model) schedulePoll() tea.Cmd {

	if m.pollInterval == 0 {
		return nil
	}
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

// listenFiltered waits for the engine's next result; reissued per receive.
func listenFiltered(eng *filter.Engine) tea.Cmd {

	return func() tea.Msg {
		return filteredMsg{projects: <-eng.Results()}
	}
}

// archiveSnapshot saves the snapshot and reloads the history series.
// Archive trouble is logged, never surfaced as a fetch error.
func (m Model) archiveSnapshot() tea.Cmd {

	snap := m.snap
	return func() tea.Msg {

		err := m.archive.Save(snap)
		if err != nil {
			m.logger.Error(m.ctx, "failed to archive snapshot", err)
			return nil
		}

		points, err := m.archive.History(m.historyPoints)
		if err != nil {
			m.logger.Error(m.ctx, "failed to load history", err)
			return nil
		}

		return historyMsg{points: points}
	}
}

// loadArchived pulls the last archived snapshot for offline startup.
func (m Model) loadArchived() tea.Cmd {

	return func() tea.Msg {

		snap, ok, err := m.archive.Last()
		if err != nil {
			m.logger.Error(m.ctx, "failed to load archived snapshot", err)
			return archivedMsg{}
		}

		return archivedMsg{snap: snap, ok: ok}
	}
}

// animate ticks the stat card counters.
func animate() tea.Cmd {

	return tea.Tick(40*time.Millisecond, func(t time.Time) tea.Msg {
		return counterMsg(t)
	})
}
