package carbonboard

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "carbonboard/entity"
)

// keyPress builds a key msg the way the terminal driver would
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	default:
		runes := []rune(key)
		return tea.KeyPressMsg{Code: runes[0], Text: key}
	}
}

type testLogger struct{}

func (testLogger) Info(ctx context.Context, msg string, kv ...any)             {}
func (testLogger) Error(ctx context.Context, msg string, err error, kv ...any) {}

type stubRegistry struct {
	snap nt.Snapshot
	ret  nt.RetirementStats
	tok  nt.TokenStats
	err  error
}

func (sr *stubRegistry) Refresh(ctx context.Context) (nt.Snapshot, nt.RetirementStats, nt.TokenStats, error) {
	return sr.snap, sr.ret, sr.tok, sr.err
}

type stubArchive struct {
	saved []nt.Snapshot
	last  nt.Snapshot
	ok    bool
}

func (sa *stubArchive) Save(snap nt.Snapshot) error {
	sa.saved = append(sa.saved, snap)
	return nil
}

func (sa *stubArchive) Last() (nt.Snapshot, bool, error) {
	return sa.last, sa.ok, nil
}

func (sa *stubArchive) History(limit int) ([]nt.SupplyPoint, error) {
	return nil, nil
}

var modelProjects = []nt.Project{
	{ID: "p1", Name: "Rimba Raya", Type: "redd+", Registry: "verra", Supply: 130000, Retired: 41000, PriceUSD: 6.4},
	{ID: "p2", Name: "Prairie Wind", Type: "wind", Registry: "acr", Supply: 88000, Retired: 12000, PriceUSD: 3.1},
}

func newTestModel(t *testing.T) Model {

	cfg := Config{Endpoint: "http://localhost", DebounceMillis: 1, HistoryPoints: 10}
	model, err := NewModel(context.Background(), cfg, &stubRegistry{}, &stubArchive{}, testLogger{})
	require.NoError(t, err)
	return model
}

func applySnapshot(t *testing.T, m Model) Model {

	updated, _ := m.Update(snapshotMsg{
		snap: nt.Snapshot{Projects: modelProjects, FetchedAt: time.Now()},
		ret:  nt.RetirementStats{TotalRetired: 53000},
		tok:  nt.TokenStats{Bridged: 1000},
	})
	return updated.(Model)
}

func TestSnapshotReplacesState(t *testing.T) {

	m := newTestModel(t)
	m.errorString = "stale error"
	m = applySnapshot(t, m)

	assert.Len(t, m.items, 2)
	assert.Empty(t, m.errorString)
	assert.False(t, m.refreshing)
	assert.False(t, m.lastRefreshed.IsZero())
}

func TestFetchFailurePreservesItems(t *testing.T) {

	m := newTestModel(t)
	m = applySnapshot(t, m)

	updated, _ := m.Update(errorMsg{err: errors.New("registry down")})
	m = updated.(Model)

	assert.Len(t, m.items, 2, "failed refresh must not clobber projects")
	assert.Equal(t, "registry down", m.errorString)
	assert.False(t, m.refreshing)
}

func TestFetchFailureBeforeFirstSnapshotFallsBack(t *testing.T) {

	m := newTestModel(t)
	m.archive = &stubArchive{
		last: nt.Snapshot{Projects: modelProjects, FetchedAt: time.Now()},
		ok:   true,
	}

	updated, cmd := m.Update(errorMsg{err: errors.New("registry down")})
	m = updated.(Model)
	require.NotNil(t, cmd, "empty model should try the archive")

	msg := cmd()
	updated, _ = m.Update(msg)
	m = updated.(Model)

	assert.Len(t, m.items, 2)
	assert.True(t, m.stale)
}

func TestCriteriaChangeGoesThroughDebounce(t *testing.T) {

	m := newTestModel(t)
	m = applySnapshot(t, m)

	// drain the unfiltered result from the snapshot's own submit
	select {
	case initial := <-m.engine.Results():
		require.Len(t, initial, 2)
	case <-time.After(time.Second):
		t.Fatal("engine never delivered initial result")
	}

	updated, cmd := m.Update(criteriaMsg{criteria: nt.Criteria{"type": "wind"}})
	m = updated.(Model)
	assert.Nil(t, cmd, "recompute is deferred to the engine")

	select {
	case filtered := <-m.engine.Results():
		require.Len(t, filtered, 1)
		assert.Equal(t, "p2", filtered[0].ID)

		updated, _ = m.Update(filteredMsg{projects: filtered})
		m = updated.(Model)
		assert.Equal(t, 1, m.TablePanel.Total)
	case <-time.After(time.Second):
		t.Fatal("engine never delivered")
	}
}

func TestRefreshCmd(t *testing.T) {

	m := newTestModel(t)
	m.registry = &stubRegistry{
		snap: nt.Snapshot{Projects: modelProjects, FetchedAt: time.Now()},
	}

	msg := m.refresh()()
	snap, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.Len(t, snap.snap.Projects, 2)
}

func TestRefreshCmdFailure(t *testing.T) {

	m := newTestModel(t)
	m.registry = &stubRegistry{err: errors.New("boom")}

	msg := m.refresh()()
	_, ok := msg.(errorMsg)
	require.True(t, ok)
}

func TestKeyNavigation(t *testing.T) {

	m := newTestModel(t)
	m = applySnapshot(t, m)
	m.filtered = modelProjects

	updated, _ := m.handleKey(keyPress("2"))
	m = updated.(Model)
	assert.Equal(t, ProjectsScreen, m.CurrentScreen)

	updated, _ = m.handleKey(keyPress("enter"))
	m = updated.(Model)
	assert.Equal(t, DetailScreen, m.CurrentScreen)

	updated, _ = m.handleKey(keyPress("esc"))
	m = updated.(Model)
	assert.Equal(t, ProjectsScreen, m.CurrentScreen)
}

func TestManualRefreshSetsFlag(t *testing.T) {

	m := newTestModel(t)
	m = applySnapshot(t, m)

	updated, cmd := m.handleKey(keyPress("r"))
	m = updated.(Model)

	assert.True(t, m.refreshing)
	assert.NotNil(t, cmd)
}
