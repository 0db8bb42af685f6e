package carbonboard

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	nt "carbonboard/entity"
	"carbonboard/filter"
	"carbonboard/style"
)

const (
	footerHeight    = 2
	filterBarHeight = 2
)

// Model is the bubbletea model for the dashboard TUI.
type Model struct {
	registry Registry
	archive  Archive
	engine   *filter.Engine
	logger   nt.Logger
	ctx      context.Context

	pollInterval  time.Duration
	historyPoints int

	CurrentScreen Screen

	snap          nt.Snapshot
	items         []nt.Project
	filtered      []nt.Project
	criteria      nt.Criteria
	ret           nt.RetirementStats
	tok           nt.TokenStats
	lastRefreshed time.Time
	refreshing    bool
	stale         bool
	errorString   string

	StatsPanel  StatsPanel
	ChartPanel  ChartPanel
	FilterPanel FilterPanel
	TablePanel  TablePanel
	DetailPanel DetailPanel

	Width  int
	Height int
}

// NewModel creates the dashboard model.
func NewModel(ctx context.Context, cfg Config, registry Registry, archive Archive, lgr nt.Logger) (model Model, err error) {

	layout, err := LoadLayout("layout.yaml")
	if err != nil {
		return
	}

	model = Model{
		registry:      registry,
		archive:       archive,
		engine:        filter.NewEngine(nt.Predicates(), cfg.Debounce()),
		logger:        lgr,
		ctx:           ctx,
		pollInterval:  cfg.PollInterval(),
		historyPoints: cfg.HistoryPoints,
		CurrentScreen: DashboardScreen,
		criteria:      nt.Criteria{},
		refreshing:    true,
		StatsPanel:    NewStatsPanel(),
		FilterPanel:   NewFilterPanel(),
		TablePanel:    NewTablePanel(layout.Columns),
	}

	return
}

func (m Model) Init() tea.Cmd {

	return tea.Batch(
		m.refresh(),
		listenFiltered(m.engine),
		m.schedulePoll(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case snapshotMsg:
		m.snap = msg.snap
		m.items = msg.snap.Projects
		m.ret = msg.ret
		m.tok = msg.tok
		m.lastRefreshed = msg.snap.FetchedAt
		m.refreshing = false
		m.stale = false
		m.errorString = ""

		m.StatsPanel = m.StatsPanel.SetTargets(nt.Total(m.items), m.ret, m.tok)
		m.FilterPanel = m.FilterPanel.SetOptions(m.items)
		m.engine.Submit(m.items, m.criteria)

		return m, tea.Batch(m.archiveSnapshot(), animate())

	case errorMsg:
		m.logger.Error(m.ctx, "refresh failed", msg.err)
		m.errorString = msg.err.Error()
		m.refreshing = false

		// nothing fetched yet; fall back to the archive
		if len(m.items) == 0 && !m.stale {
			return m, m.loadArchived()
		}
		return m, nil

	case archivedMsg:
		if !msg.ok || len(m.items) > 0 {
			return m, nil
		}
		m.items = msg.snap.Projects
		m.stale = true

		m.StatsPanel = m.StatsPanel.SetTargets(nt.Total(m.items), m.ret, m.tok)
		m.FilterPanel = m.FilterPanel.SetOptions(m.items)
		m.engine.Submit(m.items, m.criteria)

		return m, animate()

	case historyMsg:
		m.ChartPanel = m.ChartPanel.SetHistory(msg.points)
		return m, nil

	case filteredMsg:
		m.filtered = msg.projects
		m.TablePanel = m.TablePanel.SetTotal(len(m.filtered))
		m.ChartPanel = m.ChartPanel.SetProjects(m.filtered)
		return m, listenFiltered(m.engine)

	case criteriaMsg:
		m.criteria = msg.criteria
		m.engine.Submit(m.items, m.criteria)
		return m, nil

	case pollMsg:
		m.refreshing = true
		return m, tea.Batch(m.refresh(), m.schedulePoll())

	case counterMsg:
		var settled bool
		m.StatsPanel, settled = m.StatsPanel.Step()
		if settled {
			return m, nil
		}
		return m, animate()

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		m.TablePanel = m.TablePanel.SetSize(msg.Width, msg.Height-footerHeight-filterBarHeight)
		m.DetailPanel = m.DetailPanel.SetSize(msg.Width, msg.Height-footerHeight)
		return m, nil
	}

	return m, nil
}

func (m Model) View() tea.View {

	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case DashboardScreen:
		screenContent = m.StatsPanel.Render() + "\n\n" + m.ChartPanel.Render()
	case ProjectsScreen:
		screenContent = m.FilterPanel.Render() + "\n\n" + m.TablePanel.Render(m.filtered)
	case DetailScreen:
		screenContent = m.DetailPanel.Render()
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)

	footerContent := RenderFooter(len(m.filtered), len(m.items), m.lastRefreshed, m.refreshing, m.stale, m.Width)
	if m.errorString != "" {
		footerContent = style.AlertStyle.Render(m.errorString)
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	if m.errorString != "" {
		m.errorString = ""
	}

	// while the search box is focused, all keys belong to it
	if m.CurrentScreen == ProjectsScreen && m.FilterPanel.Searching() {
		var cmd tea.Cmd
		m.FilterPanel, cmd = m.FilterPanel.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		switch m.CurrentScreen {
		case DetailScreen:
			m.CurrentScreen = ProjectsScreen
			return m, nil
		case ProjectsScreen:
			m.CurrentScreen = DashboardScreen
			return m, nil
		}
		return m, tea.Quit

	case "1":
		m.CurrentScreen = DashboardScreen
		return m, nil

	case "2":
		m.CurrentScreen = ProjectsScreen
		return m, nil

	case "tab":
		if m.CurrentScreen == DashboardScreen {
			m.CurrentScreen = ProjectsScreen
		} else {
			m.CurrentScreen = DashboardScreen
		}
		return m, nil

	case "r":
		m.refreshing = true
		return m, m.refresh()

	case "enter":
		if m.CurrentScreen != ProjectsScreen {
			break
		}
		prj, err := m.TablePanel.SelectedProject(m.filtered)
		if err != nil {
			m.logger.Error(m.ctx, "no selection", err)
			return m, nil
		}
		m.DetailPanel = m.DetailPanel.SetProject(prj)
		m.CurrentScreen = DetailScreen
		return m, nil
	}

	if m.CurrentScreen == ProjectsScreen {
		var cmd1, cmd2 tea.Cmd
		m.FilterPanel, cmd1 = m.FilterPanel.Update(msg)
		m.TablePanel, cmd2 = m.TablePanel.Update(msg)
		return m, tea.Batch(cmd1, cmd2)
	}

	return m, nil
}
