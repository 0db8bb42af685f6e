package carbonboard

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	nt "carbonboard/entity"
	"carbonboard/style"
)

// FilterPanel is the one-row filter bar: free-text search plus cycle
// selectors for type and registry.  Every change emits a criteriaMsg; the
// debounced engine decides when to recompute.
type FilterPanel struct {
	search  searchInput
	typeSel cycle
	regSel  cycle
}

func NewFilterPanel() FilterPanel {

	return FilterPanel{
		search:  newSearchInput(40),
		typeSel: newCycle("Type"),
		regSel:  newCycle("Registry"),
	}
}

// SetOptions rebuilds the selector choices from the fetched projects,
// preserving current selections when still valid.
func (pnl FilterPanel) SetOptions(projects []nt.Project) FilterPanel {

	pnl.typeSel = pnl.typeSel.setOptions(distinct(projects, func(prj nt.Project) string { return prj.Type }))
	pnl.regSel = pnl.regSel.setOptions(distinct(projects, func(prj nt.Project) string { return prj.Registry }))
	return pnl
}

// Criteria snapshots the bar's current values into a fresh map.
func (pnl FilterPanel) Criteria() nt.Criteria {

	return nt.Criteria{
		"search":   pnl.search.value,
		"type":     pnl.typeSel.selected(),
		"registry": pnl.regSel.selected(),
	}
}

// Searching reports whether the search input has key focus.
func (pnl FilterPanel) Searching() bool {
	return pnl.search.focused
}

func (pnl FilterPanel) Update(msg tea.Msg) (FilterPanel, tea.Cmd) {

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return pnl, nil
	}

	if pnl.search.focused {
		switch keyMsg.String() {
		case "esc", "enter":
			pnl.search.focused = false
			return pnl, nil
		default:
			var changed bool
			pnl.search, changed = pnl.search.handleKey(keyMsg)
			if changed {
				return pnl, pnl.criteriaCmd()
			}
			return pnl, nil
		}
	}

	switch keyMsg.String() {
	case "/":
		pnl.search.focused = true

	case "t":
		pnl.typeSel = pnl.typeSel.next()
		return pnl, pnl.criteriaCmd()

	case "T":
		pnl.typeSel = pnl.typeSel.prev()
		return pnl, pnl.criteriaCmd()

	case "y":
		pnl.regSel = pnl.regSel.next()
		return pnl, pnl.criteriaCmd()

	case "Y":
		pnl.regSel = pnl.regSel.prev()
		return pnl, pnl.criteriaCmd()

	case "x":
		// clear everything
		pnl.search = newSearchInput(pnl.search.maxLength)
		pnl.typeSel.index = 0
		pnl.regSel.index = 0
		return pnl, pnl.criteriaCmd()
	}

	return pnl, nil
}

func (pnl FilterPanel) Render() string {

	searchBox := pnl.search.render()
	parts := []string{
		style.MutedStyle.Render("Search:") + " " + searchBox,
		pnl.typeSel.render(),
		pnl.regSel.render(),
	}

	return strings.Join(parts, "   ")
}

// unexported

func (pnl FilterPanel) criteriaCmd() tea.Cmd {

	crit := pnl.Criteria()
	return func() tea.Msg {
		return criteriaMsg{criteria: crit}
	}
}

func distinct(projects []nt.Project, field func(nt.Project) string) (values []string) {

	seen := map[string]bool{}
	for _, prj := range projects {
		val := field(prj)
		if val == "" || seen[val] {
			continue
		}
		seen[val] = true
		values = append(values, val)
	}

	sort.Strings(values)
	return
}

// searchInput is a minimal editable text field.
type searchInput struct {
	value     string
	cursor    int
	maxLength int
	focused   bool
}

func newSearchInput(maxLength int) searchInput {

	if maxLength <= 0 {
		maxLength = 100
	}
	return searchInput{maxLength: maxLength}
}

func (si searchInput) handleKey(msg tea.KeyPressMsg) (searchInput, bool) {

	oldValue := si.value

	switch msg.String() {
	case "backspace":
		if si.cursor > 0 {
			si.value = si.value[:si.cursor-1] + si.value[si.cursor:]
			si.cursor--
		}
	case "delete":
		if si.cursor < len(si.value) {
			si.value = si.value[:si.cursor] + si.value[si.cursor+1:]
		}
	case "left":
		if si.cursor > 0 {
			si.cursor--
		}
	case "right":
		if si.cursor < len(si.value) {
			si.cursor++
		}
	case "home", "ctrl+a":
		si.cursor = 0
	case "end", "ctrl+e":
		si.cursor = len(si.value)
	default:
		if len(msg.String()) == 1 && len(si.value) < si.maxLength {
			si.value = si.value[:si.cursor] + msg.String() + si.value[si.cursor:]
			si.cursor++
		}
	}

	return si, si.value != oldValue
}

func (si searchInput) render() string {

	shown := si.value
	if shown == "" && !si.focused {
		shown = style.MutedStyle.Render("(press / to search)")
	}
	if si.focused {
		return style.FocusedStyle.Render("[" + shown + "_]")
	}
	return "[" + shown + "]"
}

// cycle steps through a fixed option list; index 0 is always the neutral
// "all" value.
type cycle struct {
	label   string
	options []string
	index   int
}

func newCycle(label string) cycle {

	return cycle{
		label:   label,
		options: []string{nt.Neutral},
	}
}

func (cyc cycle) setOptions(values []string) cycle {

	current := cyc.selected()
	cyc.options = append([]string{nt.Neutral}, values...)

	cyc.index = 0
	for i, opt := range cyc.options {
		if opt == current {
			cyc.index = i
			break
		}
	}
	return cyc
}

func (cyc cycle) next() cycle {
	cyc.index = (cyc.index + 1) % len(cyc.options)
	return cyc
}

func (cyc cycle) prev() cycle {
	cyc.index = (cyc.index - 1 + len(cyc.options)) % len(cyc.options)
	return cyc
}

func (cyc cycle) selected() string {
	return cyc.options[cyc.index]
}

func (cyc cycle) render() string {

	return fmt.Sprintf("%s %s",
		style.MutedStyle.Render(cyc.label+":"),
		style.ValueStyle.Render("["+cyc.selected()+"]"))
}
