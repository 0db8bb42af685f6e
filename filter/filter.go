// Package filter applies named predicates to project lists, debounced so a
// burst of criteria edits costs one recomputation.
package filter

import (
	"sync"
	"time"

	nt "carbonboard/entity"
)

// Apply returns the projects passing every predicate whose dimension is
// present in crit.  Pure and order preserving; items is never mutated.
func Apply(items []nt.Project, crit nt.Criteria, preds nt.PredicateTable) (out []nt.Project) {

	out = make([]nt.Project, 0, len(items))
	for _, item := range items {
		if matches(item, crit, preds) {
			out = append(out, item)
		}
	}
	return
}

// Engine debounces Apply with a trailing-edge window: only the last Submit
// in a burst recomputes, using the items and criteria captured then.
//
// The engine is a two-state machine, idle or pending.  Submit moves it to
// pending, cancelling any timer already there; the timer firing moves it
// back to idle and delivers the result.
type Engine struct {
	preds nt.PredicateTable
	delay time.Duration
	out   chan []nt.Project

	mu    sync.Mutex
	timer *time.Timer
}

// NewEngine creates an engine with the given predicate table and window.
// A zero delay makes Submit recompute synchronously.
func NewEngine(preds nt.PredicateTable, delay time.Duration) *Engine {

	return &Engine{
		preds: preds,
		delay: delay,
		out:   make(chan []nt.Project, 1),
	}
}

// Submit schedules recomputation after the debounce window, replacing any
// pending one.  The filtered list arrives on Results.
func (eng *Engine) Submit(items []nt.Project, crit nt.Criteria) {

	if eng.delay == 0 {
		eng.deliver(Apply(items, crit, eng.preds))
		return
	}

	eng.mu.Lock()
	defer eng.mu.Unlock()

	if eng.timer != nil {
		eng.timer.Stop()
	}

	crit = crit.Clone()
	eng.timer = time.AfterFunc(eng.delay, func() {
		eng.deliver(Apply(items, crit, eng.preds))
	})
}

// Cancel drops any pending recomputation outright.
func (eng *Engine) Cancel() {

	eng.mu.Lock()
	defer eng.mu.Unlock()

	if eng.timer != nil {
		eng.timer.Stop()
		eng.timer = nil
	}
}

// Results returns the delivery channel.  Latest wins: an unread result is
// replaced rather than queued behind.
func (eng *Engine) Results() <-chan []nt.Project {
	return eng.out
}

// unexported

func (eng *Engine) deliver(filtered []nt.Project) {

	// drop a stale unread result so the send cannot block
	select {
	case <-eng.out:
	default:
	}
	eng.out <- filtered
}

func matches(item nt.Project, crit nt.Criteria, preds nt.PredicateTable) bool {

	for dim, val := range crit {
		pred, ok := preds[dim]
		if !ok {
			continue
		}
		if !pred(item, val) {
			return false
		}
	}
	return true
}
