package router

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrNoHistory is returned by Back and Forward at either end of the history.
var ErrNoHistory = errors.New("no history entry in that direction")

// Transition is the committed result of a navigation.
type Transition struct {
	Path   string
	Route  Descriptor
	Scroll ScrollPosition
}

type historyEntry struct {
	path   string
	route  Descriptor
	scroll *ScrollPosition
}

// Navigator dispatches navigations one at a time. Guards and scroll
// restoration complete before a Transition is returned.
type Navigator struct {
	table  *Table
	guards []Guard

	mu      sync.Mutex
	history []historyEntry
	index   int
}

// NewNavigator creates a Navigator with an empty history.
func NewNavigator(table *Table, guards ...Guard) *Navigator {
	return &Navigator{
		table:  table,
		guards: guards,
		index:  -1,
	}
}

// Push navigates to p, discarding any forward history. New entries always
// scroll to the top.
func (n *Navigator) Push(p string) Transition {
	n.mu.Lock()
	defer n.mu.Unlock()

	entry := historyEntry{path: Normalize(p), route: n.table.Resolve(p)}
	n.history = append(n.history[:n.index+1], entry)
	return n.commit(n.index + 1)
}

// Back moves one entry back in history, restoring its saved scroll offset.
func (n *Navigator) Back() (Transition, error) {
	return n.Go(-1)
}

// Forward moves one entry forward in history, restoring its saved scroll offset.
func (n *Navigator) Forward() (Transition, error) {
	return n.Go(1)
}

// Go moves delta entries through history.
func (n *Navigator) Go(delta int) (Transition, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	target := n.index + delta
	if delta == 0 || target < 0 || target >= len(n.history) {
		return Transition{}, ErrNoHistory
	}
	return n.commit(target), nil
}

// SaveScroll records the scroll offset of the current entry.
func (n *Navigator) SaveScroll(pos ScrollPosition) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.index < 0 {
		return
	}
	n.history[n.index].scroll = &pos
}

// Current returns the active route, or false before the first navigation.
func (n *Navigator) Current() (Descriptor, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.index < 0 {
		return Descriptor{}, false
	}
	return n.history[n.index].route, true
}

// commit must be called with mu held.
func (n *Navigator) commit(target int) Transition {
	entry := n.history[target]

	event := Event{To: entry.route}
	if n.index >= 0 {
		from := n.history[n.index].route
		event.From = &from
	}
	if entry.scroll != nil {
		saved := *entry.scroll
		event.Saved = &saved
	}

	for _, guard := range n.guards {
		guard(event)
	}

	n.index = target
	slog.Debug("Navigation committed", "path", entry.path, "route", entry.route.Name)

	return Transition{
		Path:   entry.path,
		Route:  entry.route,
		Scroll: ScrollFor(event),
	}
}
