// Package document models the mutable parts of a page head: its title and its
// single icon link. Everything that writes page state goes through Document.
package document

import "sync"

// Document is the narrow side-effect boundary for page head state.
type Document interface {
	Title() string
	SetTitle(title string)
	Favicon() string
	SetFavicon(href string)
}

// Head is an in-memory Document safe for concurrent use.
type Head struct {
	mu      sync.RWMutex
	title   string
	favicon string
	writes  int
}

// NewHead creates a Head whose icon link starts at favicon (may be empty).
func NewHead(favicon string) *Head {
	return &Head{favicon: favicon}
}

// Title returns the current document title.
func (h *Head) Title() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.title
}

// SetTitle replaces the document title.
func (h *Head) SetTitle(title string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.title = title
}

// Favicon returns the href of the icon link.
func (h *Head) Favicon() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.favicon
}

// SetFavicon replaces the href of the icon link.
func (h *Head) SetFavicon(href string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.favicon = href
	h.writes++
}

// FaviconWrites reports how many times SetFavicon was called.
func (h *Head) FaviconWrites() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.writes
}
