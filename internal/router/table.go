// Package router declares the navigable pages of the site and resolves
// request paths against them.
package router

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	// ErrEmptyName is returned when a descriptor has no name.
	ErrEmptyName = errors.New("route name is empty")

	// ErrEmptyPath is returned when a descriptor has no path pattern.
	ErrEmptyPath = errors.New("route path is empty")

	// ErrDuplicateName is returned when two descriptors share a name.
	ErrDuplicateName = errors.New("duplicate route name")

	// ErrMissingWildcard is returned when a table has no catch-all descriptor.
	ErrMissingWildcard = errors.New("route table has no wildcard route")

	// ErrMultipleWildcards is returned when a table has more than one catch-all descriptor.
	ErrMultipleWildcards = errors.New("route table has more than one wildcard route")

	// ErrWildcardNotLast is returned when the catch-all descriptor would shadow later routes.
	ErrWildcardNotLast = errors.New("wildcard route must be last")
)

// WildcardPath is the canonical catch-all pattern.
const WildcardPath = "*"

// catchAllPattern is the history-router spelling of a catch-all route.
const catchAllPattern = "/:pathMatch(.*)*"

// Descriptor maps a path pattern to a view.
type Descriptor struct {
	Path  string `json:"path"`
	Name  string `json:"name"`
	View  string `json:"view"`
	Title string `json:"title,omitempty"`
}

// IsWildcard reports whether d matches any path.
func (d Descriptor) IsWildcard() bool {
	return d.Path == WildcardPath || d.Path == catchAllPattern
}

// Table is an ordered, validated set of descriptors resolved first-match-wins.
type Table struct {
	routes []Descriptor
	byName map[string]int
}

// NewTable validates descriptors and builds a Table. Exactly one wildcard
// descriptor must exist and it must be last.
func NewTable(descriptors ...Descriptor) (*Table, error) {
	t := &Table{
		routes: make([]Descriptor, 0, len(descriptors)),
		byName: make(map[string]int, len(descriptors)),
	}

	wildcard := -1
	for i, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("route %d: %w", i, ErrEmptyName)
		}
		if d.Path == "" {
			return nil, fmt.Errorf("route %s: %w", d.Name, ErrEmptyPath)
		}
		if _, exists := t.byName[d.Name]; exists {
			return nil, fmt.Errorf("route %s: %w", d.Name, ErrDuplicateName)
		}
		if d.IsWildcard() {
			if wildcard >= 0 {
				return nil, fmt.Errorf("route %s: %w", d.Name, ErrMultipleWildcards)
			}
			wildcard = i
		} else {
			d.Path = Normalize(d.Path)
		}

		t.byName[d.Name] = i
		t.routes = append(t.routes, d)
	}

	if wildcard < 0 {
		return nil, ErrMissingWildcard
	}
	if wildcard != len(descriptors)-1 {
		return nil, fmt.Errorf("route %s: %w", descriptors[wildcard].Name, ErrWildcardNotLast)
	}

	return t, nil
}

// MustTable is like NewTable but panics on an invalid table.
func MustTable(descriptors ...Descriptor) *Table {
	t, err := NewTable(descriptors...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the first descriptor matching p. Because the table always
// ends with a wildcard, every path resolves.
func (t *Table) Resolve(p string) Descriptor {
	p = Normalize(p)
	for _, d := range t.routes {
		if d.IsWildcard() || d.Path == p {
			return d
		}
	}
	// unreachable for tables built by NewTable
	return t.routes[len(t.routes)-1]
}

// Lookup finds a descriptor by name.
func (t *Table) Lookup(name string) (Descriptor, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return t.routes[i], true
}

// Descriptors returns a copy of the table in resolution order.
func (t *Table) Descriptors() []Descriptor {
	out := make([]Descriptor, len(t.routes))
	copy(out, t.routes)
	return out
}

// Normalize strips query and fragment, cleans the path and removes any
// trailing slash except on the root.
func Normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
