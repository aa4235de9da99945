// Package listview holds the fetch-filter-render state shared by every list page.
package listview

import (
	"context"
	"fmt"
	"strings"
)

// State tells a page which of its mutually exclusive bodies to render.
type State int

const (
	Loading State = iota
	Failed
	// Empty means the source collection has no rows.
	Empty
	// NoMatches means rows exist but the filters exclude all of them.
	NoMatches
	Populated
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Failed:
		return "failed"
	case Empty:
		return "empty"
	case NoMatches:
		return "no-matches"
	default:
		return "populated"
	}
}

// AllCategories is the category value that disables categorical filtering.
const AllCategories = "All"

// View is a fetched collection plus the filters applied to it. Fields and
// CategoryOf describe how an item is searched and categorised; either may be nil.
type View[T any] struct {
	Search     string
	Category   string
	Fields     func(T) []string
	CategoryOf func(T) string

	items  []T
	err    error
	loaded bool
}

// Load replaces the collection with the result of fetch.
func (v *View[T]) Load(ctx context.Context, fetch func(context.Context) ([]T, error)) error {
	items, err := fetch(ctx)
	v.Set(items, err)
	return err
}

// Set records a fetch result obtained elsewhere.
func (v *View[T]) Set(items []T, err error) {
	v.loaded = true
	v.err = err
	if err != nil {
		v.items = nil
		return
	}
	v.items = items
}

// Items returns the unfiltered collection.
func (v *View[T]) Items() []T { return v.items }

// Projection is what a list page renders.
type Projection[T any] struct {
	Rows     []T
	State    State
	Term     string
	Category string
	Err      error
	// Total is the size of the unfiltered collection.
	Total int
}

// Derive applies the search term and category to the loaded collection. It
// never mutates the view, so calling it repeatedly yields the same rows.
func (v *View[T]) Derive() Projection[T] {
	term := strings.TrimSpace(v.Search)
	category := strings.TrimSpace(v.Category)
	if strings.EqualFold(category, AllCategories) {
		category = ""
	}
	p := Projection[T]{Term: term, Category: category}

	switch {
	case !v.loaded:
		p.State = Loading
		return p
	case v.err != nil:
		p.State = Failed
		p.Err = v.err
		return p
	case len(v.items) == 0:
		p.State = Empty
		return p
	}

	p.Total = len(v.items)
	needle := strings.ToLower(term)
	rows := make([]T, 0, len(v.items))
	for _, item := range v.items {
		if needle != "" && !v.matches(item, needle) {
			continue
		}
		if category != "" && (v.CategoryOf == nil || v.CategoryOf(item) != category) {
			continue
		}
		rows = append(rows, item)
	}
	p.Rows = rows
	if len(rows) == 0 {
		p.State = NoMatches
	} else {
		p.State = Populated
	}
	return p
}

func (v *View[T]) matches(item T, needle string) bool {
	if v.Fields == nil {
		return false
	}
	for _, f := range v.Fields(item) {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func (p Projection[T]) Loading() bool   { return p.State == Loading }
func (p Projection[T]) Failed() bool    { return p.State == Failed }
func (p Projection[T]) Empty() bool     { return p.State == Empty }
func (p Projection[T]) NoMatches() bool { return p.State == NoMatches }
func (p Projection[T]) Populated() bool { return p.State == Populated }

// Filtered reports whether any filter is active.
func (p Projection[T]) Filtered() bool { return p.Term != "" || p.Category != "" }

// EmptyMessage is the text for the Empty and NoMatches states.
func (p Projection[T]) EmptyMessage(noun string) string {
	switch {
	case p.State != NoMatches:
		return fmt.Sprintf("No %s found.", noun)
	case p.Term != "":
		return fmt.Sprintf("No %s found for %q", noun, p.Term)
	default:
		return fmt.Sprintf("No %s match the filter %q", noun, p.Category)
	}
}
