package alias

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Entry is one alias pattern and its substitution templates, in the
// order they should be tried.
type Entry struct {
	Pattern   string
	Templates []string
}

// Table is an ordered alias table. Patterns are unique and iterate in
// the order they were added. The zero value is an empty table ready to
// use. A Table is not safe for concurrent mutation, but any number of
// resolutions may read it concurrently.
type Table struct {
	entries []Entry
	index   map[string]int
}

// New builds a table from entries, keeping their order.
func New(entries ...Entry) (*Table, error) {
	t := &Table{}

	for _, e := range entries {
		if err := t.Add(e.Pattern, e.Templates...); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(entries ...Entry) *Table {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}

	return t
}

// FromMap builds a table from a Go map. Maps carry no order, so
// patterns are added in lexical order to keep iteration deterministic.
func FromMap(m map[string][]string) *Table {
	t := &Table{}

	for _, pattern := range slices.Sorted(maps.Keys(m)) {
		// keys of a map are unique, Add cannot fail here
		_ = t.Add(pattern, m[pattern]...)
	}

	return t
}

// Add appends pattern with its templates. Adding a pattern twice is an error.
func (t *Table) Add(pattern string, templates ...string) error {
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if _, exists := t.index[pattern]; exists {
		return fmt.Errorf("duplicate alias pattern %q", pattern)
	}

	t.index[pattern] = len(t.entries)
	t.entries = append(t.entries, Entry{
		Pattern:   pattern,
		Templates: slices.Clone(templates),
	})

	return nil
}

// Len returns the number of patterns.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}

	return len(t.entries)
}

// Entries returns a copy of the table's entries in order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}

	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Pattern: e.Pattern, Templates: slices.Clone(e.Templates)}
	}

	return out
}

// All yields each pattern with its templates in table order without
// copying. Callers must not modify the yielded slices.
func (t *Table) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		if t == nil {
			return
		}

		for _, e := range t.entries {
			if !yield(e.Pattern, e.Templates) {
				return
			}
		}
	}
}

// Patterns returns the patterns in table order.
func (t *Table) Patterns() []string {
	if t == nil {
		return nil
	}

	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Pattern
	}

	return out
}

// Templates returns the templates for pattern.
func (t *Table) Templates(pattern string) ([]string, bool) {
	if t == nil {
		return nil, false
	}

	i, ok := t.index[pattern]
	if !ok {
		return nil, false
	}

	return slices.Clone(t.entries[i].Templates), true
}
