package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_KeepsOrder(t *testing.T) {
	table, err := New(
		Entry{Pattern: "@utils/*", Templates: []string{"src/utils/*"}},
		Entry{Pattern: "@app/*", Templates: []string{"src/app/*", "gen/app/*"}},
		Entry{Pattern: "lodash", Templates: []string{"vendor/lodash"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"@utils/*", "@app/*", "lodash"}, table.Patterns())

	templates, ok := table.Templates("@app/*")
	require.True(t, ok)
	assert.Equal(t, []string{"src/app/*", "gen/app/*"}, templates)

	_, ok = table.Templates("@missing/*")
	assert.False(t, ok)
}

func TestNew_RejectsDuplicatePattern(t *testing.T) {
	_, err := New(
		Entry{Pattern: "@utils/*", Templates: []string{"a/*"}},
		Entry{Pattern: "@utils/*", Templates: []string{"b/*"}},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate alias pattern "@utils/*"`)

	assert.Panics(t, func() {
		MustNew(Entry{Pattern: "x"}, Entry{Pattern: "x"})
	})
}

func TestFromMap_SortsPatterns(t *testing.T) {
	table := FromMap(map[string][]string{
		"~/*":      {"src/*"},
		"@utils/*": {"src/utils/*"},
		"@app/*":   {"src/app/*"},
	})

	assert.Equal(t, []string{"@app/*", "@utils/*", "~/*"}, table.Patterns())
}

func TestTable_IsNotAliasedByCallers(t *testing.T) {
	templates := []string{"src/utils/*"}

	var table Table
	require.NoError(t, table.Add("@utils/*", templates...))

	templates[0] = "changed"

	got, _ := table.Templates("@utils/*")
	assert.Equal(t, []string{"src/utils/*"}, got)

	entries := table.Entries()
	entries[0].Templates[0] = "changed"

	got, _ = table.Templates("@utils/*")
	assert.Equal(t, []string{"src/utils/*"}, got)
}

func TestTable_All(t *testing.T) {
	table := MustNew(
		Entry{Pattern: "b", Templates: []string{"1"}},
		Entry{Pattern: "a", Templates: []string{"2"}},
		Entry{Pattern: "c", Templates: []string{"3"}},
	)

	var seen []string
	for pattern := range table.All() {
		seen = append(seen, pattern)
		if pattern == "a" {
			break
		}
	}

	assert.Equal(t, []string{"b", "a"}, seen)
}

func TestTable_NilIsEmpty(t *testing.T) {
	var table *Table

	assert.Equal(t, 0, table.Len())
	assert.Nil(t, table.Entries())
	assert.Nil(t, table.Patterns())
	count := 0
	for range table.All() {
		count++
	}

	assert.Zero(t, count)

	_, ok := table.Templates("x")
	assert.False(t, ok)
}
