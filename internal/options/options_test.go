package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogHasUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, opt := range Options {
		assert.False(t, seen[opt.ID], "duplicate option id %s", opt.ID)
		seen[opt.ID] = true
		for _, alias := range opt.Aliases {
			assert.False(t, seen[alias], "alias %s collides with another id", alias)
			seen[alias] = true
		}
	}
}

func TestCatalogCategoriesAreKnown(t *testing.T) {
	known := make(map[string]bool)
	for _, c := range Categories {
		known[c] = true
	}
	for _, opt := range Options {
		assert.True(t, known[opt.Category], "%s has unknown category %s", opt.ID, opt.Category)
	}
}

func TestByID(t *testing.T) {
	opt, ok := ByID("claude")
	assert.True(t, ok)
	assert.Equal(t, "Claude Code", opt.Name)

	opt, ok = ByID("ssh-key")
	assert.True(t, ok)
	assert.Equal(t, "ssh", opt.ID)

	_, ok = ByID("does-not-exist")
	assert.False(t, ok)
}

func TestForAllExcludesMarkedOptions(t *testing.T) {
	for _, opt := range ForAll() {
		assert.False(t, opt.ExcludedFromAll, "%s should not be in ForAll", opt.ID)
	}
	// Sanity: the filter actually removed something.
	assert.Less(t, len(ForAll()), len(Options))
}
