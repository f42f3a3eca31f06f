package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbot/internal/catalog"
)

func TestResolveQueryExactAlias(t *testing.T) {
	cat := catalog.Default()

	res := resolveQuery(cat, "манки")
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Monkey Shoulder", res.Entry.Name)
	assert.Empty(t, res.Suggestions)

	res = resolveQuery(cat, "Манки Шолдер!!!")
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Monkey Shoulder", res.Entry.Name)
}

func TestResolveQuerySubstringSingle(t *testing.T) {
	cat := catalog.Default()

	// A lone substring hit is still offered as a choice, not auto-opened.
	res := resolveQuery(cat, "расскажи про старопрамен")
	assert.Nil(t, res.Entry)
	require.Equal(t, []string{"Staropramen"}, res.Suggestions)
}

func TestResolveQueryExactAliasBeatsSubstring(t *testing.T) {
	cat := catalog.Default()

	// "грантс" is a registered alias of the classic blend, so the exact
	// match wins even though several brands contain it as a substring.
	res := resolveQuery(cat, "грантс")
	require.NotNil(t, res.Entry)
	assert.Equal(t, "Grant's Classic", res.Entry.Name)
}

func TestResolveQueryDisambiguation(t *testing.T) {
	cat := catalog.Default()

	res := resolveQuery(cat, "грант")
	assert.Nil(t, res.Entry)
	require.NotEmpty(t, res.Suggestions)
	assert.Contains(t, res.Suggestions, "Grant's Classic")
	assert.Contains(t, res.Suggestions, "Grant's Summer Orange")

	seen := map[string]bool{}
	for _, s := range res.Suggestions {
		assert.False(t, seen[s], "duplicate suggestion %q", s)
		seen[s] = true
	}
}

func TestResolveQueryMiss(t *testing.T) {
	cat := catalog.Default()

	res := resolveQuery(cat, "совершенно неизвестный напиток")
	assert.Nil(t, res.Entry)
	assert.Empty(t, res.Suggestions)

	res = resolveQuery(cat, "  !!!  ")
	assert.Nil(t, res.Entry)
	assert.Empty(t, res.Suggestions)
}
