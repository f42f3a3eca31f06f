package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "манки шолдер", Normalize("  Манки   Шолдер!!! "))
	assert.Equal(t, "monkey shoulder", Normalize("Monkey-Shoulder"))
	assert.Equal(t, "ягермейстер", Normalize("Ягермейстер"))
	assert.Equal(t, "елка", Normalize("Ёлка"))
	assert.Equal(t, "", Normalize("***"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Монки Шолдер", "Glenfiddich 12 Years", "ёж и ЁЖ", "  a  b  "}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestLookupExactAlias(t *testing.T) {
	c := Default()

	e, ok := c.Lookup("манки")
	require.True(t, ok)
	assert.Equal(t, "Monkey Shoulder", e.Name)

	e, ok = c.Lookup("Манки Шолдер!!!")
	require.True(t, ok)
	assert.Equal(t, "Monkey Shoulder", e.Name)

	e, ok = c.Lookup("ягер")
	require.True(t, ok)
	assert.Equal(t, "Jägermeister", e.Name)

	_, ok = c.Lookup("несуществующий бренд")
	assert.False(t, ok)
}

func TestLookupCanonicalName(t *testing.T) {
	c := Default()
	for _, name := range c.Names() {
		e, ok := c.Lookup(name)
		require.True(t, ok, "canonical name %q must resolve", name)
		assert.Equal(t, name, e.Name)
	}
}

func TestMatchSubstring(t *testing.T) {
	c := Default()

	// Query contains an alias.
	got := c.Match("расскажи про манки шолдер пожалуйста")
	require.Len(t, got, 1)
	assert.Equal(t, "Monkey Shoulder", got[0].Name)

	// Alias contains the query: several Grant's variants share the prefix.
	got = c.Match("грантс")
	require.NotEmpty(t, got)
	names := make([]string, 0, len(got))
	for _, e := range got {
		names = append(names, e.Name)
	}
	assert.Contains(t, names, "Grant's Classic")
	assert.Contains(t, names, "Grant's Summer Orange")
}

func TestMatchDeduplicatesEntries(t *testing.T) {
	c := Default()
	// "талламор дью" hits both the canonical name and several aliases
	// of the same entry; the result must list the entry once.
	got := c.Match("таллаМОР")
	seen := map[string]int{}
	for _, e := range got {
		seen[e.Name]++
	}
	for name, n := range seen {
		assert.Equal(t, 1, n, "entry %q returned more than once", name)
	}
}

func TestMatchEmptyInput(t *testing.T) {
	c := Default()
	assert.Empty(t, c.Match(""))
	assert.Empty(t, c.Match("   !!! "))
}

func TestCategoryOrder(t *testing.T) {
	c := Default()

	whisky := c.Category(CategoryWhisky)
	require.Len(t, whisky, 10)
	assert.Equal(t, "Monkey Shoulder", whisky[0].Name)
	assert.Equal(t, "Tullamore D.E.W. Honey", whisky[9].Name)

	labels := c.Labels(CategoryVodka)
	require.Len(t, labels, 6)
	assert.Equal(t, "Серебрянка", labels[0])
	assert.Equal(t, "Русский Стандарт", labels[5])
}

func TestFirstRegistrationWins(t *testing.T) {
	c := New([]BrandEntry{
		{Name: "First", Category: CategoryBeer, Aliases: []string{"дубль"}},
		{Name: "Second", Category: CategoryBeer, Aliases: []string{"дубль"}},
	})
	e, ok := c.Lookup("дубль")
	require.True(t, ok)
	assert.Equal(t, "First", e.Name)
}
