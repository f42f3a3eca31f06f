package catalog

import "strings"

// Category groups brand entries into menu screens.
type Category string

const (
	CategoryWhisky    Category = "whisky"
	CategoryVodka     Category = "vodka"
	CategoryBeer      Category = "beer"
	CategoryWine      Category = "wine"
	CategoryCocktails Category = "cocktails"
	CategoryJager     Category = "jager"
)

// BrandEntry is a single immutable catalog card. Caption is Telegram HTML;
// PhotoID is an opaque Telegram file id and may be empty for text-only cards.
type BrandEntry struct {
	Name     string
	Category Category
	Caption  string
	PhotoID  string
	Aliases  []string
}

// Catalog holds brand entries in declaration order together with a
// normalized alias index. Declaration order keeps disambiguation output
// deterministic.
type Catalog struct {
	entries []BrandEntry
	byName  map[string]int
	// index maps normalized alias -> entry position.
	index      map[string]int
	aliasOrder []string
}

// New builds a catalog and its alias index from the given entries.
// The canonical name itself is always indexed alongside the aliases.
func New(entries []BrandEntry) *Catalog {
	c := &Catalog{
		entries: entries,
		byName:  make(map[string]int, len(entries)),
		index:   make(map[string]int),
	}
	for i, e := range entries {
		c.byName[e.Name] = i
		for _, alias := range append([]string{e.Name}, e.Aliases...) {
			key := Normalize(alias)
			if key == "" {
				continue
			}
			if _, exists := c.index[key]; exists {
				continue
			}
			c.index[key] = i
			c.aliasOrder = append(c.aliasOrder, key)
		}
	}
	return c
}

// Get returns the entry with the exact canonical name.
func (c *Catalog) Get(name string) (BrandEntry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return BrandEntry{}, false
	}
	return c.entries[i], true
}

// Lookup resolves normalized text to an entry via exact alias match.
func (c *Catalog) Lookup(text string) (BrandEntry, bool) {
	key := Normalize(text)
	if key == "" {
		return BrandEntry{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return BrandEntry{}, false
	}
	return c.entries[i], true
}

// Match finds entries whose aliases contain the normalized input as a
// substring or vice versa. Results are de-duplicated by canonical name and
// keep alias declaration order. Empty normalized input matches nothing.
func (c *Catalog) Match(text string) []BrandEntry {
	key := Normalize(text)
	if key == "" {
		return nil
	}
	var out []BrandEntry
	seen := make(map[int]struct{})
	for _, alias := range c.aliasOrder {
		if !contains(key, alias) {
			continue
		}
		i := c.index[alias]
		if _, dup := seen[i]; dup {
			continue
		}
		seen[i] = struct{}{}
		out = append(out, c.entries[i])
	}
	return out
}

func contains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// Category returns entries of a category in declaration order.
func (c *Catalog) Category(cat Category) []BrandEntry {
	var out []BrandEntry
	for _, e := range c.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// Labels returns the canonical names of a category in declaration order,
// ready for keyboard building.
func (c *Catalog) Labels(cat Category) []string {
	entries := c.Category(cat)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

// Names returns every canonical name in declaration order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.Name)
	}
	return out
}
