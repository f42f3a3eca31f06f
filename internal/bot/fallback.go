package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"barbot/core/logger"
	"barbot/core/telegram/helpers"
	"barbot/internal/catalog"
)

// queryResolution is the outcome of matching free text against the catalog.
type queryResolution struct {
	// Entry is set only on an exact alias hit.
	Entry *catalog.BrandEntry
	// Suggestions holds canonical names of substring matches. Substring
	// hits are always offered as a choice, never auto-selected.
	Suggestions []string
}

// resolveQuery matches text the way the alias index defines it: exact
// normalized alias first, then substring containment in both directions.
func resolveQuery(cat *catalog.Catalog, text string) queryResolution {
	if entry, ok := cat.Lookup(text); ok {
		return queryResolution{Entry: &entry}
	}
	matches := cat.Match(text)
	if len(matches) == 0 {
		return queryResolution{}
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m.Name)
	}
	return queryResolution{Suggestions: names}
}

// handleFreeText runs for idle-mode text that matched no button or command.
// Unmatched text is dropped with a debug log.
func (a *App) handleFreeText(c tele.Context) error {
	res := resolveQuery(a.catalog, c.Text())
	switch {
	case res.Entry != nil:
		return a.sendBrandCard(c, res.Entry)
	case len(res.Suggestions) > 0:
		return helpers.SendHTML(c, "Уточните, что вы имели в виду:", optionsMenu(res.Suggestions))
	default:
		logger.Debug(helpers.BuildContext(c), "service.catalog", "catalog.miss",
			slog.String("text", logger.Sanitize(c.Text())))
		return nil
	}
}
