package enrich

import (
	"strings"

	"barbot/internal/catalog"
)

// Competitor brand (normalized substring) → in-house alternative.
var ourAlts = []struct {
	competitor  string
	alternative string
}{
	{"dewars", "Monkey Shoulder"},
	{"ballantines", "Grant’s"},
	{"jameson", "Tullamore D.E.W."},
	{"johnnie walker", "Grant’s"},
	{"chivas", "Glenfiddich 12"},
}

// Per-alternative sales pitch lines.
var altPitches = map[string][]string{
	"Monkey Shoulder": {
		"100% солодовые (не купаж с зерновыми)",
		"мягкий профиль и сильная коктейльная база",
		"стабильная поддержка в HoReCa",
	},
	"Grant’s": {
		"сильное соотношение цена/качество",
		"широкая узнаваемость",
		"линейка вкусовых позиций",
	},
	"Tullamore D.E.W.": {
		"ирландский стиль, богатый профиль",
		"есть медовая версия для коктейлей",
		"поддержка барного сегмента",
	},
	"Glenfiddich 12": {
		"100% солодовый single malt",
		"престиж и история Спейсайда",
		"сильная премиальная подача",
	},
}

// PickAlternative returns the in-house alternative when the query mentions a
// known competitor, or "".
func PickAlternative(query string) string {
	qn := catalog.Normalize(query)
	if qn == "" {
		return ""
	}
	for _, a := range ourAlts {
		if strings.Contains(qn, a.competitor) {
			return a.alternative
		}
	}
	return ""
}
