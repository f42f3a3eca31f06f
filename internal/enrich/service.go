package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	coreconfig "barbot/core/config"
	"barbot/core/logger"
	"barbot/core/telegram/format"
)

const (
	EnterMessage       = "AI-режим с онлайн-поиском включен. Напишите бренд или вопрос."
	ExitMessage        = "Окей, вышли из AI-режима."
	unavailableMessage = "Онлайн-поиск сейчас недоступен. Попробуйте позже."
	missMessage        = "Не нашёл точной информации. Уточните запрос (бренд/категория) или попробуйте другое написание."
)

// Service runs enriched lookups with a per-user cooldown. Requests arriving
// inside the cooldown window are silently dropped.
type Service struct {
	searcher Searcher
	cooldown *cache.Cache
	interval time.Duration
}

func NewService(searcher Searcher, cfg coreconfig.EnrichmentConfig) *Service {
	interval := time.Duration(cfg.CooldownMS) * time.Millisecond
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Service{
		searcher: searcher,
		cooldown: cache.New(interval, time.Minute),
		interval: interval,
	}
}

// Allow reports whether the user may run an enriched query now and, when
// yes, starts their cooldown window.
func (s *Service) Allow(userID int64) bool {
	key := strconv.FormatInt(userID, 10)
	if _, held := s.cooldown.Get(key); held {
		return false
	}
	s.cooldown.Set(key, struct{}{}, s.interval)
	return true
}

// Answer builds the HTML reply for a query that missed the local catalog.
// ok is false when the request was dropped by the cooldown.
func (s *Service) Answer(ctx context.Context, userID int64, query string) (text string, ok bool) {
	if !s.Allow(userID) {
		logger.LogEvent(ctx, logger.SVCEnrich, slog.LevelDebug, "enrich.cooldown_drop",
			slog.Int64("user_id", userID))
		return "", false
	}

	alt := PickAlternative(query)

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		logger.LogEvent(ctx, logger.SVCEnrich, slog.LevelWarn, "enrich.search_failed",
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()))
		return withAlternative(unavailableMessage, alt), true
	}
	if len(results) == 0 {
		return withAlternative(missMessage, alt), true
	}

	title := results[0].Title
	if title == "" {
		title = query
	}
	logger.LogEvent(ctx, logger.SVCEnrich, slog.LevelInfo, "enrich.answered",
		slog.Int64("user_id", userID),
		slog.Int("results", len(results)))
	return buildAnswer(title, snippets(results), alt), true
}

// snippets takes the top three non-empty result snippets.
func snippets(results []SearchResult) []string {
	var facts []string
	for _, r := range results {
		if len(facts) == 3 {
			break
		}
		if s := strings.TrimSpace(r.Snippet); s != "" {
			facts = append(facts, s)
		}
	}
	return facts
}

// buildAnswer renders the summary plus the alternative pitch.
func buildAnswer(title string, facts []string, alt string) string {
	var b strings.Builder
	b.WriteString(format.Bold(title))
	b.WriteString(" — кратко\n")
	if len(facts) == 0 {
		b.WriteString("— Бренд: информация найдена, подробности на сайте производителя.")
	} else {
		for i, f := range facts {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("— ")
			b.WriteString(format.EscapeHTML(f))
		}
	}
	if alt != "" {
		b.WriteString("\n\n")
		b.WriteString(format.Bold("Наш аналог:"))
		b.WriteString(" ")
		b.WriteString(format.EscapeHTML(alt))
		if pitch := altPitches[alt]; len(pitch) > 0 {
			b.WriteString("\n")
			b.WriteString(format.Bold("Почему выгоднее:"))
			for _, p := range pitch {
				b.WriteString("\n— ")
				b.WriteString(format.EscapeHTML(p))
			}
		}
	}
	return b.String()
}

func withAlternative(msg, alt string) string {
	if alt == "" {
		return msg
	}
	return fmt.Sprintf("%s\n\n%s %s", msg, format.Bold("Наш аналог:"), format.EscapeHTML(alt))
}
