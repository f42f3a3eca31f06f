package enrich

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "barbot/core/config"
)

type stubSearcher struct {
	results []SearchResult
	err     error
	calls   int
}

func (s *stubSearcher) Search(_ context.Context, _ string) ([]SearchResult, error) {
	s.calls++
	return s.results, s.err
}

func newService(s Searcher) *Service {
	return NewService(s, coreconfig.EnrichmentConfig{CooldownMS: 2000})
}

func TestPickAlternative(t *testing.T) {
	assert.Equal(t, "Monkey Shoulder", PickAlternative("что такое Dewar's?"))
	assert.Equal(t, "Grant’s", PickAlternative("Johnnie Walker Red Label"))
	assert.Equal(t, "Tullamore D.E.W.", PickAlternative("джемесон или jameson"))
	assert.Equal(t, "", PickAlternative("просто вопрос про пиво"))
	assert.Equal(t, "", PickAlternative(""))
}

func TestAnswerSummarizesResults(t *testing.T) {
	stub := &stubSearcher{results: []SearchResult{
		{Title: "Dewar's White Label", Snippet: "Купажированный шотландский виски."},
		{Title: "second", Snippet: "Выдержка и состав."},
		{Title: "third", Snippet: ""},
		{Title: "fourth", Snippet: "Четвёртый не попадает."},
	}}
	svc := newService(stub)

	text, ok := svc.Answer(context.Background(), 1, "dewars")
	require.True(t, ok)
	assert.Contains(t, text, "<b>Dewar's White Label</b> — кратко")
	assert.Contains(t, text, "— Купажированный шотландский виски.")
	assert.Contains(t, text, "— Выдержка и состав.")
	assert.Contains(t, text, "<b>Наш аналог:</b> Monkey Shoulder")
	assert.Contains(t, text, "<b>Почему выгоднее:</b>")
	assert.Contains(t, text, "100% солодовые (не купаж с зерновыми)")
}

func TestAnswerCooldownDropsSilently(t *testing.T) {
	stub := &stubSearcher{results: []SearchResult{{Title: "x", Snippet: "y"}}}
	svc := newService(stub)

	_, ok := svc.Answer(context.Background(), 5, "первый")
	require.True(t, ok)
	text, ok := svc.Answer(context.Background(), 5, "второй сразу же")
	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Equal(t, 1, stub.calls)

	// A different user is not affected.
	_, ok = svc.Answer(context.Background(), 6, "другой пользователь")
	assert.True(t, ok)
}

func TestAnswerSearchFailure(t *testing.T) {
	svc := newService(&stubSearcher{err: errors.New("boom")})

	text, ok := svc.Answer(context.Background(), 2, "chivas regal")
	require.True(t, ok)
	assert.Contains(t, text, "Онлайн-поиск сейчас недоступен.")
	assert.Contains(t, text, "<b>Наш аналог:</b> Glenfiddich 12")
}

func TestAnswerNoAPIKey(t *testing.T) {
	svc := NewService(NewWebSearcher(coreconfig.EnrichmentConfig{}, nil), coreconfig.EnrichmentConfig{CooldownMS: 1})

	text, ok := svc.Answer(context.Background(), 3, "ballantines")
	require.True(t, ok)
	assert.Contains(t, text, "Онлайн-поиск сейчас недоступен.")
	assert.Contains(t, text, "Grant’s")
}

func TestAnswerEmptyResults(t *testing.T) {
	svc := newService(&stubSearcher{})

	text, ok := svc.Answer(context.Background(), 4, "неизвестный бренд")
	require.True(t, ok)
	assert.Contains(t, text, "Не нашёл точной информации.")
	assert.NotContains(t, text, "Наш аналог")
}
