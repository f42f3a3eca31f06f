package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNames = []string{
	"Monkey Shoulder", "Jägermeister", "Reyka", "Blue Moon",
	"Mateus Original Rosé", "London Pride", "Paulaner", "Finlandia",
}

func newTestEngine() *Engine {
	return NewEngine(DefaultSets(), testNames, rand.New(rand.NewSource(1)))
}

func TestStartResetsProgress(t *testing.T) {
	e := newTestEngine()

	p, prompt, err := e.Start(SetWhisky)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Step)
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, KindTest, p.Kind)
	assert.Equal(t, "Glenfiddich, Balvenie, Kininvie", p.Expected)
	assert.Equal(t, 1, prompt.Step)
	assert.Contains(t, prompt.Text, "Вопрос 1:")
	assert.ElementsMatch(t,
		[]string{"Glenfiddich, Balvenie, Kininvie", "Tullamore, Glen Grant", "Jack Daniel’s, Glenkinchie"},
		prompt.Options)
}

func TestStartUnknownSet(t *testing.T) {
	e := newTestEngine()
	_, _, err := e.Start("nope")
	assert.ErrorIs(t, err, ErrUnknownSet)
}

func TestAnswerFeedback(t *testing.T) {
	e := newTestEngine()
	p, _, err := e.Start(SetJager)
	require.NoError(t, err)

	fb, next, res, err := e.Answer(&p, "56")
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.Equal(t, "✅ Верно!", fb.Text)
	assert.Equal(t, 1, p.Score)
	require.NotNil(t, next)
	assert.Nil(t, res)
	assert.Equal(t, 2, next.Step)

	fb, _, _, err = e.Answer(&p, "Франция")
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, "❌ Неверно. Правильный ответ: Германия", fb.Text)
	assert.Equal(t, 1, p.Score)
}

func TestFinishExactlyOnce(t *testing.T) {
	e := newTestEngine()
	p, _, err := e.Start(SetVodka)
	require.NoError(t, err)

	var finishes int
	for i := 0; i < 10; i++ {
		_, next, res, err := e.Answer(&p, p.Expected)
		require.NoError(t, err)
		if res != nil {
			finishes++
			assert.Nil(t, next)
		}
	}
	assert.Equal(t, 1, finishes)

	_, _, _, err = e.Answer(&p, "что угодно")
	assert.ErrorIs(t, err, ErrNotRunning)
}

func TestDecentBandSixOfTen(t *testing.T) {
	e := newTestEngine()
	p, _, err := e.Start(SetBeer)
	require.NoError(t, err)

	var res *Result
	for i := 0; i < 10; i++ {
		answer := p.Expected
		if i >= 6 {
			answer = "мимо"
		}
		_, _, res, err = e.Answer(&p, answer)
		require.NoError(t, err)
	}
	require.NotNil(t, res)
	assert.Equal(t, 6, res.Score)
	assert.Equal(t, 10, res.Total)
	assert.Equal(t, "Готово! Правильных ответов: 6/10", res.Summary)
	assert.Equal(t, "🙂 Уже неплохо!", res.Remark)
}

func TestRemarkBands(t *testing.T) {
	assert.Equal(t, "😕 Нужно подтянуть знания", remarkFor(KindTest, 0))
	assert.Equal(t, "😕 Нужно подтянуть знания", remarkFor(KindTest, 3))
	assert.Equal(t, "🙂 Уже неплохо!", remarkFor(KindTest, 4))
	assert.Equal(t, "👍 Отличный результат!", remarkFor(KindTest, 9))
	assert.Equal(t, "🏆 Ты — эксперт!", remarkFor(KindTest, 10))
	assert.Equal(t, "🏆 Ты — эксперт!", remarkFor(KindTruth, 8))
	assert.Equal(t, "🏆 Ты — эксперт!", remarkFor(KindBlitz, 12))
}

func TestAssociationOptions(t *testing.T) {
	e := newTestEngine()

	for run := 0; run < 20; run++ {
		p, prompt, err := e.Start(SetAssoc)
		require.NoError(t, err)

		require.Len(t, prompt.Options, 4)
		assert.Contains(t, prompt.Options, p.Expected)
		seen := map[string]bool{}
		for _, o := range prompt.Options {
			assert.False(t, seen[o], "duplicate option %q", o)
			seen[o] = true
		}
	}
}

func TestAssociationOptionsPerStep(t *testing.T) {
	e := newTestEngine()
	p, _, err := e.Start(SetAssoc)
	require.NoError(t, err)

	for {
		_, next, res, err := e.Answer(&p, p.Expected)
		require.NoError(t, err)
		if res != nil {
			assert.Equal(t, len(assocSet.Questions), res.Score)
			break
		}
		require.Len(t, next.Options, 4)
		assert.Contains(t, next.Options, p.Expected)
	}
}
