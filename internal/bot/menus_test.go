package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barbot/internal/catalog"
	"barbot/internal/quiz"
	"barbot/internal/stats"
)

func TestMainMenuLayout(t *testing.T) {
	markup := mainMenu()
	require.Len(t, markup.ReplyKeyboard, 4)
	assert.Equal(t, LabelWhisky, markup.ReplyKeyboard[0][0].Text)
	assert.Equal(t, LabelVodka, markup.ReplyKeyboard[0][1].Text)
	assert.Equal(t, LabelJager, markup.ReplyKeyboard[3][0].Text)
	assert.True(t, markup.ResizeKeyboard)
}

func TestCategoryMenuEndsWithBack(t *testing.T) {
	cat := catalog.Default()
	markup := categoryMenu(cat, catalog.CategoryVodka)

	var labels []string
	for _, row := range markup.ReplyKeyboard {
		for _, btn := range row {
			labels = append(labels, btn.Text)
		}
	}
	require.Len(t, labels, 7)
	assert.Equal(t, "Серебрянка", labels[0])
	assert.Equal(t, LabelBack, labels[6])
}

func TestTestLabelsCoverAllSets(t *testing.T) {
	engine := quiz.NewEngine(quiz.DefaultSets(), catalog.Default().Names(), nil)
	for label, setID := range testLabels {
		_, ok := engine.Set(setID)
		assert.True(t, ok, "label %q points at missing set %q", label, setID)
	}
	assert.Len(t, testLabels, len(quiz.DefaultSets()))
}

func TestModeForKind(t *testing.T) {
	assert.Equal(t, ModeQuiz, modeForKind(quiz.KindTest))
	assert.Equal(t, ModeTruth, modeForKind(quiz.KindTruth))
	assert.Equal(t, ModeAssoc, modeForKind(quiz.KindAssoc))
	assert.Equal(t, ModeBlitz, modeForKind(quiz.KindBlitz))
	assert.Equal(t, ModeQuiz, modeForKind(quiz.Kind("unknown")))
}

func TestRenderUserStat(t *testing.T) {
	u := &stats.UserStat{
		TelegramID:     42,
		Username:       "barman",
		TestsCompleted: 3,
		TotalPoints:    21,
		BestScores:     stats.ScoreMap{"test:whisky": 8, "blitz:blitz": 10},
		ViewedBrands:   stats.StringSet{"whisky|Monkey Shoulder": true},
		LastActivity:   time.Date(2026, 8, 30, 18, 30, 0, 0, time.UTC),
	}

	got := renderUserStat(u)
	assert.Contains(t, got, "<b>@barman</b>")
	assert.Contains(t, got, "<code>42</code>")
	assert.Contains(t, got, "Игр сыграно: 3")
	assert.Contains(t, got, "• blitz:blitz — 10")
	assert.Contains(t, got, "• test:whisky — 8")
	assert.Contains(t, got, "30.08.2026 18:30")
}

func TestDisplayNameFallbacks(t *testing.T) {
	assert.Equal(t, "@u", displayName(stats.UserStat{TelegramID: 1, Username: "u", DisplayName: "n"}))
	assert.Equal(t, "n", displayName(stats.UserStat{TelegramID: 1, DisplayName: "n"}))
	assert.Equal(t, "1", displayName(stats.UserStat{TelegramID: 1}))
}
