package bot

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"

	"barbot/core/telegram/format"
	"barbot/core/telegram/helpers"
	"barbot/internal/stats"
)

// handleTop renders a leaderboard: /top [набор] [N]. The set defaults to
// the whisky test, N to 10.
func (a *App) handleTop(c tele.Context) error {
	args := c.Args()
	setID := "whisky"
	limit := 10
	if len(args) > 0 {
		setID = strings.ToLower(strings.TrimSpace(args[0]))
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			limit = n
		}
	}

	set, ok := a.quiz.Set(setID)
	if !ok {
		return helpers.SendHTML(c, "Нет такого набора. Доступны: jager, whisky, vodka, beer, wine, truth, assoc, blitz.")
	}

	top, err := a.stats.Top(helpers.BuildContext(c), string(set.Kind), set.ID, limit)
	if err != nil {
		return err
	}
	if len(top) == 0 {
		return helpers.SendHTML(c, "Пока никто не сыграл в "+format.Bold(set.Title)+".")
	}

	var b strings.Builder
	b.WriteString(format.Bold("Топ — " + set.Title))
	b.WriteString("\n")
	medals := []string{"🥇", "🥈", "🥉"}
	key := stats.BestKey(string(set.Kind), set.ID)
	for i, u := range top {
		place := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			place = medals[i]
		}
		b.WriteString(fmt.Sprintf("%s %s — %d/%d\n",
			place, format.EscapeHTML(displayName(u)), u.BestScores[key], len(set.Questions)))
	}
	return helpers.SendHTML(c, b.String())
}

// handleFindUser switches the admin into lookup mode.
func (a *App) handleFindUser(c tele.Context) error {
	a.fsm.Enter(c.Sender().ID, ModeAdminLookup, nil)
	return helpers.SendHTML(c, "Отправьте ID, @username, имя или телефон пользователя.\nКнопка «Назад» — выход.",
		optionsMenu(nil))
}

// handleAdminLookupText resolves one lookup query per message. Several name
// matches are listed so the admin can resend the exact id.
func (a *App) handleAdminLookupText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if text == LabelBack {
		return a.handleBack(c)
	}

	ctx := helpers.BuildContext(c)

	if id, err := strconv.ParseInt(text, 10, 64); err == nil {
		stat, err := a.stats.GetUserByTelegramID(ctx, id)
		if errors.Is(err, stats.ErrNotFound) {
			return helpers.SendHTML(c, "Пользователь с таким ID не найден.")
		}
		if err != nil {
			return err
		}
		return helpers.SendHTML(c, renderUserStat(stat))
	}

	if strings.HasPrefix(text, "+") {
		stat, err := a.stats.FindByPhone(ctx, text)
		if errors.Is(err, stats.ErrNotFound) {
			return helpers.SendHTML(c, "Пользователь с таким телефоном не найден.")
		}
		if err != nil {
			return err
		}
		return helpers.SendHTML(c, renderUserStat(stat))
	}

	matches, err := a.stats.FindByName(ctx, strings.TrimPrefix(text, "@"))
	if err != nil {
		return err
	}
	switch len(matches) {
	case 0:
		return helpers.SendHTML(c, "Никого не нашёл. Попробуйте другой запрос.")
	case 1:
		return helpers.SendHTML(c, renderUserStat(&matches[0]))
	default:
		var b strings.Builder
		b.WriteString("Найдено несколько, отправьте ID нужного:\n")
		for _, m := range matches {
			b.WriteString(fmt.Sprintf("• %s — %s\n",
				format.Code(strconv.FormatInt(m.TelegramID, 10)),
				format.EscapeHTML(displayName(m))))
		}
		return helpers.SendHTML(c, b.String())
	}
}

func displayName(u stats.UserStat) string {
	if u.Username != "" {
		return "@" + u.Username
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return strconv.FormatInt(u.TelegramID, 10)
}

func renderUserStat(u *stats.UserStat) string {
	var b strings.Builder
	b.WriteString(format.Bold(displayName(*u)))
	b.WriteString(fmt.Sprintf("\nID: %s", format.Code(strconv.FormatInt(u.TelegramID, 10))))
	if u.Phone != "" {
		b.WriteString("\nТелефон: " + format.EscapeHTML(u.Phone))
	}
	b.WriteString(fmt.Sprintf("\nИгр сыграно: %d", u.TestsCompleted))
	b.WriteString(fmt.Sprintf("\nОчков всего: %d", u.TotalPoints))
	b.WriteString(fmt.Sprintf("\nКарточек просмотрено: %d", len(u.ViewedBrands)))

	if len(u.BestScores) > 0 {
		keys := make([]string, 0, len(u.BestScores))
		for k := range u.BestScores {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("\nЛучшие результаты:")
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\n• %s — %d", format.EscapeHTML(k), u.BestScores[k]))
		}
	}
	if !u.LastActivity.IsZero() {
		b.WriteString("\nПоследняя активность: " + u.LastActivity.Format("02.01.2006 15:04"))
	}
	return b.String()
}
