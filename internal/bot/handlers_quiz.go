package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"barbot/core/logger"
	"barbot/core/telegram/helpers"
	"barbot/core/telegram/keyboard"
	"barbot/core/telegram/state"
	"barbot/internal/quiz"
)

// gameStartHandler enters the mode for the set's kind with fresh progress
// and asks the first question.
func (a *App) gameStartHandler(setID string) tele.HandlerFunc {
	return func(c tele.Context) error {
		userID := c.Sender().ID
		progress, prompt, err := a.quiz.Start(setID)
		if err != nil {
			return err
		}
		a.fsm.Enter(userID, modeForKind(progress.Kind), progress)
		logger.Debug(helpers.BuildContext(c), "service.quiz", "quiz.start",
			slog.String("set", setID))
		return helpers.SendHTML(c, prompt.Text, optionsMenu(prompt.Options))
	}
}

// handleGameText processes one answer for any running game. The back label
// abandons the game without recording a result.
func (a *App) handleGameText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	if text == LabelBack {
		a.fsm.Clear(userID)
		return helpers.SendHTML(c, "Главное меню", mainMenu())
	}

	session := a.fsm.Get(userID)
	progress, ok := session.Payload.(quiz.Progress)
	if !ok {
		a.fsm.Clear(userID)
		return helpers.SendHTML(c, "Игра не найдена, начните заново.", mainMenu())
	}

	feedback, prompt, result, err := a.quiz.Answer(&progress, text)
	if err != nil {
		a.fsm.Clear(userID)
		return err
	}

	if err := helpers.SendText(c, feedback.Text); err != nil {
		return err
	}

	if result != nil {
		return a.finishGame(c, result)
	}

	a.fsm.Update(userID, func(s *state.Session) {
		s.Payload = progress
	})
	return helpers.SendHTML(c, prompt.Text, optionsMenu(prompt.Options))
}

// finishGame persists the result and clears the session. Persistence errors
// are logged; the summary always reaches the user.
func (a *App) finishGame(c tele.Context, result *quiz.Result) error {
	userID := c.Sender().ID
	ctx := helpers.BuildContext(c)

	if err := a.stats.RecordResult(ctx, profileOf(c), string(result.Kind), result.SetID, result.Score, result.Total); err != nil {
		logger.Error(ctx, "service.quiz", "quiz.persist_failed",
			slog.String("set", result.SetID),
			slog.String("err", err.Error()))
	}

	a.fsm.Clear(userID)
	if err := helpers.SendHTML(c, result.Summary+"\n"+result.Remark, keyboard.RemoveKeyboard()); err != nil {
		return err
	}
	return helpers.SendHTML(c, "Сыграем ещё?", mainMenu())
}
