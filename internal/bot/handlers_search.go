package bot

import (
	tele "gopkg.in/telebot.v4"

	"barbot/core/telegram/helpers"
	"barbot/core/telegram/keyboard"
	"barbot/internal/enrich"
)

func searchExitMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: "Выйти из AI-режима", Unique: "ai:exit"},
	})
}

func (a *App) handleSearchEnter(c tele.Context) error {
	a.fsm.Enter(c.Sender().ID, ModeSearch, nil)
	return helpers.SendHTML(c, enrich.EnterMessage, searchExitMarkup())
}

func (a *App) handleSearchExit(c tele.Context) error {
	a.fsm.Clear(c.Sender().ID)
	return helpers.SendHTML(c, enrich.ExitMessage, mainMenu())
}

func (a *App) handleSearchExitButton(c tele.Context) error {
	a.fsm.Clear(c.Sender().ID)
	return helpers.EditOrSendHTML(c, enrich.ExitMessage)
}

// handleSearchText answers search-mode queries: the local catalog first,
// the web-search collaborator on a miss. Requests inside the per-user
// cooldown are dropped without a reply.
func (a *App) handleSearchText(c tele.Context) error {
	text := c.Text()
	if text == LabelBack {
		return a.handleSearchExit(c)
	}

	if res := resolveQuery(a.catalog, text); res.Entry != nil {
		return a.sendBrandCard(c, res.Entry)
	} else if len(res.Suggestions) > 0 {
		return helpers.SendHTML(c, "Уточните, что вы имели в виду:", optionsMenu(res.Suggestions))
	}

	answer, ok := a.enrich.Answer(helpers.BuildContext(c), c.Sender().ID, text)
	if !ok {
		return nil
	}
	return helpers.SendHTML(c, answer, searchExitMarkup())
}
