package bot

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"barbot/core/logger"
	"barbot/core/telegram/helpers"
	"barbot/internal/catalog"
)

const welcomeText = "Привет! Я подскажу состав, вкус и подачу по каждому бренду.\nВыбирай категорию:"

func (a *App) handleStart(c tele.Context) error {
	a.fsm.Clear(c.Sender().ID)
	return helpers.SendHTML(c, welcomeText, mainMenu())
}

// handleBack leaves whatever the user was doing and shows the main menu.
func (a *App) handleBack(c tele.Context) error {
	a.fsm.Clear(c.Sender().ID)
	return helpers.SendHTML(c, "Главное меню", mainMenu())
}

func (a *App) handleTestsMenu(c tele.Context) error {
	return helpers.SendHTML(c, "Выберите категорию:", testsMenu())
}

func (a *App) categoryHandler(category catalog.Category) tele.HandlerFunc {
	return func(c tele.Context) error {
		return helpers.SendHTML(c, "Выберите бренд:", categoryMenu(a.catalog, category))
	}
}

func (a *App) brandByNameHandler(name string) tele.HandlerFunc {
	return func(c tele.Context) error {
		entry, ok := a.catalog.Get(name)
		if !ok {
			return helpers.SendHTML(c, "Карточка бренда не найдена.", mainMenu())
		}
		return a.sendBrandCard(c, &entry)
	}
}

// sendBrandCard delivers the card and records the view. A failed stats
// write is logged and never blocks the reply.
func (a *App) sendBrandCard(c tele.Context, entry *catalog.BrandEntry) error {
	ctx := helpers.BuildContext(c)
	if err := a.stats.RecordView(ctx, profileOf(c), string(entry.Category), entry.Name); err != nil {
		logger.Error(ctx, "service.stats", "stats.view_failed",
			slog.String("brand", entry.Name),
			slog.String("err", err.Error()))
	}

	if entry.PhotoID == "" {
		return helpers.SendHTML(c, entry.Caption)
	}
	return helpers.SendPhotoHTML(c, entry.PhotoID, entry.Caption)
}

// handleContact stores the shared phone so admins can look users up by it.
func (a *App) handleContact(c tele.Context) error {
	contact := c.Message().Contact
	if contact == nil || contact.PhoneNumber == "" {
		return nil
	}
	ctx := helpers.BuildContext(c)
	if err := a.stats.SetPhone(ctx, profileOf(c), contact.PhoneNumber); err != nil {
		logger.Error(ctx, "service.stats", "stats.phone_failed",
			slog.String("err", err.Error()))
		return nil
	}
	return helpers.SendText(c, "Номер сохранён.")
}
