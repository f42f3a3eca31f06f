package bot

import (
	tele "gopkg.in/telebot.v4"

	"barbot/core/telegram/keyboard"
	"barbot/internal/catalog"
	"barbot/internal/quiz"
)

// Menu button labels. Brand buttons come from the catalog; everything else
// is fixed here.
const (
	LabelWhisky    = "🥃 Виски"
	LabelVodka     = "🧊 Водка"
	LabelBeer      = "🍺 Пиво"
	LabelWine      = "🍷 Вино"
	LabelTests     = "📋 Тесты"
	LabelCocktails = "🍹 Коктейли"
	LabelJager     = "🦌 Ягермейстер"
	LabelBack      = "Назад"

	LabelTestJager  = "Тест: Jägermeister"
	LabelTestWhisky = "Тест: Виски"
	LabelTestVodka  = "Тест: Водка"
	LabelTestBeer   = "Тест: Пиво"
	LabelTestWine   = "Тест: Вино"
	LabelGameTruth  = "Правда или миф"
	LabelGameAssoc  = "Ассоциации"
	LabelGameBlitz  = "Блиц"
)

var categoryLabels = map[string]catalog.Category{
	LabelWhisky:    catalog.CategoryWhisky,
	LabelVodka:     catalog.CategoryVodka,
	LabelBeer:      catalog.CategoryBeer,
	LabelWine:      catalog.CategoryWine,
	LabelCocktails: catalog.CategoryCocktails,
}

// testLabels maps test-menu buttons to question sets.
var testLabels = map[string]string{
	LabelTestJager:  quiz.SetJager,
	LabelTestWhisky: quiz.SetWhisky,
	LabelTestVodka:  quiz.SetVodka,
	LabelTestBeer:   quiz.SetBeer,
	LabelTestWine:   quiz.SetWine,
	LabelGameTruth:  quiz.SetTruth,
	LabelGameAssoc:  quiz.SetAssoc,
	LabelGameBlitz:  quiz.SetBlitz,
}

func mainMenu() *tele.ReplyMarkup {
	return keyboard.ReplyLabels([]string{
		LabelWhisky, LabelVodka,
		LabelBeer, LabelWine,
		LabelTests, LabelCocktails,
		LabelJager,
	}, 2)
}

func categoryMenu(cat *catalog.Catalog, category catalog.Category) *tele.ReplyMarkup {
	labels := append(cat.Labels(category), LabelBack)
	return keyboard.ReplyLabels(labels, 2)
}

func testsMenu() *tele.ReplyMarkup {
	return keyboard.ReplyLabels([]string{
		LabelTestJager, LabelTestWhisky,
		LabelTestVodka, LabelTestBeer,
		LabelTestWine, LabelGameTruth,
		LabelGameAssoc, LabelGameBlitz,
		LabelBack,
	}, 2)
}

func optionsMenu(options []string) *tele.ReplyMarkup {
	return keyboard.ReplyLabels(append(options, LabelBack), 1)
}
