package quiz

// Built-in question sets. Category tests are ten questions each; the
// true/false, association and blitz games are shorter and use their own
// remark thresholds.

const (
	SetJager  = "jager"
	SetWhisky = "whisky"
	SetVodka  = "vodka"
	SetBeer   = "beer"
	SetWine   = "wine"
	SetTruth  = "truth"
	SetAssoc  = "assoc"
	SetBlitz  = "blitz"
)

// DefaultSets returns every built-in set.
func DefaultSets() []Set {
	return []Set{
		jagerSet, whiskySet, vodkaSet, beerSet, wineSet,
		truthSet, assocSet, blitzSet,
	}
}

var jagerSet = Set{
	ID: SetJager, Kind: KindTest, Title: "Тест: Jägermeister",
	Questions: []Question{
		{"Сколько трав входит в состав Jägermeister?", []string{"56", "27", "12", "🤫 Секрет"}, "56"},
		{"Из какой страны Jägermeister?", []string{"Германия", "Австрия", "Швейцария", "Польша"}, "Германия"},
		{"Какой цвет имеет Jägermeister?", []string{"Тёмно-коричневый", "Прозрачный", "Золотистый", "Красный"}, "Тёмно-коричневый"},
		{"Как правильно подавать Jägermeister?", []string{"Охлаждённым", "Тёплым", "С лимоном", "С содовой"}, "Охлаждённым"},
		{"Крепость Jägermeister?", []string{"35%", "40%", "38%", "30%"}, "35%"},
		{"Что изображено на логотипе Jägermeister?", []string{"Олень с крестом", "Медведь", "Трава", "Волк"}, "Олень с крестом"},
		{"Где чаще всего используют Jägermeister?", []string{"Шоты", "Вино", "Пиво", "Пюре"}, "Шоты"},
		{"Один из вкусов Jägermeister:", []string{"Горький, травяной", "Карамельный", "Цитрусовый", "Медовый"}, "Горький, травяной"},
		{"Как долго настаивается Jägermeister?", []string{"12 мес.", "6 мес.", "2 недели", "1 год"}, "12 мес."},
		{"Какая подача Jägermeister считается классической?", []string{"Замороженный шот", "Со льдом", "С тоником", "С пивом"}, "Замороженный шот"},
	},
}

var whiskySet = Set{
	ID: SetWhisky, Kind: KindTest, Title: "Тест: Виски",
	Questions: []Question{
		{"Какие солодовые виски входят в Monkey Shoulder?", []string{"Glenfiddich, Balvenie, Kininvie", "Tullamore, Glen Grant", "Jack Daniel’s, Glenkinchie"}, "Glenfiddich, Balvenie, Kininvie"},
		{"Где производится Glenfiddich 12?", []string{"Спейсайд", "Айла", "Кэмпбелтаун"}, "Спейсайд"},
		{"Вкус Grant's Summer Orange:", []string{"Апельсиновый ликёр", "Мёд", "Карамель"}, "Апельсиновый ликёр"},
		{"Аромат Tullamore Honey:", []string{"Мёд, ваниль, цветы", "Торф", "Кофе, шоколад"}, "Мёд, ваниль, цветы"},
		{"Крепость Jack Daniel’s Honey:", []string{"35%", "40%", "43%"}, "35%"},
		{"Вкус Aerstone Sea Cask:", []string{"Морской солоноватый", "Карамель", "Фруктовый"}, "Морской солоноватый"},
		{"Сколько лет выдержка Glenfiddich 12?", []string{"12", "10", "14"}, "12"},
		{"Grant’s Tropical Fiesta — это:", []string{"Тропический фруктовый вкус", "Торф", "Имбирь"}, "Тропический фруктовый вкус"},
		{"Производитель Tullamore D.E.W.:", []string{"Ирландия", "Шотландия", "США"}, "Ирландия"},
		{"Monkey Shoulder лучше всего для:", []string{"Коктейлей", "Чистого пития", "Фляг"}, "Коктейлей"},
	},
}

var vodkaSet = Set{
	ID: SetVodka, Kind: KindTest, Title: "Тест: Водка",
	Questions: []Question{
		{"Страна происхождения Reyka:", []string{"Исландия", "Россия", "Казахстан"}, "Исландия"},
		{"Фильтрация Серебрянки:", []string{"Через серебро", "Через уголь", "Без фильтрации"}, "Через серебро"},
		{"Форматы выпуска Серебрянки:", []string{"0.5 и 0.7 л", "1.0 л", "Только 0.5 л"}, "0.5 и 0.7 л"},
		{"Особенность Finlandia:", []string{"Ледниковая вода", "Цитрус", "Травы"}, "Ледниковая вода"},
		{"Вкус Reyka:", []string{"Гладкий, слегка сладкий", "Горький", "Кислый"}, "Гладкий, слегка сладкий"},
		{"Крепость большинства водок:", []string{"40%", "35%", "45%"}, "40%"},
		{"Зелёная марка — это:", []string{"Российская классическая водка", "Американская", "Финская"}, "Российская классическая водка"},
		{"Что делает Талка особенной?", []string{"Талая вода", "Фрукты", "Травы"}, "Талая вода"},
		{"Происхождение Русский Стандарт:", []string{"Санкт-Петербург", "Москва", "Новосибирск"}, "Санкт-Петербург"},
		{"Рекомендуется подавать водку:", []string{"Охлаждённой", "Тёплой", "С лимоном"}, "Охлаждённой"},
	},
}

var beerSet = Set{
	ID: SetBeer, Kind: KindTest, Title: "Тест: Пиво",
	Questions: []Question{
		{"Какой стиль у Paulaner Weissbier?", []string{"Пшеничное нефильтрованное", "Лагер", "Портер", "Стаут"}, "Пшеничное нефильтрованное"},
		{"Откуда родом Paulaner?", []string{"Германия", "Бельгия", "США", "Чехия"}, "Германия"},
		{"Особенность вкуса Blue Moon:", []string{"Цедра апельсина и кориандр", "Горький хмель", "Шоколад", "Мёд"}, "Цедра апельсина и кориандр"},
		{"Страна происхождения London Pride:", []string{"Англия", "Шотландия", "Ирландия", "США"}, "Англия"},
		{"Стиль Coors Light:", []string{"Лёгкий лагер", "IPA", "Портер", "Сидр"}, "Лёгкий лагер"},
		{"Какой стиль у Staropramen?", []string{"Чешский лагер", "Бельгийский эль", "Стаут", "Кислое пиво"}, "Чешский лагер"},
		{"Paulaner хорошо сочетается с:", []string{"Колбасками и мягким сыром", "Суши", "Десертами", "Молочными коктейлями"}, "Колбасками и мягким сыром"},
		{"Как подавать Blue Moon?", []string{"С долькой апельсина", "С лаймом", "С мятой", "Без ничего"}, "С долькой апельсина"},
		{"Где производится Coors?", []string{"США", "Канада", "Англия", "Франция"}, "США"},
		{"Staropramen — это пиво из:", []string{"Чехии", "Германии", "Италии", "Испании"}, "Чехии"},
	},
}

var wineSet = Set{
	ID: SetWine, Kind: KindTest, Title: "Тест: Вино",
	Questions: []Question{
		{"Mateus Original Rosé — это:", []string{"Португальское розовое полусухое", "Красное сухое", "Игристое", "Белое сладкое"}, "Португальское розовое полусухое"},
		{"Undurraga Sauvignon Blanc — страна:", []string{"Чили", "Аргентина", "Франция", "Португалия"}, "Чили"},
		{"Devil’s Rock Riesling — стиль вина:", []string{"Белое полусладкое", "Красное сухое", "Розовое сухое", "Игристое"}, "Белое полусладкое"},
		{"Piccola Nostra — это вино:", []string{"Итальянское полусладкое", "Французское сухое", "Испанское игристое", "Немецкое белое"}, "Итальянское полусладкое"},
		{"El Sanchez — это:", []string{"Испанское полусладкое", "Французское игристое", "Чилийское сухое", "Португальское красное"}, "Испанское полусладкое"},
		{"Chalet des Sud — это:", []string{"Французское полусладкое", "Аргентинское красное", "Итальянское игристое", "Немецкое сладкое"}, "Французское полусладкое"},
		{"К какому блюду подходит Mateus Rosé?", []string{"Салаты, лёгкие закуски", "Стейки", "Пицца", "Шоколад"}, "Салаты, лёгкие закуски"},
		{"С чем хорошо сочетается Riesling?", []string{"Фрукты и морепродукты", "Бургеры", "Говядина", "Шашлык"}, "Фрукты и морепродукты"},
		{"Типичный аромат Sauvignon Blanc:", []string{"Цитрус и трава", "Кофе", "Дуб", "Ваниль"}, "Цитрус и трава"},
		{"El Sanchez подойдёт для:", []string{"Фруктовых закусок", "Жареного мяса", "Пельменей", "Пиццы"}, "Фруктовых закусок"},
	},
}

const (
	TruthYes = "Правда"
	TruthNo  = "Миф"
)

var truthSet = Set{
	ID: SetTruth, Kind: KindTruth, Title: "Правда или миф",
	Questions: []Question{
		{"Jägermeister настаивается на 56 травах.", []string{TruthYes, TruthNo}, TruthYes},
		{"Monkey Shoulder — односолодовый виски.", []string{TruthYes, TruthNo}, TruthNo},
		{"Reyka фильтруется через вулканическую лаву.", []string{TruthYes, TruthNo}, TruthYes},
		{"Blue Moon варится с добавлением лимонной цедры.", []string{TruthYes, TruthNo}, TruthNo},
		{"Tullamore D.E.W. — шотландский виски.", []string{TruthYes, TruthNo}, TruthNo},
		{"Glenfiddich переводится как «долина оленей».", []string{TruthYes, TruthNo}, TruthYes},
		{"Staropramen варится в Праге с 1869 года.", []string{TruthYes, TruthNo}, TruthYes},
		{"Mateus Rosé — игристое вино из Испании.", []string{TruthYes, TruthNo}, TruthNo},
	},
}

// Association questions carry no options: the engine draws three distractor
// brands at ask time. Answers must be canonical catalog names.
var assocSet = Set{
	ID: SetAssoc, Kind: KindAssoc, Title: "Ассоциации",
	Questions: []Question{
		{"Три медные обезьяны на бутылке.", nil, "Monkey Shoulder"},
		{"Олень с сияющим крестом между рогами.", nil, "Jägermeister"},
		{"Исландская родниковая вода и лавовая фильтрация.", nil, "Reyka"},
		{"Подаётся с долькой апельсина.", nil, "Blue Moon"},
		{"Пузатая португальская бутылка розового.", nil, "Mateus Original Rosé"},
		{"Истинный вкус лондонских пабов.", nil, "London Pride"},
	},
}

var blitzSet = Set{
	ID: SetBlitz, Kind: KindBlitz, Title: "Блиц",
	Questions: []Question{
		{"Крепость Jägermeister?", []string{"35%", "40%"}, "35%"},
		{"Glenfiddich 12 — регион?", []string{"Спейсайд", "Айла"}, "Спейсайд"},
		{"Finlandia — страна?", []string{"Финляндия", "Швеция"}, "Финляндия"},
		{"Paulaner — город?", []string{"Мюнхен", "Берлин"}, "Мюнхен"},
		{"Tullamore D.E.W. — страна?", []string{"Ирландия", "Шотландия"}, "Ирландия"},
		{"Coors — стиль?", []string{"Лагер", "Стаут"}, "Лагер"},
		{"Undurraga — страна?", []string{"Чили", "Аргентина"}, "Чили"},
		{"Русский Стандарт — город?", []string{"Санкт-Петербург", "Москва"}, "Санкт-Петербург"},
		{"Riesling — сорт винограда?", []string{"Да", "Нет"}, "Да"},
		{"Grant’s Summer Orange — крепость?", []string{"35%", "40%"}, "35%"},
		{"Blue Moon — пшеничное?", []string{"Да", "Нет"}, "Да"},
		{"Jägerbomb — с энергетиком?", []string{"Да", "Нет"}, "Да"},
	},
}
