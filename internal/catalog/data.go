package catalog

// Default returns the built-in brand catalog. Captions are Telegram HTML,
// photo ids are pre-uploaded Telegram file ids. Alias lists carry Cyrillic
// transliterations and common partial spellings.
func Default() *Catalog {
	return New(defaultEntries)
}

var defaultEntries = []BrandEntry{
	// Whisky
	{
		Name:     "Monkey Shoulder",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG1Gg4mSjJixcbMGy0c8I78DrLN9OpAAJe7jEbCVnJSTfCOMW8hxrQAQADAgADeAADNgQ",
		Caption: "<b>Monkey Shoulder</b>\n" +
			"• Купажированный шотландский виски от William Grant &amp; Sons\n" +
			"• Состоит из солодов Glenfiddich, Balvenie и Kininvie\n" +
			"• Название отсылает к травме плеча у солодовщиков\n" +
			"• Яркий ванильно-медовый аромат с нотами цитруса\n" +
			"• Вкус: тёплая карамель, специи, тосты\n" +
			"• Бархатистый и мягкий, идеально сбалансирован\n" +
			"• Крепость: 40 % ABV\n" +
			"• Идеален для коктейлей: Old Fashioned, Whisky Sour\n" +
			"• Три медные обезьяны на бутылке — символ тройного бленда",
		Aliases: []string{"манки шолдер", "манки", "монки шолдер", "мэнки шолдер", "monkey"},
	},
	{
		Name:     "Glenfiddich 12 Years",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG2Gg4ncf9Rpxv9rooJ0Ha2FD40CORAAK_8jEbPObJSR3uT8xKG0UpAQADAgADeQADNgQ",
		Caption: "<b>Glenfiddich 12 Years Old</b>\n" +
			"• Односолодовый шотландский виски из региона Спейсайд\n" +
			"• Аромат: груша, дуб, свежесть\n" +
			"• Вкус: зелёные яблоки, ваниль, лёгкий дуб\n" +
			"• Выдержан минимум 12 лет в бочках из-под бурбона и хереса\n" +
			"• Производится на самой продаваемой винокурне в мире\n" +
			"• Символ — олень на эмблеме (в переводе: «долина оленей»)\n" +
			"• Крепость: 40 % ABV\n" +
			"• Идеален для знакомства с миром односолодовых виски\n" +
			"• Отлично подойдёт как в чистом виде, так и со льдом",
		Aliases: []string{"гленфиддик", "гленфиддик 12", "гленфидик", "glenfiddich"},
	},
	{
		Name:     "Fire & Cane",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG2mg4ncuOjEqivJgv27H62zK4XOvFAAIK9TEb1P3ISXHpOhsLyQ4DAQADAgADeQADNgQ",
		Caption: "<b>Glenfiddich Fire &amp; Cane</b>\n" +
			"• Экспериментальная линейка от Glenfiddich\n" +
			"• Купажированный односолодовый виски с торфяным дымком\n" +
			"• Аромат: сладкий дым, дуб, зелёное яблоко\n" +
			"• Вкус: карамель, специи, жареный сахар, дым\n" +
			"• Финиш: насыщенный, с оттенками костра и специй\n" +
			"• Выдержка в бочках из-под бурбона и рома из Латинской Америки\n" +
			"• Отличное сочетание сладости и торфа\n" +
			"• Крепость: 43 % ABV\n" +
			"• Подходит тем, кто хочет попробовать «дым» впервые\n" +
			"• Подчёркивает инновации Glenfiddich",
		Aliases: []string{"файр энд кейн", "фаер кейн", "fire and cane"},
	},
	{
		Name:     "IPA Experiment",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG52g4npbaJO1p_0s7aVNpQ5_r9nkEAAIT9TEb1P3ISRjGBYkQaU3hAQADAgADeQADNgQ",
		Caption: "<b>Glenfiddich IPA Experiment</b>\n" +
			"• Первая в мире коллаборация виски и крафтового IPA-пива\n" +
			"• Выдержан в бочках из-под индийского светлого эля\n" +
			"• Аромат: хмель, свежие травы, яблоко, груша\n" +
			"• Вкус: ваниль, зелёные яблоки, цитрусы, хмелевая горчинка\n" +
			"• Экспериментальный и освежающий профиль\n" +
			"• Отлично подойдёт для пивных любителей, начинающих знакомство с виски\n" +
			"• Крепость: 43 % ABV\n" +
			"• Часть линейки Experimental Series от Glenfiddich\n" +
			"• Ограниченное издание — подчеркивает креативность бренда\n" +
			"• Идеален для дегустаций и обсуждений вкусов",
		Aliases: []string{"ипа эксперимент", "ipa"},
	},
	{
		Name:     "Grant's Classic",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG3Gg4nc5TGsJHjrEPyk-J7PNFHVvAAAIL9TEb1P3ISZjP54Yf2Z6PAQADAgADeQADNgQ",
		Caption: "<b>Grant’s Triple Wood (Classic)</b>\n" +
			"• Классический купажированный шотландский виски\n" +
			"• Выдержан в трёх типах бочек: бурбон, американский новый дуб, херес\n" +
			"• Аромат: ваниль, карамель, яблоко, специи\n" +
			"• Вкус: мягкий, с нотами ванили, дуба и пряностей\n" +
			"• Финиш: длительный, гладкий, немного сладковатый\n" +
			"• Крепость: 40 % ABV\n" +
			"• Отличный выбор для коктейлей или чистого вида\n" +
			"• Самый популярный вариант в линейке Grant’s\n" +
			"• Идеален для повседневного употребления\n" +
			"• Баланс цены и качества",
		Aliases: []string{"грантс", "грантс классик", "grants"},
	},
	{
		Name:     "Grant's Summer Orange",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG4mg4ndf9tfQikXAQPk-lIxaS4yMsAAIO9TEb1P3ISWY8m8SH7F44AQADAgADeQADNgQ",
		Caption: "<b>Grant’s Summer Orange</b>\n" +
			"• Купажированный шотландский виски с натуральным вкусом апельсина\n" +
			"• Яркий, фруктовый и освежающий профиль\n" +
			"• Аромат: цедра апельсина, ваниль, мёд\n" +
			"• Вкус: сладкий апельсин, специи, лёгкая дубовая горчинка\n" +
			"• Крепость: 35 % ABV — мягкий и лёгкий\n" +
			"• Идеален со льдом, содовой или в коктейлях\n" +
			"• Летняя лимитка, созданная для освежающих напитков\n" +
			"• Отличный вариант для тех, кто не любит крепкий виски\n" +
			"• Современный стиль, ориентированный на молодую аудиторию\n" +
			"• Хорош для вечеринок, летних террас и лёгкого ужина",
		Aliases: []string{"грантс саммер", "саммер оранж", "summer orange"},
	},
	{
		Name:     "Grant's Winter Dessert",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG3mg4ndDXJWAkbTrFKLhtgoVbFaDsAAIM9TEb1P3ISZq_Ca_jZFUSAQADAgADeQADNgQ",
		Caption: "<b>Grant’s Winter Dessert</b>\n" +
			"• Десертный купажированный виски с акцентом на тёплые, зимние ноты\n" +
			"• Аромат: сливочная карамель, глинтвейн, печёные яблоки\n" +
			"• Вкус: ваниль, тёмный шоколад, пряности, корица\n" +
			"• Мягкий, согревающий характер\n" +
			"• Крепость: 35 % ABV — деликатный и уютный\n" +
			"• Идеален с тёплым яблочным соком или в десертных коктейлях\n" +
			"• Отлично сочетается с выпечкой и шоколадом\n" +
			"• Лимитированный выпуск на холодный сезон\n" +
			"• Подходит для подарков и уютных зимних вечеров\n" +
			"• Яркий пример вкусового виски без лишней крепости",
		Aliases: []string{"грантс винтер", "винтер дессерт", "winter dessert"},
	},
	{
		Name:     "Grant's Tropical Fiesta",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG4Gg4ndPl6Fi0nM3zF9P8Va09iX6LAAIN9TEb1P3ISQ2wk7vc2-toAQADAgADeQADNgQ",
		Caption: "<b>Grant’s Tropical Fiesta</b>\n" +
			"• Лимитированная версия виски с тропическим характером\n" +
			"• Аромат: ананас, манго, кокос, сладкие специи\n" +
			"• Вкус: лёгкий, фруктовый, с нотами ванили и карамели\n" +
			"• Основа — классический Grant’s с добавлением натуральных ароматов\n" +
			"• Крепость: 35 % ABV — мягкий и лёгкий для пития\n" +
			"• Отличен в охлаждённом виде или с соком\n" +
			"• Подходит для летних коктейлей и вечеринок\n" +
			"• Стильная бутылка с ярким тропическим дизайном\n" +
			"• Отличный выбор для любителей мягкого виски\n" +
			"• Создан для новых поколений потребителей",
		Aliases: []string{"грантс тропикал", "тропикал фиеста", "tropical fiesta"},
	},
	{
		Name:     "Tullamore D.E.W.",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG5Gg4npCx1IL5QMiN-XatPLCICdo1AALG8jEbPObJSSzMH93C0bHVAQADAgADeQADNgQ",
		Caption: "<b>Tullamore D.E.W.</b>\n" +
			"• Ирландский трипл-бленд виски (солод + зерно + пот-стилл)\n" +
			"• Аромат: зелёное яблоко, ваниль, сливки\n" +
			"• Вкус: мягкий, слегка сладковатый, с фруктовыми и древесными нотами\n" +
			"• Выдержан в бочках из-под бурбона и хереса\n" +
			"• Крепость: 40 % ABV\n" +
			"• Один из самых узнаваемых ирландских виски в мире\n" +
			"• Идеален для начинающих и коктейлей\n" +
			"• История бренда с 1829 года (г. Талламор, Ирландия)\n" +
			"• Название D.E.W. — инициалы первого владельца: Daniel E. Williams\n" +
			"• Слоган: ‘Give every man his D.E.W.’",
		Aliases: []string{"талламор", "талламор дью", "tullamore", "tullamore dew"},
	},
	{
		Name:     "Tullamore D.E.W. Honey",
		Category: CategoryWhisky,
		PhotoID:  "AgACAgIAAxkBAAIG_2g4qxyZA7ZsneXEwpn9IZwP00efAAJn9TEb1P3ISSXBLkMW4PngAQADAgADeAADNgQ",
		Caption: "<b>Tullamore D.E.W. Honey</b>\n" +
			"• Ирландский виски ликёр на основе оригинального Tullamore D.E.W.\n" +
			"• Настоян на натуральном мёде\n" +
			"• Аромат: цветочный, мёд, ваниль, немного трав\n" +
			"• Вкус: сладкий, сливочный, мягкий — с нотами виски и мёда\n" +
			"• Крепость: 35 % ABV\n" +
			"• Подаётся охлаждённым или со льдом\n" +
			"• Идеален для шотов и коктейлей\n" +
			"• Новинка для любителей мягких вкусов\n" +
			"• Стильная бутылка с тиснением\n" +
			"• Отличный выбор для женской аудитории и новичков",
		Aliases: []string{"талламор хани", "талламор мед", "tullamore honey"},
	},

	// Vodka
	{
		Name:     "Серебрянка",
		Category: CategoryVodka,
		PhotoID:  "AgACAgIAAxkBAAIK-Gg8CRgDjmxfkUP-Ui86uo8Lm4OSAAJS9zEbPHPgSVUkEXccwFmIAQADAgADeQADNgQ",
		Caption: "<b>Серебрянка</b>\n" +
			"• Казахстанская водка\n" +
			"• Отличается мягким вкусом и чистым послевкусием\n" +
			"• Фильтрация через серебро — отсюда и название\n" +
			"• Прекрасно подходит для классических застолий\n" +
			"• Крепость: 40 %\n" +
			"• Форматы: 0.5 и 0.7 л\n" +
			"• Представлена в трёх вариантах: Классическая, Лайт (37,5%) и Rey\n" +
			"• Идеальна в паре с солёными закусками и мясом",
		Aliases: []string{"серебрянка классическая", "serebryanka"},
	},
	{
		Name:     "Reyka",
		Category: CategoryVodka,
		PhotoID:  "AgACAgIAAxkBAAILCWg8EVlyH6R2QScf7Q4nZzXoKgw4AAKG9zEbPHPgSUK7bfwT0QdLAQADAgADbQADNgQ",
		Caption: "<b>Reyka</b>\n" +
			"• Премиальная водка из Исландии\n" +
			"• Изготавливается из чистейшей родниковой воды\n" +
			"• Перегоняется в медных аламбиках Carter-Head\n" +
			"• Фильтруется через лаву вулкана\n" +
			"• Аромат: мягкий, чистый, с намёком на минералы\n" +
			"• Вкус: гладкий, с лёгкой сладостью и нотками перца\n" +
			"• Крепость: 40 % ABV\n" +
			"• Прекрасно подходит для чистого употребления и коктейлей\n" +
			"• Часто ассоциируется с экологичностью и натуральностью",
		Aliases: []string{"рейка", "рейка водка"},
	},
	{
		Name:     "Finlandia",
		Category: CategoryVodka,
		PhotoID:  "AgACAgIAAxkBAAILC2g8Eli-TYUT9EM8fzglAi5soVNhAAKJ9zEbPHPgSekXdAio1hxGAQADAgADeQADNgQ",
		Caption: "<b>Finlandia</b>\n" +
			"• Всемирно известная водка из Финляндии\n" +
			"• Производится из шести рядного ячменя и чистейшей ледниковой воды\n" +
			"• Перегоняется более 200 раз для исключительной чистоты\n" +
			"• Аромат: нейтральный, слегка злаковый\n" +
			"• Вкус: гладкий, холодный, мягкий\n" +
			"• Крепость: 40 % ABV\n" +
			"• Идеальна в шотах, коктейлях или с лёгкой закуской\n" +
			"• Символ северной чистоты и минимализма\n" +
			"• Доступна в разных вариантах: Classic, Lime, Grapefruit и др.",
		Aliases: []string{"финляндия", "финка"},
	},
	{
		Name:     "Зелёная марка",
		Category: CategoryVodka,
		PhotoID:  "AgACAgIAAxkBAAILB2g8EThJMJe1UMamIxOOc_dAAnWJAAKD9zEbPHPgSRx1MKEz6FkVAQADAgADeAADNgQ",
		Caption: "<b>Зелёная марка</b>\n" +
			"• Традиционная российская водка\n" +
			"• Производится с использованием ржаного спирта и родниковой воды\n" +
			"• Сбалансированный вкус с лёгкой зерновой нотой\n" +
			"• Аромат: мягкий, хлебный\n" +
			"• Крепость: 40 % ABV\n" +
			"• Идеально подходит для классических застолий\n" +
			"• Линейка включает: Классическая, Пшеничная, Сибирская, Особая и др.\n" +
			"• Упаковка оформлена в винтажном стиле — отсылка к традициям\n" +
			"• Одна из самых узнаваемых марок в РФ и СНГ",
		Aliases: []string{"зеленая марка", "зеленка"},
	},
	{
		Name:     "Талка",
		Category: CategoryVodka,
		PhotoID:  "AgACAgIAAxkBAAILDWg8EwSC0zkdPOWDiuPJwDjZnD6-AAKO9zEbPHPgSVVZcdKwdwxDAQADAgADeQADNgQ",
		Caption: "<b>Талка</b>\n" +
			"• Натуральная водка из Сибири\n" +
			"• Производится из талой воды и спирта класса «Люкс»\n" +
			"• Аромат: нейтральный, лёгкий\n" +
			"• Вкус: мягкий, чистый, с коротким финишем\n" +
			"• Крепость: 40 % ABV\n" +
			"• Природная тематика подчёркивается снежным дизайном бутылки\n" +
			"• Подходит для подачи в чистом виде и для настоек\n" +
			"• Часто выбирается потребителями за натуральность и мягкость",
		Aliases: []string{"талка водка"},
	},
	{
		Name:     "Русский Стандарт",
		Category: CategoryVodka,
		PhotoID:  "AgACAgIAAxkBAAILD2g8EzK_RPkeZPk2_gPWpB5xh_4CAAKP9zEbPHPgSWZgm1smh6zxAQADAgADeQADNgQ",
		Caption: "<b>Русский Стандарт</b>\n" +
			"• Один из самых узнаваемых российских брендов водки\n" +
			"• Производится в Санкт-Петербурге по рецепту Менделеева\n" +
			"• Используется озёрная вода Ладоги и спирт «Люкс»\n" +
			"• Аромат: чистый, слегка зерновой\n" +
			"• Вкус: сбалансированный, мягкий, с легкой маслянистостью\n" +
			"• Крепость: 40 % ABV\n" +
			"• Часто подаётся охлаждённой к русской кухне\n" +
			"• Идеальна как в чистом виде, так и в коктейлях",
		Aliases: []string{"русский стандарт водка", "стандарт"},
	},

	// Beer
	{
		Name:     "Paulaner",
		Category: CategoryBeer,
		PhotoID:  "AgACAgIAAxkBAAILKmg8FzKSP73SszDZhdcxRRRWag1hAAKl9zEbPHPgSSyVatusTBp3AQADAgADeQADNgQ",
		Caption: "<b>Paulaner</b>\n" +
			"• Знаменитое немецкое пиво с историей более 400 лет\n" +
			"• Производится в Мюнхене, Германия\n" +
			"• Популярные стили: Hefe-Weißbier, Münchner Hell, Oktoberfest Bier\n" +
			"• Вкус: насыщенный, с нотками банана, гвоздики, солода\n" +
			"• Отличается мягкостью и натуральным брожением\n" +
			"• Отлично сочетается с колбасками, курицей и сыром\n" +
			"• Поставляется в бутылках и кегах\n" +
			"• Один из официальных участников Октоберфеста",
		Aliases: []string{"пауланер", "пауланэр"},
	},
	{
		Name:     "Blue Moon",
		Category: CategoryBeer,
		PhotoID:  "AgACAgIAAxkBAAILOGg8GB7izbq1UzrpiNATph1gsPAGAAKv9zEbPHPgSYK1lfCxnUKEAQADAgADeAADNgQ",
		Caption: "<b>Blue Moon</b>\n" +
			"• Американское пшеничное пиво в бельгийском стиле\n" +
			"• Варится с добавлением апельсиновой цедры\n" +
			"• Аромат: цитрусовый, пряный, с нотами кориандра\n" +
			"• Вкус: освежающий, слегка сладковатый, мягкий\n" +
			"• Алкоголь: 5.4 % ABV\n" +
			"• Подаётся традиционно с долькой апельсина\n" +
			"• Идеально для жаркой погоды и лёгких блюд\n" +
			"• Стильная бутылка с лунным логотипом\n" +
			"• Отлично заходит тем, кто не любит горечь IPA",
		Aliases: []string{"блю мун", "блюмун"},
	},
	{
		Name:     "London Pride",
		Category: CategoryBeer,
		PhotoID:  "AgACAgIAAxkBAAILOmg8GJPTpk3KYW-eQheQ_ptxulNjAAK09zEbPHPgSel9dYZxhnk8AQADAgADeAADNgQ",
		Caption: "<b>London Pride</b>\n" +
			"• Знаменитый английский эль от пивоварни Fuller’s\n" +
			"• Стиль: классический британский Bitter\n" +
			"• Аромат: карамель, орех, лёгкая хмелевая нота\n" +
			"• Вкус: сбалансированный, с мягкой горчинкой и солодовым телом\n" +
			"• Алкоголь: 4.7 % ABV\n" +
			"• Отлично сочетается с мясными и жареными блюдами\n" +
			"• Фирменная бутылка с красным лейблом\n" +
			"• Один из самых узнаваемых элей Великобритании\n" +
			"• Истинный вкус лондонских пабов",
		Aliases: []string{"лондон прайд"},
	},
	{
		Name:     "Coors",
		Category: CategoryBeer,
		PhotoID:  "AgACAgIAAxkBAAILPGg8GOm6MQNr5kSeEHSivJDvs3fGAAK39zEbPHPgST-l5QL573P0AQADAgADeQADNgQ",
		Caption: "<b>Coors</b>\n" +
			"• Легендарное американское светлое пиво\n" +
			"• Стиль: American Lager\n" +
			"• Аромат: лёгкий, с нотками кукурузы и хмеля\n" +
			"• Вкус: освежающий, мягкий, нейтральный\n" +
			"• Алкоголь: 4.2 % ABV\n" +
			"• Отлично пьётся охлаждённым в жаркую погоду\n" +
			"• Характерный серебристый дизайн банки\n" +
			"• Часто используется в массовых и спортивных мероприятиях\n" +
			"• Один из крупнейших брендов пива в США",
		Aliases: []string{"курс", "коорс"},
	},
	{
		Name:     "Staropramen",
		Category: CategoryBeer,
		PhotoID:  "AgACAgIAAxkBAAILPmg8GS-vTMPmpwqAdJaQn_-TcBnYAAK59zEbPHPgSYKtiAbkwYS3AQADAgADeAADNgQ",
		Caption: "<b>Staropramen</b>\n" +
			"• Чешское пиво с богатой историей с 1869 года\n" +
			"• Стиль: Czech Pilsner / Lager\n" +
			"• Аромат: солодовый, с оттенками хмеля\n" +
			"• Вкус: чистый, сбалансированный, слегка горьковатый\n" +
			"• Алкоголь: 5.0 % ABV\n" +
			"• Отличается насыщенным телом и классическим чешским характером\n" +
			"• Производится в Праге, экспортируется по всему миру\n" +
			"• Идеален к мясным блюдам и сытным закускам\n" +
			"• Один из символов чешской пивной культуры",
		Aliases: []string{"старопрамен"},
	},

	// Wine
	{
		Name:     "Mateus Original Rosé",
		Category: CategoryWine,
		PhotoID:  "AgACAgIAAxkBAAILUGg8Gx2S1sAohmNgv870lc1VvUdaAALC9zEbPHPgSZwxOkkyUzl2AQADAgADeQADNgQ",
		Caption: "<b>Mateus Original Rosé</b>\n" +
			"• Лёгкое полусухое розовое вино из Португалии\n" +
			"• Сорт винограда: Baga и другие португальские автохтоны\n" +
			"• Цвет: светло-розовый, с лёгким блеском\n" +
			"• Аромат: клубника, малина, цветочные тона\n" +
			"• Вкус: свежий, фруктовый, сбалансированный\n" +
			"• Крепость: 11 % ABV\n" +
			"• Подача: охлаждённым, идеально летом\n" +
			"• Подходит к лёгким закускам, салатам и морепродуктам\n" +
			"• Узнаваемая пузатая бутылка — символ бренда\n" +
			"• Отличный выбор для новичков и лёгких вечеринок",
		Aliases: []string{"матеус", "матеус розе", "mateus"},
	},
	{
		Name:     "Undurraga Sauvignon Blanc",
		Category: CategoryWine,
		PhotoID:  "AgACAgIAAxkBAAILVmg8HAghUtu6l0-rE7dGF0PLdzGYAALU9zEbPHPgSduFfYYWlxmOAQADAgADeQADNgQ",
		Caption: "<b>Undurraga Sauvignon Blanc</b>\n" +
			"• Белое сухое вино из Чили\n" +
			"• Виноград: Совиньон Блан\n" +
			"• Цвет: светло-соломенный\n" +
			"• Аромат: цитрус, зелёное яблоко, свежая трава\n" +
			"• Вкус: свежий, сухой, с яркой кислотностью\n" +
			"• Крепость: 12.5 % ABV\n" +
			"• Отлично сочетается с морепродуктами и салатами\n" +
			"• Подача при 8–10 °C\n" +
			"• Современный стиль нового света\n" +
			"• Надёжный выбор по доступной цене",
		Aliases: []string{"ундуррага", "совиньон блан"},
	},
	{
		Name:     "Devil’s Rock Riesling",
		Category: CategoryWine,
		PhotoID:  "AgACAgIAAxkBAAILXmg8HL0ZOUJYurNUmx1RK7xZYadHAALc9zEbPHPgSdjIeJJeBYRdAQADAgADeQADNgQ",
		Caption: "<b>Devil’s Rock Riesling</b>\n" +
			"• Белое полусухое вино из Германии\n" +
			"• Сорт винограда: Riesling\n" +
			"• Цвет: светло-золотистый с зелёными бликами\n" +
			"• Аромат: яблоко, персик, цитрус, мёд\n" +
			"• Вкус: лёгкий, сдержанно сладкий, хорошо сбалансированный\n" +
			"• Крепость: 10.5 % ABV\n" +
			"• Отличный выбор для лёгкой кухни и азиатских блюд\n" +
			"• Подаётся охлаждённым до 8–10 °C\n" +
			"• Современный стиль немецкого рислинга\n" +
			"• Упаковка с запоминающимся дизайном и «дьявольским» характером",
		Aliases: []string{"рислинг", "девилс рок"},
	},
	{
		Name:     "Piccola Nostra",
		Category: CategoryWine,
		PhotoID:  "AgACAgIAAxkBAAILXGg8HLGVozwsE57zvCpYkQn_IDiaAALb9zEbPHPgSZzW-CvfBN3OAQADAgADeQADNgQ",
		Caption: "<b>Piccola Nostra</b>\n" +
			"• Итальянское полусладкое вино\n" +
			"• Лёгкое, фруктовое, с мягким сладким послевкусием\n" +
			"• Цвет: от соломенного до янтарного (в зависимости от вида)\n" +
			"• Аромат: груша, персик, цветы\n" +
			"• Крепость: 9–10 % ABV\n" +
			"• Отлично сочетается с десертами и лёгкими блюдами\n" +
			"• Подходит для ежедневного употребления\n" +
			"• Часто выбирается за сбалансированную сладость\n" +
			"• Привлекательная цена и доступность\n" +
			"• Подходит для тёплых вечеров и романтических встреч",
		Aliases: []string{"пиккола ностра", "пиккола"},
	},
	{
		Name:     "Эль Санчес",
		Category: CategoryWine,
		PhotoID:  "AgACAgIAAxkBAAILWGg8HJ5SEDUTg8UUswi8qdBrKBdsAALZ9zEbPHPgScB4ihQKmAVmAQADAgADeQADNgQ",
		Caption: "<b>Эль Санчес</b>\n" +
			"• Полусладкое красное вино из Испании\n" +
			"• Изготовлено из винограда Гренаш и Темпранильо\n" +
			"• Цвет: насыщенный рубиновый\n" +
			"• Аромат: вишня, слива, ваниль\n" +
			"• Вкус: мягкий, слегка пряный, сладковатый\n" +
			"• Крепость: 10.5–11.5 % ABV\n" +
			"• Идеально с мясом на гриле и закусками\n" +
			"• Приятное вино на каждый день\n" +
			"• Подходит как для застолий, так и для ужина на двоих\n" +
			"• Популярно за доступную цену и дружелюбный вкус",
		Aliases: []string{"el sanchez", "санчес"},
	},
	{
		Name:     "Шале де Сюд",
		Category: CategoryWine,
		PhotoID:  "AgACAgIAAxkBAAILWmg8HKjtY9IaTW5OgLBx1LZ4NbU2AALa9zEbPHPgSfWt245fgG4PAQADAgADeAADNgQ",
		Caption: "<b>Шале де Сюд</b>\n" +
			"• Французское полусладкое вино\n" +
			"• Цвет: от светло-розового до золотистого\n" +
			"• Аромат: клубника, мед, яблоко\n" +
			"• Вкус: лёгкий, фруктовый, с мягкой сладостью\n" +
			"• Крепость: около 10 % ABV\n" +
			"• Подаётся охлаждённым\n" +
			"• Универсально для салатов, десертов, лёгких закусок\n" +
			"• Часто ассоциируется с летними вечеринками\n" +
			"• Привлекательный внешний вид бутылки\n" +
			"• Хороший выбор для новичков и поклонников сладких вин",
		Aliases: []string{"chalet des sud", "шале"},
	},

	// Cocktails
	{
		Name:     "Old Fashioned",
		Category: CategoryCocktails,
		Caption: "<b>Old Fashioned</b>\n" +
			"• Классика на основе виски (Monkey Shoulder или Grant’s)\n" +
			"• Состав: виски, сахарный сироп, биттер, цедра апельсина\n" +
			"• Подача: низкий стакан, крупный лёд\n" +
			"• Крепкий, пряный, с цитрусовым акцентом\n" +
			"• Идеальная витрина для мягких купажей",
		Aliases: []string{"олд фэшн", "олд фешен", "олд фэшенд"},
	},
	{
		Name:     "Whisky Sour",
		Category: CategoryCocktails,
		Caption: "<b>Whisky Sour</b>\n" +
			"• Виски, лимонный сок, сахарный сироп, опционально белок\n" +
			"• Баланс кислоты и сладости, бархатная пена\n" +
			"• Лучше всего на Monkey Shoulder\n" +
			"• Подача: рокс или купе, гарнир — цедра и вишня\n" +
			"• Один из самых продаваемых коктейлей в барах",
		Aliases: []string{"виски сауэр", "сауэр", "виски сур"},
	},
	{
		Name:     "Jägerbomb",
		Category: CategoryCocktails,
		Caption: "<b>Jägerbomb</b>\n" +
			"• Шот Jägermeister, опущенный в бокал энергетика\n" +
			"• Подача: эффектная, для компаний и вечеринок\n" +
			"• Вкус: травяной ликёр + сладкая газировка\n" +
			"• Пьётся залпом сразу после подачи\n" +
			"• Самый известный способ подачи Jägermeister в клубах",
		Aliases: []string{"ягербомб", "егербомб"},
	},

	// Jägermeister
	{
		Name:     "Jägermeister",
		Category: CategoryJager,
		PhotoID:  "AgACAgIAAxkBAAIMG2g8Lf1fleLtxA30kh_bN-YFxQx9AAKM-DEbPHPgSXiVPEBRiD1GAQADAgADeAADNgQ",
		Caption: "<b>Jägermeister</b>\n" +
			"• Немецкий травяной ликёр с крепостью 35 %\n" +
			"• Производится с 1935 года в Вольфенбюттеле\n" +
			"• Состоит из 56 трав, корней и специй\n" +
			"• Настойка выдерживается 12 месяцев в дубовых бочках\n" +
			"• Аромат: пряный, травяной, с нотами аниса и цитруса\n" +
			"• Вкус: насыщенный, горьковатый, слегка сладкий\n" +
			"• Классическая подача — шот, охлаждённый до -18°C\n" +
			"• Отличный ингредиент для коктейлей (Jägerbomb и др.)\n" +
			"• Логотип — олень с сияющим крестом между рогами",
		Aliases: []string{"ягермейстер", "ягер", "егермейстер", "jager", "jagermeister"},
	},
}
