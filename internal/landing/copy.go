// Package landing holds the SEO copy shown on country and city landing
// pages. Major cities carry hand-written copy; the rest get templated text.
package landing

import (
	"fmt"

	"yoursite.kz/yoursite-web/internal/region"
)

// Copy is the localized SEO block of one landing page.
type Copy struct {
	Title       string
	Description string
	H1          string
	Intro       string
	WhyUs       []string
}

var cityCopy = map[region.Language]map[string]Copy{
	region.LangRU: {
		"almaty": {
			Title:       "Готовые сайты для бизнеса в Алматы — Yoursite",
			Description: "Купить готовый сайт в Алматы. Шаблоны для бизнеса с адаптацией и запуском за 24 часа. Более 500 готовых решений.",
			H1:          "Готовые сайты для бизнеса в Алматы",
			Intro:       "Алматы — крупнейший мегаполис Казахстана и центр деловой активности. Мы помогаем предпринимателям Алматы быстро запустить современный сайт для бизнеса. Выберите готовый шаблон, и мы адаптируем его под ваш бренд за 24 часа.",
			WhyUs: []string{
				"Более 500 готовых шаблонов для любой ниши",
				"Адаптация под казахстанский рынок",
				"Оплата в тенге через Kaspi и Halyk",
				"Техподдержка на русском и казахском языках",
			},
		},
		"astana": {
			Title:       "Готовые сайты для бизнеса в Астане — Yoursite",
			Description: "Купить готовый сайт в Астане. Современные шаблоны для бизнеса с запуском за 24 часа. Оплата в тенге.",
			H1:          "Готовые сайты для бизнеса в Астане",
			Intro:       "Астана — столица Казахстана и быстрорастущий деловой центр. Предприниматели Астаны выбирают наши готовые сайты для быстрого старта онлайн-бизнеса. Мы предлагаем современные решения с адаптацией под ваш бренд.",
			WhyUs: []string{
				"Быстрый запуск без длительных согласований",
				"Интеграция с популярными платёжными системами КЗ",
				"SEO-оптимизация для казахстанского рынка",
				"Поддержка 24/7 в Астане",
			},
		},
		"tashkent": {
			Title:       "Готовые сайты для бизнеса в Ташкенте — Yoursite",
			Description: "Купить готовый сайт в Ташкенте. Шаблоны для бизнеса с оплатой через Payme и Click. Запуск за 24 часа.",
			H1:          "Готовые сайты для бизнеса в Ташкенте",
			Intro:       "Ташкент — столица Узбекистана и крупнейший экономический центр региона. Мы помогаем бизнесу Ташкента выходить в онлайн с готовыми сайтами, адаптированными под узбекский рынок.",
			WhyUs: []string{
				"Оплата через Payme, Click и Uzum",
				"Цены в узбекских сумах",
				"Адаптация контента на узбекский язык",
				"Локальная техподдержка",
			},
		},
		"bishkek": {
			Title:       "Готовые сайты для бизнеса в Бишкеке — Yoursite",
			Description: "Купить готовый сайт в Бишкеке. Шаблоны для бизнеса с адаптацией под кыргызский рынок. Запуск за 24 часа.",
			H1:          "Готовые сайты для бизнеса в Бишкеке",
			Intro:       "Бишкек — столица Кыргызстана и центр предпринимательской активности страны. Наши готовые сайты помогают бизнесу Бишкека быстро выйти в онлайн и начать привлекать клиентов.",
			WhyUs: []string{
				"Оплата через Элкарт и MBANK",
				"Цены в кыргызских сомах",
				"Поддержка на русском языке",
				"Быстрая адаптация под местный рынок",
			},
		},
	},
	region.LangKZ: {
		"almaty": {
			Title:       "Алматыдағы бизнеске арналған дайын сайттар — Yoursite",
			Description: "Алматыда дайын сайт сатып алыңыз. 24 сағатта бейімдеу және іске қосу. 500-ден астам дайын шешімдер.",
			H1:          "Алматыдағы бизнеске арналған дайын сайттар",
			Intro:       "Алматы — Қазақстанның ең ірі мегаполисі және іскерлік белсенділік орталығы. Біз Алматы кәсіпкерлеріне бизнеске арналған заманауи сайтты жылдам іске қосуға көмектесеміз.",
			WhyUs: []string{
				"500-ден астам дайын үлгілер",
				"Қазақстан нарығына бейімдеу",
				"Kaspi және Halyk арқылы теңгемен төлем",
				"Қазақ және орыс тілдерінде техникалық қолдау",
			},
		},
		"astana": {
			Title:       "Астанадағы бизнеске арналған дайын сайттар — Yoursite",
			Description: "Астанада дайын сайт сатып алыңыз. 24 сағатта іске қосу. Теңгемен төлем.",
			H1:          "Астанадағы бизнеске арналған дайын сайттар",
			Intro:       "Астана — Қазақстанның астанасы және жылдам дамып келе жатқан іскерлік орталық. Астана кәсіпкерлері онлайн-бизнесті жылдам бастау үшін біздің дайын сайттарды таңдайды.",
			WhyUs: []string{
				"Ұзақ келісімсіз жылдам іске қосу",
				"ҚР танымал төлем жүйелерімен интеграция",
				"Қазақстан нарығы үшін SEO-оңтайландыру",
				"Астанада тәулік бойы қолдау",
			},
		},
		"tashkent": {
			Title:       "Ташкенттегі бизнеске арналған дайын сайттар — Yoursite",
			Description: "Ташкентте дайын сайт сатып алыңыз. Payme және Click арқылы төлем. 24 сағатта іске қосу.",
			H1:          "Ташкенттегі бизнеске арналған дайын сайттар",
			Intro:       "Ташкент — Өзбекстан астанасы және аймақтың ең ірі экономикалық орталығы. Біз Ташкент бизнесіне өзбек нарығына бейімделген дайын сайттармен онлайн шығуға көмектесеміз.",
			WhyUs: []string{
				"Payme, Click және Uzum арқылы төлем",
				"Өзбек сумында бағалар",
				"Өзбек тіліне мазмұнды бейімдеу",
				"Жергілікті техникалық қолдау",
			},
		},
		"bishkek": {
			Title:       "Бішкектегі бизнеске арналған дайын сайттар — Yoursite",
			Description: "Бішкекте дайын сайт сатып алыңыз. Қырғыз нарығына бейімдеу. 24 сағатта іске қосу.",
			H1:          "Бішкектегі бизнеске арналған дайын сайттар",
			Intro:       "Бішкек — Қырғызстан астанасы және елдің кәсіпкерлік белсенділігінің орталығы. Біздің дайын сайттар Бішкек бизнесіне онлайн шығуға және клиенттерді тартуға көмектеседі.",
			WhyUs: []string{
				"Элкарт және MBANK арқылы төлем",
				"Қырғыз сомында бағалар",
				"Орыс тілінде қолдау",
				"Жергілікті нарыққа жылдам бейімдеу",
			},
		},
	},
	region.LangUZ: {
		"almaty": {
			Title:       "Olma-Otada biznes uchun tayyor saytlar — Yoursite",
			Description: "Olma-Otada tayyor sayt sotib oling. 24 soat ichida moslashuv va ishga tushirish. 500 dan ortiq tayyor yechimlar.",
			H1:          "Olma-Otada biznes uchun tayyor saytlar",
			Intro:       "Olma-Ota — Qozog'istonning eng yirik megapolisi va ishbilarmonlik faoliyati markazi. Biz Olma-Ota tadbirkorlariga biznes uchun zamonaviy saytni tez ishga tushirishga yordam beramiz.",
			WhyUs: []string{
				"500 dan ortiq tayyor shablonlar",
				"Qozog'iston bozoriga moslashuv",
				"Kaspi va Halyk orqali tenge bilan to'lov",
				"Qozoq va rus tillarida texnik yordam",
			},
		},
		"astana": {
			Title:       "Ostonada biznes uchun tayyor saytlar — Yoursite",
			Description: "Ostonada tayyor sayt sotib oling. 24 soat ichida ishga tushirish. Tenge bilan to'lov.",
			H1:          "Ostonada biznes uchun tayyor saytlar",
			Intro:       "Ostona — Qozog'iston poytaxti va tez rivojlanayotgan ishbilarmonlik markazi. Ostona tadbirkorlari onlayn biznesni tez boshlash uchun bizning tayyor saytlarimizni tanlaydilar.",
			WhyUs: []string{
				"Uzoq kelishuvlarsiz tez ishga tushirish",
				"QR mashhur to'lov tizimlari bilan integratsiya",
				"Qozog'iston bozori uchun SEO-optimallashtirish",
				"Ostonada 24/7 yordam",
			},
		},
		"tashkent": {
			Title:       "Toshkentda biznes uchun tayyor saytlar — Yoursite",
			Description: "Toshkentda tayyor sayt sotib oling. Payme va Click orqali to'lov. 24 soat ichida ishga tushirish.",
			H1:          "Toshkentda biznes uchun tayyor saytlar",
			Intro:       "Toshkent — O'zbekiston poytaxti va mintaqaning eng yirik iqtisodiy markazi. Biz Toshkent biznesiga o'zbek bozoriga moslashtirilgan tayyor saytlar bilan onlayn chiqishga yordam beramiz.",
			WhyUs: []string{
				"Payme, Click va Uzum orqali to'lov",
				"O'zbek so'mida narxlar",
				"O'zbek tiliga kontent moslashtirish",
				"Mahalliy texnik yordam",
			},
		},
		"bishkek": {
			Title:       "Bishkekda biznes uchun tayyor saytlar — Yoursite",
			Description: "Bishkekda tayyor sayt sotib oling. Qirg'iz bozoriga moslashuv. 24 soat ichida ishga tushirish.",
			H1:          "Bishkekda biznes uchun tayyor saytlar",
			Intro:       "Bishkek — Qirg'iziston poytaxti va mamlakatning tadbirkorlik faoliyati markazi. Bizning tayyor saytlarimiz Bishkek biznesiga onlayn chiqishga va mijozlarni jalb qilishga yordam beradi.",
			WhyUs: []string{
				"Elkart va MBANK orqali to'lov",
				"Qirg'iz somida narxlar",
				"Rus tilida yordam",
				"Mahalliy bozorga tez moslashuv",
			},
		},
	},
}

// ForCity returns the SEO copy for a city landing page. Cities without
// hand-written copy get templated text built from the localized names.
func ForCity(lang region.Language, citySlug, cityName, countryName string) Copy {
	if byCity, ok := cityCopy[lang]; ok {
		if c, ok := byCity[citySlug]; ok {
			return c
		}
	}
	switch lang {
	case region.LangKZ:
		return Copy{
			Title:       fmt.Sprintf("%s қаласындағы бизнеске арналған дайын сайттар — Yoursite", cityName),
			Description: fmt.Sprintf("%s, %s қаласында дайын сайт сатып алыңыз. 24 сағатта бейімдеу және іске қосу.", cityName, countryName),
			H1:          fmt.Sprintf("%s қаласындағы бизнеске арналған дайын сайттар", cityName),
			Intro:       fmt.Sprintf("%s — аймақтың негізгі қалаларының бірі. Біз %s кәсіпкерлеріне бизнеске арналған заманауи сайтты жылдам іске қосуға көмектесеміз.", cityName, cityName),
			WhyUs: []string{
				"500-ден астам дайын үлгілер",
				"Жергілікті нарыққа бейімдеу",
				"Ыңғайлы төлем әдістері",
				"Кәсіби техникалық қолдау",
			},
		}
	case region.LangUZ:
		return Copy{
			Title:       fmt.Sprintf("%sda biznes uchun tayyor saytlar — Yoursite", cityName),
			Description: fmt.Sprintf("%s, %sda tayyor sayt sotib oling. 24 soat ichida moslashuv va ishga tushirish.", cityName, countryName),
			H1:          fmt.Sprintf("%sda biznes uchun tayyor saytlar", cityName),
			Intro:       fmt.Sprintf("%s — mintaqaning asosiy shaharlaridan biri. Biz %s tadbirkorlariga biznes uchun zamonaviy saytni tez ishga tushirishga yordam beramiz.", cityName, cityName),
			WhyUs: []string{
				"500 dan ortiq tayyor shablonlar",
				"Mahalliy bozorga moslashuv",
				"Qulay to'lov usullari",
				"Professional texnik yordam",
			},
		}
	default:
		return Copy{
			Title:       fmt.Sprintf("Готовые сайты для бизнеса в %s — Yoursite", cityName),
			Description: fmt.Sprintf("Купить готовый сайт в %s, %s. Современные шаблоны с адаптацией и запуском за 24 часа.", cityName, countryName),
			H1:          fmt.Sprintf("Готовые сайты для бизнеса в %s", cityName),
			Intro:       fmt.Sprintf("%s — один из ключевых городов региона. Мы помогаем предпринимателям %s быстро запустить современный сайт для бизнеса. Выберите готовый шаблон, и мы адаптируем его под ваш бренд за 24 часа.", cityName, cityName),
			WhyUs: []string{
				"Более 500 готовых шаблонов для любой ниши",
				"Адаптация под локальный рынок",
				"Удобные способы оплаты",
				"Профессиональная техподдержка",
			},
		}
	}
}

var countryCopy = map[region.Language]map[region.Country]Copy{
	region.LangRU: {
		region.CountryKZ: {
			Title:       "Готовые сайты для бизнеса в Казахстане — Yoursite",
			Description: "Купить готовый сайт в Казахстане. Шаблоны для бизнеса с адаптацией и запуском за 24 часа. Оплата в тенге.",
			H1:          "Готовые сайты для бизнеса в Казахстане",
			Intro:       "Yoursite — платформа №1 в Казахстане для покупки готовых сайтов. Мы предлагаем более 500 шаблонов для любого бизнеса с адаптацией под казахстанский рынок.",
		},
		region.CountryUZ: {
			Title:       "Готовые сайты для бизнеса в Узбекистане — Yoursite",
			Description: "Купить готовый сайт в Узбекистане. Шаблоны для бизнеса с оплатой через Payme и Click. Запуск за 24 часа.",
			H1:          "Готовые сайты для бизнеса в Узбекистане",
			Intro:       "Yoursite помогает бизнесу Узбекистана выходить в онлайн с готовыми сайтами. Оплата в сумах, адаптация под узбекский рынок.",
		},
		region.CountryKG: {
			Title:       "Готовые сайты для бизнеса в Кыргызстане — Yoursite",
			Description: "Купить готовый сайт в Кыргызстане. Шаблоны для бизнеса с запуском за 24 часа. Оплата в сомах.",
			H1:          "Готовые сайты для бизнеса в Кыргызстане",
			Intro:       "Yoursite — ваш партнёр в создании онлайн-присутствия в Кыргызстане. Готовые сайты с адаптацией под местный рынок.",
		},
	},
	region.LangKZ: {
		region.CountryKZ: {
			Title:       "Қазақстандағы бизнеске арналған дайын сайттар — Yoursite",
			Description: "Қазақстанда дайын сайт сатып алыңыз. 24 сағатта бейімдеу және іске қосу. Теңгемен төлем.",
			H1:          "Қазақстандағы бизнеске арналған дайын сайттар",
			Intro:       "Yoursite — Қазақстандағы дайын сайттарды сатып алу үшін №1 платформа. Біз кез келген бизнес үшін 500-ден астам үлгіні ұсынамыз.",
		},
		region.CountryUZ: {
			Title:       "Өзбекстандағы бизнеске арналған дайын сайттар — Yoursite",
			Description: "Өзбекстанда дайын сайт сатып алыңыз. Payme және Click арқылы төлем. 24 сағатта іске қосу.",
			H1:          "Өзбекстандағы бизнеске арналған дайын сайттар",
			Intro:       "Yoursite Өзбекстан бизнесіне дайын сайттармен онлайн шығуға көмектеседі.",
		},
		region.CountryKG: {
			Title:       "Қырғызстандағы бизнеске арналған дайын сайттар — Yoursite",
			Description: "Қырғызстанда дайын сайт сатып алыңыз. 24 сағатта іске қосу. Соммен төлем.",
			H1:          "Қырғызстандағы бизнеске арналған дайын сайттар",
			Intro:       "Yoursite — Қырғызстанда онлайн-қатысуды құруда сіздің серіктесіңіз.",
		},
	},
	region.LangUZ: {
		region.CountryKZ: {
			Title:       "Qozog'istonda biznes uchun tayyor saytlar — Yoursite",
			Description: "Qozog'istonda tayyor sayt sotib oling. 24 soat ichida moslashuv va ishga tushirish. Tenge bilan to'lov.",
			H1:          "Qozog'istonda biznes uchun tayyor saytlar",
			Intro:       "Yoursite — Qozog'istonda tayyor saytlarni sotib olish uchun №1 platforma.",
		},
		region.CountryUZ: {
			Title:       "O'zbekistonda biznes uchun tayyor saytlar — Yoursite",
			Description: "O'zbekistonda tayyor sayt sotib oling. Payme va Click orqali to'lov. 24 soat ichida ishga tushirish.",
			H1:          "O'zbekistonda biznes uchun tayyor saytlar",
			Intro:       "Yoursite O'zbekiston biznesiga tayyor saytlar bilan onlayn chiqishga yordam beradi. So'mda to'lov, o'zbek bozoriga moslashuv.",
		},
		region.CountryKG: {
			Title:       "Qirg'izistonda biznes uchun tayyor saytlar — Yoursite",
			Description: "Qirg'izistonda tayyor sayt sotib oling. 24 soat ichida ishga tushirish. Som bilan to'lov.",
			H1:          "Qirg'izistonda biznes uchun tayyor saytlar",
			Intro:       "Yoursite — Qirg'izistonda onlayn mavjudlikni yaratishda sizning hamkoringiz.",
		},
	},
}

// ForCountry returns the SEO copy for a country landing page.
func ForCountry(lang region.Language, country region.Country) Copy {
	if byCountry, ok := countryCopy[lang]; ok {
		if c, ok := byCountry[country]; ok {
			return c
		}
	}
	return countryCopy[region.LangRU][country]
}
