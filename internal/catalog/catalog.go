// Package catalog holds the static template catalog and the query engine
// that filters and orders it for display.
package catalog

import "yoursite.kz/yoursite-web/internal/region"

// Template is a sellable website template. Prices are stored in USD; display
// conversion happens in the region package.
type Template struct {
	ID          string
	Slug        string
	Name        region.Text
	Description region.Text
	Category    string
	PriceUSD    float64
	OldPriceUSD float64 // zero when there is no discount
	Image       string
	Features    []string
	IsNew       bool
	IsHot       bool
	Rating      float64
	ReviewCount int
}

// Category groups templates by business niche. Count is an author-maintained
// display counter and is not kept in sync with the live template list.
type Category struct {
	ID    string
	Slug  string
	Name  region.Text
	Icon  string
	Count int
}

// Categories lists the niches shown on the home and catalog pages.
var Categories = []Category{
	{ID: "1", Slug: "dental", Name: region.Text{region.LangRU: "Стоматологии", region.LangKZ: "Стоматология", region.LangUZ: "Stomatologiya"}, Icon: "🦷", Count: 24},
	{ID: "2", Slug: "auto", Name: region.Text{region.LangRU: "Автосервисы", region.LangKZ: "Автосервис", region.LangUZ: "Avtoservis"}, Icon: "🚗", Count: 18},
	{ID: "3", Slug: "restaurant", Name: region.Text{region.LangRU: "Рестораны", region.LangKZ: "Мейрамханалар", region.LangUZ: "Restoranlar"}, Icon: "🍽️", Count: 32},
	{ID: "4", Slug: "beauty", Name: region.Text{region.LangRU: "Салоны красоты", region.LangKZ: "Сұлулық салондары", region.LangUZ: "Go'zallik salonlari"}, Icon: "💅", Count: 28},
	{ID: "5", Slug: "medical", Name: region.Text{region.LangRU: "Медицинские центры", region.LangKZ: "Медициналық орталықтар", region.LangUZ: "Tibbiyot markazlari"}, Icon: "🏥", Count: 15},
	{ID: "6", Slug: "education", Name: region.Text{region.LangRU: "Образование", region.LangKZ: "Білім беру", region.LangUZ: "Ta'lim"}, Icon: "📚", Count: 21},
	{ID: "7", Slug: "fitness", Name: region.Text{region.LangRU: "Фитнес", region.LangKZ: "Фитнес", region.LangUZ: "Fitnes"}, Icon: "💪", Count: 12},
	{ID: "8", Slug: "realestate", Name: region.Text{region.LangRU: "Недвижимость", region.LangKZ: "Жылжымайтын мүлік", region.LangUZ: "Ko'chmas mulk"}, Icon: "🏠", Count: 19},
}

// Templates is the full catalog, loaded once and never mutated.
var Templates = []Template{
	{
		ID:   "1",
		Slug: "dental-pro",
		Name: region.Text{region.LangRU: "DentalPro", region.LangKZ: "DentalPro", region.LangUZ: "DentalPro"},
		Description: region.Text{
			region.LangRU: "Современный сайт для стоматологической клиники с онлайн-записью",
			region.LangKZ: "Онлайн жазылуы бар заманауи стоматологиялық клиника сайты",
			region.LangUZ: "Onlayn yozilish bilan zamonaviy stomatologiya klinikasi sayti",
		},
		Category:    "dental",
		PriceUSD:    299,
		OldPriceUSD: 399,
		Image:       "/assets/img/templates/dental-pro.svg",
		Features:    []string{"Онлайн-запись", "Адаптивный дизайн", "SEO-оптимизация"},
		IsHot:       true,
		Rating:      4.9,
		ReviewCount: 47,
	},
	{
		ID:   "2",
		Slug: "autoservice-x",
		Name: region.Text{region.LangRU: "AutoService X", region.LangKZ: "AutoService X", region.LangUZ: "AutoService X"},
		Description: region.Text{
			region.LangRU: "Профессиональный сайт для автосервиса с калькулятором услуг",
			region.LangKZ: "Қызметтер калькуляторы бар кәсіби автосервис сайты",
			region.LangUZ: "Xizmatlar kalkulyatori bilan professional avtoservis sayti",
		},
		Category:    "auto",
		PriceUSD:    249,
		Image:       "/assets/img/templates/autoservice-x.svg",
		Features:    []string{"Калькулятор услуг", "Галерея работ", "Форма заявки"},
		IsNew:       true,
		Rating:      4.8,
		ReviewCount: 32,
	},
	{
		ID:   "3",
		Slug: "resto-elegant",
		Name: region.Text{region.LangRU: "RestoElegant", region.LangKZ: "RestoElegant", region.LangUZ: "RestoElegant"},
		Description: region.Text{
			region.LangRU: "Элегантный сайт для ресторана с меню и бронированием столиков",
			region.LangKZ: "Мәзір мен үстел брондауы бар талғампаз мейрамхана сайты",
			region.LangUZ: "Menyu va stol bron qilish bilan nafis restoran sayti",
		},
		Category:    "restaurant",
		PriceUSD:    349,
		OldPriceUSD: 449,
		Image:       "/assets/img/templates/resto-elegant.svg",
		Features:    []string{"Онлайн-меню", "Бронирование", "Галерея блюд"},
		IsHot:       true,
		Rating:      4.9,
		ReviewCount: 58,
	},
	{
		ID:   "4",
		Slug: "beauty-studio",
		Name: region.Text{region.LangRU: "BeautyStudio", region.LangKZ: "BeautyStudio", region.LangUZ: "BeautyStudio"},
		Description: region.Text{
			region.LangRU: "Стильный сайт для салона красоты с портфолио мастеров",
			region.LangKZ: "Шеберлер портфолиосы бар стильді сұлулық салоны сайты",
			region.LangUZ: "Ustalar portfoliosi bilan zamonaviy go'zallik saloni sayti",
		},
		Category:    "beauty",
		PriceUSD:    279,
		Image:       "/assets/img/templates/beauty-studio.svg",
		Features:    []string{"Портфолио", "Прайс-лист", "Онлайн-запись"},
		Rating:      4.7,
		ReviewCount: 41,
	},
	{
		ID:   "5",
		Slug: "medcenter-plus",
		Name: region.Text{region.LangRU: "MedCenter+", region.LangKZ: "MedCenter+", region.LangUZ: "MedCenter+"},
		Description: region.Text{
			region.LangRU: "Надежный сайт для медицинского центра с записью к врачам",
			region.LangKZ: "Дәрігерлерге жазылуы бар сенімді медициналық орталық сайты",
			region.LangUZ: "Shifokorlarga yozilish bilan ishonchli tibbiyot markazi sayti",
		},
		Category:    "medical",
		PriceUSD:    399,
		Image:       "/assets/img/templates/medcenter-plus.svg",
		Features:    []string{"Запись к врачам", "Каталог услуг", "Личный кабинет"},
		IsNew:       true,
		Rating:      4.8,
		ReviewCount: 29,
	},
	{
		ID:   "6",
		Slug: "fitness-power",
		Name: region.Text{region.LangRU: "FitnessPower", region.LangKZ: "FitnessPower", region.LangUZ: "FitnessPower"},
		Description: region.Text{
			region.LangRU: "Энергичный сайт для фитнес-клуба с расписанием тренировок",
			region.LangKZ: "Жаттығу кестесі бар қуатты фитнес-клуб сайты",
			region.LangUZ: "Mashgʻulotlar jadvali bilan quvvatli fitnes-klub sayti",
		},
		Category:    "fitness",
		PriceUSD:    299,
		OldPriceUSD: 349,
		Image:       "/assets/img/templates/fitness-power.svg",
		Features:    []string{"Расписание", "Тренеры", "Абонементы"},
		Rating:      4.6,
		ReviewCount: 23,
	},
}

// BySlug finds a template by its URL slug.
func BySlug(slug string) (Template, bool) {
	for _, t := range Templates {
		if t.Slug == slug {
			return t, true
		}
	}
	return Template{}, false
}

// CategoryBySlug finds a category by its URL slug.
func CategoryBySlug(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}
