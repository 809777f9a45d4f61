package cms

import "time"

// Built-in posts keep /blog useful before any markdown content ships.
// Bodies are markdown and go through the same rendering pipeline.
var fallbackPosts = []fallbackPost{
	{
		slug:     "kak-vybrat-sait-dlya-biznesa",
		title:    "Как выбрать идеальный сайт для вашего бизнеса",
		excerpt:  "Подробное руководство по выбору шаблона сайта, который идеально подойдет для вашей ниши и целей.",
		category: "Гайды",
		image:    "/assets/img/blog/choose-template.svg",
		date:     time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC),
		body: `Правильный шаблон экономит недели разработки. Перед покупкой ответьте на три вопроса.

## Какая у сайта главная задача

Продажи, заявки или портфолио. Для продаж нужен каталог и корзина, для заявок достаточно лендинга с формой, портфолио требует сильной галереи.

## Кто ваша аудитория

Посмотрите, с каких устройств приходят клиенты. Если больше половины трафика мобильные, проверяйте шаблон в первую очередь на телефоне.

## Что должно быть внутри

- адаптивная верстка
- формы обратной связи
- интеграция с мессенджерами
- базовая SEO-разметка

Если сомневаетесь между двумя шаблонами, берите тот, где меньше лишних блоков. Убрать секцию проще, чем дорисовать новую.`,
	},
	{
		slug:     "trendy-veb-dizaina-2025",
		title:    "Тренды веб-дизайна 2025 года",
		excerpt:  "Какие дизайнерские решения будут популярны в следующем году и как их использовать.",
		category: "Дизайн",
		image:    "/assets/img/blog/design-trends.svg",
		date:     time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC),
		body: `Мода в вебе меняется быстро, но несколько направлений закрепятся надолго.

## Крупная типографика

Заголовки занимают пол-экрана и работают вместо баннеров. Это дешево в поддержке и отлично читается на мобильных.

## Спокойные цвета

Кислотные градиенты уходят. Вместо них приглушенные палитры с одним ярким акцентом на кнопках.

## Меньше анимации

Анимация остается там, где она помогает понять интерфейс. Декоративные эффекты при скролле пользователи все чаще воспринимают как шум.

Главный совет: не внедряйте тренд ради тренда. Сначала скорость загрузки и понятная структура, потом украшения.`,
	},
	{
		slug:     "seo-optimizaciya-bazovye-principy",
		title:    "SEO-оптимизация: базовые принципы",
		excerpt:  "Узнайте, как сделать ваш сайт видимым для поисковых систем с первого дня.",
		category: "SEO",
		image:    "/assets/img/blog/seo-basics.svg",
		date:     time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
		body: `Поисковый трафик начинается с простых вещей, которые легко сделать при запуске.

## Заголовки и описания

У каждой страницы свой title до 60 символов и description до 160. Не дублируйте их между страницами.

## Структура адресов

Человекочитаемые адреса вида /catalog или /blog/nazvanie-stati ранжируются лучше и не ломаются при редизайне.

## Скорость

Сожмите изображения и не подключайте скрипты, которыми не пользуетесь. Медленный сайт теряет позиции независимо от контента.

## Локальность

Если работаете в конкретном городе, укажите его в текстах и подключите разметку LocalBusiness. Так вы попадете в локальную выдачу раньше конкурентов.`,
	},
}

type fallbackPost struct {
	slug     string
	title    string
	excerpt  string
	category string
	image    string
	date     time.Time
	body     string
}

func (f fallbackPost) toPost(lang string) Post {
	return Post{
		Slug:        f.slug,
		Lang:        lang,
		Title:       f.title,
		Excerpt:     f.excerpt,
		Category:    f.category,
		Image:       f.image,
		Body:        RenderMarkdown(f.body),
		PublishedAt: f.date,
	}
}

// fallbackPostsForLang returns the built-in posts. They exist in Russian
// only; other languages receive the Russian text.
func fallbackPostsForLang(lang string) []Post {
	posts := make([]Post, 0, len(fallbackPosts))
	for _, f := range fallbackPosts {
		posts = append(posts, f.toPost(lang))
	}
	return posts
}

func fallbackPostBySlug(slug, lang string) (Post, error) {
	for _, f := range fallbackPosts {
		if f.slug == slug {
			return f.toPost(lang), nil
		}
	}
	return Post{}, ErrNotFound
}
