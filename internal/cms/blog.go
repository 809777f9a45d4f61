// Package cms serves the blog from local markdown files with YAML front
// matter, with built-in posts as a fallback when no content directory is
// deployed.
package cms

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a post cannot be located.
var ErrNotFound = errors.New("cms: not found")

// Post is a localized blog article.
type Post struct {
	Slug        string
	Lang        string
	Title       string
	Excerpt     string
	Category    string
	Image       string
	Body        template.HTML
	PublishedAt time.Time
}

type postFrontMatter struct {
	Title       string `yaml:"title"`
	Excerpt     string `yaml:"excerpt"`
	Category    string `yaml:"category"`
	Image       string `yaml:"image"`
	PublishedAt string `yaml:"published_at"`
}

const defaultBlogDir = "content/blog"

// Library reads posts from <dir>/<lang>/<slug>.md.
type Library struct {
	dir string
}

// NewLibrary builds a Library rooted at dir (default content/blog).
func NewLibrary(dir string) *Library {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultBlogDir
	}
	return &Library{dir: dir}
}

var (
	postCache = struct {
		mu    sync.RWMutex
		items map[string]postCacheEntry
	}{
		items: map[string]postCacheEntry{},
	}
	postCacheTTL = 5 * time.Minute
)

type postCacheEntry struct {
	post    Post
	expires time.Time
}

// SetCacheDuration overrides the in-memory cache duration (primarily for tests).
func SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	postCacheTTL = d
}

// List returns posts for a language, newest first. Languages without their
// own content fall back to Russian.
func (l *Library) List(lang string) []Post {
	lang = normalizeLang(lang)
	posts := l.readDir(lang)
	if len(posts) == 0 && lang != "ru" {
		posts = l.readDir("ru")
	}
	if len(posts) == 0 {
		posts = fallbackPostsForLang(lang)
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts
}

// Get returns one post with its rendered body.
func (l *Library) Get(slug, lang string) (Post, error) {
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}
	lang = normalizeLang(lang)

	cacheKey := l.dir + "|" + lang + "|" + slug
	if p, ok := cachedPost(cacheKey); ok {
		return p, nil
	}

	candidates := []string{lang}
	if lang != "ru" {
		candidates = append(candidates, "ru")
	}
	for _, candidate := range candidates {
		p, err := l.readPost(slug, candidate)
		if err == nil {
			storePost(cacheKey, p)
			return p, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Post{}, err
		}
	}
	if p, err := fallbackPostBySlug(slug, lang); err == nil {
		storePost(cacheKey, p)
		return p, nil
	}
	return Post{}, ErrNotFound
}

func (l *Library) readDir(lang string) []Post {
	dir := filepath.Join(l.dir, lang)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var posts []Post
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(e.Name(), ".md")
		p, err := l.readPost(slug, lang)
		if err != nil {
			continue
		}
		posts = append(posts, p)
	}
	return posts
}

func (l *Library) readPost(slug, lang string) (Post, error) {
	file := filepath.Join(l.dir, lang, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := postFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Post{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}
	p := Post{
		Slug:        slug,
		Lang:        lang,
		Title:       strings.TrimSpace(front.Title),
		Excerpt:     strings.TrimSpace(front.Excerpt),
		Category:    strings.TrimSpace(front.Category),
		Image:       strings.TrimSpace(front.Image),
		Body:        RenderMarkdown(body),
		PublishedAt: parseDate(front.PublishedAt),
	}
	if p.Title == "" {
		return Post{}, ErrNotFound
	}
	return p, nil
}

// RenderMarkdown converts markdown to sanitized HTML for templates.
func RenderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		// sanitized plain text is better than nothing
		return template.HTML(template.HTMLEscapeString(src))
	}
	safe := bluemonday.UGCPolicy().SanitizeBytes(buf.Bytes())
	return template.HTML(safe)
}

func splitFrontMatter(src string) (string, string) {
	lines := strings.Split(src, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", src
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n")
		}
	}
	return "", src
}

func sanitizeSlug(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, r := range slug {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			continue
		}
		return ""
	}
	return slug
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "ru", "kz", "uz":
		return lang
	}
	return "ru"
}

func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	layouts := []string{time.RFC3339, "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func cachedPost(key string) (Post, bool) {
	postCache.mu.RLock()
	entry, ok := postCache.items[key]
	postCache.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return Post{}, false
	}
	return entry.post, true
}

func storePost(key string, p Post) {
	postCache.mu.Lock()
	defer postCache.mu.Unlock()
	postCache.items[key] = postCacheEntry{post: p, expires: time.Now().Add(postCacheTTL)}
}

// month names for display dates, indexed by time.Month-1
var monthNames = map[string][12]string{
	"ru": {"января", "февраля", "марта", "апреля", "мая", "июня", "июля", "августа", "сентября", "октября", "ноября", "декабря"},
	"kz": {"қаңтар", "ақпан", "наурыз", "сәуір", "мамыр", "маусым", "шілде", "тамыз", "қыркүйек", "қазан", "қараша", "желтоқсан"},
	"uz": {"yanvar", "fevral", "mart", "aprel", "may", "iyun", "iyul", "avgust", "sentyabr", "oktyabr", "noyabr", "dekabr"},
}

// FormatDate renders a publish date the way the site shows it, e.g.
// "25 декабря 2024".
func FormatDate(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	names := monthNames[normalizeLang(lang)]
	return fmt.Sprintf("%d %s %d", t.Day(), names[t.Month()-1], t.Year())
}
