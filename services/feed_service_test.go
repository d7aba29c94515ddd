package services

import (
	"testing"
	"time"

	"thinkscope-cms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFeedService(t *testing.T, articles []models.Article, categories []models.Category) *feedService {
	t.Helper()

	articleRepo := newMockArticleRepo()
	articleRepo.articles = articles
	categoryRepo := newMockCategoryRepo()
	categoryRepo.categories = categories

	return &feedService{
		articleService:  NewArticleService(articleRepo),
		categoryService: NewCategoryService(categoryRepo),
		baseURL:         "https://thinkscope.in",
		siteName:        "ThinkScope",
		now: func() time.Time {
			return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		},
	}
}

func feedFixtures() ([]models.Article, []models.Category) {
	published := time.Date(2025, 6, 14, 8, 30, 0, 0, time.UTC)
	articles := []models.Article{
		{
			ID:               1,
			Title:            "Fusion Milestone Reached",
			Slug:             "fusion-milestone-reached",
			Excerpt:          "A new record in sustained plasma.",
			CategoryID:       1,
			Status:           models.StatusPublished,
			PublishedAt:      &published,
			FeaturedImageURL: "https://cdn.thinkscope.in/fusion.jpg",
		},
		{
			ID:         2,
			Title:      "Quiet Markets Week",
			Slug:       "quiet-markets-week",
			Excerpt:    "Little movement across indices.",
			CategoryID: 2,
			Status:     models.StatusPublished,
		},
	}
	categories := []models.Category{
		{ID: 1, Name: "Technology", Slug: "technology"},
		{ID: 2, Name: "Business", Slug: "business"},
	}
	return articles, categories
}

func TestRSSFeed(t *testing.T) {
	articles, categories := feedFixtures()
	svc := fixedFeedService(t, articles, categories)

	out, err := svc.RSS()
	require.NoError(t, err)
	body := string(out)

	assert.Contains(t, body, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, body, `<rss version="2.0"`)
	assert.Contains(t, body, "<title>Fusion Milestone Reached</title>")
	assert.Contains(t, body, "<link>https://thinkscope.in/blog/fusion-milestone-reached</link>")
	assert.Contains(t, body, "<category>Technology</category>")
	assert.Contains(t, body, "Sat, 14 Jun 2025 08:30:00 +0000")
	assert.Contains(t, body, `<enclosure url="https://cdn.thinkscope.in/fusion.jpg" type="image/jpeg">`)
}

func TestSitemapIncludesStaticAndDynamicPages(t *testing.T) {
	articles, categories := feedFixtures()
	svc := fixedFeedService(t, articles, categories)

	out, err := svc.Sitemap()
	require.NoError(t, err)
	body := string(out)

	assert.Contains(t, body, "<loc>https://thinkscope.in</loc>")
	assert.Contains(t, body, "<loc>https://thinkscope.in/about</loc>")
	assert.Contains(t, body, "<loc>https://thinkscope.in/category/technology</loc>")
	assert.Contains(t, body, "<loc>https://thinkscope.in/blog/fusion-milestone-reached</loc>")
	assert.Contains(t, body, "<changefreq>weekly</changefreq>")
}

func TestNewsSitemap(t *testing.T) {
	articles, categories := feedFixtures()
	svc := fixedFeedService(t, articles, categories)

	out, err := svc.NewsSitemap()
	require.NoError(t, err)
	body := string(out)

	assert.Contains(t, body, `xmlns:news="http://www.google.com/schemas/sitemap-news/0.9"`)
	assert.Contains(t, body, "<news:name>ThinkScope</news:name>")
	assert.Contains(t, body, "<news:title>Fusion Milestone Reached</news:title>")
	assert.Contains(t, body, "<news:publication_date>2025-06-14T08:30:00Z</news:publication_date>")
}

func TestImageSitemapSkipsArticlesWithoutImages(t *testing.T) {
	articles, categories := feedFixtures()
	svc := fixedFeedService(t, articles, categories)

	out, err := svc.ImageSitemap()
	require.NoError(t, err)
	body := string(out)

	assert.Contains(t, body, "<image:loc>https://cdn.thinkscope.in/fusion.jpg</image:loc>")
	assert.NotContains(t, body, "quiet-markets-week")
}
