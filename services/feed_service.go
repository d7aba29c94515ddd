package services

import (
	"encoding/xml"
	"time"
)

// FeedService renders the SEO artifacts: RSS 2.0, the sitemap, the Google
// News sitemap and the image sitemap.
type FeedService interface {
	RSS() ([]byte, error)
	Sitemap() ([]byte, error)
	NewsSitemap() ([]byte, error)
	ImageSitemap() ([]byte, error)
}

type feedService struct {
	articleService  ArticleService
	categoryService CategoryService
	baseURL         string
	siteName        string
	now             func() time.Time
}

func NewFeedService(articleService ArticleService, categoryService CategoryService, baseURL string) FeedService {
	return &feedService{
		articleService:  articleService,
		categoryService: categoryService,
		baseURL:         baseURL,
		siteName:        "ThinkScope",
		now:             time.Now,
	}
}

type rssEnclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Link        string        `xml:"link"`
	GUID        string        `xml:"guid"`
	Description string        `xml:"description"`
	PubDate     string        `xml:"pubDate"`
	Category    string        `xml:"category"`
	Author      string        `xml:"author"`
	Enclosure   *rssEnclosure `xml:"enclosure,omitempty"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	AtomLink      atomLink  `xml:"atom:link"`
	Items         []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	XMLNSAtom string     `xml:"xmlns:atom,attr"`
	Channel   rssChannel `xml:"channel"`
}

func (s *feedService) RSS() ([]byte, error) {
	articles, err := s.articleService.GetLatest(50)
	if err != nil {
		return nil, err
	}

	categoryNames, err := s.categoryNames()
	if err != nil {
		return nil, err
	}

	items := make([]rssItem, 0, len(articles))
	for _, article := range articles {
		item := rssItem{
			Title:       article.Title,
			Link:        s.baseURL + "/blog/" + article.Slug,
			GUID:        s.baseURL + "/blog/" + article.Slug,
			Description: article.Excerpt,
			Category:    categoryNames[article.CategoryID],
			Author:      s.siteName + " Team",
		}
		if item.Category == "" {
			item.Category = "Uncategorized"
		}
		if article.PublishedAt != nil {
			item.PubDate = article.PublishedAt.UTC().Format(time.RFC1123Z)
		}
		if article.FeaturedImageURL != "" {
			item.Enclosure = &rssEnclosure{URL: article.FeaturedImageURL, Type: "image/jpeg"}
		}
		items = append(items, item)
	}

	feed := rssFeed{
		Version:   "2.0",
		XMLNSAtom: "http://www.w3.org/2005/Atom",
		Channel: rssChannel{
			Title:         s.siteName + " - Latest News and Updates",
			Link:          s.baseURL,
			Description:   "Your trusted source for breaking news, technology updates, world affairs, education, lifestyle, and sports.",
			Language:      "en-US",
			LastBuildDate: s.now().UTC().Format(time.RFC1123Z),
			AtomLink: atomLink{
				Href: s.baseURL + "/feed.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: items,
		},
	}

	return marshalXML(feed)
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (s *feedService) Sitemap() ([]byte, error) {
	now := s.now().UTC().Format("2006-01-02")

	urls := []sitemapURL{
		{Loc: s.baseURL, LastMod: now, ChangeFreq: "daily", Priority: 1.0},
		{Loc: s.baseURL + "/categories", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
		{Loc: s.baseURL + "/blog", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
		{Loc: s.baseURL + "/about", LastMod: now, ChangeFreq: "monthly", Priority: 0.7},
		{Loc: s.baseURL + "/contact", LastMod: now, ChangeFreq: "monthly", Priority: 0.7},
		{Loc: s.baseURL + "/privacy", LastMod: now, ChangeFreq: "yearly", Priority: 0.5},
		{Loc: s.baseURL + "/terms", LastMod: now, ChangeFreq: "yearly", Priority: 0.5},
	}

	categories, err := s.categoryService.GetAll(true)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		urls = append(urls, sitemapURL{
			Loc:        s.baseURL + "/category/" + category.Slug,
			LastMod:    category.UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "daily",
			Priority:   0.8,
		})
	}

	articles, err := s.articleService.GetLatest(10000)
	if err != nil {
		return nil, err
	}
	for _, article := range articles {
		urls = append(urls, sitemapURL{
			Loc:        s.baseURL + "/blog/" + article.Slug,
			LastMod:    article.UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.6,
		})
	}

	return marshalXML(sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	})
}

type newsPublication struct {
	Name     string `xml:"news:name"`
	Language string `xml:"news:language"`
}

type newsNews struct {
	Publication     newsPublication `xml:"news:publication"`
	PublicationDate string          `xml:"news:publication_date"`
	Title           string          `xml:"news:title"`
}

type newsURL struct {
	Loc  string   `xml:"loc"`
	News newsNews `xml:"news:news"`
}

type newsURLSet struct {
	XMLName   xml.Name  `xml:"urlset"`
	XMLNS     string    `xml:"xmlns,attr"`
	XMLNSNews string    `xml:"xmlns:news,attr"`
	URLs      []newsURL `xml:"url"`
}

// NewsSitemap lists published articles from the last two days, the window
// Google News indexes.
func (s *feedService) NewsSitemap() ([]byte, error) {
	end := s.now()
	start := end.AddDate(0, 0, -2)

	articles, err := s.articleService.GetByDateRange(start, end)
	if err != nil {
		return nil, err
	}

	urls := make([]newsURL, 0, len(articles))
	for _, article := range articles {
		entry := newsURL{
			Loc: s.baseURL + "/blog/" + article.Slug,
			News: newsNews{
				Publication: newsPublication{Name: s.siteName, Language: "en"},
				Title:       article.Title,
			},
		}
		if article.PublishedAt != nil {
			entry.News.PublicationDate = article.PublishedAt.UTC().Format(time.RFC3339)
		}
		urls = append(urls, entry)
	}

	return marshalXML(newsURLSet{
		XMLNS:     "http://www.sitemaps.org/schemas/sitemap/0.9",
		XMLNSNews: "http://www.google.com/schemas/sitemap-news/0.9",
		URLs:      urls,
	})
}

type imageImage struct {
	Loc     string `xml:"image:loc"`
	Title   string `xml:"image:title"`
	Caption string `xml:"image:caption"`
}

type imageURL struct {
	Loc   string     `xml:"loc"`
	Image imageImage `xml:"image:image"`
}

type imageURLSet struct {
	XMLName    xml.Name   `xml:"urlset"`
	XMLNS      string     `xml:"xmlns,attr"`
	XMLNSImage string     `xml:"xmlns:image,attr"`
	URLs       []imageURL `xml:"url"`
}

func (s *feedService) ImageSitemap() ([]byte, error) {
	articles, err := s.articleService.GetLatest(1000)
	if err != nil {
		return nil, err
	}

	urls := make([]imageURL, 0, len(articles))
	for _, article := range articles {
		if article.FeaturedImageURL == "" {
			continue
		}
		urls = append(urls, imageURL{
			Loc: s.baseURL + "/blog/" + article.Slug,
			Image: imageImage{
				Loc:     article.FeaturedImageURL,
				Title:   article.Title,
				Caption: article.Excerpt,
			},
		})
	}

	return marshalXML(imageURLSet{
		XMLNS:      "http://www.sitemaps.org/schemas/sitemap/0.9",
		XMLNSImage: "http://www.google.com/schemas/sitemap-image/1.1",
		URLs:       urls,
	})
}

func (s *feedService) categoryNames() (map[uint]string, error) {
	categories, err := s.categoryService.GetAll(false)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	return names, nil
}

func marshalXML(v interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
