package services

import (
	"errors"
	"time"

	"thinkscope-cms/helper"
	"thinkscope-cms/logger"
	"thinkscope-cms/models"
	"thinkscope-cms/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	GetAll(opts models.ArticleListOptions) ([]models.Article, int64, error)
	GetByID(id uint) (*models.Article, error)
	GetBySlug(slug string) (*models.Article, error)
	GetByCategory(categoryID uint, limit int) ([]models.Article, error)
	GetLatest(limit int) ([]models.Article, error)
	GetTrending(limit int) ([]models.Article, error)
	Search(query string, limit int) ([]models.Article, error)
	GetRelated(articleID, categoryID uint, limit int) ([]models.Article, error)
	GetByAuthor(authorID uint, limit int) ([]models.Article, error)
	GetByDateRange(start, end time.Time) ([]models.Article, error)
	IncrementViewCount(id uint)
	Create(req models.CreateArticleRequest) (*models.Article, error)
	Update(id uint, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(id uint) error
	Publish(id uint) (*models.Article, error)
	Unpublish(id uint) (*models.Article, error)
	Archive(id uint) (*models.Article, error)
	CountByCategory(categoryID uint) (int64, error)
	TotalPublished() (int64, error)
}

// sortableColumns lists the columns GetAll accepts for sort_by. The chosen
// value reaches ORDER BY verbatim, so anything else falls back to
// published_at.
var sortableColumns = map[string]bool{
	"published_at": true,
	"created_at":   true,
	"view_count":   true,
	"title":        true,
}

type articleService struct {
	articleRepo repositories.ArticleRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository) ArticleService {
	return &articleService{articleRepo: articleRepo}
}

// GetAll lists articles. Reads default to published-only; callers wanting
// drafts or archived articles must ask for them explicitly.
func (s *articleService) GetAll(opts models.ArticleListOptions) ([]models.Article, int64, error) {
	q := repositories.ListQuery{}

	status := opts.Status
	if status == "" {
		status = string(models.StatusPublished)
	}
	q.Filters = append(q.Filters, repositories.Filter{Field: "status", Op: repositories.OpEq, Value: status})

	if opts.CategoryID > 0 {
		q.Filters = append(q.Filters, repositories.Filter{Field: "category_id", Op: repositories.OpEq, Value: opts.CategoryID})
	}
	if opts.AuthorID > 0 {
		q.Filters = append(q.Filters, repositories.Filter{Field: "author_id", Op: repositories.OpEq, Value: opts.AuthorID})
	}
	if opts.Search != "" {
		q.Filters = append(q.Filters, repositories.Filter{Field: "title", Op: repositories.OpILike, Value: opts.Search})
	}

	q.SortBy = "published_at"
	if sortableColumns[opts.SortBy] {
		q.SortBy = opts.SortBy
	}
	q.SortOrder = opts.SortOrder
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	limit := opts.Limit
	if limit < 1 {
		limit = 10
	}
	q.Limit = limit
	q.Offset = (page - 1) * limit

	total, err := s.articleRepo.Count(q)
	if err != nil {
		return nil, 0, err
	}

	articles, err := s.articleRepo.List(q)
	if err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (s *articleService) GetByID(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) GetBySlug(slug string) (*models.Article, error) {
	articles, err := s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "slug", Op: repositories.OpEq, Value: slug},
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, models.ErrorNotFound{Message: "article not found"}
	}
	return &articles[0], nil
}

func (s *articleService) GetByCategory(categoryID uint, limit int) ([]models.Article, error) {
	return s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "category_id", Op: repositories.OpEq, Value: categoryID},
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
		SortBy:    "published_at",
		SortOrder: "desc",
		Limit:     limit,
	})
}

func (s *articleService) GetLatest(limit int) ([]models.Article, error) {
	return s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
		SortBy:    "published_at",
		SortOrder: "desc",
		Limit:     limit,
	})
}

func (s *articleService) GetTrending(limit int) ([]models.Article, error) {
	return s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
		SortBy:    "view_count",
		SortOrder: "desc",
		Limit:     limit,
	})
}

// Search matches the query against title or excerpt.
func (s *articleService) Search(query string, limit int) ([]models.Article, error) {
	return s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
		Or: []repositories.Filter{
			{Field: "title", Op: repositories.OpILike, Value: query},
			{Field: "excerpt", Op: repositories.OpILike, Value: query},
		},
		SortBy:    "published_at",
		SortOrder: "desc",
		Limit:     limit,
	})
}

// GetRelated returns recent published articles from the same category,
// excluding the article itself. Neighbor query by recency, nothing smarter.
func (s *articleService) GetRelated(articleID, categoryID uint, limit int) ([]models.Article, error) {
	return s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "category_id", Op: repositories.OpEq, Value: categoryID},
			{Field: "id", Op: repositories.OpNeq, Value: articleID},
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
		SortBy:    "published_at",
		SortOrder: "desc",
		Limit:     limit,
	})
}

func (s *articleService) GetByAuthor(authorID uint, limit int) ([]models.Article, error) {
	return s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "author_id", Op: repositories.OpEq, Value: authorID},
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
		SortBy:    "published_at",
		SortOrder: "desc",
		Limit:     limit,
	})
}

func (s *articleService) GetByDateRange(start, end time.Time) ([]models.Article, error) {
	return s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "published_at", Op: repositories.OpGte, Value: start},
			{Field: "published_at", Op: repositories.OpLte, Value: end},
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
		SortBy:    "published_at",
		SortOrder: "desc",
	})
}

// IncrementViewCount must never fail a page render, so errors are logged
// and swallowed.
func (s *articleService) IncrementViewCount(id uint) {
	if err := s.articleRepo.IncrementViewCount(id); err != nil {
		logger.Error("failed to increment view count", err)
	}
}

func (s *articleService) Create(req models.CreateArticleRequest) (*models.Article, error) {
	slug := req.Slug
	if slug == "" {
		slug = helper.GenerateSlug(req.Title)
	}

	existing, err := s.articleRepo.List(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "slug", Op: repositories.OpEq, Value: slug},
		},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, models.ErrorConflict{Message: "an article with this slug already exists"}
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	article := &models.Article{
		Title:            req.Title,
		Slug:             slug,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		CategoryID:       req.CategoryID,
		AuthorID:         req.AuthorID,
		FeaturedImageURL: req.FeaturedImageURL,
		FeaturedImageAlt: req.FeaturedImageAlt,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		MetaKeywords:     req.MetaKeywords,
		ReadTime:         req.ReadTime,
		Status:           status,
	}

	if article.FeaturedImageAlt == "" {
		article.FeaturedImageAlt = req.Title
	}
	if article.MetaTitle == "" {
		article.MetaTitle = req.Title
	}
	if article.MetaDescription == "" {
		article.MetaDescription = req.Excerpt
	}
	if article.ReadTime == "" {
		article.ReadTime = "5 min read"
	}
	if status == models.StatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.GetByID(article.ID)
}

func (s *articleService) Update(id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	fields := map[string]interface{}{}

	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Slug != nil {
		fields["slug"] = *req.Slug
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.CategoryID != nil {
		fields["category_id"] = *req.CategoryID
	}
	if req.AuthorID != nil {
		fields["author_id"] = *req.AuthorID
	}
	if req.FeaturedImageURL != nil {
		fields["featured_image_url"] = *req.FeaturedImageURL
	}
	if req.FeaturedImageAlt != nil {
		fields["featured_image_alt"] = *req.FeaturedImageAlt
	}
	if req.MetaTitle != nil {
		fields["meta_title"] = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		fields["meta_description"] = *req.MetaDescription
	}
	if req.MetaKeywords != nil {
		fields["meta_keywords"] = *req.MetaKeywords
	}
	if req.ReadTime != nil {
		fields["read_time"] = *req.ReadTime
	}
	if req.Status != nil {
		fields["status"] = *req.Status
		if *req.Status == models.StatusPublished {
			fields["published_at"] = time.Now()
		}
	}

	if len(fields) == 0 {
		return nil, models.ErrorValidation{Message: "no fields to update"}
	}

	return s.updates(id, fields)
}

func (s *articleService) Delete(id uint) error {
	err := s.articleRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrorNotFound{Message: "article not found"}
	}
	return err
}

func (s *articleService) Publish(id uint) (*models.Article, error) {
	return s.updates(id, map[string]interface{}{
		"status":       models.StatusPublished,
		"published_at": time.Now(),
	})
}

func (s *articleService) Unpublish(id uint) (*models.Article, error) {
	return s.updates(id, map[string]interface{}{
		"status": models.StatusDraft,
	})
}

func (s *articleService) Archive(id uint) (*models.Article, error) {
	return s.updates(id, map[string]interface{}{
		"status": models.StatusArchived,
	})
}

func (s *articleService) CountByCategory(categoryID uint) (int64, error) {
	return s.articleRepo.Count(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "category_id", Op: repositories.OpEq, Value: categoryID},
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
	})
}

func (s *articleService) TotalPublished() (int64, error) {
	return s.articleRepo.Count(repositories.ListQuery{
		Filters: []repositories.Filter{
			{Field: "status", Op: repositories.OpEq, Value: models.StatusPublished},
		},
	})
}

func (s *articleService) updates(id uint, fields map[string]interface{}) (*models.Article, error) {
	article, err := s.articleRepo.Updates(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "article not found"}
		}
		return nil, err
	}
	return article, nil
}
