package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"thinkscope-cms/helper"
	"thinkscope-cms/models"
	"thinkscope-cms/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var opts models.ArticleListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if opts.Page == 0 {
		opts.Page = 1
	}
	if opts.Limit == 0 {
		opts.Limit = 10
	}

	articles, total, err := h.articleService.GetAll(opts)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       articles,
		"pagination": h.Helper.GeneratePaging(opts.Page, opts.Limit, total),
	})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	missing := missingArticleFields(req)
	if len(missing) > 0 {
		h.Helper.SendBadRequest(c, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	article, err := h.articleService.Create(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, article)
}

func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	article, err := h.articleService.GetBySlug(c.Param("slug"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

func (h *ArticleHandler) GetLatest(c *gin.Context) {
	articles, err := h.articleService.GetLatest(parseLimit(c, 10))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, articles)
}

func (h *ArticleHandler) GetTrending(c *gin.Context) {
	articles, err := h.articleService.GetTrending(parseLimit(c, 10))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, articles)
}

func (h *ArticleHandler) GetRelated(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	article, err := h.articleService.GetByID(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	related, err := h.articleService.GetRelated(article.ID, article.CategoryID, parseLimit(c, 6))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, related)
}

// IncrementView bumps the view counter. Failures never reach the caller.
func (h *ArticleHandler) IncrementView(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	h.articleService.IncrementViewCount(id)
	h.Helper.SendMessage(c, "ok")
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.Update(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	if err := h.articleService.Delete(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendMessage(c, "Article deleted successfully")
}

func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	h.setStatus(c, h.articleService.Publish)
}

func (h *ArticleHandler) UnpublishArticle(c *gin.Context) {
	h.setStatus(c, h.articleService.Unpublish)
}

func (h *ArticleHandler) ArchiveArticle(c *gin.Context) {
	h.setStatus(c, h.articleService.Archive)
}

func (h *ArticleHandler) setStatus(c *gin.Context, op func(uint) (*models.Article, error)) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid article ID")
		return
	}

	article, err := op(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, article)
}

func missingArticleFields(req models.CreateArticleRequest) []string {
	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Slug == "" {
		missing = append(missing, "slug")
	}
	if req.Excerpt == "" {
		missing = append(missing, "excerpt")
	}
	if req.Content == "" {
		missing = append(missing, "content")
	}
	if req.CategoryID == 0 {
		missing = append(missing, "category_id")
	}
	if req.FeaturedImageURL == "" {
		missing = append(missing, "featured_image_url")
	}
	return missing
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseLimit(c *gin.Context, fallback int) int {
	raw := c.Query("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}
