package handlers

import (
	"net/http"

	"thinkscope-cms/services"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedService services.FeedService
}

func NewFeedHandler(feedService services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

func (h *FeedHandler) RSS(c *gin.Context) {
	h.serve(c, h.feedService.RSS)
}

func (h *FeedHandler) Sitemap(c *gin.Context) {
	h.serve(c, h.feedService.Sitemap)
}

func (h *FeedHandler) NewsSitemap(c *gin.Context) {
	h.serve(c, h.feedService.NewsSitemap)
}

func (h *FeedHandler) ImageSitemap(c *gin.Context) {
	h.serve(c, h.feedService.ImageSitemap)
}

func (h *FeedHandler) serve(c *gin.Context, render func() ([]byte, error)) {
	body, err := render()
	if err != nil {
		c.String(http.StatusInternalServerError, "error generating feed")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
