package handlers

import (
	"strings"

	"thinkscope-cms/helper"
	"thinkscope-cms/models"
	"thinkscope-cms/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService, h *helper.HTTPHelper) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, Helper: h}
}

// GetCategories serves the public listing: active categories only.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll(true)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, categories)
}

// GetAllCategories serves the admin listing, inactive included.
func (h *CategoryHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAll(false)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Slug == "" {
		missing = append(missing, "slug")
	}
	if len(missing) > 0 {
		h.Helper.SendBadRequest(c, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	category, err := h.categoryService.Create(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID")
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	category, err := h.categoryService.Update(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.Delete(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendMessage(c, "Category deleted successfully")
}

func (h *CategoryHandler) ReorderCategories(c *gin.Context) {
	var req models.ReorderCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if len(req.CategoryIDs) == 0 {
		h.Helper.SendBadRequest(c, "Invalid category IDs array")
		return
	}

	if err := h.categoryService.Reorder(req.CategoryIDs); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendMessage(c, "Categories reordered successfully")
}
