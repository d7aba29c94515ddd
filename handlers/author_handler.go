package handlers

import (
	"strings"

	"thinkscope-cms/helper"
	"thinkscope-cms/models"
	"thinkscope-cms/services"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	authorService services.AuthorService
	Helper        *helper.HTTPHelper
}

func NewAuthorHandler(authorService services.AuthorService, h *helper.HTTPHelper) *AuthorHandler {
	return &AuthorHandler{authorService: authorService, Helper: h}
}

func (h *AuthorHandler) GetAuthors(c *gin.Context) {
	activeOnly := c.Query("active_only") != "false"
	role := c.Query("role")

	authors, err := h.authorService.GetAll(activeOnly, role)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, authors)
}

func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid author ID")
		return
	}

	author, err := h.authorService.GetByID(id)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, author)
}

func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req models.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		h.Helper.SendBadRequest(c, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	author, err := h.authorService.Create(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, author)
}

func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid author ID")
		return
	}

	var req models.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	author, err := h.authorService.Update(id, req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, author)
}

func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid author ID")
		return
	}

	if err := h.authorService.Delete(id); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendMessage(c, "Author deleted successfully")
}
