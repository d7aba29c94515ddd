package handlers

import (
	"thinkscope-cms/helper"
	"thinkscope-cms/models"
	"thinkscope-cms/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gopkg.in/go-playground/validator.v9"
)

type ContactHandler struct {
	mailService services.MailService
	Helper      *helper.HTTPHelper
}

func NewContactHandler(mailService services.MailService, h *helper.HTTPHelper) *ContactHandler {
	return &ContactHandler{mailService: mailService, Helper: h}
}

// SubmitContact validates the form, relays it over SMTP and hands back a
// reference id the sender can quote in follow-ups.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.Helper.Validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, validationErrors)
			return
		}
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	if err := h.mailService.SendContactMessage(req); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, gin.H{
		"message":   "Message sent successfully",
		"reference": uuid.NewString(),
	})
}
