package services

import (
	"fmt"
	"net/smtp"

	"thinkscope-cms/config"
	"thinkscope-cms/logger"
	"thinkscope-cms/models"
)

type MailService interface {
	SendContactMessage(req models.ContactRequest) error
}

type smtpMailService struct {
	addr string
	auth smtp.Auth
	from string
	to   string
}

func NewMailService(cfg *config.Config) MailService {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	return &smtpMailService{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		auth: auth,
		from: cfg.SMTPUser,
		to:   cfg.ContactEmail,
	}
}

func (s *smtpMailService) SendContactMessage(req models.ContactRequest) error {
	if s.to == "" || s.addr == ":587" {
		return models.ErrorInternalServer{Message: "contact mail is not configured"}
	}

	subject := "Contact Form: " + req.Subject
	body := fmt.Sprintf(`New contact form submission

From: %s
Email: %s
Subject: %s

%s
`, req.Name, req.Email, req.Subject, req.Message)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nReply-To: %s\r\nSubject: %s\r\n\r\n%s",
		s.from, s.to, req.Email, subject, body))

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{s.to}, msg); err != nil {
		logger.Error("failed to send contact email", err)
		return models.ErrorInternalServer{Message: "failed to send message, please try again later"}
	}

	return nil
}
