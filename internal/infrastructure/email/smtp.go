package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/contracthub-inc/contracthub/internal/shared/config"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

var ErrEmailServiceNotConfigured = errors.New("email service is not configured")

// ReplyNotice describes a staff answer the ticket owner should hear about.
type ReplyNotice struct {
	To          string
	DisplayName string
	TicketID    uint
	TicketTitle string
	Excerpt     string
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // used for links back to the panel
}

func NewSMTPConfig(cfg *config.EmailConfig, baseURL string) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
		BaseURL:     strings.TrimRight(baseURL, "/"),
	}
}

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer dialer
}

func NewSMTPEmailService(cfg SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

var replyTemplate = template.Must(template.New("reply").Parse(`<html>
<body dir="rtl">
	<p>{{.DisplayName}} عزیز،</p>
	<p>به تیکت «{{.TicketTitle}}» پاسخ داده شد:</p>
	<blockquote>{{.Excerpt}}</blockquote>
	<p><a href="{{.Link}}">مشاهده تیکت</a></p>
</body>
</html>`))

func (s *SMTPEmailService) ticketLink(ticketID uint) string {
	return fmt.Sprintf("%s/panel/tickets/%d", s.config.BaseURL, ticketID)
}

func (s *SMTPEmailService) NotifyReply(_ context.Context, notice ReplyNotice) error {
	htmlBody, plainBody, err := s.renderReply(notice)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("پاسخ جدید به تیکت #%d", notice.TicketID)
	return s.sendEmail(notice.To, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) renderReply(notice ReplyNotice) (string, string, error) {
	link := s.ticketLink(notice.TicketID)

	var html bytes.Buffer
	err := replyTemplate.Execute(&html, struct {
		ReplyNotice
		Link string
	}{notice, link})
	if err != nil {
		return "", "", fmt.Errorf("failed to render reply email: %w", err)
	}

	plain := fmt.Sprintf("%s عزیز،\n\nبه تیکت «%s» پاسخ داده شد:\n\n%s\n\n%s\n",
		notice.DisplayName, notice.TicketTitle, notice.Excerpt, link)

	return html.String(), plain, nil
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// DisabledEmailService stands in when email.enabled is false.
type DisabledEmailService struct {
	logger logger.Interface
}

func NewDisabledEmailService(log logger.Interface) *DisabledEmailService {
	return &DisabledEmailService{logger: log}
}

func (d *DisabledEmailService) NotifyReply(_ context.Context, notice ReplyNotice) error {
	d.logger.Debugw("email disabled, reply notice dropped", "ticket_id", notice.TicketID)
	return ErrEmailServiceNotConfigured
}
