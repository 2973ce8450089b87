package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/contracthub-inc/contracthub/internal/shared/logger"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func newTestService(d dialer) *SMTPEmailService {
	return &SMTPEmailService{
		config: SMTPConfig{
			FromAddress: "support@contracthub.test",
			FromName:    "ContractHub",
			BaseURL:     "https://panel.test",
		},
		dialer: d,
	}
}

func TestSMTPEmailService_NotifyReply(t *testing.T) {
	d := &recordingDialer{}
	svc := newTestService(d)

	err := svc.NotifyReply(context.Background(), ReplyNotice{
		To:          "client@example.com",
		DisplayName: "مشتری",
		TicketID:    12,
		TicketTitle: "<b>فاکتور</b>",
		Excerpt:     "پاسخ",
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	msg := d.sent[0]
	assert.Equal(t, []string{"client@example.com"}, msg.GetHeader("To"))
	assert.Len(t, msg.GetHeader("Subject"), 1)
}

func TestSMTPEmailService_RenderReply(t *testing.T) {
	svc := newTestService(&recordingDialer{})

	htmlBody, plainBody, err := svc.renderReply(ReplyNotice{
		DisplayName: "مشتری",
		TicketID:    12,
		TicketTitle: "<b>فاکتور</b>",
		Excerpt:     "پاسخ",
	})
	require.NoError(t, err)

	assert.Contains(t, htmlBody, `href="https://panel.test/panel/tickets/12"`)
	assert.Contains(t, htmlBody, "&lt;b&gt;فاکتور&lt;/b&gt;")
	assert.NotContains(t, htmlBody, "<b>")
	assert.Contains(t, plainBody, "https://panel.test/panel/tickets/12")
	assert.Contains(t, plainBody, "پاسخ")
}

func TestSMTPEmailService_SendFailure(t *testing.T) {
	svc := newTestService(&recordingDialer{err: errors.New("connection refused")})

	err := svc.NotifyReply(context.Background(), ReplyNotice{To: "a@b.c", TicketID: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}

func TestDisabledEmailService(t *testing.T) {
	svc := NewDisabledEmailService(logger.NewNopLogger())
	err := svc.NotifyReply(context.Background(), ReplyNotice{TicketID: 1})
	assert.ErrorIs(t, err, ErrEmailServiceNotConfigured)
}
