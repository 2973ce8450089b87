package ticket

import (
	"time"
	"unicode/utf8"

	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/utils/setutil"
)

const maxMessageLength = 10000

// Message is one entry of a ticket thread. Apart from the one-way read flag
// it is immutable once posted.
type Message struct {
	id          string
	senderID    uint
	content     string
	createdAt   time.Time
	attachments []uint
	isRead      bool
}

func NewMessage(messageID string, senderID uint, content string, attachments []uint, now time.Time) (*Message, error) {
	if messageID == "" {
		return nil, errors.NewValidationError("message ID is required")
	}
	if senderID == 0 {
		return nil, errors.NewValidationError("sender is required")
	}
	if content == "" {
		return nil, errors.NewValidationError("message content cannot be empty")
	}
	if utf8.RuneCountInString(content) > maxMessageLength {
		return nil, errors.NewValidationError("message content is too long")
	}

	return &Message{
		id:          messageID,
		senderID:    senderID,
		content:     content,
		createdAt:   now,
		attachments: setutil.Unique(attachments),
		isRead:      false,
	}, nil
}

// ReconstructMessage rebuilds a message from storage without validation;
// stored rows are trusted after the decoder has defaulted bad fields.
func ReconstructMessage(messageID string, senderID uint, content string, createdAt time.Time, attachments []uint, isRead bool) *Message {
	if attachments == nil {
		attachments = []uint{}
	}
	return &Message{
		id:          messageID,
		senderID:    senderID,
		content:     content,
		createdAt:   createdAt,
		attachments: attachments,
		isRead:      isRead,
	}
}

func (m *Message) ID() string {
	return m.id
}

func (m *Message) SenderID() uint {
	return m.senderID
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) Attachments() []uint {
	out := make([]uint, len(m.attachments))
	copy(out, m.attachments)
	return out
}

func (m *Message) IsRead() bool {
	return m.isRead
}

// markRead flips the read flag and reports whether it changed.
func (m *Message) markRead() bool {
	if m.isRead {
		return false
	}
	m.isRead = true
	return true
}

