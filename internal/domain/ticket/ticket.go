package ticket

import (
	"fmt"
	"slices"
	"time"
	"unicode/utf8"

	vo "github.com/contracthub-inc/contracthub/internal/domain/ticket/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/biztime"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
)

const (
	maxTitleLength = 200
	// idAttempts bounds regeneration when a fresh message ID collides.
	idAttempts = 5
)

// MessageIDGenerator mints candidate message IDs.
type MessageIDGenerator func() (string, error)

// Ticket is a support conversation between its owner and staff.
// version is the value read from storage and is compared on every write.
type Ticket struct {
	id        uint
	title     string
	ownerID   uint
	status    vo.TicketStatus
	messages  []*Message
	version   int
	createdAt time.Time
	updatedAt time.Time
	events    []MessagePostedEvent
}

// NewTicket opens a ticket with one unread message written by the owner.
func NewTicket(ownerID uint, title, initialContent string, attachments []uint, gen MessageIDGenerator) (*Ticket, error) {
	if ownerID == 0 {
		return nil, errors.NewValidationError("ticket owner is required")
	}
	if title == "" {
		return nil, errors.NewValidationError("ticket title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return nil, errors.NewValidationError(fmt.Sprintf("ticket title exceeds %d characters", maxTitleLength))
	}

	now := biztime.NowUTC()
	t := &Ticket{
		title:     title,
		ownerID:   ownerID,
		status:    vo.StatusOpen,
		messages:  []*Message{},
		createdAt: now,
		updatedAt: now,
	}

	if _, err := t.AppendMessage(ownerID, initialContent, attachments, gen); err != nil {
		return nil, err
	}
	t.events = nil

	return t, nil
}

func ReconstructTicket(
	id uint,
	title string,
	ownerID uint,
	status vo.TicketStatus,
	messages []*Message,
	version int,
	createdAt, updatedAt time.Time,
) *Ticket {
	if messages == nil {
		messages = []*Message{}
	}
	if !status.IsValid() {
		status = vo.StatusOpen
	}
	return &Ticket{
		id:        id,
		title:     title,
		ownerID:   ownerID,
		status:    status,
		messages:  messages,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// Messages returns the thread in insertion order.
func (t *Ticket) Messages() []*Message {
	out := make([]*Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// SortedMessages returns the thread newest first. Messages sharing a
// timestamp keep the later-posted one first.
func (t *Ticket) SortedMessages() []*Message {
	out := t.Messages()
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b *Message) int {
		return b.createdAt.Compare(a.createdAt)
	})
	return out
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetVersion records the version stored by the repository after a write.
func (t *Ticket) SetVersion(version int) {
	t.version = version
}

// AppendMessage posts a message and applies the reply transitions: the owner
// writing (re)opens the ticket from any state, anybody else answering a ticket
// that is open or in progress marks it answered. Closed is never reached here.
func (t *Ticket) AppendMessage(senderID uint, content string, attachments []uint, gen MessageIDGenerator) (*Message, error) {
	messageID, err := t.freshMessageID(gen)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	msg, err := NewMessage(messageID, senderID, content, attachments, now)
	if err != nil {
		return nil, err
	}

	t.messages = append(t.messages, msg)

	switch {
	case senderID == t.ownerID:
		t.status = vo.StatusOpen
	case t.status.AwaitsAnswer():
		t.status = vo.StatusAnswered
	}
	t.updatedAt = now

	t.events = append(t.events, NewMessagePostedEvent(t, msg))

	return msg, nil
}

func (t *Ticket) freshMessageID(gen MessageIDGenerator) (string, error) {
	for i := 0; i < idAttempts; i++ {
		candidate, err := gen()
		if err != nil {
			return "", fmt.Errorf("failed to generate message ID: %w", err)
		}
		if t.findMessage(candidate) == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique message ID after %d attempts", idAttempts)
}

func (t *Ticket) findMessage(messageID string) *Message {
	for _, m := range t.messages {
		if m.id == messageID {
			return m
		}
	}
	return nil
}

// MarkMessageRead flips one message to read. Marking an already read message
// succeeds and reports changed=false.
func (t *Ticket) MarkMessageRead(messageID string) (bool, error) {
	m := t.findMessage(messageID)
	if m == nil {
		return false, errors.NewNotFoundError("message not found", messageID)
	}
	return m.markRead(), nil
}

// MarkAllReadExcept flips every unread message not written by viewerID and
// returns how many changed.
func (t *Ticket) MarkAllReadExcept(viewerID uint) int {
	changed := 0
	for _, m := range t.messages {
		if m.senderID != viewerID && m.markRead() {
			changed++
		}
	}
	return changed
}

// HasUnreadFor reports whether someone other than userID left an unread message.
func (t *Ticket) HasUnreadFor(userID uint) bool {
	for _, m := range t.messages {
		if m.senderID != userID && !m.isRead {
			return true
		}
	}
	return false
}

// ChangeStatus is the explicit administrative transition and the only path to closed.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return errors.NewValidationError("invalid ticket status", newStatus.String())
	}
	if t.status == newStatus {
		return nil
	}
	t.status = newStatus
	t.updatedAt = biztime.NowUTC()
	return nil
}

// PullEvents returns and clears the events recorded since the last call.
func (t *Ticket) PullEvents() []MessagePostedEvent {
	events := t.events
	t.events = nil
	return events
}
