package ticket

import "time"

// MessagePostedEvent is recorded whenever a message lands on a ticket. The
// application layer uses it to notify the other party.
type MessagePostedEvent struct {
	TicketID    uint
	TicketTitle string
	OwnerID     uint
	SenderID    uint
	MessageID   string
	Status      string
	Timestamp   time.Time
}

func NewMessagePostedEvent(t *Ticket, m *Message) MessagePostedEvent {
	return MessagePostedEvent{
		TicketID:    t.id,
		TicketTitle: t.title,
		OwnerID:     t.ownerID,
		SenderID:    m.senderID,
		MessageID:   m.id,
		Status:      t.status.String(),
		Timestamp:   m.createdAt,
	}
}

// FromStaff reports whether the message was written by someone other than the owner.
func (e MessagePostedEvent) FromStaff() bool {
	return e.SenderID != e.OwnerID
}
