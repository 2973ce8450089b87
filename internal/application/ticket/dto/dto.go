package dto

import (
	"time"

	"github.com/contracthub-inc/contracthub/internal/domain/asset"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/shared/mapper"
)

type TicketListItemDTO struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	OwnerID       uint       `json:"owner_id"`
	Status        string     `json:"status"`
	MessageCount  int        `json:"message_count"`
	HasUnread     bool       `json:"has_unread"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type TicketDTO struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	OwnerID   uint         `json:"owner_id"`
	Status    string       `json:"status"`
	Messages  []MessageDTO `json:"messages"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type MessageDTO struct {
	ID          string       `json:"id"`
	SenderID    uint         `json:"sender_id"`
	IsMine      bool         `json:"is_mine"`
	Content     string       `json:"content"`
	ContentHTML string       `json:"content_html"`
	CreatedAt   time.Time    `json:"created_at"`
	IsRead      bool         `json:"is_read"`
	Attachments []asset.View `json:"attachments"`
}

func ToTicketListItemDTO(t *ticket.Ticket, viewerID uint) TicketListItemDTO {
	item := TicketListItemDTO{
		ID:           t.ID(),
		Title:        t.Title(),
		OwnerID:      t.OwnerID(),
		Status:       t.Status().String(),
		MessageCount: len(t.Messages()),
		HasUnread:    t.HasUnreadFor(viewerID),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}

	if sorted := t.SortedMessages(); len(sorted) > 0 {
		last := sorted[0].CreatedAt()
		item.LastMessageAt = &last
	}

	return item
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket, viewerID uint) []TicketListItemDTO {
	return mapper.MapSlice(tickets, func(t *ticket.Ticket) TicketListItemDTO {
		return ToTicketListItemDTO(t, viewerID)
	})
}

// ToMessageDTO leaves ContentHTML and Attachments for the caller to fill,
// since both need services.
func ToMessageDTO(m *ticket.Message, viewerID uint) MessageDTO {
	return MessageDTO{
		ID:          m.ID(),
		SenderID:    m.SenderID(),
		IsMine:      m.SenderID() == viewerID,
		Content:     m.Content(),
		CreatedAt:   m.CreatedAt(),
		IsRead:      m.IsRead(),
		Attachments: []asset.View{},
	}
}
