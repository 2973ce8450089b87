package mappers

import (
	"fmt"
	"time"

	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	vo "github.com/contracthub-inc/contracthub/internal/domain/ticket/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/persistence/models"
)

// TicketMapper converts between the Ticket aggregate and its row.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) (*models.TicketModel, error)
	// ToDomain never fails on a malformed message column; it yields an
	// empty or partial thread instead.
	ToDomain(model *models.TicketModel) *ticket.Ticket
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// messageRecord is the stored shape of one message.
type messageRecord struct {
	ID          string `json:"id"`
	SenderID    uint   `json:"sender_id"`
	Content     string `json:"content"`
	CreatedAt   string `json:"created_at"`
	Attachments []uint `json:"attachments"`
	IsRead      bool   `json:"is_read"`
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) (*models.TicketModel, error) {
	msgs := t.Messages()
	records := make([]messageRecord, 0, len(msgs))
	for _, msg := range msgs {
		records = append(records, messageRecord{
			ID:          msg.ID(),
			SenderID:    msg.SenderID(),
			Content:     msg.Content(),
			CreatedAt:   msg.CreatedAt().UTC().Format(time.RFC3339Nano),
			Attachments: msg.Attachments(),
			IsRead:      msg.IsRead(),
		})
	}

	blob, err := encodeRecords(records)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", t.ID(), err)
	}

	return &models.TicketModel{
		ID:        t.ID(),
		Title:     t.Title(),
		OwnerID:   t.OwnerID(),
		Status:    t.Status().String(),
		Messages:  blob,
		Version:   t.Version(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) *ticket.Ticket {
	return ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.OwnerID,
		vo.ParseTicketStatus(model.Status),
		DecodeMessages(model.Messages),
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// DecodeMessages reads a stored thread. Entries without content are
// skipped, entries without an ID get a positional one, and duplicate IDs
// keep the first occurrence.
func DecodeMessages(raw []byte) []*ticket.Message {
	records := decodeRecords(raw)
	out := make([]*ticket.Message, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for i, r := range records {
		content := r.str("content")
		if content == "" {
			continue
		}
		msgID := r.str("id")
		if msgID == "" {
			msgID = positionalID("msg", i, seen)
		}
		if _, dup := seen[msgID]; dup {
			continue
		}
		seen[msgID] = struct{}{}

		sender := r.uint("sender_id")
		if sender == 0 {
			sender = r.uint("user_id")
		}

		out = append(out, ticket.ReconstructMessage(
			msgID,
			sender,
			content,
			r.time("created_at", "date"),
			r.uints("attachments"),
			r.bool("is_read"),
		))
	}
	return out
}
