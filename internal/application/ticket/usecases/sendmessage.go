package usecases

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/contracthub-inc/contracthub/internal/application/ticket/dto"
	"github.com/contracthub-inc/contracthub/internal/domain/ticket"
	"github.com/contracthub-inc/contracthub/internal/infrastructure/email"
	"github.com/contracthub-inc/contracthub/internal/shared/authorization"
	"github.com/contracthub-inc/contracthub/internal/shared/db"
	"github.com/contracthub-inc/contracthub/internal/shared/id"
	"github.com/contracthub-inc/contracthub/internal/shared/logger"
	"github.com/contracthub-inc/contracthub/internal/shared/sanitize"
)

const (
	excerptLength = 200
	notifyTimeout = 30 * time.Second
)

type SendMessageCommand struct {
	Identity    authorization.Identity
	TicketID    uint
	Content     string
	Attachments []uint
}

// SendMessageUseCase appends a message to a ticket. The ticket applies the
// status transitions; a reply from staff also mails the owner.
type SendMessageUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   UserReader
	assets     AssetStore
	notifier   ReplyNotifier
	runner     TaskRunner
	authorizer Authorizer
	logger     logger.Interface
}

func NewSendMessageUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo UserReader,
	assets AssetStore,
	notifier ReplyNotifier,
	runner TaskRunner,
	authorizer Authorizer,
	logger logger.Interface,
) *SendMessageUseCase {
	return &SendMessageUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		assets:     assets,
		notifier:   notifier,
		runner:     runner,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error) {
	uc.logger.Infow("executing send message use case", "ticket_id", cmd.TicketID, "user_id", cmd.Identity.UserID)

	content := sanitize.Multiline(cmd.Content)

	if err := verifyAttachments(ctx, uc.assets, uc.authorizer, cmd.Identity, cmd.Attachments); err != nil {
		return nil, err
	}

	var (
		t   *ticket.Ticket
		msg *ticket.Message
	)
	err := db.RetryOnStale(ctx, db.DefaultWriteAttempts, ticket.ErrStaleWrite, func(ctx context.Context) error {
		loaded, err := loadAuthorized(ctx, uc.ticketRepo, uc.authorizer, cmd.Identity, authorization.ActionReply, cmd.TicketID)
		if err != nil {
			return err
		}

		appended, err := loaded.AppendMessage(cmd.Identity.UserID, content, cmd.Attachments, id.NewMessageID)
		if err != nil {
			return err
		}
		if err := uc.ticketRepo.Update(ctx, loaded); err != nil {
			return err
		}

		t, msg = loaded, appended
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to send message", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("message sent",
		"ticket_id", t.ID(),
		"message_id", msg.ID(),
		"status", t.Status().String(),
	)

	for _, event := range t.PullEvents() {
		if event.FromStaff() {
			uc.notifyOwner(event, msg.Content())
		}
	}

	result := dto.ToMessageDTO(msg, cmd.Identity.UserID)
	result.Attachments = resolveAttachments(ctx, uc.assets, msg.Attachments(), uc.logger)
	return &result, nil
}

// notifyOwner mails the ticket owner in the background. Failures are logged
// and never reach the caller.
func (uc *SendMessageUseCase) notifyOwner(event ticket.MessagePostedEvent, content string) {
	uc.runner.Go("ticket-reply-notice", func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		owner, err := uc.userRepo.GetByID(ctx, event.OwnerID)
		if err != nil {
			uc.logger.Warnw("failed to load ticket owner for notification",
				"ticket_id", event.TicketID,
				"owner_id", event.OwnerID,
				"error", err,
			)
			return
		}

		notice := email.ReplyNotice{
			To:          owner.Email(),
			DisplayName: owner.DisplayName(),
			TicketID:    event.TicketID,
			TicketTitle: event.TicketTitle,
			Excerpt:     excerpt(content),
		}
		if err := uc.notifier.NotifyReply(ctx, notice); err != nil {
			uc.logger.Warnw("failed to send reply notification",
				"ticket_id", event.TicketID,
				"owner_id", event.OwnerID,
				"error", err,
			)
		}
	})
}

func excerpt(content string) string {
	if utf8.RuneCountInString(content) <= excerptLength {
		return content
	}
	runes := []rune(content)
	return string(runes[:excerptLength]) + "…"
}
