package ticket

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/contracthub-inc/contracthub/internal/domain/ticket/valueobjects"
	"github.com/contracthub-inc/contracthub/internal/shared/errors"
	"github.com/contracthub-inc/contracthub/internal/shared/id"
)

const (
	ownerID uint = 10
	staffID uint = 1
)

// sequenceIDs yields msg_1, msg_2, ...
func sequenceIDs() MessageIDGenerator {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("msg_%d", n), nil
	}
}

// scriptedIDs returns the given IDs in order.
func scriptedIDs(ids ...string) MessageIDGenerator {
	i := 0
	return func() (string, error) {
		v := ids[i%len(ids)]
		i++
		return v, nil
	}
}

func newTestTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(ownerID, "مشکل در فاکتور", "سلام", nil, sequenceIDs())
	require.NoError(t, err)
	require.NoError(t, tk.SetID(5))
	return tk
}

func TestNewTicket(t *testing.T) {
	tk := newTestTicket(t)

	assert.Equal(t, vo.StatusOpen, tk.Status())
	require.Len(t, tk.Messages(), 1)
	first := tk.Messages()[0]
	assert.Equal(t, "سلام", first.Content())
	assert.Equal(t, ownerID, first.SenderID())
	assert.False(t, first.IsRead())
	assert.Empty(t, tk.PullEvents())
}

func TestNewTicket_Validation(t *testing.T) {
	tests := []struct {
		name    string
		owner   uint
		title   string
		content string
	}{
		{"missing owner", 0, "title", "body"},
		{"missing title", ownerID, "", "body"},
		{"title too long", ownerID, strings.Repeat("ت", maxTitleLength+1), "body"},
		{"empty first message", ownerID, "title", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTicket(tt.owner, tt.title, tt.content, nil, sequenceIDs())
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestStaffReplyMarksAnsweredAndUnreadForOwner(t *testing.T) {
	tk := newTestTicket(t)

	msg, err := tk.AppendMessage(staffID, "پاسخ", nil, sequenceIDs())
	require.NoError(t, err)

	assert.Equal(t, vo.StatusAnswered, tk.Status())
	assert.False(t, msg.IsRead())
	assert.True(t, tk.HasUnreadFor(ownerID))

	events := tk.PullEvents()
	require.Len(t, events, 1)
	assert.True(t, events[0].FromStaff())
	assert.Equal(t, uint(5), events[0].TicketID)
}

func TestAppendMessage_StatusTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   vo.TicketStatus
		sender uint
		want   vo.TicketStatus
	}{
		{"owner on answered reopens", vo.StatusAnswered, ownerID, vo.StatusOpen},
		{"owner on closed reopens", vo.StatusClosed, ownerID, vo.StatusOpen},
		{"owner on in progress reopens", vo.StatusInProgress, ownerID, vo.StatusOpen},
		{"staff on open answers", vo.StatusOpen, staffID, vo.StatusAnswered},
		{"staff on in progress answers", vo.StatusInProgress, staffID, vo.StatusAnswered},
		{"staff on answered keeps", vo.StatusAnswered, staffID, vo.StatusAnswered},
		{"staff on closed keeps closed", vo.StatusClosed, staffID, vo.StatusClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := ReconstructTicket(1, "t", ownerID, tt.from, nil, 3, time.Now(), time.Now())

			_, err := tk.AppendMessage(tt.sender, "متن", nil, sequenceIDs())
			require.NoError(t, err)
			assert.Equal(t, tt.want, tk.Status())
		})
	}
}

func TestAppendMessage_RejectsEmptyContent(t *testing.T) {
	tk := newTestTicket(t)

	_, err := tk.AppendMessage(staffID, "", nil, sequenceIDs())

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Len(t, tk.Messages(), 1)
	assert.Equal(t, vo.StatusOpen, tk.Status())
}

func TestAppendMessage_RegeneratesCollidingID(t *testing.T) {
	tk, err := NewTicket(ownerID, "t", "first", nil, scriptedIDs("msg_a"))
	require.NoError(t, err)

	msg, err := tk.AppendMessage(staffID, "second", nil, scriptedIDs("msg_a", "msg_b"))
	require.NoError(t, err)
	assert.Equal(t, "msg_b", msg.ID())

	_, err = tk.AppendMessage(staffID, "third", nil, scriptedIDs("msg_a", "msg_b"))
	assert.Error(t, err)
}

func TestMessageIDsStayUniqueAcrossManyAppendsAndReads(t *testing.T) {
	tk, err := NewTicket(ownerID, "t", "first", nil, id.NewMessageID)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		sender := ownerID
		if i%2 == 0 {
			sender = staffID
		}
		m, err := tk.AppendMessage(sender, fmt.Sprintf("message %d", i), nil, id.NewMessageID)
		require.NoError(t, err)
		if i%3 == 0 {
			_, err = tk.MarkMessageRead(m.ID())
			require.NoError(t, err)
		}
	}

	seen := map[string]bool{}
	for _, m := range tk.Messages() {
		assert.False(t, seen[m.ID()], "duplicate %s", m.ID())
		seen[m.ID()] = true
	}
	assert.Len(t, seen, 201)
}

func TestMarkMessageRead(t *testing.T) {
	tk := newTestTicket(t)
	msgID := tk.Messages()[0].ID()

	changed, err := tk.MarkMessageRead(msgID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = tk.MarkMessageRead(msgID)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, tk.Messages()[0].IsRead())

	_, err = tk.MarkMessageRead("msg_missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMarkAllReadExcept(t *testing.T) {
	tk := newTestTicket(t)
	gen := sequenceIDs()
	_, _ = gen() // msg_1 is taken by the first message
	_, err := tk.AppendMessage(staffID, "a", nil, gen)
	require.NoError(t, err)
	_, err = tk.AppendMessage(staffID, "b", nil, gen)
	require.NoError(t, err)

	assert.Equal(t, 2, tk.MarkAllReadExcept(ownerID))
	assert.Equal(t, 0, tk.MarkAllReadExcept(ownerID))
	assert.False(t, tk.HasUnreadFor(ownerID))
	// the owner's own first message is still unread for staff
	assert.True(t, tk.HasUnreadFor(staffID))
}

func TestSortedMessages_NewestFirst(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	msgs := []*Message{
		ReconstructMessage("msg_old", ownerID, "old", base, nil, true),
		ReconstructMessage("msg_new", staffID, "new", base.Add(2*time.Hour), nil, false),
		ReconstructMessage("msg_tie_a", ownerID, "tie a", base.Add(time.Hour), nil, false),
		ReconstructMessage("msg_tie_b", staffID, "tie b", base.Add(time.Hour), nil, false),
	}
	tk := ReconstructTicket(1, "t", ownerID, vo.StatusOpen, msgs, 1, base, base)

	var got []string
	for _, m := range tk.SortedMessages() {
		got = append(got, m.ID())
	}

	assert.Equal(t, []string{"msg_new", "msg_tie_b", "msg_tie_a", "msg_old"}, got)
	assert.Equal(t, "msg_old", tk.Messages()[0].ID())
}

func TestChangeStatus(t *testing.T) {
	tk := newTestTicket(t)

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	assert.Equal(t, vo.StatusClosed, tk.Status())

	err := tk.ChangeStatus(vo.TicketStatus("archived"))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, vo.StatusClosed, tk.Status())
}

func TestReconstructTicket_CoercesUnknownStatus(t *testing.T) {
	tk := ReconstructTicket(1, "t", ownerID, vo.TicketStatus("pending"), nil, 1, time.Now(), time.Now())

	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.NotNil(t, tk.Messages())
}

func TestParseTicketStatus(t *testing.T) {
	assert.Equal(t, vo.StatusAnswered, vo.ParseTicketStatus("answered"))
	assert.Equal(t, vo.StatusOpen, vo.ParseTicketStatus("garbage"))

	_, err := vo.NewTicketStatus("garbage")
	assert.Error(t, err)
}
