package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusAnswered   TicketStatus = "answered"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusAnswered:   true,
	StatusClosed:     true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

// AwaitsAnswer reports whether a staff reply should move the ticket to answered.
func (ts TicketStatus) AwaitsAnswer() bool {
	return ts == StatusOpen || ts == StatusInProgress
}

// NewTicketStatus parses an explicitly requested status and rejects unknown values.
func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// ParseTicketStatus reads a stored status, coercing unknown values to open.
func ParseTicketStatus(s string) TicketStatus {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return StatusOpen
	}
	return ts
}
