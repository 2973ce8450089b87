package valueobjects

import (
	"regexp"
	"strings"

	"github.com/contracthub-inc/contracthub/internal/shared/errors"
)

const maxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9-]+(\.[a-z0-9-]+)*\.[a-z]{2,}$`)

// Email is a login address, trimmed and lower-cased so lookups match
// however the client typed it.
type Email struct {
	value string
}

// NewEmail returns a validation error for anything that cannot be a login
// address.
func NewEmail(value string) (*Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))

	switch {
	case normalized == "":
		return nil, errors.NewValidationError("email is required")
	case len(normalized) > maxEmailLength:
		return nil, errors.NewValidationError("email is too long")
	case strings.Contains(normalized, ".."), !emailPattern.MatchString(normalized):
		return nil, errors.NewValidationError("email address is not valid")
	}

	return &Email{value: normalized}, nil
}

func (e *Email) String() string {
	return e.value
}
