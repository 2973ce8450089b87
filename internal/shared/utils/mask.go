package utils

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail keeps the first character of the local part and the domain.
// "client@example.com" becomes "c***@example.com".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || domain == "" {
		return "***"
	}
	r, size := utf8.DecodeRuneInString(local)
	if r == utf8.RuneError && size <= 1 {
		return "***@" + domain
	}
	return local[:size] + "***@" + domain
}
