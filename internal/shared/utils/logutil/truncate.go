package logutil

// TruncateForLog keeps the first maxLen runes of a secret-ish value such as a
// session id, so log lines stay correlatable without exposing the full value.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
