package logutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"empty", "", 8, ""},
		{"zero length", "abc", 0, "..."},
		{"short enough", "abc", 8, "abc"},
		{"exact", "abcdefgh", 8, "abcdefgh"},
		{"session id", "3f2a9c1b7d4e5f60", 8, "3f2a9c1b..."},
		{"multibyte", "قراردادها", 3, "قرا..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateForLog(tt.input, tt.maxLen))
		})
	}
}
