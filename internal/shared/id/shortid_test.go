package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	s, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, s, DefaultLength)

	s, err = Generate(20)
	require.NoError(t, err)
	assert.Len(t, s, 20)
}

func TestNewMessageID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id, err := NewMessageID()
		require.NoError(t, err)
		require.True(t, HasPrefix(id, PrefixMessage), id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestHasPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"stg_abc123XYZ", true},
		{"stg_", false},
		{"msg_abc", false},
		{"stg_ab-c", false},
		{"2", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPrefix(tt.in, PrefixStage))
		})
	}
}
