package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    uint
	Title string
}

func TestMapSlice(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []string
	}{
		{"nil input encodes as empty list", nil, []string{}},
		{"keeps order", []int{3, 1, 2}, []string{"3", "1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSlice(tt.input, strconv.Itoa)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapRows_PassesPointerIntoSlice(t *testing.T) {
	rows := []row{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}

	got := MapRows(rows, func(r *row) *row { return r })

	require.Len(t, got, 2)
	assert.Same(t, &rows[0], got[0])
	assert.Same(t, &rows[1], got[1])
	assert.NotNil(t, MapRows([]row(nil), func(r *row) uint { return r.ID }))
}

func TestMapSliceErr(t *testing.T) {
	parse := func(s string) (int, error) { return strconv.Atoi(s) }

	got, err := MapSliceErr([]string{"1", "2"}, parse)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	calls := 0
	failing := func(s string) (int, error) {
		calls++
		if s == "bad" {
			return 0, errors.New("bad row")
		}
		return len(s), nil
	}
	got, err = MapSliceErr([]string{"ok", "bad", "never"}, failing)
	assert.EqualError(t, err, "bad row")
	assert.Nil(t, got)
	assert.Equal(t, 2, calls)
}
