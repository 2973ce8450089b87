package setutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintSet_KeepsInsertionOrder(t *testing.T) {
	s := NewUintSet()

	assert.True(t, s.Add(3))
	assert.True(t, s.Add(1))
	assert.False(t, s.Add(3))
	s.AddAll([]uint{2, 1, 4})

	assert.Equal(t, []uint{3, 1, 2, 4}, s.ToSlice())
	assert.Equal(t, 4, s.Len())
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(9))
}

func TestUintSet_ToSliceIsACopy(t *testing.T) {
	s := NewUintSetWithCap(2)
	s.AddAll([]uint{1, 2})

	out := s.ToSlice()
	out[0] = 99

	assert.Equal(t, []uint{1, 2}, s.ToSlice())
}

func TestUnique(t *testing.T) {
	tests := []struct {
		name string
		in   []uint
		want []uint
	}{
		{"nil", nil, []uint{}},
		{"zeros dropped", []uint{0, 5, 0}, []uint{5}},
		{"duplicates dropped", []uint{7, 3, 7, 3, 8}, []uint{7, 3, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unique(tt.in))
		})
	}
}
