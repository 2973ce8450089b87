// Package setutil provides set helpers for ID collections.
package setutil

// UintSet is a set of uint values that remembers insertion order.
type UintSet struct {
	items map[uint]struct{}
	order []uint
}

// NewUintSet creates a new empty UintSet.
func NewUintSet() *UintSet {
	return NewUintSetWithCap(0)
}

// NewUintSetWithCap creates a new UintSet with initial capacity.
func NewUintSetWithCap(cap int) *UintSet {
	return &UintSet{
		items: make(map[uint]struct{}, cap),
		order: make([]uint, 0, cap),
	}
}

// Add adds an id to the set and reports whether it was new.
func (s *UintSet) Add(id uint) bool {
	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// AddAll adds all ids to the set.
func (s *UintSet) AddAll(ids []uint) {
	for _, id := range ids {
		s.Add(id)
	}
}

// Has checks if id exists in the set.
func (s *UintSet) Has(id uint) bool {
	_, ok := s.items[id]
	return ok
}

// ToSlice returns the ids in the order they were first added.
func (s *UintSet) ToSlice() []uint {
	out := make([]uint, len(s.order))
	copy(out, s.order)
	return out
}

func (s *UintSet) Len() int {
	return len(s.order)
}

// Unique returns ids without duplicates or zero values, keeping first
// occurrences in order. The result is never nil.
func Unique(ids []uint) []uint {
	s := NewUintSetWithCap(len(ids))
	for _, id := range ids {
		if id != 0 {
			s.Add(id)
		}
	}
	return s.order
}
