package engine

// SlotIndex maps every tile to at most one occupying entity
// Dense array indexed by VoxelGrid.TileIndex; first writer wins, nobody is ever evicted
type SlotIndex struct {
	slots []Entity
}

// NewSlotIndex creates an index with n empty slots
func NewSlotIndex(n int) *SlotIndex {
	return &SlotIndex{slots: make([]Entity, n)}
}

// Len returns the number of slots
func (s *SlotIndex) Len() int {
	return len(s.slots)
}

// At returns the occupant of slot idx, nil if empty or out of range
func (s *SlotIndex) At(idx int) Entity {
	if idx < 0 || idx >= len(s.slots) {
		return nil
	}
	return s.slots[idx]
}

// Place writes e into slot idx only if the slot is empty
// Returns false without side effects when occupied
func (s *SlotIndex) Place(e Entity, idx int) bool {
	if idx < 0 || idx >= len(s.slots) || s.slots[idx] != nil {
		return false
	}
	s.slots[idx] = e
	return true
}

// Vacate clears slot idx only if it still holds e
func (s *SlotIndex) Vacate(idx int, e Entity) bool {
	if idx < 0 || idx >= len(s.slots) || s.slots[idx] != e || e == nil {
		return false
	}
	s.slots[idx] = nil
	return true
}

// Occupied returns the number of filled slots
func (s *SlotIndex) Occupied() int {
	n := 0
	for _, e := range s.slots {
		if e != nil {
			n++
		}
	}
	return n
}

// Clear empties every slot
func (s *SlotIndex) Clear() {
	clear(s.slots)
}
