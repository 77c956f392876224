package session

import "github.com/rednaxelam/calculator"

// Slot names.
const (
	SlotX   = "x"
	SlotY   = "y"
	SlotZ   = "z"
	SlotAns = "ans"
)

// names is every slot name in display order.
var names = [...]string{SlotX, SlotY, SlotZ, SlotAns}

// Names returns the slot names in display order.
func Names() []string {
	r := names
	return r[:]
}

// IsSlot returns whether name is a slot name.
func IsSlot(name string) bool {
	return slotIndex(name) >= 0
}

// Writable returns whether name is a slot that assignments may set. The ans
// slot is only set by evaluation.
func Writable(name string) bool {
	return IsSlot(name) && name != SlotAns
}

func slotIndex(name string) int {
	for i, nm := range names {
		if nm == name {
			return i
		}
	}
	return -1
}

// Slots holds a value for each slot. The zero value has every slot empty.
// Slots is not safe for concurrent use.
type Slots struct {
	vals [len(names)]calculator.Number
}

// Set stores a value in a slot. A nil value empties it. If name is not a
// slot, the result is a *SlotError.
func (s *Slots) Set(name string, x calculator.Number) error {
	i := slotIndex(name)
	if i < 0 {
		return &SlotError{Name: name}
	}
	s.vals[i] = x
	return nil
}

// Get returns the value of a slot and whether it has one.
func (s *Slots) Get(name string) (calculator.Number, bool) {
	i := slotIndex(name)
	if i < 0 || s.vals[i] == nil {
		return nil, false
	}
	return s.vals[i], true
}

// Clear empties a slot. If name is empty, every slot is cleared.
func (s *Slots) Clear(name string) error {
	if name == "" {
		s.vals = [len(names)]calculator.Number{}
		return nil
	}
	return s.Set(name, nil)
}
