package session

import (
	"strconv"

	"github.com/rednaxelam/calculator"
)

// UnsetSlotError is an error indicating an expression referring to a slot
// that has no value. It implements calculator.InputError.
type UnsetSlotError struct {
	// Name is the slot name.
	Name string
	// Col is the position of the reference in the input.
	Col int
}

func (err *UnsetSlotError) Error() string {
	return errpos(err.Col, "slot "+err.Name+" has no value")
}

func (err *UnsetSlotError) Pos() int {
	return err.Col
}

// SlotError is an error indicating a name that is not a slot.
type SlotError struct {
	Name string
}

func (err *SlotError) Error() string {
	return strconv.Quote(err.Name) + " is not a slot"
}

// AssignError is an error indicating an assignment to something other than a
// writable slot. It implements calculator.InputError.
type AssignError struct {
	// Target is the text to the left of the =.
	Target string
	// Col is the position of the =.
	Col int
}

func (err *AssignError) Error() string {
	return errpos(err.Col, "cannot assign to "+strconv.Quote(err.Target))
}

func (err *AssignError) Pos() int {
	return err.Col
}

func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ calculator.InputError = (*UnsetSlotError)(nil)
	_ calculator.InputError = (*AssignError)(nil)
)
