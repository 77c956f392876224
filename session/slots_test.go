package session_test

import (
	"errors"
	"testing"

	"github.com/rednaxelam/calculator"
	"github.com/rednaxelam/calculator/session"
)

func TestSlots(t *testing.T) {
	var s session.Slots
	for _, name := range session.Names() {
		if x, ok := s.Get(name); ok {
			t.Errorf("zero Slots has %s = %v", name, x)
		}
	}
	if err := s.Set(session.SlotX, calculator.NewInteger(3)); err != nil {
		t.Fatal(err)
	}
	x, ok := s.Get(session.SlotX)
	if !ok || x.String() != "3" {
		t.Errorf("x is %v, %t", x, ok)
	}
	if _, ok := s.Get(session.SlotY); ok {
		t.Error("setting x set y")
	}
	if err := s.Clear(session.SlotX); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get(session.SlotX); ok {
		t.Error("x still set after Clear")
	}
}

func TestSlotsClearAll(t *testing.T) {
	var s session.Slots
	for _, name := range session.Names() {
		if err := s.Set(name, calculator.NewInteger(1)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.Clear(""); err != nil {
		t.Fatal(err)
	}
	for _, name := range session.Names() {
		if x, ok := s.Get(name); ok {
			t.Errorf("%s = %v after clearing", name, x)
		}
	}
}

func TestSlotsUnknown(t *testing.T) {
	var s session.Slots
	for _, name := range []string{"w", "X", "answer"} {
		err := s.Set(name, calculator.NewInteger(1))
		var se *session.SlotError
		if !errors.As(err, &se) || se.Name != name {
			t.Errorf("Set(%q): want *SlotError, got %v", name, err)
		}
		if _, ok := s.Get(name); ok {
			t.Errorf("Get(%q) found a value", name)
		}
		if session.IsSlot(name) {
			t.Errorf("%q is a slot", name)
		}
	}
}

func TestWritable(t *testing.T) {
	cases := map[string]bool{"x": true, "y": true, "z": true, "ans": false, "w": false, "": false}
	for name, want := range cases {
		if got := session.Writable(name); got != want {
			t.Errorf("Writable(%q): want %t, got %t", name, want, got)
		}
	}
}

func TestNamesCopy(t *testing.T) {
	a := session.Names()
	a[0] = "q"
	if b := session.Names(); b[0] != session.SlotX {
		t.Errorf("modifying Names result changed it: %v", b)
	}
}
