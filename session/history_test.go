package session_test

import (
	"fmt"
	"testing"

	"github.com/rednaxelam/calculator/session"
)

func fill(h *session.History, k int) {
	for i := 0; i < k; i++ {
		h.Add(session.Entry{Input: fmt.Sprint(i)})
	}
}

func inputs(h *session.History) []string {
	var r []string
	for _, e := range h.Entries() {
		r = append(r, e.Input)
	}
	return r
}

func TestHistoryCapacity(t *testing.T) {
	cases := []struct {
		name string
		cap  int
		want int
	}{
		{"default", 0, session.DefaultHistory},
		{"negative", -3, session.DefaultHistory},
		{"one", 1, 1},
		{"some", 5, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := session.NewHistory(c.cap).Cap(); got != c.want {
				t.Errorf("want capacity %d, got %d", c.want, got)
			}
		})
	}
}

func TestHistoryRing(t *testing.T) {
	cases := []struct {
		name string
		add  int
		want []string
	}{
		{"empty", 0, nil},
		{"partial", 2, []string{"0", "1"}},
		{"full", 3, []string{"0", "1", "2"}},
		{"wrapped", 4, []string{"1", "2", "3"}},
		{"wrapped-twice", 8, []string{"5", "6", "7"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := session.NewHistory(3)
			fill(h, c.add)
			got := inputs(h)
			if fmt.Sprint(got) != fmt.Sprint(c.want) {
				t.Errorf("want %q, got %q", c.want, got)
			}
			if h.Len() != len(c.want) {
				t.Errorf("want length %d, got %d", len(c.want), h.Len())
			}
			if _, ok := h.At(h.Len()); ok {
				t.Error("At past the end succeeded")
			}
			if _, ok := h.At(-1); ok {
				t.Error("At(-1) succeeded")
			}
			last, ok := h.Last()
			if ok != (len(c.want) > 0) {
				t.Fatalf("Last gave %t", ok)
			}
			if ok && last.Input != c.want[len(c.want)-1] {
				t.Errorf("Last gave %q", last.Input)
			}
		})
	}
}

func TestHistoryNavigation(t *testing.T) {
	h := session.NewHistory(3)
	if _, ok := h.Prev(); ok {
		t.Error("Prev on empty history succeeded")
	}
	if _, ok := h.Next(); ok {
		t.Error("Next on empty history succeeded")
	}
	fill(h, 4) // 1, 2, 3
	for _, want := range []string{"3", "2", "1"} {
		e, ok := h.Prev()
		if !ok || e.Input != want {
			t.Fatalf("Prev: want %q, got %q, %t", want, e.Input, ok)
		}
	}
	if e, ok := h.Prev(); ok {
		t.Errorf("Prev past the oldest gave %q", e.Input)
	}
	for _, want := range []string{"2", "3"} {
		e, ok := h.Next()
		if !ok || e.Input != want {
			t.Fatalf("Next: want %q, got %q, %t", want, e.Input, ok)
		}
	}
	if e, ok := h.Next(); ok {
		t.Errorf("Next past the newest gave %q", e.Input)
	}
	// Back at rest, Prev gives the newest again.
	if e, ok := h.Prev(); !ok || e.Input != "3" {
		t.Errorf("Prev from rest gave %q, %t", e.Input, ok)
	}
	h.Prev()
	h.Reset()
	if e, ok := h.Prev(); !ok || e.Input != "3" {
		t.Errorf("Prev after Reset gave %q, %t", e.Input, ok)
	}
	h.Prev()
	h.Add(session.Entry{Input: "4"})
	if e, ok := h.Prev(); !ok || e.Input != "4" {
		t.Errorf("Prev after Add gave %q, %t", e.Input, ok)
	}
}
