package session

import "github.com/rednaxelam/calculator"

// DefaultHistory is the history capacity used when none is configured.
const DefaultHistory = 100

// Entry is one evaluation recorded in a History.
type Entry struct {
	// Input is the text as it was entered.
	Input string
	// Result is the value of the expression, or nil if evaluation failed.
	Result calculator.Number
	// Err is the error from evaluation, if any.
	Err error
}

// History is a bounded record of evaluations, oldest first. Once full, each
// new entry replaces the oldest one.
//
// A History also has a navigation cursor for stepping back and forth
// through entries, as a line editor does with the up and down keys. The
// cursor rests past the newest entry until moved, and adding an entry
// returns it there.
type History struct {
	ring  []Entry
	start int
	n     int
	cur   int
}

// NewHistory creates a history holding up to capacity entries. A capacity
// less than 1 selects DefaultHistory.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistory
	}
	return &History{ring: make([]Entry, capacity)}
}

// Add records an entry and resets the cursor.
func (h *History) Add(e Entry) {
	if h.n < len(h.ring) {
		h.ring[(h.start+h.n)%len(h.ring)] = e
		h.n++
	} else {
		h.ring[h.start] = e
		h.start = (h.start + 1) % len(h.ring)
	}
	h.cur = h.n
}

// Len returns the number of entries.
func (h *History) Len() int {
	return h.n
}

// Cap returns the maximum number of entries.
func (h *History) Cap() int {
	return len(h.ring)
}

// At returns the i'th entry, counting from the oldest at 0.
func (h *History) At(i int) (Entry, bool) {
	if i < 0 || i >= h.n {
		return Entry{}, false
	}
	return h.ring[(h.start+i)%len(h.ring)], true
}

// Last returns the newest entry.
func (h *History) Last() (Entry, bool) {
	return h.At(h.n - 1)
}

// Entries returns a copy of every entry, oldest first.
func (h *History) Entries() []Entry {
	r := make([]Entry, h.n)
	for i := range r {
		r[i], _ = h.At(i)
	}
	return r
}

// Prev moves the cursor to the next older entry and returns it. If there is
// no older entry, the cursor does not move and the result is false.
func (h *History) Prev() (Entry, bool) {
	if h.cur == 0 {
		return Entry{}, false
	}
	h.cur--
	return h.At(h.cur)
}

// Next moves the cursor to the next newer entry and returns it. Moving past
// the newest entry returns the cursor to its resting position and the result
// is false.
func (h *History) Next() (Entry, bool) {
	if h.cur >= h.n-1 {
		h.cur = h.n
		return Entry{}, false
	}
	h.cur++
	return h.At(h.cur)
}

// Reset returns the cursor to its resting position past the newest entry.
func (h *History) Reset() {
	h.cur = h.n
}
