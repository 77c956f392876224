package session

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rednaxelam/calculator"
)

// Session evaluates expressions that may refer to slots, and records each
// evaluation in a history. It is not safe for concurrent use.
type Session struct {
	ev    *calculator.Evaluator
	slots Slots
	hist  *History
}

// New creates a session. A nil cfg is the same as an empty one. Slot
// expressions in cfg are evaluated immediately; a failure to evaluate one
// is returned as an error wrapping the evaluation error.
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := Session{
		ev:   calculator.NewEvaluator(calculator.MaxDepth(cfg.MaxDepth)),
		hist: NewHistory(cfg.History),
	}
	for _, name := range names {
		src, ok := cfg.Slots[name]
		if !ok {
			continue
		}
		x, err := s.eval(src)
		if err != nil {
			return nil, fmt.Errorf("session: slot %s = %q: %w", name, src, err)
		}
		// Cannot fail: name comes from names.
		s.slots.Set(name, x)
	}
	return &s, nil
}

// Eval evaluates a line of input. The input is either an expression or an
// assignment "name = expression" to one of the writable slots. On success,
// the result is also stored in ans. Every call is recorded in the history,
// whether or not it succeeds.
func (s *Session) Eval(text string) (calculator.Number, error) {
	x, target, err := s.line(text)
	s.hist.Add(Entry{Input: text, Result: x, Err: err})
	if err != nil {
		return nil, err
	}
	// Neither Set can fail: Split only returns Writable targets.
	if target != "" {
		s.slots.Set(target, x)
	}
	s.slots.Set(SlotAns, x)
	return x, nil
}

// line evaluates a line and returns the assignment target, if any.
func (s *Session) line(text string) (calculator.Number, string, error) {
	target, expr, err := Split(text)
	if err != nil {
		return nil, "", err
	}
	x, err := s.eval(expr)
	if err != nil {
		return nil, "", err
	}
	return x, target, nil
}

// eval substitutes slots into src and evaluates the result.
func (s *Session) eval(src string) (calculator.Number, error) {
	src, err := Substitute(src, &s.slots)
	if err != nil {
		return nil, err
	}
	return s.ev.Eval(src)
}

// Expand returns the expression that Eval would evaluate for text, with
// slots substituted.
func (s *Session) Expand(text string) (string, error) {
	_, expr, err := Split(text)
	if err != nil {
		return "", err
	}
	return Substitute(expr, &s.slots)
}

// Slots returns the session's slots.
func (s *Session) Slots() *Slots {
	return &s.slots
}

// History returns the session's history.
func (s *Session) History() *History {
	return s.hist
}

// Evaluator returns the evaluator the session uses.
func (s *Session) Evaluator() *calculator.Evaluator {
	return s.ev
}

// Split separates an assignment into its target slot and expression. If
// text contains no =, the target is empty and the expression is text. If the
// target is not a writable slot, the result is an *AssignError.
func Split(text string) (target, expr string, err error) {
	k := strings.IndexByte(text, '=')
	if k < 0 {
		return "", text, nil
	}
	target = strings.TrimSpace(text[:k])
	if !Writable(target) {
		return "", "", &AssignError{Target: target, Col: utf8.RuneCountInString(text[:k]) + 1}
	}
	return target, text[k+1:], nil
}
