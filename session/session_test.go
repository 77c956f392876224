package session_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rednaxelam/calculator"
	"github.com/rednaxelam/calculator/session"
)

func TestSessionEval(t *testing.T) {
	s, err := session.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	steps := []struct {
		text string
		want string
	}{
		{"1/3", "1 / 3"},
		{"ans*3", "1"},
		{"x = 2.5", "2.5"},
		{"y=x*2", "5"},
		{"z = y - ans", "0"},
		{"x + y + z", "7.5"},
		{"ans/ans", "1"},
	}
	for _, step := range steps {
		r, err := s.Eval(step.text)
		if err != nil {
			t.Fatalf("%q: %v", step.text, err)
		}
		if r.String() != step.want {
			t.Errorf("%q: want %s, got %v", step.text, step.want, r)
		}
		ans, ok := s.Slots().Get(session.SlotAns)
		if !ok || ans != r {
			t.Errorf("%q: ans is %v, want %v", step.text, ans, r)
		}
	}
	// y was the Real 5, so it must stay a Real after substitution.
	r, err := s.Eval("y/2")
	if err != nil {
		t.Fatal(err)
	}
	if r.Level() != calculator.LevelReal || r.String() != "2.5" {
		t.Errorf("y/2 gave %v (%v)", r, r.Level())
	}
	if s.History().Len() != len(steps)+1 {
		t.Errorf("history has %d entries", s.History().Len())
	}
}

func TestSessionErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
		// err is a pointer to the expected error type, or an error value.
		err interface{}
	}{
		{"unset", "x+1", new(*session.UnsetSlotError)},
		{"assign-ans", "ans = 1", new(*session.AssignError)},
		{"assign-expr", "1 + x = 2", new(*session.AssignError)},
		{"assign-empty", "= 2", new(*session.AssignError)},
		{"assign-nothing", "x =", new(*calculator.EmptyExpressionError)},
		{"div-zero", "1/0", calculator.ErrDivisionByZero},
		{"letters", "two", new(*calculator.LexError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := session.New(&session.Config{Slots: map[string]string{"y": "4"}})
			if err != nil {
				t.Fatal(err)
			}
			r, err := s.Eval(c.text)
			switch want := c.err.(type) {
			case error:
				if !errors.Is(err, want) {
					t.Errorf("want %v, got %v (result %v)", want, err, r)
				}
			default:
				if !errors.As(err, want) {
					t.Errorf("want %T, got %v (result %v)", want, err, r)
				}
			}
			e, ok := s.History().Last()
			if !ok || e.Input != c.text || e.Err != err || e.Result != nil {
				t.Errorf("failure not recorded: %+v", e)
			}
			if _, ok := s.Slots().Get(session.SlotAns); ok {
				t.Error("failure set ans")
			}
			if x, _ := s.Slots().Get(session.SlotY); x.String() != "4" {
				t.Errorf("failure changed y to %v", x)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	cfg := session.Config{
		Slots:    map[string]string{"x": "1/3", "y": "x*6", "ans": "x+y"},
		History:  2,
		MaxDepth: 3,
	}
	s, err := session.New(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"x": "1 / 3", "y": "2", "ans": "7 / 3"}
	for name, v := range want {
		x, ok := s.Slots().Get(name)
		if !ok || x.String() != v {
			t.Errorf("%s: want %s, got %v", name, v, x)
		}
	}
	if _, ok := s.Slots().Get("z"); ok {
		t.Error("z is set")
	}
	if s.History().Cap() != 2 || s.History().Len() != 0 {
		t.Errorf("wrong history: cap %d len %d", s.History().Cap(), s.History().Len())
	}
	if s.Evaluator().MaxDepth() != 3 {
		t.Errorf("wrong max depth %d", s.Evaluator().MaxDepth())
	}
	var ne *calculator.NestingError
	if _, err := s.Eval("((((1))))"); !errors.As(err, &ne) {
		t.Errorf("deep nesting gave %v", err)
	}
}

func TestNewSessionErrors(t *testing.T) {
	cases := []struct {
		name string
		cfg  session.Config
	}{
		{"bad-slot", session.Config{Slots: map[string]string{"w": "1"}}},
		{"bad-expr", session.Config{Slots: map[string]string{"x": "1/0"}}},
		{"forward-ref", session.Config{Slots: map[string]string{"x": "y", "y": "1"}}},
		{"negative", session.Config{History: -1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if s, err := session.New(&c.cfg); err == nil {
				t.Errorf("no error, got %v", s)
			}
		})
	}
	_, err := session.New(&session.Config{Slots: map[string]string{"x": "1/0"}})
	if !errors.Is(err, calculator.ErrDivisionByZero) {
		t.Errorf("slot error does not wrap cause: %v", err)
	}
}

func TestExpand(t *testing.T) {
	s, err := session.New(&session.Config{Slots: map[string]string{"x": "-1/2"}})
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Expand("z = x*x")
	if err != nil {
		t.Fatal(err)
	}
	if want := " (-1 / 2)*(-1 / 2)"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func ExampleSession() {
	s, err := session.New(nil)
	if err != nil {
		panic(err)
	}
	for _, line := range []string{"x = 1/3", "y = x + 1/6", "x * y", "ans * 6"} {
		r, err := s.Eval(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
	// Output:
	// 1 / 3
	// 1 / 2
	// 1 / 6
	// 1
}

func TestNewSessionFromYAML(t *testing.T) {
	cfg, err := session.ParseConfig([]byte("slots:\n  x: 2\n  y: x*3\n  z: y/4\n"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := session.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"x": "2", "y": "6", "z": "3 / 2"}
	for name, v := range want {
		if x, ok := s.Slots().Get(name); !ok || x.String() != v {
			t.Errorf("%s: want %s, got %v", name, v, x)
		}
	}
}
