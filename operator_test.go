package calculator_test

import (
	"errors"
	"testing"

	"github.com/rednaxelam/calculator"
)

func TestNewOperator(t *testing.T) {
	for _, sym := range []string{"+", "-", "*", "/"} {
		op, err := calculator.NewOperator(sym)
		if err != nil {
			t.Errorf("NewOperator(%q): %v", sym, err)
		}
		if op.String() != sym {
			t.Errorf("NewOperator(%q) gave %v", sym, op)
		}
	}
	for _, sym := range []string{"", "^", "%", "++", "x"} {
		op, err := calculator.NewOperator(sym)
		var oe *calculator.OperatorError
		if !errors.As(err, &oe) {
			t.Errorf("NewOperator(%q): want *OperatorError, got %v, %v", sym, op, err)
			continue
		}
		if oe.Unary {
			t.Errorf("NewOperator(%q) gave unary error", sym)
		}
	}
}

func TestOperatorProperties(t *testing.T) {
	cases := []struct {
		op    calculator.Operator
		prec  int
		unary bool
		name  string
	}{
		{calculator.OpAdd, 1, true, "Addition"},
		{calculator.OpSub, 1, true, "Subtraction"},
		{calculator.OpMul, 2, false, "Multiplication"},
		{calculator.OpDiv, 2, false, "Division"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.op.Precedence(); got != c.prec {
				t.Errorf("precedence: want %d, got %d", c.prec, got)
			}
			if got := c.op.Unary(); got != c.unary {
				t.Errorf("unary: want %t, got %t", c.unary, got)
			}
			if got := c.op.Name(); got != c.name {
				t.Errorf("name: want %q, got %q", c.name, got)
			}
		})
	}
}

func TestApply(t *testing.T) {
	cases := []struct {
		name  string
		op    calculator.Operator
		x, y  calculator.Number
		level calculator.Level
		want  string
	}{
		{"int-rat", calculator.OpAdd, integer(1), rat(1, 2), calculator.LevelRational, "3 / 2"},
		{"rat-int", calculator.OpSub, rat(1, 2), integer(1), calculator.LevelRational, "-1 / 2"},
		{"rat-int-whole", calculator.OpMul, rat(1, 2), integer(4), calculator.LevelInteger, "2"},
		{"int-real", calculator.OpMul, integer(3), realNum(0.5), calculator.LevelReal, "1.5"},
		{"real-rat", calculator.OpDiv, realNum(1), rat(1, 4), calculator.LevelReal, "4"},
		{"int-int", calculator.OpDiv, integer(7), integer(2), calculator.LevelRational, "7 / 2"},
		{"unary-plus", calculator.OpAdd, rat(1, 2), nil, calculator.LevelRational, "1 / 2"},
		{"unary-minus", calculator.OpSub, integer(5), nil, calculator.LevelInteger, "-5"},
		{"unary-minus-real", calculator.OpSub, realNum(2.5), nil, calculator.LevelReal, "-2.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := c.op.Apply(c.x, c.y)
			if err != nil {
				t.Fatal(err)
			}
			checkNum(t, c.name, r, c.level, c.want)
		})
	}
}

func TestApplyUnaryError(t *testing.T) {
	cases := []struct {
		op   calculator.Operator
		want string
	}{
		{calculator.OpMul, "Multiplication requires two arguments"},
		{calculator.OpDiv, "Division requires two arguments"},
	}
	for _, c := range cases {
		r, err := c.op.Apply(integer(2), nil)
		var oe *calculator.OperatorError
		if !errors.As(err, &oe) {
			t.Errorf("%v: want *OperatorError, got %v (result %v)", c.op, err, r)
			continue
		}
		if !oe.Unary {
			t.Errorf("%v: error not marked unary", c.op)
		}
		if err.Error() != c.want {
			t.Errorf("%v: want message %q, got %q", c.op, c.want, err.Error())
		}
	}
}

func TestApplyDivisionByZero(t *testing.T) {
	zeros := []calculator.Number{integer(0), rat(0, 3), realNum(0)}
	for _, z := range zeros {
		r, err := calculator.OpDiv.Apply(integer(1), z)
		if err != calculator.ErrDivisionByZero {
			t.Errorf("1 / %v (%v): want division by zero, got %v, %v", z, z.Level(), r, err)
		}
	}
}

func TestPrecedencePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for invalid operator")
		}
	}()
	calculator.Operator('%').Precedence()
}
