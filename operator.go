package calculator

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/"

// Operator is one of the four arithmetic operations.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

// NewOperator gets the operator for a symbol. If the symbol is not one of
// Operators, the result is an *OperatorError.
func NewOperator(sym string) (Operator, error) {
	if len(sym) == 1 {
		switch op := Operator(sym[0]); op {
		case OpAdd, OpSub, OpMul, OpDiv:
			return op, nil
		}
	}
	return 0, &OperatorError{Operator: sym}
}

// Precedence returns the binding strength of the operator. Higher is more
// binding: 2 for * and /, 1 for + and -.
func (op Operator) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		panic("calculator: invalid operator " + op.String())
	}
}

// Unary returns whether the operator can be applied to a single operand.
func (op Operator) Unary() bool {
	return op == OpAdd || op == OpSub
}

// Name returns the name of the operation, e.g. "Addition".
func (op Operator) Name() string {
	return opname(string(op))
}

func (op Operator) String() string {
	return string(op)
}

// Apply performs the operation. If y is nil, the operation is unary, which
// only + and - support; other operators return an *OperatorError. Otherwise,
// whichever of x and y has the lower level is promoted to the level of the
// other before the operation.
func (op Operator) Apply(x, y Number) (Number, error) {
	if y == nil {
		if !op.Unary() {
			return nil, &OperatorError{Operator: op.String(), Unary: true}
		}
		if op == OpAdd {
			return x.Add(nil)
		}
		return x.Sub(nil)
	}
	x, y, err := promote(x, y)
	if err != nil {
		return nil, err
	}
	switch op {
	case OpAdd:
		return x.Add(y)
	case OpSub:
		return x.Sub(y)
	case OpMul:
		return x.Mul(y)
	case OpDiv:
		return x.Div(y)
	default:
		panic("calculator: invalid operator " + op.String())
	}
}

// promote raises the lower-level of x and y to the level of the other.
func promote(x, y Number) (Number, Number, error) {
	var err error
	switch lx, ly := x.Level(), y.Level(); {
	case lx < ly:
		x, err = x.Promote(ly)
	case ly < lx:
		y, err = y.Promote(lx)
	}
	return x, y, err
}

// opname gets the name of an operation from its symbol.
func opname(sym string) string {
	switch sym {
	case "+":
		return "Addition"
	case "-":
		return "Subtraction"
	case "*":
		return "Multiplication"
	case "/":
		return "Division"
	default:
		return "operator " + sym
	}
}
