package calculator

import "unicode"

// DefaultMaxDepth is the maximum parenthesis nesting depth of an Evaluator
// created without the MaxDepth option.
const DefaultMaxDepth = 256

// Evaluator evaluates expressions. An Evaluator is never modified after it
// is created, so it is safe to use concurrently.
type Evaluator struct {
	maxDepth int
}

// EvalOption is an option used when creating an Evaluator.
type EvalOption interface {
	evalOption(*Evaluator)
}

type depthopt int

func (o depthopt) evalOption(ev *Evaluator) {
	ev.maxDepth = int(o)
}

// MaxDepth sets the maximum parenthesis nesting depth. Expressions nested
// more deeply fail with a *NestingError. A depth less than 1 selects
// DefaultMaxDepth.
func MaxDepth(n int) EvalOption {
	if n < 1 {
		n = DefaultMaxDepth
	}
	return depthopt(n)
}

// NewEvaluator creates an evaluator with the given options applied in order.
func NewEvaluator(opts ...EvalOption) *Evaluator {
	ev := Evaluator{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.evalOption(&ev)
	}
	return &ev
}

// MaxDepth returns the maximum parenthesis nesting depth.
func (ev *Evaluator) MaxDepth() int {
	return ev.maxDepth
}

// Eval evaluates an expression to a single number.
//
// Parentheses are checked for balance before anything else. Then the
// expression is tokenized, each parenthesized subexpression is evaluated
// recursively and replaced by its value, and the remaining flat sequence is
// reduced by applying every * and / from left to right, then every + and -
// from left to right.
func (ev *Evaluator) Eval(src string) (Number, error) {
	if len(src) == 0 {
		return nil, &EmptyExpressionError{Col: 1}
	}
	if err := checkParens(src); err != nil {
		return nil, err
	}
	l, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ev.reduce(l, 0)
}

// checkParens checks that parentheses in src are balanced and that none
// enclose only whitespace.
func checkParens(src string) error {
	var opens []int
	var last rune
	col := 0
	for _, r := range src {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '(':
			opens = append(opens, col)
		case ')':
			if len(opens) == 0 {
				return &BracketError{Col: col, Right: ")"}
			}
			if last == '(' {
				return &EmptyExpressionError{Col: col, End: ")"}
			}
			opens = opens[:len(opens)-1]
		}
		last = r
	}
	if len(opens) != 0 {
		return &BracketError{Col: opens[len(opens)-1], Left: "("}
	}
	return nil
}

// reduce evaluates a token list to a single number. depth is the number of
// parentheses enclosing the list.
func (ev *Evaluator) reduce(l *TokenList, depth int) (Number, error) {
	if err := ev.descend(l, depth); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	for _, prec := range [...]int{2, 1} {
		l.Start()
		for {
			if tok := l.Token(); tok.Kind == TokenOp && tok.Op.Precedence() == prec {
				if err := l.Simplify(); err != nil {
					return nil, err
				}
			}
			if !l.HasNext() {
				break
			}
			l.Next()
		}
	}
	l.Start()
	tok := l.Token()
	if l.Len() != 1 || tok.Kind != TokenNum {
		panic("calculator: expression did not reduce to a number: " + l.String())
	}
	return tok.Num, nil
}

// descend replaces each parenthesized subexpression in l with its value.
func (ev *Evaluator) descend(l *TokenList, depth int) error {
	l.Start()
	for {
		if open := l.Token(); open.Kind == TokenOpen {
			if depth >= ev.maxDepth {
				return &NestingError{Col: open.Col, Max: ev.maxDepth}
			}
			sub, err := extract(l)
			if err != nil {
				return err
			}
			x, err := ev.reduce(sub, depth+1)
			if err != nil {
				return err
			}
			l.Set(NumToken(x, open.Col))
		}
		if !l.HasNext() {
			return nil
		}
		l.Next()
	}
}

// extract removes the tokens following the open parenthesis at the cursor up
// to and including its matching close parenthesis, and returns the tokens
// between them as a new list. The cursor remains on the open parenthesis.
func extract(l *TokenList) (*TokenList, error) {
	open := l.Token()
	if err := l.Next(); err != nil {
		return nil, &BracketError{Col: open.Col, Left: "("}
	}
	var sub *TokenList
	depth := 0
	for {
		last := !l.HasNext()
		tok, err := l.Pop()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case TokenOpen:
			depth++
		case TokenClose:
			if depth == 0 {
				if !last {
					// Popping moved the cursor past the removed tokens.
					l.Prev()
				}
				if sub == nil {
					return nil, &EmptyExpressionError{Col: tok.Col, End: ")"}
				}
				return sub, nil
			}
			depth--
		}
		if sub == nil {
			sub = NewTokenList(tok)
		} else {
			sub.Append(tok)
		}
		if last {
			return nil, &BracketError{Col: open.Col, Left: "("}
		}
	}
}

// Eval is a shortcut to evaluate an expression with an Evaluator created with
// the given options.
func Eval(src string, opts ...EvalOption) (Number, error) {
	return NewEvaluator(opts...).Eval(src)
}
