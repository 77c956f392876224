package calculator

import "strings"

// TokenKind is the kind of a Token.
type TokenKind int8

const (
	TokenNone TokenKind = iota
	// TokenNum is an Integer, Rational, or Real.
	TokenNum
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + itoa(int64(k)) + ")"
	}
}

// Token is one lexical unit of an expression.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Num is the value of a TokenNum.
	Num Number
	// Op is the operator of a TokenOp.
	Op Operator
	// Col is the position of the token in the input, or 0 if the token did
	// not come from input.
	Col int
}

// NumToken creates a number token.
func NumToken(x Number, col int) Token {
	return Token{Kind: TokenNum, Num: x, Col: col}
}

// OpToken creates an operator token.
func OpToken(op Operator, col int) Token {
	return Token{Kind: TokenOp, Op: op, Col: col}
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return t.Num.String()
	case TokenOp:
		return t.Op.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	default:
		return "<" + t.Kind.String() + ">"
	}
}

func (t Token) paren() bool {
	return t.Kind == TokenOpen || t.Kind == TokenClose
}

// check panics if t is not a well-formed token.
func (t Token) check() {
	switch t.Kind {
	case TokenNum:
		if t.Num == nil {
			panic("calculator: number token with no number")
		}
	case TokenOp:
		if _, err := NewOperator(t.Op.String()); err != nil {
			panic("calculator: invalid operator token: " + err.Error())
		}
	case TokenOpen, TokenClose:
	default:
		panic("calculator: invalid token " + t.String())
	}
}

// nilnode marks the absence of a link.
const nilnode = -1

type tokenNode struct {
	tok        Token
	prev, next int
}

// TokenList is a mutable, doubly-linked sequence of tokens with a cursor. A
// TokenList is never empty. It is not safe to use a TokenList concurrently.
//
// Nodes live in a slice and link to each other by index, and removed nodes
// are reused by later insertions.
type TokenList struct {
	nodes []tokenNode
	free  []int

	start, end, cur int
	n               int
	// parens is the number of parenthesis tokens in the list.
	parens int
}

// NewTokenList creates a list containing a single token, with the cursor on
// that token. Panics if tok is not a valid token.
func NewTokenList(tok Token) *TokenList {
	tok.check()
	l := &TokenList{nodes: make([]tokenNode, 0, 8)}
	k := l.alloc(tok)
	l.start, l.end, l.cur = k, k, k
	l.n = 1
	l.count(tok, 1)
	return l
}

// alloc creates an unlinked node.
func (l *TokenList) alloc(tok Token) int {
	nd := tokenNode{tok: tok, prev: nilnode, next: nilnode}
	if k := len(l.free); k > 0 {
		i := l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[i] = nd
		return i
	}
	l.nodes = append(l.nodes, nd)
	return len(l.nodes) - 1
}

// release returns a node to the free list.
func (l *TokenList) release(i int) {
	l.nodes[i] = tokenNode{prev: nilnode, next: nilnode}
	l.free = append(l.free, i)
}

// count adjusts the parenthesis count for adding (d = 1) or removing (d = -1)
// tok.
func (l *TokenList) count(tok Token, d int) {
	if tok.paren() {
		l.parens += d
	}
}

// Append adds a token at the end of the list. The cursor does not move.
// Panics if tok is not a valid token.
func (l *TokenList) Append(tok Token) {
	tok.check()
	k := l.alloc(tok)
	l.nodes[k].prev = l.end
	l.nodes[l.end].next = k
	l.end = k
	l.n++
	l.count(tok, 1)
}

// InsertBefore adds a token immediately before the cursor. The cursor does
// not move. Panics if tok is not a valid token.
func (l *TokenList) InsertBefore(tok Token) {
	tok.check()
	k := l.alloc(tok)
	p := l.nodes[l.cur].prev
	l.nodes[k].prev = p
	l.nodes[k].next = l.cur
	l.nodes[l.cur].prev = k
	if p == nilnode {
		l.start = k
	} else {
		l.nodes[p].next = k
	}
	l.n++
	l.count(tok, 1)
}

// Remove deletes the token at the cursor. The cursor moves to the following
// token, or to the preceding one if the removed token was last. If the list
// has only one token, the result is ErrLastToken.
func (l *TokenList) Remove() error {
	if l.n == 1 {
		return ErrLastToken
	}
	i := l.cur
	nd := l.nodes[i]
	l.count(nd.tok, -1)
	switch {
	case i == l.start:
		l.nodes[nd.next].prev = nilnode
		l.start = nd.next
		l.cur = nd.next
	case i == l.end:
		l.nodes[nd.prev].next = nilnode
		l.end = nd.prev
		l.cur = nd.prev
	default:
		l.nodes[nd.prev].next = nd.next
		l.nodes[nd.next].prev = nd.prev
		l.cur = nd.next
	}
	l.release(i)
	l.n--
	return nil
}

// Pop removes the token at the cursor as by Remove and returns it.
func (l *TokenList) Pop() (Token, error) {
	tok := l.nodes[l.cur].tok
	if err := l.Remove(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// Start moves the cursor to the first token.
func (l *TokenList) Start() {
	l.cur = l.start
}

// Next moves the cursor to the following token. If the cursor is on the last
// token, the result is ErrOutOfBounds and the cursor does not move.
func (l *TokenList) Next() error {
	if !l.HasNext() {
		return ErrOutOfBounds
	}
	l.cur = l.nodes[l.cur].next
	return nil
}

// Prev moves the cursor to the preceding token. If the cursor is on the first
// token, the result is ErrOutOfBounds and the cursor does not move.
func (l *TokenList) Prev() error {
	if !l.HasPrev() {
		return ErrOutOfBounds
	}
	l.cur = l.nodes[l.cur].prev
	return nil
}

// HasNext returns whether there is a token following the cursor.
func (l *TokenList) HasNext() bool {
	return l.nodes[l.cur].next != nilnode
}

// HasPrev returns whether there is a token preceding the cursor.
func (l *TokenList) HasPrev() bool {
	return l.nodes[l.cur].prev != nilnode
}

// Token returns the token at the cursor.
func (l *TokenList) Token() Token {
	return l.nodes[l.cur].tok
}

// Set replaces the token at the cursor. Panics if tok is not a valid token.
func (l *TokenList) Set(tok Token) {
	tok.check()
	l.count(l.nodes[l.cur].tok, -1)
	l.nodes[l.cur].tok = tok
	l.count(tok, 1)
}

// HasParens returns whether any parenthesis tokens are in the list.
func (l *TokenList) HasParens() bool {
	return l.parens != 0
}

// Len returns the number of tokens in the list.
func (l *TokenList) Len() int {
	return l.n
}

// Tokens returns a copy of the tokens in the list in order.
func (l *TokenList) Tokens() []Token {
	r := make([]Token, 0, l.n)
	for i := l.start; i != nilnode; i = l.nodes[i].next {
		r = append(r, l.nodes[i].tok)
	}
	return r
}

// String formats the list like [1, +, 2].
func (l *TokenList) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := l.start; i != nilnode; i = l.nodes[i].next {
		if i != l.start {
			b.WriteString(", ")
		}
		b.WriteString(l.nodes[i].tok.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Validate checks that a list with no parentheses can be reduced to a single
// number by Simplify. The list must alternate between numbers and operators,
// may begin with a unary operator, and must end with a number. Violations
// result in an *ExpressionError.
func (l *TokenList) Validate() error {
	if l.HasParens() {
		return &ExpressionError{Col: l.nodes[l.start].tok.Col, Reason: "cannot validate an expression containing parentheses"}
	}
	i := l.start
	first := l.nodes[i].tok
	op := first.Kind == TokenOp
	if op && !first.Op.Unary() {
		return &ExpressionError{Col: first.Col, Reason: "expression can't begin with " + first.Op.String()}
	}
	for i = l.nodes[i].next; i != nilnode; i = l.nodes[i].next {
		tok := l.nodes[i].tok
		switch {
		case op && tok.Kind == TokenOp:
			return &ExpressionError{Col: tok.Col, Reason: "operator can't be followed by an operator"}
		case !op && tok.Kind == TokenNum:
			return &ExpressionError{Col: tok.Col, Reason: "number can't be followed by another number"}
		}
		op = !op
	}
	last := l.nodes[l.end].tok
	if last.Kind == TokenOp {
		if l.n == 1 {
			return &ExpressionError{Col: last.Col, Reason: "operator " + last.Op.String() + " needs one argument"}
		}
		return &ExpressionError{Col: last.Col, Reason: "operator " + last.Op.String() + " needs two arguments"}
	}
	return nil
}

// Simplify reduces the operator at the cursor and its operands to a single
// number. If the operator is first in the list, it is applied as a unary
// operator to the following number, which is merged into the cursor's
// position. Otherwise, it is applied to the preceding and following numbers,
// and the cursor moves to the result in the preceding number's position. A
// list containing only a number is left unchanged.
//
// The list must not contain parentheses, and it should have passed Validate.
func (l *TokenList) Simplify() error {
	cur := l.nodes[l.cur].tok
	if l.HasParens() {
		return &ExpressionError{Col: cur.Col, Reason: "cannot simplify an expression containing parentheses"}
	}
	if l.n == 1 {
		switch cur.Kind {
		case TokenNum:
			return nil
		case TokenOp:
			return &ExpressionError{Col: cur.Col, Reason: "operator " + cur.Op.String() + " has no operands"}
		default:
			// Unreachable with an accurate parenthesis count.
			panic("calculator: only token in list is " + cur.String())
		}
	}
	if cur.Kind != TokenOp {
		return &ExpressionError{Col: cur.Col, Reason: "cannot simplify at " + cur.String() + ", which is not an operator"}
	}
	nd := l.nodes[l.cur]
	if nd.next == nilnode {
		return &ExpressionError{Col: cur.Col, Reason: "binary operator " + cur.Op.String() + " must take two arguments"}
	}
	rhs := l.nodes[nd.next].tok
	if rhs.Kind != TokenNum {
		return &ExpressionError{Col: rhs.Col, Reason: "operator can't be followed by an operator"}
	}
	if nd.prev == nilnode {
		r, err := cur.Op.Apply(rhs.Num, nil)
		if err != nil {
			return at(err, cur.Col)
		}
		l.nodes[l.cur].tok = NumToken(r, cur.Col)
		l.unlink(nd.next)
		return nil
	}
	lhs := l.nodes[nd.prev].tok
	if lhs.Kind != TokenNum {
		return &ExpressionError{Col: cur.Col, Reason: "operator can't be followed by an operator"}
	}
	r, err := cur.Op.Apply(lhs.Num, rhs.Num)
	if err != nil {
		return at(err, cur.Col)
	}
	l.nodes[nd.prev].tok = NumToken(r, lhs.Col)
	l.unlink(nd.next)
	l.unlink(l.cur)
	l.cur = nd.prev
	return nil
}

// unlink removes a node that is not the start of the list. The caller fixes
// the cursor if it was on the removed node.
func (l *TokenList) unlink(i int) {
	nd := l.nodes[i]
	l.nodes[nd.prev].next = nd.next
	if nd.next == nilnode {
		l.end = nd.prev
	} else {
		l.nodes[nd.next].prev = nd.prev
	}
	l.release(i)
	l.n--
}

// at sets the position of an operator error that was detected without one.
func at(err error, col int) error {
	if oe, ok := err.(*OperatorError); ok && oe.Col == 0 {
		oe.Col = col
	}
	return err
}
