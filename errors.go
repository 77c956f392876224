package calculator

import (
	"errors"
	"strconv"
)

// Arithmetic errors. These are returned unwrapped, so both == and errors.Is
// work to detect them.
var (
	// ErrDivisionByZero is the error returned when dividing any number by a
	// zero-valued number.
	ErrDivisionByZero = errors.New("division by 0 is not permitted")
	// ErrOverflow is the error returned when a Real would reach the largest
	// finite float64.
	ErrOverflow = errors.New("number overflow (number is too large)")
	// ErrUnderflow is the error returned when a Real would reach the most
	// negative finite float64.
	ErrUnderflow = errors.New("number underflow (negative number is too large)")
)

// Token list errors.
var (
	// ErrOutOfBounds is returned when moving a TokenList cursor past either
	// end of the list.
	ErrOutOfBounds = errors.New("out of bounds error")
	// ErrLastToken is returned when removing the only token of a TokenList.
	ErrLastToken = errors.New("can't remove element from token list of length 1")
)

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the tokenizer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the tokenizer was scanning. This is "number"
	// for malformed numeric literals or the empty string for characters that
	// cannot start any token.
	Kind string
	// Col is the position of the rune that made the token invalid, or of
	// the last rune of an incomplete number.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator that cannot be used the
// way it was asked to be. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator, or 0 if unknown.
	Col int
	// Operator is the operator symbol.
	Operator string
	// Unary is whether the operator was a valid operator applied to a single
	// argument. If false, the symbol is not an operator at all.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, opname(err.Operator)+" requires two arguments")
	}
	return errpos(err.Col, strconv.Quote(err.Operator)+" is not a valid operation")
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the offending parenthesis, or of the end of the
	// input for an unclosed one.
	Col int
	// Left is the opening parenthesis, if one was left unclosed.
	Left string
	// Right is the closing parenthesis, if one had nothing to close.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis "+err.Right+" with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis "+err.Left+" with no close parenthesis")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty expression or
// subexpression. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string if
	// the whole input is empty.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating numbers and operators in an order
// that cannot be reduced to a single number. It implements InputError.
type ExpressionError struct {
	// Col is the position of the token where the problem was found.
	Col int
	// Reason describes the problem.
	Reason string
}

func (err *ExpressionError) Error() string {
	return errpos(err.Col, err.Reason)
}

func (err *ExpressionError) Pos() int {
	return err.Col
}

// NestingError is an error indicating parentheses nested more deeply than
// the evaluator allows. It implements InputError.
type NestingError struct {
	// Col is the position of the first parenthesis beyond the limit.
	Col int
	// Max is the maximum depth that was in effect.
	Max int
}

func (err *NestingError) Error() string {
	return errpos(err.Col, "parentheses nested deeper than "+strconv.Itoa(err.Max))
}

func (err *NestingError) Pos() int {
	return err.Col
}

// ArgumentError is an error indicating a numeric method called with an
// operand of the wrong kind, or without a required operand.
type ArgumentError struct {
	// Func names the method or conversion that failed.
	Func string
	// Want is the level the method requires.
	Want Level
	// Got is the level of the operand that was supplied, or 0 if there was
	// no operand.
	Got Level
}

func (err *ArgumentError) Error() string {
	if err.Got == 0 {
		return err.Func + ": method must have an argument"
	}
	if err.Func == "promote" {
		return "cannot promote " + err.Got.String() + " to " + err.Want.String()
	}
	return err.Func + ": argument is not an instance of " + err.Want.String()
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*NestingError)(nil)
)
