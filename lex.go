package calculator

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// tokenEOF indicates the end of the input. It never appears in a TokenList.
const tokenEOF TokenKind = -1

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is a token of kind tokenEOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Col: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.Kind = tokenEOF
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Col++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			isReal, err := l.scanNum()
			if err != nil {
				return tok, err
			}
			x, err := number(l.buf.String(), isReal)
			if err != nil {
				return tok, err
			}
			tok.Kind = TokenNum
			tok.Num = x
			return tok, nil
		case r == '(':
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Kind = TokenClose
			return tok, nil
		default:
			if strings.ContainsRune(Operators, r) {
				tok.Kind = TokenOp
				tok.Op = Operator(r)
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans a numeric literal into l.buf. The result reports whether the
// literal has a decimal point or exponent and so denotes a Real.
//
// A literal is digits with at most one decimal point and at least one digit
// before any exponent. An exponent is e, then a mandatory + or -, then one or
// more digits; the exponent cannot contain a decimal point.
func (l *lexer) scanNum() (bool, error) {
	var dig, dot, e, le, sgn, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return false, err
		}
		if r == '+' || r == '-' {
			// + or - anywhere other than immediately following an exponent
			// marker means a new token, as it is an operator.
			if !le {
				l.unreadRune()
				break
			}
			l.buf.WriteRune(r)
			le = false
			sgn = true
			continue
		}
		if r != '.' && r != 'e' && (r < '0' || '9' < r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return false, l.error("number")
			}
			dot = true
		case 'e':
			if !dig || e {
				return false, l.error("number")
			}
			e = true
			le = true
		default:
			if e {
				if !sgn {
					// An exponent needs an explicit sign.
					return false, l.error("number")
				}
				ed = true
			} else {
				dig = true
			}
		}
	}
	if !dig || (e && !ed) {
		return false, l.error("number")
	}
	return dot || e, nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune - 1,
	}
}

// number converts a literal scanned by scanNum to a Number. Integer literals
// too large to be safe become Reals.
func number(text string, isReal bool) (Number, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// scanNum only accepts literals that ParseFloat understands.
		panic("calculator: invalid number: " + text + " (" + err.Error() + ")")
	}
	// On ErrRange, f is ±Inf, which NewReal rejects.
	if !isReal && f <= MaxSafeInteger {
		return Integer{int64(f)}, nil
	}
	return NewReal(f)
}

// Tokenize converts an expression to a TokenList. If the expression contains
// no tokens, the result is an *EmptyExpressionError.
func Tokenize(src string) (*TokenList, error) {
	scan := lex(strings.NewReader(src))
	// Start with a placeholder so the list is never empty.
	l := NewTokenList(NumToken(Integer{}, 0))
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == tokenEOF {
			break
		}
		l.Append(tok)
	}
	l.Start()
	if err := l.Remove(); err != nil {
		return nil, &EmptyExpressionError{Col: scan.rune, End: ""}
	}
	return l, nil
}
