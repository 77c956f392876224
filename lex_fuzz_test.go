//go:build go1.18
// +build go1.18

package calculator

import "testing"

func FuzzTokenize(f *testing.F) {
	f.Add("1")
	f.Add("1e+10 - .5")
	f.Add("(1)(2)")
	f.Add("1×2")
	f.Fuzz(func(t *testing.T, s string) {
		l, err := Tokenize(s)
		if err != nil {
			return
		}
		toks := l.Tokens()
		if len(toks) != l.Len() {
			t.Errorf("%q: %d tokens but length %d", s, len(toks), l.Len())
		}
		col := 0
		for _, tok := range toks {
			if tok.Col <= col {
				t.Errorf("%q: token %v at %d follows position %d", s, tok, tok.Col, col)
			}
			col = tok.Col
		}
	})
}
