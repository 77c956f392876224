package session

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rednaxelam/calculator"
)

// Substitute replaces each slot name in text with its value in parentheses.
// A slot name is substituted only when it stands alone, i.e. it is not part
// of a longer run of letters; other letters are left for the evaluator to
// reject. If a referenced slot is empty, the result is an *UnsetSlotError.
func Substitute(text string, slots *Slots) (string, error) {
	var b strings.Builder
	col := 0
	for i := 0; i < len(text); {
		r, sz := utf8.DecodeRuneInString(text[i:])
		col++
		if !unicode.IsLetter(r) {
			b.WriteString(text[i : i+sz])
			i += sz
			continue
		}
		// Scan the whole run of letters.
		j, k := i+sz, col
		for j < len(text) {
			r, sz := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsLetter(r) {
				break
			}
			j += sz
			k++
		}
		word := text[i:j]
		if IsSlot(word) {
			x, ok := slots.Get(word)
			if !ok {
				return "", &UnsetSlotError{Name: word, Col: col}
			}
			b.WriteByte('(')
			b.WriteString(literal(x))
			b.WriteByte(')')
		} else {
			b.WriteString(word)
		}
		i, col = j, k
	}
	return b.String(), nil
}

// literal formats x so that evaluating it gives back a number of the same
// value and level.
func literal(x calculator.Number) string {
	s := x.String()
	if x.Level() == calculator.LevelReal && !strings.ContainsAny(s, ".e") {
		// 5 would be an Integer.
		s += ".0"
	}
	return s
}
