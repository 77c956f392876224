// Package calculator implements an exact-where-possible arithmetic calculator.
//
// Expressions are written the way you would type them into a pocket
// calculator: numbers, the operators + - * /, and parentheses. "2-3-4" is
// -5, "1+2*3" is 7, and "-(1+2)" is -3. Unary + and - are allowed only at
// the start of an expression or parenthesized subexpression.
//
// Results use the lowest level of a small numeric tower that represents them
// exactly. "6/3" is the Integer 2, "1/3" is the Rational 1 / 3, and anything
// involving a decimal point or an exponent such as "1.5" or "1e+3" is a Real.
// Exponents always carry an explicit sign. Integers and the parts of
// Rationals are limited to MaxSafeInteger in magnitude; results beyond that
// become Reals.
package calculator
