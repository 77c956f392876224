// Package session holds the state a calculator keeps between expressions:
// the variable slots x, y, z, and ans, a bounded history of evaluations, and
// the configuration used to set them up.
//
// Slots are referenced in expressions by name and are substituted textually
// before evaluation, so
//
//	x = 1/3
//	x * 3
//
// evaluates "(1 / 3) * 3" on the second line and stores the Integer 1 in ans.
package session
