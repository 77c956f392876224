package calculator

import (
	"math"
	"math/bits"
)

// Level is the rank of a numeric representation in the numeric tower. A
// number of a lower level can always be promoted to a higher level without
// losing its value.
type Level int8

const (
	LevelInteger Level = 1 + iota
	LevelRational
	LevelReal
)

func (l Level) String() string {
	switch l {
	case LevelInteger:
		return "Integer"
	case LevelRational:
		return "Rational"
	case LevelReal:
		return "Real"
	default:
		return "Level(" + itoa(int64(l)) + ")"
	}
}

// MaxSafeInteger is the largest integer n such that n and every integer
// smaller in magnitude are exactly representable as float64. Integer and
// Rational values never exceed it in magnitude.
const MaxSafeInteger = 1<<53 - 1

// Number is an Integer, Rational, or Real.
//
// The arithmetic methods require an operand of the same level as the
// receiver and return an *ArgumentError otherwise; operands of different
// levels must be promoted first, which Operator.Apply does automatically.
// Add and Sub are unary when y is nil: Add returns the receiver and Sub
// negates it. Mul and Div require y. Every result is the lowest-level number
// that represents it exactly.
type Number interface {
	Add(y Number) (Number, error)
	Sub(y Number) (Number, error)
	Mul(y Number) (Number, error)
	Div(y Number) (Number, error)

	// Level returns the position of the number in the numeric tower.
	Level() Level
	// Promote converts the number to a representation at a higher level.
	// Promoting to the number's own level is also allowed and returns the
	// number unchanged, so callers need not compare levels first; Apply
	// only promotes the lower of two levels. Promoting to a lower level
	// fails with an *ArgumentError.
	Promote(to Level) (Number, error)
	// Float64 returns the nearest float64 to the number.
	Float64() float64
	// String returns the display form of the number. Display forms are
	// valid input expressions that evaluate to the same number.
	String() string
}

var (
	_ Number = Integer{}
	_ Number = Rational{}
	_ Number = Real{}
)

// Integer is an integer no larger in magnitude than MaxSafeInteger.
type Integer struct {
	v int64
}

// NewInteger creates an Integer. If v is outside the safe integer range, the
// result is the Real nearest to v instead.
func NewInteger(v int64) Number {
	if !safe(v) {
		return Real{float64(v)}
	}
	return Integer{v}
}

// Int64 returns the value of x.
func (x Integer) Int64() int64 {
	return x.v
}

func (x Integer) Add(y Number) (Number, error) {
	if y == nil {
		return x, nil
	}
	r, err := x.operand("Integer.Add", y)
	if err != nil {
		return nil, err
	}
	// Safe integers are at most 53 bits, so the sum cannot overflow int64.
	return intResult(x.v+r.v, float64(x.v)+float64(r.v))
}

func (x Integer) Sub(y Number) (Number, error) {
	if y == nil {
		return Integer{-x.v}, nil
	}
	r, err := x.operand("Integer.Sub", y)
	if err != nil {
		return nil, err
	}
	return intResult(x.v-r.v, float64(x.v)-float64(r.v))
}

func (x Integer) Mul(y Number) (Number, error) {
	if y == nil {
		return nil, &ArgumentError{Func: "Integer.Mul", Want: LevelInteger}
	}
	r, err := x.operand("Integer.Mul", y)
	if err != nil {
		return nil, err
	}
	if p, ok := mul(x.v, r.v); ok {
		return Integer{p}, nil
	}
	return NewReal(float64(x.v) * float64(r.v))
}

func (x Integer) Div(y Number) (Number, error) {
	if y == nil {
		return nil, &ArgumentError{Func: "Integer.Div", Want: LevelInteger}
	}
	r, err := x.operand("Integer.Div", y)
	if err != nil {
		return nil, err
	}
	if r.v == 0 {
		return nil, ErrDivisionByZero
	}
	if x.v%r.v == 0 {
		return Integer{x.v / r.v}, nil
	}
	return rat(x.v, r.v)
}

func (x Integer) Level() Level {
	return LevelInteger
}

func (x Integer) Promote(to Level) (Number, error) {
	switch to {
	case LevelInteger:
		return x, nil
	case LevelRational:
		return Rational{num: x.v, den: 1}, nil
	case LevelReal:
		return Real{float64(x.v)}, nil
	default:
		return nil, &ArgumentError{Func: "promote", Want: to, Got: LevelInteger}
	}
}

func (x Integer) Float64() float64 {
	return float64(x.v)
}

func (x Integer) String() string {
	return itoa(x.v)
}

// operand checks that y is an Integer.
func (x Integer) operand(fn string, y Number) (Integer, error) {
	r, ok := y.(Integer)
	if !ok {
		return Integer{}, &ArgumentError{Func: fn, Want: LevelInteger, Got: y.Level()}
	}
	return r, nil
}

// Rational is a fraction in lowest terms with a positive denominator. The
// numerator and denominator are both safe integers.
type Rational struct {
	num, den int64
}

// NewRational creates the Rational num/den in lowest terms. If either num or
// den is outside the safe integer range, the result is the Real nearest to
// num/den instead. If den is zero, the result is ErrDivisionByZero.
func NewRational(num, den int64) (Number, error) {
	if den == 0 {
		return nil, ErrDivisionByZero
	}
	if !safe(num) || !safe(den) {
		return NewReal(float64(num) / float64(den))
	}
	return rat(num, den)
}

// Num returns the numerator of x.
func (x Rational) Num() int64 {
	return x.num
}

// Den returns the denominator of x. It is always positive.
func (x Rational) Den() int64 {
	return x.den
}

func (x Rational) Add(y Number) (Number, error) {
	if y == nil {
		return lowest(x), nil
	}
	r, err := x.operand("Rational.Add", y)
	if err != nil {
		return nil, err
	}
	switch {
	case x.num == 0:
		return lowest(r), nil
	case r.num == 0:
		return lowest(x), nil
	case x.den == r.den:
		return ratResult(x.num+r.num, x.den)
	}
	n, ok := mulAdd(x.num, r.den, r.num, x.den)
	d, ok2 := mul(x.den, r.den)
	if !ok || !ok2 {
		return NewReal(x.Float64() + r.Float64())
	}
	return ratResult(n, d)
}

func (x Rational) Sub(y Number) (Number, error) {
	if y == nil {
		return lowest(Rational{num: -x.num, den: x.den}), nil
	}
	r, err := x.operand("Rational.Sub", y)
	if err != nil {
		return nil, err
	}
	switch {
	case x.num == 0:
		return lowest(Rational{num: -r.num, den: r.den}), nil
	case r.num == 0:
		return lowest(x), nil
	case x.den == r.den:
		return ratResult(x.num-r.num, x.den)
	}
	n, ok := mulAdd(x.num, r.den, -r.num, x.den)
	d, ok2 := mul(x.den, r.den)
	if !ok || !ok2 {
		return NewReal(x.Float64() - r.Float64())
	}
	return ratResult(n, d)
}

func (x Rational) Mul(y Number) (Number, error) {
	if y == nil {
		return nil, &ArgumentError{Func: "Rational.Mul", Want: LevelRational}
	}
	r, err := x.operand("Rational.Mul", y)
	if err != nil {
		return nil, err
	}
	if x.num == 0 || r.num == 0 {
		return Integer{0}, nil
	}
	// Cross-reduce before multiplying to keep the products small.
	g1 := gcd(x.num, r.den)
	g2 := gcd(r.num, x.den)
	n, ok := mul(x.num/g1, r.num/g2)
	d, ok2 := mul(x.den/g2, r.den/g1)
	if !ok || !ok2 {
		return NewReal(x.Float64() * r.Float64())
	}
	return ratResult(n, d)
}

func (x Rational) Div(y Number) (Number, error) {
	if y == nil {
		return nil, &ArgumentError{Func: "Rational.Div", Want: LevelRational}
	}
	r, err := x.operand("Rational.Div", y)
	if err != nil {
		return nil, err
	}
	if r.num == 0 {
		return nil, ErrDivisionByZero
	}
	if x.num == 0 {
		return Integer{0}, nil
	}
	g1 := gcd(x.num, r.num)
	g2 := gcd(r.den, x.den)
	n, ok := mul(x.num/g1, r.den/g2)
	d, ok2 := mul(x.den/g2, r.num/g1)
	if !ok || !ok2 {
		return NewReal(x.Float64() / r.Float64())
	}
	return ratResult(n, d)
}

func (x Rational) Level() Level {
	return LevelRational
}

func (x Rational) Promote(to Level) (Number, error) {
	switch to {
	case LevelRational:
		return x, nil
	case LevelReal:
		return Real{x.Float64()}, nil
	default:
		return nil, &ArgumentError{Func: "promote", Want: to, Got: LevelRational}
	}
}

func (x Rational) Float64() float64 {
	return float64(x.num) / float64(x.den)
}

func (x Rational) String() string {
	if x.den == 1 {
		return itoa(x.num)
	}
	return itoa(x.num) + " / " + itoa(x.den)
}

// operand checks that y is a Rational.
func (x Rational) operand(fn string, y Number) (Rational, error) {
	r, ok := y.(Rational)
	if !ok {
		return Rational{}, &ArgumentError{Func: fn, Want: LevelRational, Got: y.Level()}
	}
	return r, nil
}

// Real is a finite float64 strictly smaller in magnitude than
// math.MaxFloat64.
type Real struct {
	v float64
}

// NewReal creates a Real. If v is at least math.MaxFloat64, including +Inf,
// the result is ErrOverflow. If v is at most -math.MaxFloat64, the result is
// ErrUnderflow. NaN is not a number and also results in ErrOverflow.
func NewReal(v float64) (Number, error) {
	switch {
	case v >= math.MaxFloat64, math.IsNaN(v):
		return nil, ErrOverflow
	case -v >= math.MaxFloat64:
		return nil, ErrUnderflow
	}
	return Real{v}, nil
}

func (x Real) Add(y Number) (Number, error) {
	if y == nil {
		return x, nil
	}
	r, err := x.operand("Real.Add", y)
	if err != nil {
		return nil, err
	}
	return NewReal(x.v + r.v)
}

func (x Real) Sub(y Number) (Number, error) {
	if y == nil {
		return Real{-x.v}, nil
	}
	r, err := x.operand("Real.Sub", y)
	if err != nil {
		return nil, err
	}
	return NewReal(x.v - r.v)
}

func (x Real) Mul(y Number) (Number, error) {
	if y == nil {
		return nil, &ArgumentError{Func: "Real.Mul", Want: LevelReal}
	}
	r, err := x.operand("Real.Mul", y)
	if err != nil {
		return nil, err
	}
	return NewReal(x.v * r.v)
}

func (x Real) Div(y Number) (Number, error) {
	if y == nil {
		return nil, &ArgumentError{Func: "Real.Div", Want: LevelReal}
	}
	r, err := x.operand("Real.Div", y)
	if err != nil {
		return nil, err
	}
	if r.v == 0 {
		return nil, ErrDivisionByZero
	}
	return NewReal(x.v / r.v)
}

func (x Real) Level() Level {
	return LevelReal
}

func (x Real) Promote(to Level) (Number, error) {
	if to != LevelReal {
		return nil, &ArgumentError{Func: "promote", Want: to, Got: LevelReal}
	}
	return x, nil
}

func (x Real) Float64() float64 {
	return x.v
}

func (x Real) String() string {
	return formatReal(x.v)
}

// operand checks that y is a Real.
func (x Real) operand(fn string, y Number) (Real, error) {
	r, ok := y.(Real)
	if !ok {
		return Real{}, &ArgumentError{Func: fn, Want: LevelReal, Got: y.Level()}
	}
	return r, nil
}

// safe returns whether v is a safe integer.
func safe(v int64) bool {
	return -MaxSafeInteger <= v && v <= MaxSafeInteger
}

// intResult returns v as an Integer if it is safe, or else f as a Real.
func intResult(v int64, f float64) (Number, error) {
	if safe(v) {
		return Integer{v}, nil
	}
	return NewReal(f)
}

// rat creates num/den in lowest terms. num and den must be safe.
func rat(num, den int64) (Number, error) {
	if den == 0 {
		return nil, ErrDivisionByZero
	}
	if num == 0 {
		return Rational{num: 0, den: 1}, nil
	}
	g := gcd(num, den)
	num, den = num/g, den/g
	if den < 0 {
		num, den = -num, -den
	}
	return Rational{num: num, den: den}, nil
}

// ratResult creates num/den as the lowest-level number that represents it.
// num and den come from sums of safe integers and may not be safe
// themselves, in which case the result is the Real num/den.
func ratResult(num, den int64) (Number, error) {
	if !safe(num) || !safe(den) {
		return NewReal(float64(num) / float64(den))
	}
	r, err := rat(num, den)
	if err != nil {
		return nil, err
	}
	return lowest(r), nil
}

// lowest demotes a Rational with denominator 1 to an Integer.
func lowest(x Number) Number {
	if r, ok := x.(Rational); ok && r.den == 1 {
		return Integer{r.num}
	}
	return x
}

// mul computes a*b if the product is safe.
func mul(a, b int64) (int64, bool) {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(abs(a), abs(b))
	if hi != 0 || lo > MaxSafeInteger {
		return 0, false
	}
	if neg {
		return -int64(lo), true
	}
	return int64(lo), true
}

// mulAdd computes a*b + c*d if both products are safe. The sum of two safe
// integers always fits in an int64, but it may not be safe itself.
func mulAdd(a, b, c, d int64) (int64, bool) {
	p, ok := mul(a, b)
	if !ok {
		return 0, false
	}
	q, ok := mul(c, d)
	if !ok {
		return 0, false
	}
	return p + q, true
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// gcd computes the greatest common divisor of |x| and |y|. gcd(0, y) is |y|.
func gcd(x, y int64) int64 {
	a, b := abs(x), abs(y)
	for b != 0 {
		a, b = b, a%b
	}
	return int64(a)
}
