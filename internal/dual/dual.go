// Package dual implements dual numbers a + bε (ε² = 0) for forward-mode
// automatic differentiation of scalar functions.
package dual

import "strconv"

// Dual is the dual number A + Bε.
//
// A is the primal value f(x). B is the tangent: the derivative of A with
// respect to the seeded variable, carried along by the chain rule.
//
// Any pair is a valid value. Scalars are lifted by convention only:
// use Variable(x) (tangent 1) for the variable being differentiated and
// Constant(c) (tangent 0) for everything else.
type Dual[T Float] struct {
	A T
	B T
}

// Dual32 is a single-precision dual number.
type Dual32 = Dual[float32]

// Dual64 is a double-precision dual number.
type Dual64 = Dual[float64]

// New returns the dual number a + bε.
func New[T Float](a, b T) Dual[T] {
	return Dual[T]{A: a, B: b}
}

// Variable returns x + 1ε, the seed for the variable being differentiated.
func Variable[T Float](x T) Dual[T] {
	return Dual[T]{A: x, B: 1}
}

// Constant returns c + 0ε.
func Constant[T Float](c T) Dual[T] {
	return Dual[T]{A: c, B: 0}
}

// Conjugate returns a - bε.
func (d Dual[T]) Conjugate() Dual[T] {
	return Dual[T]{A: d.A, B: -d.B}
}

// Add returns d + o.
func (d Dual[T]) Add(o Dual[T]) Dual[T] {
	return Dual[T]{
		A: d.A + o.A,
		B: d.B + o.B,
	}
}

// Sub returns d - o.
func (d Dual[T]) Sub(o Dual[T]) Dual[T] {
	return Dual[T]{
		A: d.A - o.A,
		B: d.B - o.B,
	}
}

// Mul returns d * o: (a1*a2) + (a1*b2 + b1*a2)ε.
func (d Dual[T]) Mul(o Dual[T]) Dual[T] {
	return Dual[T]{
		A: d.A * o.A,
		B: d.A*o.B + d.B*o.A,
	}
}

// Div returns d / o: (a1/a2) + ((b1*a2 - a1*b2) / a2²)ε.
//
// A zero primal in o is not checked; the result carries whatever IEEE
// division produces (±Inf or NaN).
func (d Dual[T]) Div(o Dual[T]) Dual[T] {
	return Dual[T]{
		A: d.A / o.A,
		B: (d.B*o.A - d.A*o.B) / (o.A * o.A),
	}
}

// Inplace variants store the result in the receiver.

// AddInplace sets d to d + o.
func (d *Dual[T]) AddInplace(o Dual[T]) {
	*d = d.Add(o)
}

// SubInplace sets d to d - o.
func (d *Dual[T]) SubInplace(o Dual[T]) {
	*d = d.Sub(o)
}

// MulInplace sets d to d * o.
func (d *Dual[T]) MulInplace(o Dual[T]) {
	*d = d.Mul(o)
}

// DivInplace sets d to d / o.
func (d *Dual[T]) DivInplace(o Dual[T]) {
	*d = d.Div(o)
}

// String renders d as "a+bε", e.g. "2+3ε" or "0.5-1ε".
func (d Dual[T]) String() string {
	bits := 64
	if PrecisionOf[T]() == Single {
		bits = 32
	}

	a := strconv.FormatFloat(float64(d.A), 'g', -1, bits)
	b := strconv.FormatFloat(float64(d.B), 'g', -1, bits)
	if b[0] != '-' && b[0] != '+' {
		b = "+" + b
	}
	return a + b + "ε"
}
