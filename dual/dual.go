// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dual

import (
	"github.com/born-ml/dual/internal/dual"
	"github.com/born-ml/dual/internal/parallel"
)

// Float is a constraint for dual number scalars: float32 or float64.
type Float = dual.Float

// Precision represents the floating-point width of a dual number.
type Precision = dual.Precision

// Precision constants.
const (
	Single Precision = dual.Single
	Double Precision = dual.Double
)

// Dual is the dual number A + Bε, with primal A and tangent B.
//
// Dual is a plain comparable value; == compares both fields.
//
// Example:
//
//	a := dual.New(2.0, 3.0)
//	b := dual.New(1.0, 2.0)
//	c := a.Mul(b)  // 2+7ε
type Dual[T Float] = dual.Dual[T]

// Dual32 is a single-precision dual number.
type Dual32 = dual.Dual32

// Dual64 is a double-precision dual number.
type Dual64 = dual.Dual64

// New returns the dual number a + bε.
func New[T Float](a, b T) Dual[T] {
	return dual.New(a, b)
}

// Variable returns x + 1ε: the seed for the variable being differentiated.
func Variable[T Float](x T) Dual[T] {
	return dual.Variable(x)
}

// Constant returns c + 0ε.
func Constant[T Float](c T) Dual[T] {
	return dual.Constant(c)
}

// PrecisionOf reports the precision of T.
func PrecisionOf[T Float]() Precision {
	return dual.PrecisionOf[T]()
}

// Ln2 returns ln(2) at T's precision.
func Ln2[T Float]() T {
	return dual.Ln2[T]()
}

// Ln10 returns ln(10) at T's precision.
func Ln10[T Float]() T {
	return dual.Ln10[T]()
}

// Derivative evaluates f at x and returns f(x) and f'(x).
//
// Example:
//
//	v, d := dual.Derivative(func(x dual.Dual64) dual.Dual64 {
//	    return x.Sin().Mul(x)
//	}, 1.5)
func Derivative[T Float](f func(Dual[T]) Dual[T], x T) (value, slope T) {
	return dual.Derivative(f, x)
}

// ParallelConfig controls how DerivativeBatch spreads work over goroutines.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a config sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig returns a config that evaluates on the calling goroutine.
func SequentialConfig() ParallelConfig {
	return parallel.Sequential()
}

// DerivativeBatch evaluates f and f' at every point of xs.
// f must be safe to call concurrently when cfg enables parallelism.
func DerivativeBatch[T Float](f func(Dual[T]) Dual[T], xs []T, cfg ParallelConfig) (values, slopes []T) {
	return dual.DerivativeBatch(f, xs, cfg)
}
