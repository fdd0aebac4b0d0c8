// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides dual numbers for forward-mode automatic differentiation.
//
// # Overview
//
// A dual number a + bε (with ε² = 0) carries a value a together with its
// derivative b. Evaluating a function on x + 1ε yields f(x) + f'(x)ε, so
// the derivative falls out of ordinary evaluation:
//
//	x := dual.Variable(2.0)         // 2 + 1ε
//	y := x.Mul(x).Add(x)            // x² + x
//	fmt.Println(y.A, y.B)           // 6 5
//
// # Lifting Scalars
//
// Operators only combine dual numbers. Plain scalars must be lifted first:
//   - dual.Variable(x): the variable being differentiated (tangent 1)
//   - dual.Constant(c): any other value (tangent 0)
//
// Nothing enforces this convention; New accepts any (a, b) pair.
//
// # Supported Types
//
// Dual[T] is generic over float32 and float64 (Dual32, Dual64). The
// function catalog uses ln(2) and ln(10) at the matching precision.
//
// # Function Catalog
//
//	y := x.Sqrt().Atan().Exp()   // chain rule composes automatically
//
// Trigonometric: Sin, Cos, Tan, Asin, Acos, Atan.
// Hyperbolic: Sinh, Cosh, Tanh, Asinh, Acosh, Atanh.
// Exponential: Exp, Exp2, ExpM1.
// Logarithmic: Ln, Ln1p, Log(base), Log2, Log10.
// Power: Sqrt, Cbrt, Powf(n), Powi(n), Recip.
// Rounding (tangent always 0): Ceil, Floor, Round, Trunc, Signum.
// Other: Abs, Frac, Conjugate.
//
// # Errors
//
// There are none. Out-of-domain inputs and division by zero produce NaN
// or ±Inf exactly as float arithmetic does, and these propagate through
// later operations.
package dual
