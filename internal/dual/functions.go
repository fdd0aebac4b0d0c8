package dual

import "math"

// Every function f is lifted by the chain rule:
//
//	f(a + bε) = f(a) + b·f'(a)ε
//
// Scalar math is evaluated in float64 and narrowed to T. Domain errors are
// not reported: they surface as NaN or ±Inf in A and/or B.

// sqrtT returns √x at T's precision.
func sqrtT[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// signum returns -1, 1, or x itself for ±0 and NaN.
func signum[T Float](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// Abs: d|x|/dx = sgn(x).
func (d Dual[T]) Abs() Dual[T] {
	return Dual[T]{
		A: T(math.Abs(float64(d.A))),
		B: d.B * signum(d.A),
	}
}

// Acos: d(acos(x))/dx = -1/√(1-x²).
func (d Dual[T]) Acos() Dual[T] {
	return Dual[T]{
		A: T(math.Acos(float64(d.A))),
		B: -d.B / sqrtT(1-d.A*d.A),
	}
}

// Acosh: d(acosh(x))/dx = 1/√(x²-1).
func (d Dual[T]) Acosh() Dual[T] {
	return Dual[T]{
		A: T(math.Acosh(float64(d.A))),
		B: d.B / sqrtT(d.A*d.A-1),
	}
}

// Asin: d(asin(x))/dx = 1/√(1-x²).
func (d Dual[T]) Asin() Dual[T] {
	return Dual[T]{
		A: T(math.Asin(float64(d.A))),
		B: d.B / sqrtT(1-d.A*d.A),
	}
}

// Asinh: d(asinh(x))/dx = 1/√(x²+1).
func (d Dual[T]) Asinh() Dual[T] {
	return Dual[T]{
		A: T(math.Asinh(float64(d.A))),
		B: d.B / sqrtT(1+d.A*d.A),
	}
}

// Atan: d(atan(x))/dx = 1/(1+x²).
func (d Dual[T]) Atan() Dual[T] {
	return Dual[T]{
		A: T(math.Atan(float64(d.A))),
		B: d.B / (1 + d.A*d.A),
	}
}

// Atanh: d(atanh(x))/dx = 1/(1-x²).
func (d Dual[T]) Atanh() Dual[T] {
	return Dual[T]{
		A: T(math.Atanh(float64(d.A))),
		B: d.B / (1 - d.A*d.A),
	}
}

// Cbrt returns the cube root. The tangent b·x^(-2/3)/3 is NaN for
// negative x, following math.Pow.
func (d Dual[T]) Cbrt() Dual[T] {
	return Dual[T]{
		A: T(math.Cbrt(float64(d.A))),
		B: d.B * T(math.Pow(float64(d.A), -2.0/3.0)) / 3,
	}
}

// Ceil has tangent 0.
func (d Dual[T]) Ceil() Dual[T] {
	return Dual[T]{A: T(math.Ceil(float64(d.A)))}
}

// Cos: d(cos(x))/dx = -sin(x).
func (d Dual[T]) Cos() Dual[T] {
	return Dual[T]{
		A: T(math.Cos(float64(d.A))),
		B: -d.B * T(math.Sin(float64(d.A))),
	}
}

// Cosh: d(cosh(x))/dx = sinh(x).
func (d Dual[T]) Cosh() Dual[T] {
	return Dual[T]{
		A: T(math.Cosh(float64(d.A))),
		B: d.B * T(math.Sinh(float64(d.A))),
	}
}

// Exp: d(e^x)/dx = e^x.
func (d Dual[T]) Exp() Dual[T] {
	ex := T(math.Exp(float64(d.A)))
	return Dual[T]{
		A: ex,
		B: d.B * ex,
	}
}

// Exp2: d(2^x)/dx = ln(2)·2^x.
func (d Dual[T]) Exp2() Dual[T] {
	ex := T(math.Exp2(float64(d.A)))
	return Dual[T]{
		A: ex,
		B: d.B * Ln2[T]() * ex,
	}
}

// ExpM1 returns e^x - 1, accurate near zero. The tangent is e^x,
// recovered from the primal.
func (d Dual[T]) ExpM1() Dual[T] {
	em := T(math.Expm1(float64(d.A)))
	return Dual[T]{
		A: em,
		B: d.B * (em + 1),
	}
}

// Floor has tangent 0.
func (d Dual[T]) Floor() Dual[T] {
	return Dual[T]{A: T(math.Floor(float64(d.A)))}
}

// Frac returns the fractional part x - trunc(x), keeping x's sign.
// Its slope is 1 away from the integers.
func (d Dual[T]) Frac() Dual[T] {
	return Dual[T]{
		A: d.A - T(math.Trunc(float64(d.A))),
		B: d.B,
	}
}

// Ln: d(ln(x))/dx = 1/x.
func (d Dual[T]) Ln() Dual[T] {
	return Dual[T]{
		A: T(math.Log(float64(d.A))),
		B: d.B / d.A,
	}
}

// Ln1p returns ln(1+x), accurate near zero.
func (d Dual[T]) Ln1p() Dual[T] {
	return Dual[T]{
		A: T(math.Log1p(float64(d.A))),
		B: d.B / (d.A + 1),
	}
}

// Log returns the logarithm in a fixed base. Only d carries a tangent:
// d(log_c(x))/dx = 1/(x·ln(c)).
func (d Dual[T]) Log(base T) Dual[T] {
	lnBase := math.Log(float64(base))
	return Dual[T]{
		A: T(math.Log(float64(d.A)) / lnBase),
		B: d.B / (d.A * T(lnBase)),
	}
}

// Log2: d(log2(x))/dx = 1/(x·ln(2)).
func (d Dual[T]) Log2() Dual[T] {
	return Dual[T]{
		A: T(math.Log2(float64(d.A))),
		B: d.B / (d.A * Ln2[T]()),
	}
}

// Log10: d(log10(x))/dx = 1/(x·ln(10)).
func (d Dual[T]) Log10() Dual[T] {
	return Dual[T]{
		A: T(math.Log10(float64(d.A))),
		B: d.B / (d.A * Ln10[T]()),
	}
}

// Powf raises d to a fixed real exponent n: d(x^n)/dx = n·x^(n-1).
func (d Dual[T]) Powf(n T) Dual[T] {
	x, e := float64(d.A), float64(n)
	return Dual[T]{
		A: T(math.Pow(x, e)),
		B: d.B * n * T(math.Pow(x, e-1)),
	}
}

// Powi raises d to a fixed integer exponent n.
func (d Dual[T]) Powi(n int) Dual[T] {
	x := float64(d.A)
	return Dual[T]{
		A: T(math.Pow(x, float64(n))),
		B: d.B * T(n) * T(math.Pow(x, float64(n-1))),
	}
}

// Recip: d(1/x)/dx = -1/x².
func (d Dual[T]) Recip() Dual[T] {
	return Dual[T]{
		A: 1 / d.A,
		B: -d.B / (d.A * d.A),
	}
}

// Round rounds half away from zero. Tangent 0.
func (d Dual[T]) Round() Dual[T] {
	return Dual[T]{A: T(math.Round(float64(d.A)))}
}

// Signum returns -1, 0 or 1 (NaN for NaN). Tangent 0.
func (d Dual[T]) Signum() Dual[T] {
	return Dual[T]{A: signum(d.A)}
}

// Sin: d(sin(x))/dx = cos(x).
func (d Dual[T]) Sin() Dual[T] {
	return Dual[T]{
		A: T(math.Sin(float64(d.A))),
		B: d.B * T(math.Cos(float64(d.A))),
	}
}

// Sinh: d(sinh(x))/dx = cosh(x).
func (d Dual[T]) Sinh() Dual[T] {
	return Dual[T]{
		A: T(math.Sinh(float64(d.A))),
		B: d.B * T(math.Cosh(float64(d.A))),
	}
}

// Sqrt: d(√x)/dx = 1/(2√x). Diverges at x = 0.
func (d Dual[T]) Sqrt() Dual[T] {
	sq := sqrtT(d.A)
	return Dual[T]{
		A: sq,
		B: d.B / (2 * sq),
	}
}

// Tan: d(tan(x))/dx = 1 + tan²(x).
func (d Dual[T]) Tan() Dual[T] {
	ta := T(math.Tan(float64(d.A)))
	return Dual[T]{
		A: ta,
		B: d.B * (1 + ta*ta),
	}
}

// Tanh: d(tanh(x))/dx = 1 - tanh²(x).
func (d Dual[T]) Tanh() Dual[T] {
	th := T(math.Tanh(float64(d.A)))
	return Dual[T]{
		A: th,
		B: d.B * (1 - th*th),
	}
}

// Trunc has tangent 0.
func (d Dual[T]) Trunc() Dual[T] {
	return Dual[T]{A: T(math.Trunc(float64(d.A)))}
}
