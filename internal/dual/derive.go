package dual

import "github.com/born-ml/dual/internal/parallel"

// Derivative evaluates f at x and returns f(x) and f'(x).
//
// x is seeded as Variable(x); any other inputs f closes over must be
// lifted with Constant.
func Derivative[T Float](f func(Dual[T]) Dual[T], x T) (value, slope T) {
	y := f(Variable(x))
	return y.A, y.B
}

// DerivativeBatch evaluates Derivative at every point of xs.
// Points are independent, so evaluation is spread over cfg's workers.
func DerivativeBatch[T Float](f func(Dual[T]) Dual[T], xs []T, cfg parallel.Config) (values, slopes []T) {
	ys := parallel.Map(xs, func(x T) Dual[T] {
		return f(Variable(x))
	}, cfg)

	values = make([]T, len(ys))
	slopes = make([]T, len(ys))
	for i, y := range ys {
		values[i] = y.A
		slopes[i] = y.B
	}
	return values, slopes
}
