package dual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dual/internal/parallel"
)

func TestDerivative(t *testing.T) {
	// f(x) = x² + x, f'(x) = 2x + 1
	value, slope := Derivative(func(x Dual64) Dual64 {
		return x.Mul(x).Add(x)
	}, 2)

	assert.Equal(t, 6.0, value)
	assert.Equal(t, 5.0, slope)
}

func TestDerivative_ClosedOverConstant(t *testing.T) {
	c := Constant(float32(3))

	// f(x) = 3·sin(x), f'(x) = 3·cos(x)
	value, slope := Derivative(func(x Dual32) Dual32 {
		return c.Mul(x.Sin())
	}, 0.25)

	assert.InDelta(t, 3*math.Sin(0.25), float64(value), 1e-6)
	assert.InDelta(t, 3*math.Cos(0.25), float64(slope), 1e-6)
}

func TestDerivativeBatch(t *testing.T) {
	f := func(x Dual64) Dual64 {
		return x.Powi(3).Sub(x.Cos()).Div(x.Exp())
	}

	xs := make([]float64, 1000)
	for i := range xs {
		xs[i] = -5 + 0.01*float64(i)
	}

	configs := map[string]parallel.Config{
		"sequential": parallel.Sequential(),
		"parallel":   {Enabled: true, NumWorkers: 4, MinChunkSize: 16},
		"default":    parallel.DefaultConfig(),
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			values, slopes := DerivativeBatch(f, xs, cfg)
			require.Len(t, values, len(xs))
			require.Len(t, slopes, len(xs))

			for i, x := range xs {
				v, s := Derivative(f, x)
				assert.Equal(t, v, values[i], "value at x=%g", x)
				assert.Equal(t, s, slopes[i], "slope at x=%g", x)
			}
		})
	}
}

func TestDerivativeBatch_Empty(t *testing.T) {
	values, slopes := DerivativeBatch(Dual64.Exp, nil, parallel.DefaultConfig())

	assert.Empty(t, values)
	assert.Empty(t, slopes)
}
