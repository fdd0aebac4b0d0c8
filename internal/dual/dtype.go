package dual

// Float is a constraint for the scalar types a dual number can carry.
// Only the two IEEE binary widths are supported: the function catalog
// depends on per-precision constants.
type Float interface {
	~float32 | ~float64
}

// Precision represents the floating-point width of a dual number's scalars.
type Precision int

// Supported precisions.
const (
	Single Precision = iota
	Double
)

// Size returns the byte size of one scalar of this precision.
func (p Precision) Size() int {
	switch p {
	case Single:
		return 4
	case Double:
		return 8
	default:
		panic("unknown precision")
	}
}

// String returns a human-readable name for the precision.
func (p Precision) String() string {
	switch p {
	case Single:
		return "float32"
	case Double:
		return "float64"
	default:
		return "unknown"
	}
}

// constants holds the logarithm constants at one precision.
type constants struct {
	ln2  float64
	ln10 float64
}

// Single-precision values are the float32 roundings of ln(2) and ln(10).
var table = [...]constants{
	Single: {ln2: 0.6931472, ln10: 2.3025851},
	Double: {ln2: 0.6931471805599453, ln10: 2.302585092994046},
}

// PrecisionOf infers the Precision of T.
func PrecisionOf[T Float]() Precision {
	var zero T
	switch any(zero).(type) {
	case float32:
		return Single
	case float64:
		return Double
	}
	// Named types built on float32/float64 fall through the switch above.
	if T(T(1)+T(1e-10)) == 1 {
		return Single
	}
	return Double
}

// Ln2 returns ln(2) at T's precision.
func Ln2[T Float]() T {
	return T(table[PrecisionOf[T]()].ln2)
}

// Ln10 returns ln(10) at T's precision.
func Ln10[T Float]() T {
	return T(table[PrecisionOf[T]()].ln10)
}
