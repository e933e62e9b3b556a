package quantity

import (
	"fmt"
	"math"
	"strings"
)

// Dim holds SI base dimension exponents: length, mass, time,
// current, temperature.
type Dim struct {
	L int
	M int
	T int
	I int
	K int
}

var (
	Dimensionless = Dim{}
	Length        = Dim{L: 1}
	Mass          = Dim{M: 1}
	Time          = Dim{T: 1}
	Current       = Dim{I: 1}
	Temperature   = Dim{K: 1}
	Density       = Dim{L: -3}
	Speed         = Dim{L: 1, T: -1}
	Frequency     = Dim{T: -1}
	MagneticField = Dim{M: 1, T: -2, I: -1}
	Charge        = Dim{T: 1, I: 1}
	Energy        = Dim{L: 2, M: 1, T: -2}
)

func (d Dim) Mul(other Dim) Dim {
	return Dim{d.L + other.L, d.M + other.M, d.T + other.T, d.I + other.I, d.K + other.K}
}

func (d Dim) Div(other Dim) Dim {
	return Dim{d.L - other.L, d.M - other.M, d.T - other.T, d.I - other.I, d.K - other.K}
}

func (d Dim) Pow(n int) Dim {
	return Dim{d.L * n, d.M * n, d.T * n, d.I * n, d.K * n}
}

func (d Dim) IsZero() bool {
	return d == Dim{}
}

// Symbol renders a unit string for the dimension. Common composite
// dimensions get their conventional symbol, everything else falls
// back to a product of base units.
func (d Dim) Symbol() string {
	switch d {
	case Dimensionless:
		return ""
	case Length:
		return "m"
	case Time:
		return "s"
	case Mass:
		return "kg"
	case Temperature:
		return "K"
	case Density:
		return "m^-3"
	case Speed:
		return "m/s"
	case Frequency:
		return "s^-1"
	case MagneticField:
		return "T"
	case Energy:
		return "J"
	}

	parts := make([]string, 0, 5)
	base := []struct {
		sym string
		exp int
	}{
		{"m", d.L}, {"kg", d.M}, {"s", d.T}, {"A", d.I}, {"K", d.K},
	}
	for _, b := range base {
		switch {
		case b.exp == 1:
			parts = append(parts, b.sym)
		case b.exp != 0:
			parts = append(parts, fmt.Sprintf("%s^%d", b.sym, b.exp))
		}
	}
	return strings.Join(parts, " ")
}

// Q is a unit-tagged scalar value.
type Q struct {
	Val float64
	Dim Dim
}

func New(val float64, dim Dim) Q {
	return Q{Val: val, Dim: dim}
}

func Scalar(val float64) Q {
	return Q{Val: val}
}

func (q Q) IsValid() bool {
	return !math.IsNaN(q.Val) && !math.IsInf(q.Val, 0)
}

func (q Q) Mul(other Q) Q {
	return Q{Val: q.Val * other.Val, Dim: q.Dim.Mul(other.Dim)}
}

func (q Q) Div(other Q) Q {
	return Q{Val: q.Val / other.Val, Dim: q.Dim.Div(other.Dim)}
}

func (q Q) Scale(f float64) Q {
	return Q{Val: q.Val * f, Dim: q.Dim}
}

func (q Q) Pow(n int) Q {
	return Q{Val: math.Pow(q.Val, float64(n)), Dim: q.Dim.Pow(n)}
}

// Add returns the sum of two quantities of identical dimension.
func (q Q) Add(other Q) (Q, error) {
	if q.Dim != other.Dim {
		return Q{}, fmt.Errorf("add %s and %s: %w", q.Dim.Symbol(), other.Dim.Symbol(), ErrDimensionMismatch)
	}
	return Q{Val: q.Val + other.Val, Dim: q.Dim}, nil
}

func (q Q) Sub(other Q) (Q, error) {
	if q.Dim != other.Dim {
		return Q{}, fmt.Errorf("sub %s and %s: %w", q.Dim.Symbol(), other.Dim.Symbol(), ErrDimensionMismatch)
	}
	return Q{Val: q.Val - other.Val, Dim: q.Dim}, nil
}

// Sqrt requires every dimension exponent to be even.
func (q Q) Sqrt() (Q, error) {
	d := q.Dim
	if d.L%2 != 0 || d.M%2 != 0 || d.T%2 != 0 || d.I%2 != 0 || d.K%2 != 0 {
		return Q{}, fmt.Errorf("sqrt of %s: %w", d.Symbol(), ErrOddExponent)
	}
	if q.Val < 0 {
		return Q{}, fmt.Errorf("sqrt of negative value %g: %w", q.Val, ErrNonPhysical)
	}
	return Q{Val: math.Sqrt(q.Val), Dim: Dim{d.L / 2, d.M / 2, d.T / 2, d.I / 2, d.K / 2}}, nil
}

func (q Q) String() string {
	sym := q.Dim.Symbol()
	if sym == "" {
		return fmt.Sprintf("%.4g", q.Val)
	}
	return fmt.Sprintf("%.4g %s", q.Val, sym)
}
