package plasma

import (
	"fmt"
	"math"

	"github.com/san-kum/plasmalab/internal/quantity"
)

// CoulombLogarithm is ln(bmax/bmin), the dimensionless factor
// capturing the range of impact parameters that contribute to
// small-angle Coulomb scattering.
func CoulombLogarithm(T, ne quantity.Q, pair Pair) (quantity.Q, error) {
	bmin, bmax, err := ImpactParameters(T, ne, pair)
	if err != nil {
		return quantity.Q{}, err
	}
	lnL := math.Log(bmax.Val / bmin.Val)
	if lnL <= 0 {
		// bmax below bmin means the plasma is strongly coupled or
		// degenerate and the weak-scattering expansion does not hold.
		return quantity.Q{}, fmt.Errorf("coulomb logarithm %.3g (bmin=%.3g m, bmax=%.3g m): %w",
			lnL, bmin.Val, bmax.Val, quantity.ErrNonPhysical)
	}
	return quantity.Scalar(lnL), nil
}
