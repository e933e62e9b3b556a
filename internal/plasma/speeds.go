package plasma

import (
	"fmt"
	"math"

	"github.com/san-kum/plasmalab/internal/quantity"
)

// Method selects the thermal speed convention.
type Method string

const (
	MostProbable  Method = "most_probable"  // sqrt(2kT/m)
	RMS           Method = "rms"            // sqrt(3kT/m)
	MeanMagnitude Method = "mean_magnitude" // sqrt(8kT/(pi m))
)

// ThermalSpeed computes the characteristic speed of a species at
// temperature T.
func ThermalSpeed(T quantity.Q, sp Species, method Method) (quantity.Q, error) {
	if err := checkTemperature(T); err != nil {
		return quantity.Q{}, err
	}
	return thermalSpeedMass(T.Val, sp.Mass, method)
}

func thermalSpeedMass(tKelvin, mass float64, method Method) (quantity.Q, error) {
	var coeff float64
	switch method {
	case "", MostProbable:
		coeff = 2.0
	case RMS:
		coeff = 3.0
	case MeanMagnitude:
		coeff = 8.0 / math.Pi
	default:
		return quantity.Q{}, fmt.Errorf("unknown thermal speed method: %s", method)
	}
	v := math.Sqrt(coeff * KBoltzmann * tKelvin / mass)
	return quantity.New(v, quantity.Speed), nil
}

func checkTemperature(T quantity.Q) error {
	if T.Dim != quantity.Temperature {
		return fmt.Errorf("temperature has dimension %q: %w", T.Dim.Symbol(), quantity.ErrDimensionMismatch)
	}
	if !T.IsValid() {
		return fmt.Errorf("temperature: %w", quantity.ErrNotFinite)
	}
	if T.Val <= 0 {
		return fmt.Errorf("temperature %g K: %w", T.Val, quantity.ErrNonPhysical)
	}
	return nil
}

func checkDensity(n quantity.Q) error {
	if n.Dim != quantity.Density {
		return fmt.Errorf("density has dimension %q: %w", n.Dim.Symbol(), quantity.ErrDimensionMismatch)
	}
	if !n.IsValid() {
		return fmt.Errorf("density: %w", quantity.ErrNotFinite)
	}
	if n.Val <= 0 {
		return fmt.Errorf("density %g m^-3: %w", n.Val, quantity.ErrNonPhysical)
	}
	return nil
}

func checkField(b quantity.Q) error {
	if b.Dim != quantity.MagneticField {
		return fmt.Errorf("magnetic field has dimension %q: %w", b.Dim.Symbol(), quantity.ErrDimensionMismatch)
	}
	if !b.IsValid() {
		return fmt.Errorf("magnetic field: %w", quantity.ErrNotFinite)
	}
	if b.Val < 0 {
		return fmt.Errorf("magnetic field %g T: %w", b.Val, quantity.ErrNonPhysical)
	}
	return nil
}
