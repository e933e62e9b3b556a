package plasma

import (
	"math"

	"github.com/san-kum/plasmalab/internal/quantity"
)

// DebyeLength is the electrostatic screening length of the electron
// population.
func DebyeLength(Te, ne quantity.Q) (quantity.Q, error) {
	if err := checkTemperature(Te); err != nil {
		return quantity.Q{}, err
	}
	if err := checkDensity(ne); err != nil {
		return quantity.Q{}, err
	}
	e2 := ElementaryCharge * ElementaryCharge
	l := math.Sqrt(Epsilon0 * KBoltzmann * Te.Val / (ne.Val * e2))
	return quantity.New(l, quantity.Length), nil
}

// ImpactParameters returns the inner and outer cutoff distances for
// Coulomb collisions between the pair. The outer cutoff is the Debye
// length; the inner cutoff is whichever is larger of the 90-degree
// deflection distance and the de Broglie wavelength of the reduced
// mass at the pair thermal speed.
func ImpactParameters(T, ne quantity.Q, pair Pair) (bmin, bmax quantity.Q, err error) {
	bmax, err = DebyeLength(T, ne)
	if err != nil {
		return quantity.Q{}, quantity.Q{}, err
	}

	mu := pair.ReducedMass()
	vth, err := thermalSpeedMass(T.Val, mu, MostProbable)
	if err != nil {
		return quantity.Q{}, quantity.Q{}, err
	}

	bPerp := perpDistance(pair, mu, vth.Val)
	deBroglie := HBar / (2 * mu * vth.Val)

	bmin = quantity.New(math.Max(bPerp, deBroglie), quantity.Length)
	return bmin, bmax, nil
}

// perpDistance is the impact parameter for a 90-degree deflection.
func perpDistance(pair Pair, mu, vth float64) float64 {
	q1q2 := math.Abs(pair.Test.Charge() * pair.Field.Charge())
	return q1q2 / (4 * math.Pi * Epsilon0 * mu * vth * vth)
}

// MeanFreePath is the distance a test particle travels between
// Coulomb collisions.
func MeanFreePath(T, ne quantity.Q, pair Pair) (quantity.Q, error) {
	nu, err := CollisionFrequency(T, ne, pair)
	if err != nil {
		return quantity.Q{}, err
	}
	mu := pair.ReducedMass()
	vth, err := thermalSpeedMass(T.Val, mu, MostProbable)
	if err != nil {
		return quantity.Q{}, err
	}
	return vth.Div(nu), nil
}
