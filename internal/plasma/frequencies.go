package plasma

import (
	"math"

	"github.com/san-kum/plasmalab/internal/quantity"
)

// CollisionFrequency is the single-particle (Lorentz) Coulomb
// collision rate of the test particle against the field population:
//
//	nu = 4 pi n b_perp^2 v_th lnL
//
// with the reduced-mass thermal speed and the 90-degree deflection
// distance b_perp.
func CollisionFrequency(T, ne quantity.Q, pair Pair) (quantity.Q, error) {
	if err := checkTemperature(T); err != nil {
		return quantity.Q{}, err
	}
	if err := checkDensity(ne); err != nil {
		return quantity.Q{}, err
	}

	lnL, err := CoulombLogarithm(T, ne, pair)
	if err != nil {
		return quantity.Q{}, err
	}

	mu := pair.ReducedMass()
	vth, err := thermalSpeedMass(T.Val, mu, MostProbable)
	if err != nil {
		return quantity.Q{}, err
	}
	bPerp := perpDistance(pair, mu, vth.Val)

	nu := 4 * math.Pi * ne.Val * bPerp * bPerp * vth.Val * lnL.Val
	return quantity.New(nu, quantity.Frequency), nil
}

// MaxwellianCollisionFrequency is the collision rate for
// near-equilibrium (slowly flowing) Maxwellian distributions:
//
//	nu = (4/3) sqrt(2 pi) n (q1 q2 / 4 pi eps0 mu)^2 lnL / v_th^3
func MaxwellianCollisionFrequency(T, ne quantity.Q, pair Pair) (quantity.Q, error) {
	if err := checkTemperature(T); err != nil {
		return quantity.Q{}, err
	}
	if err := checkDensity(ne); err != nil {
		return quantity.Q{}, err
	}

	lnL, err := CoulombLogarithm(T, ne, pair)
	if err != nil {
		return quantity.Q{}, err
	}

	mu := pair.ReducedMass()
	vth, err := thermalSpeedMass(T.Val, mu, MostProbable)
	if err != nil {
		return quantity.Q{}, err
	}

	q1q2 := math.Abs(pair.Test.Charge() * pair.Field.Charge())
	k := q1q2 / (4 * math.Pi * Epsilon0 * mu)
	nu := 4 * math.Sqrt(2*math.Pi) / 3 * ne.Val * k * k * lnL.Val / (vth.Val * vth.Val * vth.Val)
	return quantity.New(nu, quantity.Frequency), nil
}

// PlasmaFrequency is the angular oscillation frequency of
// charge-density perturbations carried by the species, in rad/s.
func PlasmaFrequency(n quantity.Q, sp Species) (quantity.Q, error) {
	if err := checkDensity(n); err != nil {
		return quantity.Q{}, err
	}
	q := sp.Charge()
	w := math.Sqrt(n.Val * q * q / (Epsilon0 * sp.Mass))
	return quantity.New(w, quantity.Frequency), nil
}

// Gyrofrequency is the angular cyclotron frequency of the species in
// a magnetic field B, in rad/s. A zero field gives zero.
func Gyrofrequency(B quantity.Q, sp Species) (quantity.Q, error) {
	if err := checkField(B); err != nil {
		return quantity.Q{}, err
	}
	w := math.Abs(sp.Charge()) * B.Val / sp.Mass
	return quantity.New(w, quantity.Frequency), nil
}
