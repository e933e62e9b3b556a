package report

// Thresholds separating collisionality regimes by the ratio of
// collision frequency to plasma frequency.
const (
	collisionalRatio   = 1.0
	collisionlessRatio = 1e-6
)

// PlasmaRatio is nu / omega_p: how often a particle collides per
// plasma oscillation.
func (r *Report) PlasmaRatio() float64 {
	if r.PlasmaFreq.Val == 0 {
		return 0
	}
	return r.CollisionFreq.Val / r.PlasmaFreq.Val
}

// GyroRatio is nu / omega_c. Returns 0 for unmagnetized scenarios.
func (r *Report) GyroRatio() float64 {
	if r.GyroFreq.Val == 0 {
		return 0
	}
	return r.CollisionFreq.Val / r.GyroFreq.Val
}

// ScreeningRatio is mean free path over Debye length.
func (r *Report) ScreeningRatio() float64 {
	if r.DebyeLength.Val == 0 {
		return 0
	}
	return r.MeanFreePath.Val / r.DebyeLength.Val
}

// Magnetized reports whether the scenario carries a field at all.
func (r *Report) Magnetized() bool {
	return r.GyroFreq.Val > 0
}

// Regime classifies the scenario by how collision frequency compares
// to the plasma frequency.
func (r *Report) Regime() string {
	ratio := r.PlasmaRatio()
	switch {
	case ratio >= collisionalRatio:
		return "collisional"
	case ratio >= collisionlessRatio:
		return "weakly collisional"
	default:
		return "collisionless"
	}
}
