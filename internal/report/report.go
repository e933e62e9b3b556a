package report

import (
	"fmt"

	"github.com/san-kum/plasmalab/internal/plasma"
	"github.com/san-kum/plasmalab/internal/quantity"
	"github.com/san-kum/plasmalab/internal/scenario"
)

// Report holds every quantity derived from one scenario. Formulary
// errors propagate unmodified; the runner does no physics of its own.
type Report struct {
	Scenario *scenario.Scenario
	Pair     plasma.Pair

	ElectronThermalSpeed quantity.Q
	IonThermalSpeed      quantity.Q
	DebyeLength          quantity.Q
	BMin                 quantity.Q
	BMax                 quantity.Q
	CoulombLog           quantity.Q
	CollisionFreq        quantity.Q
	MaxwellianFreq       quantity.Q
	PlasmaFreq           quantity.Q
	GyroFreq             quantity.Q
	MeanFreePath         quantity.Q
}

// Run executes the fixed call sequence for one scenario.
func Run(sc *scenario.Scenario) (*Report, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	pair, err := sc.Pair()
	if err != nil {
		return nil, err
	}

	T := sc.TemperatureQ()
	n := sc.DensityQ()
	B := sc.FieldQ()
	method := sc.SpeedMethod()

	r := &Report{Scenario: sc, Pair: pair}

	if r.ElectronThermalSpeed, err = plasma.ThermalSpeed(T, pair.Test, method); err != nil {
		return nil, err
	}
	if r.IonThermalSpeed, err = plasma.ThermalSpeed(T, pair.Field, method); err != nil {
		return nil, err
	}
	if r.DebyeLength, err = plasma.DebyeLength(T, n); err != nil {
		return nil, err
	}
	if r.BMin, r.BMax, err = plasma.ImpactParameters(T, n, pair); err != nil {
		return nil, err
	}
	if r.CoulombLog, err = plasma.CoulombLogarithm(T, n, pair); err != nil {
		return nil, err
	}
	if r.CollisionFreq, err = plasma.CollisionFrequency(T, n, pair); err != nil {
		return nil, err
	}
	if r.MaxwellianFreq, err = plasma.MaxwellianCollisionFrequency(T, n, pair); err != nil {
		return nil, err
	}
	if r.PlasmaFreq, err = plasma.PlasmaFrequency(n, pair.Test); err != nil {
		return nil, err
	}
	if r.GyroFreq, err = plasma.Gyrofrequency(B, pair.Test); err != nil {
		return nil, err
	}
	if r.MeanFreePath, err = plasma.MeanFreePath(T, n, pair); err != nil {
		return nil, err
	}

	return r, nil
}

// Quantities flattens the report into named scalars for persistence.
func (r *Report) Quantities() map[string]float64 {
	return map[string]float64{
		"electron_thermal_speed": r.ElectronThermalSpeed.Val,
		"ion_thermal_speed":      r.IonThermalSpeed.Val,
		"debye_length":           r.DebyeLength.Val,
		"bmin":                   r.BMin.Val,
		"bmax":                   r.BMax.Val,
		"coulomb_log":            r.CoulombLog.Val,
		"collision_freq":         r.CollisionFreq.Val,
		"maxwellian_freq":        r.MaxwellianFreq.Val,
		"plasma_freq":            r.PlasmaFreq.Val,
		"gyro_freq":              r.GyroFreq.Val,
		"mean_free_path":         r.MeanFreePath.Val,
	}
}
