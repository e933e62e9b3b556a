package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/plasmalab/internal/plasma"
	"github.com/san-kum/plasmalab/internal/quantity"
)

const (
	DefaultTemperature = 1e6  // K
	DefaultDensity     = 1e9  // cm^-3
	DefaultField       = 10.0 // gauss
)

// Scenario is one set of plasma conditions. Temperatures are kelvin,
// densities cm^-3 and fields gauss, matching how the solar physics
// literature quotes them.
type Scenario struct {
	Name        string   `yaml:"name"`
	Temperature float64  `yaml:"temperature"`
	Density     float64  `yaml:"density"`
	Field       float64  `yaml:"field"`
	Species     []string `yaml:"species"`
	Method      string   `yaml:"method"`
}

func Default() *Scenario {
	return &Scenario{
		Name:        "corona",
		Temperature: DefaultTemperature,
		Density:     DefaultDensity,
		Field:       DefaultField,
		Species:     []string{"e-", "p+"},
		Method:      string(plasma.MostProbable),
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := Default()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func Save(path string, sc *Scenario) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Scenario) Validate() error {
	if s.Temperature <= 0 {
		return fmt.Errorf("temperature %g K: %w", s.Temperature, quantity.ErrNonPhysical)
	}
	if s.Density <= 0 {
		return fmt.Errorf("density %g cm^-3: %w", s.Density, quantity.ErrNonPhysical)
	}
	if s.Field < 0 {
		return fmt.Errorf("field %g G: %w", s.Field, quantity.ErrNonPhysical)
	}
	if len(s.Species) != 2 {
		return fmt.Errorf("expected a species pair, got %d entries", len(s.Species))
	}
	if _, err := s.Pair(); err != nil {
		return err
	}
	return nil
}

// TemperatureQ returns the temperature as a unit-tagged quantity.
func (s *Scenario) TemperatureQ() quantity.Q {
	return quantity.Kelvin(s.Temperature)
}

// DensityQ returns the electron density as a unit-tagged quantity.
func (s *Scenario) DensityQ() quantity.Q {
	return quantity.PerCC(s.Density)
}

// FieldQ returns the magnetic field as a unit-tagged quantity.
func (s *Scenario) FieldQ() quantity.Q {
	return quantity.Gauss(s.Field)
}

func (s *Scenario) Pair() (plasma.Pair, error) {
	if len(s.Species) != 2 {
		return plasma.Pair{}, fmt.Errorf("expected a species pair, got %d entries", len(s.Species))
	}
	return plasma.NewPair(s.Species[0], s.Species[1])
}

func (s *Scenario) SpeedMethod() plasma.Method {
	if s.Method == "" {
		return plasma.MostProbable
	}
	return plasma.Method(s.Method)
}

// Clone returns an independent copy, so callers can tweak parameters
// without mutating a preset.
func (s *Scenario) Clone() *Scenario {
	c := *s
	c.Species = append([]string(nil), s.Species...)
	return &c
}
