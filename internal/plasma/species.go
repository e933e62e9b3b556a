package plasma

import "fmt"

// Species identifies a charged particle by its symbol, charge number
// and mass.
type Species struct {
	Symbol string
	Z      int     // charge number, -1 for electrons
	Mass   float64 // kg
}

var (
	Electron = Species{Symbol: "e-", Z: -1, Mass: ElectronMass}
	Proton   = Species{Symbol: "p+", Z: 1, Mass: ProtonMass}
	Deuteron = Species{Symbol: "D+", Z: 1, Mass: DeuteronMass}
	Triton   = Species{Symbol: "T+", Z: 1, Mass: TritonMass}
	Alpha    = Species{Symbol: "alpha", Z: 2, Mass: AlphaMass}
)

var speciesTable = map[string]Species{
	"e-":     Electron,
	"e":      Electron,
	"p+":     Proton,
	"p":      Proton,
	"H+":     Proton,
	"D+":     Deuteron,
	"T+":     Triton,
	"alpha":  Alpha,
	"He-4++": Alpha,
}

func ParseSpecies(symbol string) (Species, error) {
	sp, ok := speciesTable[symbol]
	if !ok {
		return Species{}, fmt.Errorf("unknown species: %s", symbol)
	}
	return sp, nil
}

// Charge returns the species charge in coulombs (signed).
func (s Species) Charge() float64 {
	return float64(s.Z) * ElementaryCharge
}

// Pair is a test particle colliding with a field particle.
type Pair struct {
	Test  Species
	Field Species
}

func NewPair(test, field string) (Pair, error) {
	t, err := ParseSpecies(test)
	if err != nil {
		return Pair{}, err
	}
	f, err := ParseSpecies(field)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Test: t, Field: f}, nil
}

// ReducedMass of the two-body problem, in kg.
func (p Pair) ReducedMass() float64 {
	return p.Test.Mass * p.Field.Mass / (p.Test.Mass + p.Field.Mass)
}

func (p Pair) String() string {
	return p.Test.Symbol + "/" + p.Field.Symbol
}
