package scenario

// Presets are the named plasma environments the CLI knows about.
// Field strengths are order-of-magnitude values: 10 G above an active
// region, 5 nT in the solar wind at 1 AU.
var Presets = map[string]*Scenario{
	"corona": {
		Name: "corona", Temperature: 1e6, Density: 1e9, Field: 10,
		Species: []string{"e-", "p+"},
	},
	"solar_wind": {
		Name: "solar_wind", Temperature: 6e5, Density: 25, Field: 5e-5,
		Species: []string{"e-", "p+"},
	},
	"chromosphere": {
		Name: "chromosphere", Temperature: 1e4, Density: 1e11, Field: 100,
		Species: []string{"e-", "p+"},
	},
	"ionosphere": {
		Name: "ionosphere", Temperature: 1.2e3, Density: 1e6, Field: 0.3,
		Species: []string{"e-", "p+"},
	},
	"interstellar": {
		Name: "interstellar", Temperature: 8e3, Density: 0.1, Field: 5e-2,
		Species: []string{"e-", "p+"},
	},
}

func GetPreset(name string) *Scenario {
	sc, ok := Presets[name]
	if !ok {
		return nil
	}
	return sc.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
