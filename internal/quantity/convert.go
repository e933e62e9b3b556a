package quantity

// Conversion factors between the units solar physics literature
// quotes and SI.
const (
	evPerKelvin    = 8.617333262e-5 // eV / K
	gaussPerTesla  = 1e4
	perCCPerCubicM = 1e-6 // (cm^-3) / (m^-3)
)

// Kelvin builds a temperature quantity from a value in K.
func Kelvin(t float64) Q {
	return New(t, Temperature)
}

// FromEV converts an energy-equivalent temperature in eV to kelvin.
func FromEV(ev float64) Q {
	return New(ev/evPerKelvin, Temperature)
}

// ToEV reports a temperature quantity in eV.
func ToEV(t Q) float64 {
	return t.Val * evPerKelvin
}

// PerCC builds a number density quantity from a value in cm^-3.
func PerCC(n float64) Q {
	return New(n/perCCPerCubicM, Density)
}

// ToPerCC reports a density quantity in cm^-3.
func ToPerCC(n Q) float64 {
	return n.Val * perCCPerCubicM
}

// Gauss builds a magnetic field quantity from a value in G.
func Gauss(b float64) Q {
	return New(b/gaussPerTesla, MagneticField)
}

// ToGauss reports a magnetic field quantity in G.
func ToGauss(b Q) float64 {
	return b.Val * gaussPerTesla
}

// Tesla builds a magnetic field quantity from a value in T.
func Tesla(b float64) Q {
	return New(b, MagneticField)
}
