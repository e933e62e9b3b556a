package plasma

// CODATA 2022 values, SI.
const (
	KBoltzmann       = 1.380649e-23      // J / K
	ElementaryCharge = 1.602176634e-19   // C
	ElectronMass     = 9.1093837139e-31  // kg
	ProtonMass       = 1.67262192595e-27 // kg
	DeuteronMass     = 3.3435837768e-27  // kg
	TritonMass       = 5.0073567512e-27  // kg
	AlphaMass        = 6.6446573450e-27  // kg
	Epsilon0         = 8.8541878188e-12  // F / m
	HBar             = 1.054571817e-34   // J s
)
