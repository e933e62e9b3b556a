package plasma

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/plasmalab/internal/quantity"
)

// Coronal and solar wind conditions used throughout: electron-proton
// collisions at typical active-region and 1 AU parameters.
var (
	coronaT = quantity.Kelvin(1e6)
	coronaN = quantity.PerCC(1e9)
	coronaB = quantity.Gauss(10)

	windT = quantity.Kelvin(6e5)
	windN = quantity.PerCC(25)
)

func electronProton(t *testing.T) Pair {
	t.Helper()
	pair, err := NewPair("e-", "p+")
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	return pair
}

func TestImpactParameterOrdering(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	bmin, bmax, err := ImpactParameters(coronaT, coronaN, pair)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(bmin.Dim).To(Equal(quantity.Length))
	g.Expect(bmax.Dim).To(Equal(quantity.Length))
	g.Expect(bmin.Val).To(BeNumerically(">", 0))
	g.Expect(bmin.Val).To(BeNumerically("<", bmax.Val))
}

func TestCoulombLogarithmPositive(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	for _, tc := range []struct {
		T quantity.Q
		n quantity.Q
	}{
		{coronaT, coronaN},
		{windT, windN},
		{quantity.Kelvin(1e4), quantity.PerCC(1e5)},
	} {
		lnL, err := CoulombLogarithm(tc.T, tc.n, pair)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(lnL.Dim.IsZero()).To(BeTrue())
		g.Expect(lnL.Val).To(BeNumerically(">", 0))
	}
}

func TestFrequenciesNonNegativeInverseTime(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	nu, err := CollisionFrequency(coronaT, coronaN, pair)
	g.Expect(err).NotTo(HaveOccurred())

	wp, err := PlasmaFrequency(coronaN, Electron)
	g.Expect(err).NotTo(HaveOccurred())

	wc, err := Gyrofrequency(coronaB, Electron)
	g.Expect(err).NotTo(HaveOccurred())

	for _, q := range []quantity.Q{nu, wp, wc} {
		g.Expect(q.Dim).To(Equal(quantity.Frequency))
		g.Expect(q.Val).To(BeNumerically(">=", 0))
		g.Expect(q.IsValid()).To(BeTrue())
	}
}

func TestCoronaCollisionsNegligible(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	nu, err := CollisionFrequency(coronaT, coronaN, pair)
	g.Expect(err).NotTo(HaveOccurred())
	// ~92 Hz for 1 MK, 1e9 cm^-3
	g.Expect(nu.Val).To(BeNumerically(">", 30.0))
	g.Expect(nu.Val).To(BeNumerically("<", 300.0))

	wp, err := PlasmaFrequency(coronaN, Electron)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(wp.Val).To(BeNumerically("~", 1.8e9, 0.3e9))
	g.Expect(nu.Val / wp.Val).To(BeNumerically("<", 1e-6))

	wc, err := Gyrofrequency(coronaB, Electron)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(wc.Val).To(BeNumerically("~", 1.76e8, 0.1e8))
	g.Expect(nu.Val / wc.Val).To(BeNumerically("<", 1e-5))
}

func TestSolarWindFarLessCollisional(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	coronaNu, err := CollisionFrequency(coronaT, coronaN, pair)
	g.Expect(err).NotTo(HaveOccurred())

	windNu, err := CollisionFrequency(windT, windN, pair)
	g.Expect(err).NotTo(HaveOccurred())

	// ~7e-6 Hz at 1 AU
	g.Expect(windNu.Val).To(BeNumerically(">", 1e-6))
	g.Expect(windNu.Val).To(BeNumerically("<", 1e-4))
	g.Expect(windNu.Val).To(BeNumerically("<", coronaNu.Val*1e-5))
}

func TestThermalSpeedMethods(t *testing.T) {
	g := NewWithT(t)

	mp, err := ThermalSpeed(coronaT, Electron, MostProbable)
	g.Expect(err).NotTo(HaveOccurred())
	rms, err := ThermalSpeed(coronaT, Electron, RMS)
	g.Expect(err).NotTo(HaveOccurred())
	mean, err := ThermalSpeed(coronaT, Electron, MeanMagnitude)
	g.Expect(err).NotTo(HaveOccurred())

	// sqrt(2) < sqrt(8/pi) < sqrt(3) ordering
	g.Expect(mp.Val).To(BeNumerically("<", mean.Val))
	g.Expect(mean.Val).To(BeNumerically("<", rms.Val))
	g.Expect(mp.Dim).To(Equal(quantity.Speed))

	// electrons far faster than protons at the same temperature
	pv, err := ThermalSpeed(coronaT, Proton, MostProbable)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(mp.Val).To(BeNumerically(">", 40*pv.Val))

	_, err = ThermalSpeed(coronaT, Electron, Method("bogus"))
	g.Expect(err).To(HaveOccurred())
}

func TestNonPhysicalInputs(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	_, err := CollisionFrequency(quantity.Kelvin(-5), coronaN, pair)
	g.Expect(err).To(MatchError(quantity.ErrNonPhysical))

	_, err = CollisionFrequency(coronaT, quantity.PerCC(0), pair)
	g.Expect(err).To(MatchError(quantity.ErrNonPhysical))

	_, err = Gyrofrequency(quantity.Tesla(-1), Electron)
	g.Expect(err).To(MatchError(quantity.ErrNonPhysical))

	// wrong dimension entirely
	_, err = DebyeLength(quantity.New(1e6, quantity.Length), coronaN)
	g.Expect(err).To(MatchError(quantity.ErrDimensionMismatch))
}

func TestGyrofrequencyZeroField(t *testing.T) {
	g := NewWithT(t)

	wc, err := Gyrofrequency(quantity.Tesla(0), Electron)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(wc.Val).To(BeZero())
}

func TestMeanFreePath(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	mfp, err := MeanFreePath(coronaT, coronaN, pair)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(mfp.Dim).To(Equal(quantity.Length))

	ld, err := DebyeLength(coronaT, coronaN)
	g.Expect(err).NotTo(HaveOccurred())
	// weakly coupled plasma: mean free path dwarfs the Debye length
	g.Expect(mfp.Val).To(BeNumerically(">", 1e6*ld.Val))
}

func TestMaxwellianSameOrder(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	nu, err := CollisionFrequency(coronaT, coronaN, pair)
	g.Expect(err).NotTo(HaveOccurred())
	nuM, err := MaxwellianCollisionFrequency(coronaT, coronaN, pair)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(nuM.Val).To(BeNumerically(">", 0))
	ratio := nu.Val / nuM.Val
	g.Expect(ratio).To(BeNumerically(">", 1))
	g.Expect(ratio).To(BeNumerically("<", 100))
}

func TestMaxwellianCoefficient(t *testing.T) {
	g := NewWithT(t)
	pair := electronProton(t)

	// Both models share n, lnL and the same reduced-mass thermal
	// speed, so nu_maxwellian/nu_lorentz is exactly the ratio of the
	// (4/3)sqrt(2 pi) and 4 pi prefactors.
	want := math.Sqrt(2*math.Pi) / (3 * math.Pi)

	for _, tc := range []struct {
		T quantity.Q
		n quantity.Q
	}{
		{coronaT, coronaN},
		{windT, windN},
	} {
		nu, err := CollisionFrequency(tc.T, tc.n, pair)
		g.Expect(err).NotTo(HaveOccurred())
		nuM, err := MaxwellianCollisionFrequency(tc.T, tc.n, pair)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(nuM.Val / nu.Val).To(BeNumerically("~", want, 1e-9))
	}
}
