package report_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plasmalab/internal/quantity"
	"github.com/san-kum/plasmalab/internal/report"
	"github.com/san-kum/plasmalab/internal/scenario"
)

func TestReport(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Suite")
}

var _ = Describe("Run", func() {
	It("derives all quantities for the corona preset", func() {
		r, err := report.Run(scenario.GetPreset("corona"))
		Expect(err).NotTo(HaveOccurred())

		Expect(r.BMin.Val).To(BeNumerically("<", r.BMax.Val))
		Expect(r.CoulombLog.Val).To(BeNumerically(">", 0))
		Expect(r.CollisionFreq.Dim).To(Equal(quantity.Frequency))
		Expect(r.PlasmaFreq.Dim).To(Equal(quantity.Frequency))
		Expect(r.GyroFreq.Dim).To(Equal(quantity.Frequency))
		Expect(r.CollisionFreq.Val).To(BeNumerically(">=", 0))

		q := r.Quantities()
		Expect(q).To(HaveKeyWithValue("collision_freq", r.CollisionFreq.Val))
		Expect(q).To(HaveLen(11))
	})

	It("classifies the corona as collisionless against both frequencies", func() {
		r, err := report.Run(scenario.GetPreset("corona"))
		Expect(err).NotTo(HaveOccurred())

		Expect(r.Magnetized()).To(BeTrue())
		Expect(r.PlasmaRatio()).To(BeNumerically("<", 1e-6))
		Expect(r.GyroRatio()).To(BeNumerically("<", 1e-5))
		Expect(r.Regime()).To(Equal("collisionless"))
	})

	It("shows the solar wind orders of magnitude below the corona", func() {
		corona, err := report.Run(scenario.GetPreset("corona"))
		Expect(err).NotTo(HaveOccurred())
		wind, err := report.Run(scenario.GetPreset("solar_wind"))
		Expect(err).NotTo(HaveOccurred())

		Expect(wind.CollisionFreq.Val).To(BeNumerically("<", corona.CollisionFreq.Val*1e-5))
		Expect(wind.Regime()).To(Equal("collisionless"))
	})

	It("treats an unmagnetized scenario as valid with zero gyrofrequency", func() {
		sc := scenario.GetPreset("corona")
		sc.Field = 0

		r, err := report.Run(sc)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.GyroFreq.Val).To(BeZero())
		Expect(r.Magnetized()).To(BeFalse())
		Expect(r.GyroRatio()).To(BeZero())
	})

	It("propagates formulary errors for non-physical scenarios", func() {
		sc := scenario.GetPreset("corona")
		sc.Temperature = -273

		_, err := report.Run(sc)
		Expect(err).To(MatchError(quantity.ErrNonPhysical))
	})

	It("rejects unknown species pairs", func() {
		sc := scenario.GetPreset("corona")
		sc.Species = []string{"e-", "unobtainium"}

		_, err := report.Run(sc)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Regime", func() {
	ratioReport := func(nu, wp float64) *report.Report {
		return &report.Report{
			CollisionFreq: quantity.New(nu, quantity.Frequency),
			PlasmaFreq:    quantity.New(wp, quantity.Frequency),
		}
	}

	It("is collisional at and above nu = omega_p", func() {
		Expect(ratioReport(1e9, 1e9).Regime()).To(Equal("collisional"))
		Expect(ratioReport(5e9, 1e9).Regime()).To(Equal("collisional"))
	})

	It("is weakly collisional between the thresholds", func() {
		Expect(ratioReport(0.999e9, 1e9).Regime()).To(Equal("weakly collisional"))
		Expect(ratioReport(1e3, 1e9).Regime()).To(Equal("weakly collisional"))
		Expect(ratioReport(1e-6*1e9, 1e9).Regime()).To(Equal("weakly collisional"))
	})

	It("is collisionless below nu/omega_p = 1e-6", func() {
		Expect(ratioReport(0.999e-6*1e9, 1e9).Regime()).To(Equal("collisionless"))
	})

	It("classifies the dense cold chromosphere as weakly collisional", func() {
		r, err := report.Run(scenario.GetPreset("chromosphere"))
		Expect(err).NotTo(HaveOccurred())
		Expect(r.PlasmaRatio()).To(BeNumerically(">", 1e-6))
		Expect(r.PlasmaRatio()).To(BeNumerically("<", 1))
		Expect(r.Regime()).To(Equal("weakly collisional"))
	})
})
