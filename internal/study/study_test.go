package study_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajlab/internal/phys"
	"github.com/san-kum/trajlab/internal/study"
)

var _ = Describe("Steps", func() {
	It("derives the divide-by-ten series from the base step", func() {
		steps := study.Steps(0.1, study.DefaultOptions())
		Expect(steps).To(HaveLen(4))
		Expect(steps[0]).To(Equal(0.1))
		Expect(steps[1]).To(BeNumerically("~", 0.01, 1e-12))
		Expect(steps[2]).To(BeNumerically("~", 0.001, 1e-12))
		Expect(steps[3]).To(BeNumerically("~", 0.0001, 1e-12))
	})

	It("skips steps below the floor", func() {
		steps := study.Steps(1e-5, study.DefaultOptions())
		Expect(steps).To(HaveLen(3))
		Expect(steps[len(steps)-1]).To(BeNumerically(">=", study.DefaultMinStep))
	})

	It("returns nothing when the base step is already below the floor", func() {
		Expect(study.Steps(1e-8, study.DefaultOptions())).To(BeEmpty())
	})
})

var _ = Describe("Run", func() {
	var (
		integ  *phys.Integrator
		params phys.Params
	)

	BeforeEach(func() {
		integ = phys.New()
		params = phys.Params{Speed: 50, Angle: 45, Mass: 1.0, Drag: 0.1}
	})

	It("produces one result per step size, in series order", func() {
		results, err := study.Run(integ, params, 0.1, study.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		for i := 1; i < len(results); i++ {
			Expect(results[i].Dt).To(BeNumerically("<", results[i-1].Dt))
		}
	})

	It("converges toward a stable limit as the step shrinks", func() {
		results, err := study.Run(integ, params, 0.1, study.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())

		for i := 2; i < len(results); i++ {
			prev := math.Abs(results[i-1].Range - results[i-2].Range)
			cur := math.Abs(results[i].Range - results[i-1].Range)
			Expect(cur).To(BeNumerically("<", prev))

			prev = math.Abs(results[i-1].MaxHeight - results[i-2].MaxHeight)
			cur = math.Abs(results[i].MaxHeight - results[i-1].MaxHeight)
			Expect(cur).To(BeNumerically("<", prev))

			prev = math.Abs(results[i-1].FinalSpeed - results[i-2].FinalSpeed)
			cur = math.Abs(results[i].FinalSpeed - results[i-1].FinalSpeed)
			Expect(cur).To(BeNumerically("<", prev))
		}
	})

	It("rejects a non-positive base step", func() {
		_, err := study.Run(integ, params, 0, study.DefaultOptions())
		Expect(err).To(HaveOccurred())
	})

	It("rejects an empty series", func() {
		_, err := study.Run(integ, params, 1e-8, study.DefaultOptions())
		Expect(err).To(MatchError(ContainSubstring("floor")))
	})

	It("propagates integrator validation errors", func() {
		params.Mass = 0
		_, err := study.Run(integ, params, 0.1, study.DefaultOptions())
		Expect(err).To(MatchError(ContainSubstring("mass")))
	})
})
