package ballistic_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajsim/internal/ballistic"
)

var _ = Describe("Simulate", func() {
	Context("with the default launch", func() {
		var traj *ballistic.Trajectory

		BeforeEach(func() {
			var err error
			traj, err = ballistic.Simulate(50, 75, 9.8)
			Expect(err).NotTo(HaveOccurred())
		})

		It("produces the configured number of samples", func() {
			Expect(traj.Len()).To(Equal(ballistic.DefaultSamples))
		})

		It("starts at the origin", func() {
			Expect(traj.At(0)).To(Equal(ballistic.Sample{T: 0, X: 0, Y: 0}))
		})

		It("matches the closed-form flight time", func() {
			Expect(traj.FlightTime()).To(BeNumerically("~", ballistic.FlightTime(50, 75, 9.8), 1e-12))
			Expect(traj.FlightTime()).To(BeNumerically("~", 9.849, 0.5))
			Expect(traj.Final().T).To(Equal(traj.FlightTime()))
		})

		It("lands near the analytic range", func() {
			Expect(traj.Final().X).To(BeNumerically("~", 127.5, 0.5))
			Expect(traj.Final().Y).To(BeNumerically("~", 0, 1e-9))
		})

		It("peaks near the analytic maximum height", func() {
			apex := traj.Apex()
			Expect(apex.Y).To(BeNumerically("~", 119.0, 0.5))
			Expect(apex.T).To(BeNumerically("~", ballistic.ApexTime(50, 75, 9.8), 0.05))
		})

		It("keeps every sample on or above the ground", func() {
			for i := 0; i < traj.Len(); i++ {
				Expect(traj.At(i).Y).To(BeNumerically(">=", 0))
			}
		})

		It("advances time strictly and x monotonically", func() {
			for i := 1; i < traj.Len(); i++ {
				prev, cur := traj.At(i-1), traj.At(i)
				Expect(cur.T).To(BeNumerically(">", prev.T))
				Expect(cur.X).To(BeNumerically(">=", prev.X))
			}
		})

		It("reports the launch velocity components", func() {
			vx, vy := traj.Velocity()
			Expect(vx).To(BeNumerically("~", 50*math.Cos(75*math.Pi/180), 1e-12))
			Expect(vy).To(BeNumerically("~", 50*math.Sin(75*math.Pi/180), 1e-12))
			Expect(traj.Final().X).To(BeNumerically("~", vx*traj.FlightTime(), 1e-9))
		})

		It("hands out copies of its samples", func() {
			s := traj.Samples()
			s[0].Y = 42
			Expect(traj.At(0).Y).To(BeZero())
		})
	})

	Context("with a horizontal launch", func() {
		It("collapses to a single instant on the ground", func() {
			traj, err := ballistic.Simulate(30, 0, 9.8)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.FlightTime()).To(BeZero())
			Expect(traj.Len()).To(Equal(ballistic.DefaultSamples))
			for _, s := range traj.Samples() {
				Expect(s.T).To(BeZero())
				Expect(s.X).To(BeZero())
				Expect(s.Y).To(BeZero())
			}
		})
	})

	Context("with a vertical launch", func() {
		It("rises and falls in place", func() {
			traj, err := ballistic.Simulate(20, 90, 9.8)
			Expect(err).NotTo(HaveOccurred())
			maxX, maxY := traj.Bounds()
			Expect(maxX).To(BeNumerically("<", 1e-9))
			Expect(maxY).To(BeNumerically("~", ballistic.MaxHeight(20, 90, 9.8), 0.05))
		})
	})

	Context("with a single sample", func() {
		It("returns only the launch point", func() {
			traj, err := ballistic.SimulateInput(ballistic.Input{Velocity: 10, AngleDeg: 45, Gravity: 9.8, Samples: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Len()).To(Equal(1))
			Expect(traj.Final()).To(Equal(ballistic.Sample{}))
		})
	})

	DescribeTable("rejects invalid parameters",
		func(v, angle, g float64) {
			_, err := ballistic.Simulate(v, angle, g)
			Expect(err).To(MatchError(ballistic.ErrInvalidParameter))
		},
		Entry("zero velocity", 0.0, 45.0, 9.8),
		Entry("negative velocity", -5.0, 45.0, 9.8),
		Entry("negative angle", 10.0, -1.0, 9.8),
		Entry("angle above vertical", 10.0, 90.5, 9.8),
		Entry("zero gravity", 10.0, 45.0, 0.0),
		Entry("negative gravity", 10.0, 45.0, -9.8),
		Entry("NaN velocity", math.NaN(), 45.0, 9.8),
		Entry("infinite gravity", 10.0, 45.0, math.Inf(1)),
		Entry("velocity whose range overflows", 1e160, 45.0, 9.8),
		Entry("gravity too small for the velocity", 1e10, 45.0, 1e-300),
	)

	Context("with a very large but representable launch", func() {
		It("keeps every sample finite and on or above the ground", func() {
			traj, err := ballistic.Simulate(1e150, 45, 9.8)
			Expect(err).NotTo(HaveOccurred())
			for _, s := range traj.Samples() {
				Expect(math.IsNaN(s.X) || math.IsInf(s.X, 0)).To(BeFalse())
				Expect(math.IsNaN(s.Y) || math.IsInf(s.Y, 0)).To(BeFalse())
				Expect(s.Y).To(BeNumerically(">=", 0))
			}
		})
	})

	It("is deterministic", func() {
		a, err := ballistic.Simulate(33, 41, 3.7)
		Expect(err).NotTo(HaveOccurred())
		b, err := ballistic.Simulate(33, 41, 3.7)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Samples()).To(Equal(b.Samples()))
	})
})

var _ = Describe("complementary angles", func() {
	DescribeTable("share the same range",
		func(angle float64) {
			comp := ballistic.Complement(angle)
			Expect(ballistic.Range(50, angle, 9.8)).To(BeNumerically("~", ballistic.Range(50, comp, 9.8), 1e-9))

			a, err := ballistic.Simulate(50, angle, 9.8)
			Expect(err).NotTo(HaveOccurred())
			b, err := ballistic.Simulate(50, comp, 9.8)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Final().X).To(BeNumerically("~", b.Final().X, 1e-6))
		},
		Entry("15/75", 15.0),
		Entry("30/60", 30.0),
		Entry("44/46", 44.0),
	)

	It("trade flight time against height", func() {
		Expect(ballistic.FlightTime(50, 75, 9.8)).To(BeNumerically(">", ballistic.FlightTime(50, 15, 9.8)))
		Expect(ballistic.MaxHeight(50, 75, 9.8)).To(BeNumerically(">", ballistic.MaxHeight(50, 15, 9.8)))
	})
})
