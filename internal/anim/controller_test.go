package anim_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/steiner/internal/anim"
	"github.com/san-kum/steiner/internal/curve"
)

var _ = Describe("Controller", func() {
	var a *anim.Controller

	BeforeEach(func() {
		c, err := curve.New(curve.Params{Fixed: 3, Rolling: 1, Offset: 1})
		Expect(err).NotTo(HaveOccurred())
		a = anim.NewController(c)
	})

	Describe("initial state", func() {
		It("starts idle without a sample", func() {
			Expect(a.State()).To(Equal(anim.Idle))
			Expect(a.Sample()).To(BeNil())
		})

		It("rejects seeking before generation", func() {
			Expect(a.Seek(5)).To(MatchError(anim.ErrNoSample))
		})

		It("has no frame before generation", func() {
			_, err := a.Frame()
			Expect(err).To(MatchError(anim.ErrNoSample))
		})
	})

	Describe("Generate", func() {
		It("produces index-aligned slices and pauses at frame 0", func() {
			Expect(a.Generate(300)).To(Succeed())
			Expect(a.State()).To(Equal(anim.Paused))
			Expect(a.Index()).To(Equal(0))

			s := a.Sample()
			Expect(s.Len()).To(Equal(300))
			Expect(s.Angles).To(HaveLen(300))
			Expect(s.Polar).To(HaveLen(300))
			Expect(s.Centers).To(HaveLen(300))
		})

		It("rejects fewer than two samples", func() {
			Expect(a.Generate(1)).To(HaveOccurred())
			Expect(a.State()).To(Equal(anim.Idle))
		})

		It("replaces the sample and rewinds on regeneration", func() {
			Expect(a.Generate(300)).To(Succeed())
			Expect(a.Seek(42)).To(Succeed())
			Expect(a.Generate(100)).To(Succeed())
			Expect(a.Index()).To(Equal(0))
			Expect(a.Sample().Len()).To(Equal(100))
		})
	})

	Describe("Play and Stop", func() {
		It("generates a default sample when played from idle", func() {
			started, err := a.Play()
			Expect(err).NotTo(HaveOccurred())
			Expect(started).To(BeTrue())
			Expect(a.State()).To(Equal(anim.Running))
			Expect(a.Sample().Len()).To(Equal(anim.DefaultSteps))
		})

		It("reports already running on a second play", func() {
			_, err := a.Play()
			Expect(err).NotTo(HaveOccurred())
			started, err := a.Play()
			Expect(err).NotTo(HaveOccurred())
			Expect(started).To(BeFalse())
		})

		It("stops only when running", func() {
			Expect(a.Stop()).To(BeFalse())
			_, err := a.Play()
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Stop()).To(BeTrue())
			Expect(a.State()).To(Equal(anim.Paused))
			Expect(a.Stop()).To(BeFalse())
		})
	})

	Describe("Tick", func() {
		It("wraps back to frame 0 after one full revolution", func() {
			_, err := a.Play()
			Expect(err).NotTo(HaveOccurred())
			n := a.Sample().Len()
			for i := 0; i < n; i++ {
				a.Tick()
			}
			Expect(a.Index()).To(Equal(0))
		})

		It("does not advance while paused", func() {
			Expect(a.Generate(300)).To(Succeed())
			a.Tick()
			Expect(a.Index()).To(Equal(0))
		})
	})

	Describe("Seek", func() {
		BeforeEach(func() {
			Expect(a.Generate(300)).To(Succeed())
		})

		It("wraps indices past the frame count", func() {
			Expect(a.Seek(300)).To(Succeed())
			Expect(a.Index()).To(Equal(0))
			Expect(a.Seek(451)).To(Succeed())
			Expect(a.Index()).To(Equal(151))
		})

		It("wraps negative indices", func() {
			Expect(a.Seek(-1)).To(Succeed())
			Expect(a.Index()).To(Equal(299))
		})

		It("keeps the running state", func() {
			_, err := a.Play()
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Seek(10)).To(Succeed())
			Expect(a.State()).To(Equal(anim.Running))
		})
	})

	Describe("Frame", func() {
		BeforeEach(func() {
			Expect(a.Generate(300)).To(Succeed())
		})

		It("snapshots frame 0 of the reference curve", func() {
			f, err := a.Frame()
			Expect(err).NotTo(HaveOccurred())

			Expect(f.Index).To(Equal(0))
			Expect(f.Steps).To(Equal(300))
			Expect(f.Point.X).To(BeNumerically("~", 3, 1e-9))
			Expect(f.Point.Y).To(BeNumerically("~", 0, 1e-9))
			Expect(f.FixedRadius).To(Equal(3.0))
			Expect(f.Rolling.Radius).To(Equal(1.0))
			Expect(f.Rolling.Center.X).To(BeNumerically("~", 2, 1e-9))
			Expect(f.PolarPath).To(HaveLen(300))
		})

		It("keeps polar and cartesian views index-aligned", func() {
			Expect(a.Seek(150)).To(Succeed())
			f, err := a.Frame()
			Expect(err).NotTo(HaveOccurred())

			Expect(f.Polar.Radius).To(Equal(math.Hypot(f.Point.X, f.Point.Y)))
			Expect(f.Polar.Angle).To(Equal(math.Atan2(f.Point.Y, f.Point.X)))
		})

		It("sizes the viewport from R+r+d and the trace extremes", func() {
			f, err := a.Frame()
			Expect(err).NotTo(HaveOccurred())
			// R+r+d = 5 dominates this trace (max |x| is 3).
			Expect(f.MaxExtent()).To(Equal(5.0))
		})
	})

	Describe("parameter updates", func() {
		It("keeps the current sample when a triple is rejected", func() {
			Expect(a.Generate(300)).To(Succeed())
			err := a.SetParams(curve.Params{Fixed: 1, Rolling: 1, Offset: 2})
			Expect(err).To(MatchError(curve.ErrInvalidParameter))
			Expect(a.Sample().Len()).To(Equal(300))
			Expect(a.Curve().Params()).To(Equal(curve.Params{Fixed: 3, Rolling: 1, Offset: 1}))
		})
	})
})
