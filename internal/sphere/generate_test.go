package sphere_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fibsphere/internal/sphere"
)

var _ = Describe("Generate", func() {
	It("returns exactly n points on the unit sphere for every supported count", func() {
		for n := 3; n <= 100; n++ {
			points, err := sphere.Generate(n)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(n))
			for _, p := range points {
				Expect(math.Abs(p.Norm() - 1)).To(BeNumerically("<", 1e-9))
			}
		}
	})

	It("is deterministic without randomization", func() {
		a, err := sphere.Generate(42)
		Expect(err).NotTo(HaveOccurred())
		b, err := sphere.Generate(42)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("spaces heights uniformly in generation order", func() {
		points, err := sphere.Generate(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(points[0].Y).To(BeNumerically("~", -0.75, 1e-12))
		Expect(points[1].Y).To(BeNumerically("~", -0.25, 1e-12))
		Expect(points[2].Y).To(BeNumerically("~", 0.25, 1e-12))
		Expect(points[3].Y).To(BeNumerically("~", 0.75, 1e-12))
	})

	It("places the first point at phase one", func() {
		points, err := sphere.Generate(5)
		Expect(err).NotTo(HaveOccurred())
		r := math.Sqrt(1 - 0.8*0.8)
		Expect(points[0].X).To(BeNumerically("~", math.Cos(sphere.GoldenAngle)*r, 1e-12))
		Expect(points[0].Z).To(BeNumerically("~", math.Sin(sphere.GoldenAngle)*r, 1e-12))
	})

	It("never produces duplicate points", func() {
		for n := 2; n <= 100; n++ {
			points, err := sphere.Generate(n)
			Expect(err).NotTo(HaveOccurred())
			for _, pm := range sphere.Pairs(points) {
				Expect(pm.Chord).To(BeNumerically(">", 1e-9), "n=%d pair (%d,%d)", n, pm.I, pm.J)
			}
		}
	})

	It("handles a single point", func() {
		points, err := sphere.Generate(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(1))
		Expect(points[0].Y).To(BeNumerically("~", 0, 1e-12))
		Expect(points[0].Norm()).To(BeNumerically("~", 1, 1e-12))
	})

	DescribeTable("rejects non-positive counts",
		func(n int) {
			points, err := sphere.Generate(n)
			Expect(err).To(MatchError(sphere.ErrInvalidCount))
			Expect(points).To(BeNil())

			points, err = sphere.GenerateRandom(n, rand.New(rand.NewSource(1)))
			Expect(err).To(MatchError(sphere.ErrInvalidCount))
			Expect(points).To(BeNil())
		},
		Entry("zero", 0),
		Entry("negative", -1),
		Entry("very negative", -100),
	)

	It("has the golden angle increment", func() {
		Expect(sphere.GoldenAngle).To(BeNumerically("~", 2.399963, 1e-6))
	})
})

var _ = Describe("GenerateRandom", func() {
	It("keeps points on the unit sphere", func() {
		rng := rand.New(rand.NewSource(7))
		for n := 3; n <= 100; n += 7 {
			points, err := sphere.GenerateRandom(n, rng)
			Expect(err).NotTo(HaveOccurred())
			Expect(points).To(HaveLen(n))
			for _, p := range points {
				Expect(math.Abs(p.Norm() - 1)).To(BeNumerically("<", 1e-9))
			}
		}
	})

	It("repeats for the same seed", func() {
		a, err := sphere.GenerateRandom(30, rand.New(rand.NewSource(99)))
		Expect(err).NotTo(HaveOccurred())
		b, err := sphere.GenerateRandom(30, rand.New(rand.NewSource(99)))
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("only shifts azimuths, never heights", func() {
		fixed, err := sphere.Generate(12)
		Expect(err).NotTo(HaveOccurred())
		shifted, err := sphere.GenerateRandom(12, rand.New(rand.NewSource(3)))
		Expect(err).NotTo(HaveOccurred())
		for i := range fixed {
			Expect(shifted[i].Y).To(Equal(fixed[i].Y))
		}
	})
})

var _ = Describe("Generator", func() {
	It("delegates to the deterministic spiral when not randomizing", func() {
		g := sphere.NewGenerator(false, 1)
		got, err := g.Generate(9)
		Expect(err).NotTo(HaveOccurred())
		want, _ := sphere.Generate(9)
		Expect(got).To(Equal(want))
	})

	It("replays the same sequence after Reseed", func() {
		g := sphere.NewGenerator(true, 5)
		first, err := g.Generate(10)
		Expect(err).NotTo(HaveOccurred())
		_, _ = g.Generate(10)

		g.Reseed(5)
		again, err := g.Generate(10)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(first))
	})

	It("picks a seed when given zero", func() {
		g := sphere.NewGenerator(true, 0)
		Expect(g.Seed).NotTo(BeZero())
	})
})
