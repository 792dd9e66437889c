package sphere

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// GoldenAngle is the azimuthal step between consecutive points, π(3−√5) rad.
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// Generate returns n points on the unit sphere with the default phase of 1.
func Generate(n int) (PointSet, error) {
	return GenerateOffset(n, 1)
}

// GenerateRandom draws a single phase uniformly from [0, n) and applies it to
// the whole spiral. A nil rng uses the math/rand global source.
func GenerateRandom(n int, rng *rand.Rand) (PointSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	var u float64
	if rng != nil {
		u = rng.Float64()
	} else {
		u = rand.Float64()
	}
	return GenerateOffset(n, u*float64(n))
}

// GenerateOffset builds the golden angle spiral with phase rnd. Heights are
// spaced uniformly over (−1, 1) and each point advances the azimuth by
// GoldenAngle.
func GenerateOffset(n int, rnd float64) (PointSet, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}

	offset := 2 / float64(n)
	points := make(PointSet, n)

	for i := 0; i < n; i++ {
		y := (float64(i)*offset - 1) + offset/2
		// y*y can round past 1 for large n
		r := math.Sqrt(math.Max(0, 1-y*y))
		phi := math.Mod(float64(i)+rnd, float64(n)) * GoldenAngle
		points[i] = Point{
			X: math.Cos(phi) * r,
			Y: y,
			Z: math.Sin(phi) * r,
		}
	}

	return points, nil
}

// Generator produces point sets for a fixed randomization policy. When
// Randomize is set every call draws a fresh phase from the generator's source.
type Generator struct {
	Randomize bool
	Seed      int64

	rng *rand.Rand
}

// NewGenerator returns a generator. A zero seed seeds from the clock.
func NewGenerator(randomize bool, seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		Randomize: randomize,
		Seed:      seed,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (g *Generator) Generate(n int) (PointSet, error) {
	if !g.Randomize {
		return Generate(n)
	}
	return GenerateRandom(n, g.rng)
}

// Reseed resets the random source so the next calls repeat from the start.
func (g *Generator) Reseed(seed int64) {
	g.Seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}
