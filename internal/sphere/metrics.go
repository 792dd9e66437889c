package sphere

import (
	"math"

	"github.com/golang/geo/s1"
)

// Distance returns the Euclidean (chord) distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return p1.Vector().Sub(p2.Vector()).Norm()
}

// AngleBetween returns the angle between v1 and v2 measured from the origin.
// The cosine is clamped to [−1, 1] before arccos so rounding cannot produce
// NaN. A zero vector has no direction and yields 0.
func AngleBetween(v1, v2 Point) s1.Angle {
	denom := v1.Norm() * v2.Norm()
	if denom == 0 {
		return 0
	}
	cos := v1.Dot(v2) / denom
	cos = math.Max(-1, math.Min(1, cos))
	return s1.Angle(math.Acos(cos)) * s1.Radian
}

// Radians is the arc length between v1 and v2 on a sphere of radius r.
func Radians(v1, v2 Point, r float64) float64 {
	return r * AngleBetween(v1, v2).Radians()
}

// PairMetric describes one unordered pair (I, J) with I < J.
type PairMetric struct {
	I, J     int
	Angle    s1.Angle
	Chord    float64
	Geodesic s1.Angle
}

// Pairs computes metrics for every pair in ascending (i, j) order.
func Pairs(points PointSet) []PairMetric {
	n := len(points)
	if n < 2 {
		return nil
	}
	out := make([]PairMetric, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := points[i], points[j]
			out = append(out, PairMetric{
				I:        i,
				J:        j,
				Angle:    AngleBetween(a, b),
				Chord:    Distance(a, b),
				Geodesic: a.S2().Distance(b.S2()),
			})
		}
	}
	return out
}

// OriginDistances returns the distance of each point from the origin.
func OriginDistances(points PointSet) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = Distance(p, Point{})
	}
	return out
}

type Neighbor struct {
	Index   int
	Nearest int // -1 when the set has a single point
	Chord   float64
}

// NearestNeighbors finds, for each point, the closest other point by chord
// distance. Ties keep the lower index.
func NearestNeighbors(points PointSet) []Neighbor {
	out := make([]Neighbor, len(points))
	for i := range points {
		out[i] = Neighbor{Index: i, Nearest: -1}
		best := math.Inf(1)
		for j := range points {
			if i == j {
				continue
			}
			if d := Distance(points[i], points[j]); d < best {
				best = d
				out[i].Nearest = j
			}
		}
		if out[i].Nearest >= 0 {
			out[i].Chord = best
		}
	}
	return out
}

// Summary condenses pair and nearest neighbour distances into a few numbers
// describing how even the distribution is.
type Summary struct {
	Points      int
	Pairs       int
	MinChord    float64
	MaxChord    float64
	MeanChord   float64
	MinNearest  float64
	MaxNearest  float64
	MeanNearest float64
}

// Spread is the ratio between the largest and smallest nearest neighbour
// distance. 1 means every point is equally far from its closest neighbour.
func (s Summary) Spread() float64 {
	if s.MinNearest == 0 {
		return 0
	}
	return s.MaxNearest / s.MinNearest
}

func Summarize(points PointSet) Summary {
	s := Summary{Points: len(points)}

	pairs := Pairs(points)
	s.Pairs = len(pairs)
	if len(pairs) == 0 {
		return s
	}

	chords := make([]float64, len(pairs))
	for i, pm := range pairs {
		chords[i] = pm.Chord
	}
	s.MinChord, s.MaxChord, s.MeanChord = minMaxMean(chords)

	nn := NearestNeighbors(points)
	near := make([]float64, len(nn))
	for i, n := range nn {
		near[i] = n.Chord
	}
	s.MinNearest, s.MaxNearest, s.MeanNearest = minMaxMean(near)

	return s
}

func minMaxMean(values []float64) (lo, hi, mean float64) {
	lo, hi = values[0], values[0]
	sum := 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += v
	}
	return lo, hi, sum / float64(len(values))
}
