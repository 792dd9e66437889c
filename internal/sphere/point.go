package sphere

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Point is a position in 3D space. Generated points lie on the unit sphere.
type Point struct {
	X, Y, Z float64
}

// PointSet is an ordered point list. Index order is generation order and is
// only used for labelling.
type PointSet []Point

func FromVector(v r3.Vector) Point { return Point{X: v.X, Y: v.Y, Z: v.Z} }

func (p Point) Vector() r3.Vector { return r3.Vector{X: p.X, Y: p.Y, Z: p.Z} }

func (p Point) Dot(o Point) float64 { return p.Vector().Dot(o.Vector()) }
func (p Point) Norm() float64       { return p.Vector().Norm() }
func (p Point) Neg() Point          { return Point{-p.X, -p.Y, -p.Z} }

func (p Point) IsValid() bool {
	for _, v := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (p Point) String() string {
	return fmt.Sprintf("[%.8f %.8f %.8f]", p.X, p.Y, p.Z)
}

// S2 maps p onto an s2.Point whose polar axis is the generator's vertical
// (Y) axis. The mapping is a quarter turn about X, so angles are preserved.
func (p Point) S2() s2.Point {
	return s2.PointFromCoords(p.X, -p.Z, p.Y)
}

// LatLng returns the latitude and longitude of p with the poles on the Y axis.
func LatLng(p Point) s2.LatLng {
	return s2.LatLngFromPoint(p.S2())
}

// Vectors converts the set for callers working in r3 directly.
func (ps PointSet) Vectors() []r3.Vector {
	out := make([]r3.Vector, len(ps))
	for i, p := range ps {
		out[i] = p.Vector()
	}
	return out
}
