package viz

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"github.com/san-kum/fibsphere/internal/sphere"
)

// Segment is a line between Start and End. A segment whose ends coincide is
// drawn as a marker.
type Segment struct {
	Start, End r3.Vector
	Layer      Layer
}

func (s Segment) IsMarker() bool { return s.Start == s.End }

type Scene struct{ Segments []Segment }

func NewScene() *Scene { return &Scene{Segments: make([]Segment, 0, 256)} }

func (s *Scene) AddEdge(a, b r3.Vector, l Layer) { s.Segments = append(s.Segments, Segment{a, b, l}) }
func (s *Scene) AddMarker(p r3.Vector, l Layer)  { s.Segments = append(s.Segments, Segment{p, p, l}) }
func (s *Scene) Clear()                          { s.Segments = s.Segments[:0] }

// AddBox adds the 12 edges of the axis-aligned cube [−half, half]³.
func (s *Scene) AddBox(half float64) {
	h := half
	v := []r3.Vector{{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	for _, e := range ei {
		s.AddEdge(v[e[0]], v[e[1]], LayerBox)
	}
}

// AddWireSphere adds meridians and parallels of a sphere around the origin
// with the poles on the Y axis.
func (s *Scene) AddWireSphere(radius float64, meridians, parallels, steps int) {
	at := func(lat, lng float64) r3.Vector {
		return r3.Vector{
			X: radius * math.Cos(lat) * math.Cos(lng),
			Y: radius * math.Sin(lat),
			Z: radius * math.Cos(lat) * math.Sin(lng),
		}
	}

	for m := 0; m < meridians; m++ {
		lng := 2 * math.Pi * float64(m) / float64(meridians)
		for k := 0; k < steps; k++ {
			a := -math.Pi/2 + math.Pi*float64(k)/float64(steps)
			b := -math.Pi/2 + math.Pi*float64(k+1)/float64(steps)
			s.AddEdge(at(a, lng), at(b, lng), LayerSphere)
		}
	}

	for p := 1; p <= parallels; p++ {
		lat := -math.Pi/2 + math.Pi*float64(p)/float64(parallels+1)
		for k := 0; k < steps*2; k++ {
			a := 2 * math.Pi * float64(k) / float64(steps*2)
			b := 2 * math.Pi * float64(k+1) / float64(steps*2)
			s.AddEdge(at(lat, a), at(lat, b), LayerSphere)
		}
	}
}

// NewPointCloudScene builds the full picture for a point set: the bounding
// cube, a wireframe unit sphere, the origin, a ray to every point and the
// points themselves.
func NewPointCloudScene(points sphere.PointSet) *Scene {
	s := NewScene()
	s.AddBox(1)
	s.AddWireSphere(1, 12, 5, 12)

	origin := r3.Vector{}
	for _, p := range points {
		s.AddEdge(origin, p.Vector(), LayerRay)
	}
	for _, p := range points {
		s.AddMarker(p.Vector(), LayerPoint)
	}
	s.AddMarker(origin, LayerOrigin)
	return s
}

type projected struct {
	x1, y1, x2, y2 int
	depth          float64
	layer          Layer
	marker         bool
}

// Render draws the scene to the canvas using a simple painter's algorithm.
func Render(c *Canvas, s *Scene, cam *Camera) {
	if c == nil || s == nil || cam == nil {
		return
	}
	cw, ch := c.Dots()
	proj := make([]projected, 0, len(s.Segments))
	for _, seg := range s.Segments {
		x1, y1, d1, ok1 := cam.Project(seg.Start, cw, ch)
		x2, y2, d2, ok2 := cam.Project(seg.End, cw, ch)
		if !ok1 || !ok2 {
			continue
		}
		proj = append(proj, projected{x1, y1, x2, y2, (d1 + d2) / 2, seg.Layer, seg.IsMarker()})
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, p := range proj {
		if p.marker {
			c.DrawMarker(p.x1, p.y1, p.layer)
		} else {
			c.DrawLine(p.x1, p.y1, p.x2, p.y2, p.layer)
		}
	}
}

// RenderPoints is the one-call path used by the CLI: build, project and
// rasterize a point set onto a fresh canvas of w×h cells.
func RenderPoints(points sphere.PointSet, cam *Camera, w, h int) *Canvas {
	c := NewCanvas(w, h)
	Render(c, NewPointCloudScene(points), cam)
	return c
}
