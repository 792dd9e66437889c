package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/fibsphere/internal/sphere"
)

type PointData struct {
	Index    int     `json:"index"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Lat      float64 `json:"lat_deg"`
	Lng      float64 `json:"lng_deg"`
	Origin   float64 `json:"origin_dist"`
	Nearest  int     `json:"nearest"`
	NearDist float64 `json:"nearest_dist"`
}

type PairData struct {
	I        int     `json:"i"`
	J        int     `json:"j"`
	Degrees  float64 `json:"angle_deg"`
	Radians  float64 `json:"radians"`
	Chord    float64 `json:"chord"`
	Geodesic float64 `json:"geodesic"`
}

// Document is the exported form of one point set. Indices are 1-based to
// match the text report.
type Document struct {
	Algorithm string         `json:"algorithm"`
	Count     int            `json:"count"`
	Radius    float64        `json:"radius"`
	Points    []PointData    `json:"points"`
	Pairs     []PairData     `json:"pairs"`
	Summary   sphere.Summary `json:"summary"`
}

func NewDocument(points sphere.PointSet, radius float64) *Document {
	doc := &Document{
		Algorithm: "fibonacci_sphere",
		Count:     len(points),
		Radius:    radius,
		Points:    make([]PointData, len(points)),
		Summary:   sphere.Summarize(points),
	}

	origin := sphere.OriginDistances(points)
	nn := sphere.NearestNeighbors(points)
	for i, p := range points {
		ll := sphere.LatLng(p)
		nearest := nn[i].Nearest
		if nearest >= 0 {
			nearest++
		}
		doc.Points[i] = PointData{
			Index:    i + 1,
			X:        p.X,
			Y:        p.Y,
			Z:        p.Z,
			Lat:      ll.Lat.Degrees(),
			Lng:      ll.Lng.Degrees(),
			Origin:   origin[i],
			Nearest:  nearest,
			NearDist: nn[i].Chord,
		}
	}

	pairs := sphere.Pairs(points)
	doc.Pairs = make([]PairData, len(pairs))
	for k, pm := range pairs {
		doc.Pairs[k] = PairData{
			I:        pm.I + 1,
			J:        pm.J + 1,
			Degrees:  pm.Angle.Degrees(),
			Radians:  radius * pm.Angle.Radians(),
			Chord:    pm.Chord,
			Geodesic: radius * pm.Geodesic.Radians(),
		}
	}

	return doc
}

func WriteJSON(w io.Writer, points sphere.PointSet, radius float64) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(points, radius))
}
