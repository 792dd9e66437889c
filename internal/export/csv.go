package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/fibsphere/internal/sphere"
)

// WriteCSV writes one row per point: index, coordinates, latitude,
// longitude, distance from the origin and nearest neighbour.
func WriteCSV(w io.Writer, points sphere.PointSet, radius float64) error {
	doc := NewDocument(points, radius)

	cw := csv.NewWriter(w)
	header := []string{"index", "x", "y", "z", "lat_deg", "lng_deg", "origin_dist", "nearest", "nearest_dist"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, p := range doc.Points {
		row := []string{
			strconv.Itoa(p.Index),
			formatFloat(p.X),
			formatFloat(p.Y),
			formatFloat(p.Z),
			formatFloat(p.Lat),
			formatFloat(p.Lng),
			formatFloat(p.Origin),
			strconv.Itoa(p.Nearest),
			formatFloat(p.NearDist),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
