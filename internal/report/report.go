// Package report formats a point set as the plain-text report and as
// terminal charts.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/fibsphere/internal/sphere"
)

const (
	Header        = "-----Fibonacci Sphere Algorithm-----"
	Separator     = "---------------"
	OriginDivider = "------------------"
)

// Lines builds the report for points in its fixed section order: header,
// count, coordinates, pair angles, pair chord distances, origin distances.
// Points are numbered from 1. Radians are scaled by radius.
func Lines(points sphere.PointSet, radius float64) []string {
	n := len(points)
	pairs := sphere.Pairs(points)

	lines := make([]string, 0, 6+2*n+2*len(pairs))
	lines = append(lines, Header, "")
	lines = append(lines, fmt.Sprintf("Number of Points = %d", n))

	for i, p := range points {
		lines = append(lines, fmt.Sprintf("Point %d: %s", i+1, p))
	}

	lines = append(lines, Separator)
	for _, pm := range pairs {
		lines = append(lines, fmt.Sprintf("angle=%.3f, radian=%.3f",
			pm.Angle.Degrees(), sphere.Radians(points[pm.I], points[pm.J], radius)))
	}

	lines = append(lines, Separator)
	for _, pm := range pairs {
		lines = append(lines, fmt.Sprintf("Point %d to Point %d: dist=%.4f", pm.I+1, pm.J+1, pm.Chord))
	}

	lines = append(lines, OriginDivider)
	for i, d := range sphere.OriginDistances(points) {
		lines = append(lines, fmt.Sprintf("Point %d to zero: dist=%.4f", i+1, d))
	}

	return lines
}

// Write emits the report to w, one line per entry.
func Write(w io.Writer, points sphere.PointSet, radius float64) error {
	_, err := io.WriteString(w, strings.Join(Lines(points, radius), "\n")+"\n")
	return err
}
