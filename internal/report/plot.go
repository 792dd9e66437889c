package report

import (
	"fmt"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fibsphere/internal/sphere"
)

// PlotPairDistances charts every pair's chord distance in ascending order.
// An even distribution gives a smooth S-shaped curve without plateaus.
func PlotPairDistances(points sphere.PointSet, width, height int) string {
	pairs := sphere.Pairs(points)
	if len(pairs) == 0 {
		return ""
	}
	data := make([]float64, len(pairs))
	for i, pm := range pairs {
		data[i] = pm.Chord
	}
	sort.Float64s(data)

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("sorted chord distances (%d pairs)", len(data))),
	)
}

// PlotNearest charts each point's nearest neighbour distance in generation
// order, i.e. from the bottom of the spiral to the top.
func PlotNearest(points sphere.PointSet, width, height int) string {
	if len(points) < 2 {
		return ""
	}
	nn := sphere.NearestNeighbors(points)
	data := make([]float64, len(nn))
	for i, n := range nn {
		data[i] = n.Chord
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption("nearest neighbour distance by point index"),
	)
}
