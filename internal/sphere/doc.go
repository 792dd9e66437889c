// Package sphere places points approximately evenly on the unit sphere and
// derives geometric metrics from them.
//
// Points are produced by the Fibonacci (golden angle) spiral:
//
//   - [Generate]: deterministic point set for a given count
//   - [GenerateRandom]: same spiral with a random phase shift
//   - [Generator]: seeded generator used by the CLI and the TUI
//
// Metrics are pure functions over [Point] values:
//
//   - [Distance]: chord (Euclidean) distance
//   - [AngleBetween], [Radians]: angular separation
//   - [Pairs], [OriginDistances], [NearestNeighbors], [Summarize]
//
// # Example
//
//	points, _ := sphere.Generate(5)
//	for _, pm := range sphere.Pairs(points) {
//		fmt.Println(pm.I, pm.J, pm.Angle.Degrees(), pm.Chord)
//	}
//
// Nothing in this package keeps state between calls; a point set is rebuilt
// from scratch whenever the count changes.
package sphere
