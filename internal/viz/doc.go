// Package viz renders a point set on the unit sphere into the terminal.
//
// Rendering happens in three steps:
//
//   - [NewPointCloudScene] builds line segments and markers for the bounding
//     cube, the wireframe sphere, the origin, the points and the origin rays
//   - [Camera] rotates and projects the scene with a simple perspective
//   - [Canvas] rasterizes into Braille cells (2x4 dots per character) and
//     remembers which [Layer] owns each cell so themes can colour it
//
// Themes and lipgloss styles used by the CLI and the TUI live here as well.
package viz
