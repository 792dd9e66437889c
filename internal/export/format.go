package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/san-kum/fibsphere/internal/sphere"
	"github.com/san-kum/fibsphere/internal/viz"
)

var ErrUnknownFormat = errors.New("export: unknown format")

var Formats = []string{"json", "csv", "svg"}

// Options carries what the SVG format needs beyond the point set.
type Options struct {
	Radius        float64
	Camera        *viz.Camera
	Width, Height int
	Scale         float64
	Theme         viz.Theme
}

// Write encodes points in the named format.
func Write(w io.Writer, format string, points sphere.PointSet, opts Options) error {
	switch format {
	case "json":
		return WriteJSON(w, points, opts.Radius)
	case "csv":
		return WriteCSV(w, points, opts.Radius)
	case "svg":
		cam := opts.Camera
		if cam == nil {
			cam = viz.NewCamera()
		}
		c := viz.RenderPoints(points, cam, opts.Width, opts.Height)
		return WriteSVG(w, c, opts.Scale, opts.Theme)
	}
	return fmt.Errorf("%w: %q (available: %v)", ErrUnknownFormat, format, Formats)
}
