package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/fibsphere/internal/sphere"
	"github.com/san-kum/fibsphere/internal/viz"
)

func TestCanvasToSVG_Nil(t *testing.T) {
	if got := CanvasToSVG(nil, 2, viz.ThemeMinimal); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestCanvasToSVG_Dots(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0, viz.LayerPoint)
	c.Set(3, 3, viz.LayerOrigin)

	svg := CanvasToSVG(c, 2, viz.ThemeMinimal)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatalf("malformed svg:\n%s", svg)
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if !strings.Contains(svg, `width="8" height="8"`) {
		t.Errorf("unexpected dimensions:\n%s", svg)
	}
	if !strings.Contains(svg, `class="point"`) || !strings.Contains(svg, `class="origin"`) {
		t.Errorf("layer groups missing:\n%s", svg)
	}
	if !strings.Contains(svg, string(viz.ThemeMinimal.Origin)) {
		t.Error("origin colour missing")
	}
}

func TestWriteSVG(t *testing.T) {
	points, err := sphere.Generate(5)
	if err != nil {
		t.Fatal(err)
	}
	c := viz.RenderPoints(points, viz.NewCamera(), 30, 15)

	var buf bytes.Buffer
	if err := WriteSVG(&buf, c, 3, viz.ThemeOcean); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !strings.Contains(buf.String(), `class="ray"`) {
		t.Error("rays missing from svg")
	}
}
