package report

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/san-kum/fibsphere/internal/sphere"
)

var (
	pointLine  = regexp.MustCompile(`^Point \d+: \[`)
	angleLine  = regexp.MustCompile(`^angle=\d+\.\d{3}, radian=\d+\.\d{3}$`)
	distLine   = regexp.MustCompile(`^Point \d+ to Point \d+: dist=\d+\.\d{4}$`)
	originLine = regexp.MustCompile(`^Point \d+ to zero: dist=(\d+\.\d{4})$`)
)

func count(lines []string, re *regexp.Regexp) int {
	n := 0
	for _, l := range lines {
		if re.MatchString(l) {
			n++
		}
	}
	return n
}

func generate(t *testing.T, n int) sphere.PointSet {
	t.Helper()
	points, err := sphere.Generate(n)
	if err != nil {
		t.Fatalf("generate(%d): %v", n, err)
	}
	return points
}

func TestLines_Counts(t *testing.T) {
	tests := []struct {
		n, pairs int
	}{
		{3, 3},
		{5, 10},
		{100, 4950},
	}

	for _, tt := range tests {
		lines := Lines(generate(t, tt.n), 1)

		if got := count(lines, pointLine); got != tt.n {
			t.Errorf("n=%d: expected %d point lines, got %d", tt.n, tt.n, got)
		}
		if got := count(lines, angleLine); got != tt.pairs {
			t.Errorf("n=%d: expected %d angle lines, got %d", tt.n, tt.pairs, got)
		}
		if got := count(lines, distLine); got != tt.pairs {
			t.Errorf("n=%d: expected %d distance lines, got %d", tt.n, tt.pairs, got)
		}
		if got := count(lines, originLine); got != tt.n {
			t.Errorf("n=%d: expected %d origin lines, got %d", tt.n, tt.n, got)
		}
		if want := 6 + 2*tt.n + 2*tt.pairs; len(lines) != want {
			t.Errorf("n=%d: expected %d lines total, got %d", tt.n, want, len(lines))
		}
		for _, l := range lines {
			if strings.Contains(l, "NaN") {
				t.Fatalf("n=%d: NaN in report line %q", tt.n, l)
			}
		}
	}
}

func TestLines_Order(t *testing.T) {
	lines := Lines(generate(t, 3), 1)

	want := []string{
		Header,
		"",
		"Number of Points = 3",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d = %q, want %q", i, lines[i], w)
		}
	}
	if !strings.HasPrefix(lines[3], "Point 1: ") || !strings.HasPrefix(lines[5], "Point 3: ") {
		t.Errorf("point lines out of place: %q", lines[3:6])
	}
	if lines[6] != Separator || lines[10] != Separator || lines[14] != OriginDivider {
		t.Errorf("separators out of place: %q", lines)
	}
	pairOrder := []string{"Point 1 to Point 2:", "Point 1 to Point 3:", "Point 2 to Point 3:"}
	for k, prefix := range pairOrder {
		if !strings.HasPrefix(lines[11+k], prefix) {
			t.Errorf("line %d = %q, want prefix %q", 11+k, lines[11+k], prefix)
		}
	}
	if lines[15] != "Point 1 to zero: dist=1.0000" {
		t.Errorf("unexpected origin line %q", lines[15])
	}
}

func TestLines_DefaultOriginDistances(t *testing.T) {
	for _, l := range Lines(generate(t, 5), 1) {
		if m := originLine.FindStringSubmatch(l); m != nil && m[1] != "1.0000" {
			t.Errorf("origin distance %s, want 1.0000", m[1])
		}
	}
}

func TestLines_RadiusScalesRadians(t *testing.T) {
	points := sphere.PointSet{{X: 1}, {Y: 1}}
	lines := Lines(points, 2)
	if lines[6] != "angle=90.000, radian=3.142" {
		t.Errorf("unexpected angle line %q", lines[6])
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, generate(t, 4), 1); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, Header+"\n\nNumber of Points = 4\n") {
		t.Errorf("unexpected start:\n%s", out)
	}
	if !strings.HasSuffix(out, "Point 4 to zero: dist=1.0000\n") {
		t.Errorf("unexpected end:\n%s", out)
	}
}

func TestPlots(t *testing.T) {
	points := generate(t, 20)
	if out := PlotPairDistances(points, 60, 8); !strings.Contains(out, "190 pairs") {
		t.Errorf("pair plot missing caption:\n%s", out)
	}
	if out := PlotNearest(points, 60, 8); !strings.Contains(out, "nearest neighbour") {
		t.Errorf("nearest plot missing caption:\n%s", out)
	}
	if PlotPairDistances(generate(t, 1), 60, 8) != "" || PlotNearest(generate(t, 1), 60, 8) != "" {
		t.Error("single point should not plot")
	}
}
