package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/fibsphere/internal/config"
	"github.com/san-kum/fibsphere/internal/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	out, err := execute(t, "report", "-n", "3")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Number of Points = 3\n") {
		t.Errorf("unexpected report:\n%s", out)
	}
	if n := strings.Count(out, "to zero: dist=1.0000"); n != 3 {
		t.Errorf("expected 3 origin lines, got %d", n)
	}
}

func TestReportCommand_Clamps(t *testing.T) {
	out, err := execute(t, "report", "--points", "500")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Number of Points = 100\n") {
		t.Error("point count not clamped to 100")
	}

	out, err = execute(t, "report", "--points", "0")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Number of Points = 3\n") {
		t.Error("point count not clamped to 3")
	}
}

func TestReportCommand_Default(t *testing.T) {
	out, err := execute(t, "report")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Number of Points = 5\n") {
		t.Error("expected the default of 5 points")
	}
	if n := strings.Count(out, "angle="); n != 10 {
		t.Errorf("expected 10 angle lines, got %d", n)
	}
}

func TestPresetAndConfigPrecedence(t *testing.T) {
	out, err := execute(t, "report", "--preset", "medium")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Number of Points = 24\n") {
		t.Error("preset not applied")
	}

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("points: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "report", "--preset", "medium", "--config", path)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Number of Points = 9\n") {
		t.Error("config file should override the preset")
	}

	out, err = execute(t, "report", "--config", path, "-n", "4")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if !strings.Contains(out, "Number of Points = 4\n") {
		t.Error("explicit flag should override the config file")
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := execute(t, "report", "--preset", "nope")
	if !errors.Is(err, config.ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	out, err := execute(t, "export", "-n", "4", "--format", "csv")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 5 {
		t.Errorf("expected header + 4 rows, got %d", len(lines))
	}

	out, err = execute(t, "export", "--format", "svg", "--width", "20", "--height", "10")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "<svg") {
		t.Error("svg output missing")
	}

	_, err = execute(t, "export", "--format", "xml")
	if !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "--plain", "--width", "30", "--height", "12")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if lines := strings.Split(strings.TrimRight(out, "\n"), "\n"); len(lines) != 12 {
		t.Errorf("expected 12 rows, got %d", len(lines))
	}
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", "-n", "6", "--radius", "2")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	for _, want := range []string{"POINT", "pairs: 15", "spread", "mean nearest arc at radius 2.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats missing %q:\n%s", want, out)
		}
	}
}

func TestPlotCommand(t *testing.T) {
	out, err := execute(t, "plot", "-n", "12", "--plot-width", "40", "--plot-height", "6")
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}
	if !strings.Contains(out, "66 pairs") {
		t.Errorf("plot caption missing:\n%s", out)
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("preset %s not listed", name)
		}
	}

	out, err = execute(t, "presets", "dense")
	if err != nil {
		t.Fatalf("presets dense failed: %v", err)
	}
	if !strings.Contains(out, "points: 100") {
		t.Errorf("yaml missing points:\n%s", out)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	if _, err := execute(t, "report", "--log-level", "loud"); err == nil {
		t.Error("expected error for invalid log level")
	}
}
