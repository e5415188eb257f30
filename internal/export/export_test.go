package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/trajsim/internal/ballistic"
)

func TestTrajectoryToSVG(t *testing.T) {
	traj, err := ballistic.Simulate(50, 75, 9.8)
	if err != nil {
		t.Fatal(err)
	}

	svg := TrajectoryToSVG(traj.Samples(), 400, 300, "")
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("expected a complete svg document")
	}
	if !strings.Contains(svg, `stroke="`+DefaultStroke+`"`) {
		t.Error("expected default orange stroke")
	}
	if got := strings.Count(svg, " L"); got != traj.Len()-1 {
		t.Errorf("expected %d line segments, got %d", traj.Len()-1, got)
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("expected a marker on the final sample")
	}
}

func TestTrajectoryToSVGEmpty(t *testing.T) {
	if svg := TrajectoryToSVG(nil, 100, 100, "red"); svg != "" {
		t.Errorf("expected empty output, got %q", svg)
	}
}

func TestTrajectoryToSVGDegenerate(t *testing.T) {
	traj, err := ballistic.Simulate(10, 0, 9.8)
	if err != nil {
		t.Fatal(err)
	}
	svg := TrajectoryToSVG(traj.Samples(), 100, 100, "red")
	if strings.Contains(svg, "NaN") || strings.Contains(svg, "Inf") {
		t.Error("degenerate trajectory produced non-finite coordinates")
	}
}

func TestSavePNG(t *testing.T) {
	traj, err := ballistic.Simulate(50, 45, 9.8)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "plots", "traj.png")
	opts := DefaultPNGOptions()
	opts.DPI = 50
	if err := SavePNG(path, traj, opts); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("expected png signature")
	}
}

func TestSavePNGInvalidSize(t *testing.T) {
	traj, err := ballistic.Simulate(50, 45, 9.8)
	if err != nil {
		t.Fatal(err)
	}
	err = SavePNG(filepath.Join(t.TempDir(), "x.png"), traj, PNGOptions{})
	if err == nil {
		t.Error("expected error for zero size")
	}
}
