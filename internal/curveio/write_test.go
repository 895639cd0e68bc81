package curveio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lbl-srg/funnel-go/internal/curveio"
	"github.com/lbl-srg/funnel-go/tube"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	curve := tube.Curve{X: []float64{0, 1, 2}, Y: []float64{0, 0.5, 1}}

	if err := curveio.WriteCSV(dir, "reference.csv", curve); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	got, err := curveio.ReadCSV(filepath.Join(dir, "reference.csv"), 1)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if got.Len() != curve.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), curve.Len())
	}
	for i := range curve.X {
		if !tube.Equal(got.X[i], curve.X[i]) || !tube.Equal(got.Y[i], curve.Y[i]) {
			t.Fatalf("row %d = (%v,%v), want (%v,%v)", i, got.X[i], got.Y[i], curve.X[i], curve.Y[i])
		}
	}
}

func TestWriteCSVHeader(t *testing.T) {
	dir := t.TempDir()
	if err := curveio.WriteCSV(dir, "test.csv", tube.Curve{X: []float64{0}, Y: []float64{1}}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "test.csv"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "x,y\n") {
		t.Fatalf("file does not start with the x,y header: %q", string(data))
	}
}
