package curveio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lbl-srg/funnel-go/tube"
)

// WriteCSV writes curve to filepath.Join(outDir, fileName) as "x,y" header
// followed by "%f,%f" rows, creating outDir (and any missing parents) first.
func WriteCSV(outDir, fileName string, curve tube.Curve) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("curveio: write %s: %w", fileName, err)
	}

	path := filepath.Join(outDir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("curveio: write %s: %w", fileName, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString("x,y\n"); err != nil {
		return fmt.Errorf("curveio: write %s: %w", fileName, err)
	}
	for i := 0; i < curve.Len(); i++ {
		if _, err := fmt.Fprintf(w, "%f,%f\n", curve.X[i], curve.Y[i]); err != nil {
			return fmt.Errorf("curveio: write %s: %w", fileName, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("curveio: write %s: %w", fileName, err)
	}
	return nil
}
