package curveio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lbl-srg/funnel-go/tube"
)

// ReadCSV reads a two-column CSV curve from path, skipping skipLines header
// lines first. Each data line may use a comma or a semicolon as the column
// delimiter; the scan stops at, and does not error on, the first line that
// does not parse as "number<delim>number" -- matching the source tool's
// tolerant trailing-garbage behavior rather than failing the whole file.
func ReadCSV(path string, skipLines int) (tube.Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return tube.Curve{}, fmt.Errorf("curveio: read %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	for i := 0; i < skipLines && scanner.Scan(); i++ {
	}

	var xs, ys []float64
	for scanner.Scan() {
		x, y, ok := parseRow(scanner.Text())
		if !ok {
			break
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return tube.Curve{}, fmt.Errorf("curveio: read %s: %w", path, err)
	}

	return tube.Curve{X: xs, Y: ys}, nil
}

// parseRow parses a single "number<,|;>number" row, tolerating surrounding
// whitespace around either field.
func parseRow(line string) (x, y float64, ok bool) {
	line = strings.TrimRight(line, "\r\n")

	sep := strings.IndexAny(line, ",;")
	if sep < 0 {
		return 0, 0, false
	}

	xs := strings.TrimSpace(line[:sep])
	ys := strings.TrimSpace(line[sep+1:])

	x, errX := strconv.ParseFloat(xs, 64)
	y, errY := strconv.ParseFloat(ys, 64)
	if errX != nil || errY != nil {
		return 0, 0, false
	}
	return x, y, true
}
