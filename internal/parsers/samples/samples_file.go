// Package samples reads and writes whitespace separated "x y value" sample files.
package samples

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-initfield/internal/types"
)

// Read parses sample points, skipping blank lines and lines starting with '*' or '#'
func Read(r io.Reader) ([]types.Point, error) {
	scanner := bufio.NewScanner(r)
	var points []types.Point
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected x y value, got %q", lineNo, line)
		}
		var values [3]float64
		for i := range values {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid number %q", lineNo, fields[i])
			}
			values[i] = v
		}
		points = append(points, types.Point{X: values[0], Y: values[1], Value: values[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read samples: %w", err)
	}
	return points, nil
}

// Write emits one "x y value" line per point
func Write(w io.Writer, points []types.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		fmt.Fprintf(bw, "%s %s %s\n", format(p.X), format(p.Y), format(p.Value))
	}
	return bw.Flush()
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
