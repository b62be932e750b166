// Package polygon reads and writes polygon files in the Tekal block format:
//
//	* optional comment lines
//	name
//	    <rows>    2
//	x1 y1
//	...
//
// Every block is one polygon. Additional columns after x and y are ignored.
package polygon

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/deploymenttheory/go-initfield/internal/types"
)

// Read parses all polygon blocks of a stream
func Read(r io.Reader) ([]types.Polygon, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	next := func() (string, bool) {
		for scanner.Scan() {
			lineNo++
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "*") {
				continue
			}
			return line, true
		}
		return "", false
	}

	var polygons []types.Polygon
	for {
		name, ok := next()
		if !ok {
			break
		}

		dims, ok := next()
		if !ok {
			return nil, fmt.Errorf("line %d: missing dimensions for block %q", lineNo, name)
		}
		rows, cols, err := parseDimensions(dims)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if cols < 2 {
			return nil, fmt.Errorf("line %d: block %q needs at least 2 columns, got %d", lineNo, name, cols)
		}

		polygon := types.Polygon{Name: name, Points: make([]types.Point, 0, rows)}
		for i := 0; i < rows; i++ {
			line, ok := next()
			if !ok {
				return nil, fmt.Errorf("block %q: expected %d points, got %d", name, rows, i)
			}
			p, err := parsePoint(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			polygon.Points = append(polygon.Points, p)
		}
		polygons = append(polygons, polygon)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read polygon file: %w", err)
	}
	return polygons, nil
}

// Write emits polygons as Tekal blocks, unnamed polygons get a generated name
func Write(w io.Writer, polygons []types.Polygon) error {
	bw := bufio.NewWriter(w)
	for i, p := range polygons {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("polygon_%03d", i+1)
		}
		fmt.Fprintf(bw, "%s\n", name)
		fmt.Fprintf(bw, "    %d    2\n", len(p.Points))
		for _, pt := range p.Points {
			fmt.Fprintf(bw, "%s  %s\n", formatCoordinate(pt.X), formatCoordinate(pt.Y))
		}
	}
	return bw.Flush()
}

func parseDimensions(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("invalid dimensions %q", line)
	}
	rows, err := strconv.Atoi(fields[0])
	if err != nil || rows < 0 {
		return 0, 0, fmt.Errorf("invalid row count %q", fields[0])
	}
	cols, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column count %q", fields[1])
	}
	return rows, cols, nil
}

func parsePoint(line string) (types.Point, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return types.Point{}, fmt.Errorf("invalid point %q", line)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("invalid x coordinate %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("invalid y coordinate %q", fields[1])
	}
	return types.Point{X: x, Y: y}, nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
