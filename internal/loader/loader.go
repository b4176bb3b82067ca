// Package loader reads micromagnetic simulation exports into a field.Field.
//
// Two tabular formats are supported, selected by file name:
//
//   - name.csv: comma-separated rows, optionally with a header line
//   - anything without an extension: whitespace-separated OOMMF export
//
// Both formats carry six numeric columns per row, [Rx, Ry, Rz, Mx, My, Mz].
package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/magtools/magplot/internal/field"
)

// columns is the fixed table width: three position and three
// magnetization components.
const columns = 6

// Load resolves the format of the named file and parses it.
//
// The format check is positional: only the trailing 5 characters of the
// name are examined for a dot. A dot further from the end does not count
// as an extension, matching the behavior the simulation pipeline relies
// on for OOMMF exports with dotted directory names.
func Load(filename string) (*field.Field, error) {
	tail := filename
	if len(tail) > 5 {
		tail = tail[len(tail)-5:]
	}

	if strings.Contains(tail, ".") {
		if strings.HasSuffix(filename, ".csv") {
			return LoadCSV(filename, false)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidExtension, filename)
	}
	return LoadOOMMF(filename)
}

// LoadCSV parses a comma-separated export. When header is true the first
// row is treated as column names and skipped.
func LoadCSV(filename string, header bool) (*field.Field, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // column count is validated per row below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", filename, err)
	}
	if header && len(records) > 0 {
		records = records[1:]
	}

	return splitTable(records)
}

// LoadOOMMF parses a whitespace-separated OOMMF export. Blank lines are
// skipped; there is no header support.
func LoadOOMMF(filename string) (*field.Field, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		cols := strings.Fields(sc.Text())
		if len(cols) == 0 {
			continue
		}
		records = append(records, cols)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", filename, err)
	}

	return splitTable(records)
}

// splitTable validates the table shape, parses every cell and slices the
// columns into position (0-2) and magnetization (3-5) arrays.
func splitTable(records [][]string) (*field.Field, error) {
	pos := make([]field.Vec3, 0, len(records))
	mag := make([]field.Vec3, 0, len(records))

	for i, row := range records {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: row %d has %d", ErrMalformedData, i, len(row))
		}

		var vals [columns]float64
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("loader: row %d column %d: %w", i, j, err)
			}
			vals[j] = v
		}

		pos = append(pos, field.Vec3{vals[0], vals[1], vals[2]})
		mag = append(mag, field.Vec3{vals[3], vals[4], vals[5]})
	}

	return field.New(pos, mag), nil
}
