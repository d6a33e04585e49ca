// Package bdeck extracts fix records from fixed-column ATCF best-track files.
package bdeck

import "fmt"

// field is one fixed-width column of a b-deck line, as a half-open byte range.
type field struct {
	name  string
	start int
	end   int
}

// The b-deck column layout. Basin and storm number are read once from the
// first line; the remaining fields repeat on every line.
var (
	fieldBasin       = field{"basin", 0, 2}
	fieldStormNumber = field{"storm number", 4, 6}
	fieldTimestamp   = field{"timestamp", 8, 18}   // YYYYMMDDHH
	fieldLatitude    = field{"latitude", 35, 39}   // tenths of a degree + N/S
	fieldLongitude   = field{"longitude", 41, 46}  // tenths of a degree + E/W
	fieldWind        = field{"wind", 48, 51}
	fieldStormType   = field{"storm type", 59, 61}
)

const (
	// longLineMin is the minimum trimmed length of a long-style line.
	// Shorter lines omit the trailing padding field, pushing the wind value
	// to the line end.
	longLineMin = 52

	// typedLineMin is the minimum trimmed length of a line carrying the
	// storm-type field.
	typedLineMin = 61

	// windSentinel is the ATCF "no report" wind value, normalized to 0.
	windSentinel = 999
)

// slice extracts the field's bytes from a line, failing when the line is too
// short to contain it.
func (f field) slice(line string) (string, error) {
	if len(line) < f.end {
		return "", fmt.Errorf("%s field out of bounds: line is %d bytes, need %d", f.name, len(line), f.end)
	}
	return line[f.start:f.end], nil
}
