package bdeck

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/bdeck-ace/internal/domain"
)

// Deck is the decoded contents of one b-deck advisory file: the storm's ATCF
// identity plus its deduplicated, time-ordered fix sequence.
type Deck struct {
	ATCFCode          string
	BasinCode         string
	Fixes             []domain.FixRecord
	DuplicatesDropped int
}

// ExtractFile reads and decodes one b-deck file from disk.
func ExtractFile(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read b-deck file: %w", err)
	}
	return Extract(data)
}

// Extract decodes the raw contents of one b-deck advisory file. Consecutive
// lines sharing a raw timestamp are collapsed to the first; a dropped
// duplicate contributes nothing, not even to max-wind tracking downstream.
//
// Malformed numeric fields are fatal except the wind field, which degrades
// to 0.
func Extract(data []byte) (Deck, error) {
	text := string(data)
	if len(text) < fieldStormNumber.end {
		return Deck{}, errors.New("file too short for ATCF header")
	}

	deck := Deck{
		BasinCode: text[fieldBasin.start:fieldBasin.end],
	}
	deck.ATCFCode = deck.BasinCode + text[fieldStormNumber.start:fieldStormNumber.end]

	scanner := bufio.NewScanner(strings.NewReader(text))
	lastTime := ""
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		ts, err := fieldTimestamp.slice(line)
		if err != nil {
			return Deck{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if ts == lastTime {
			deck.DuplicatesDropped++
			continue
		}
		lastTime = ts

		fix, err := decodeFix(line, ts, deck.BasinCode)
		if err != nil {
			return Deck{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
		deck.Fixes = append(deck.Fixes, fix)
	}
	if err := scanner.Err(); err != nil {
		return Deck{}, fmt.Errorf("scan b-deck lines: %w", err)
	}
	return deck, nil
}

// decodeFix decodes the remaining fields of one non-duplicate line.
func decodeFix(line, ts, basinCode string) (domain.FixRecord, error) {
	year, err := atoiField("year", ts[:4])
	if err != nil {
		return domain.FixRecord{}, err
	}
	month, err := atoiField("month", ts[4:6])
	if err != nil {
		return domain.FixRecord{}, err
	}
	hour, err := atoiField("hour", ts[8:10])
	if err != nil {
		return domain.FixRecord{}, err
	}

	lat, err := decodeLatitude(line)
	if err != nil {
		return domain.FixRecord{}, err
	}
	lon, err := decodeLongitude(line)
	if err != nil {
		return domain.FixRecord{}, err
	}

	var stormType string
	if len(line) >= typedLineMin {
		stormType = line[fieldStormType.start:fieldStormType.end]
	}

	return domain.FixRecord{
		Timestamp:  ts,
		Year:       year,
		Month:      month,
		Hour:       hour,
		SeasonYear: domain.SeasonYear(basinCode, year, month),
		WindKnots:  decodeWind(line),
		Lat:        lat,
		Lon:        lon,
		StormType:  stormType,
	}, nil
}

// decodeWind reads the wind field, degrading to 0 on parse failure and
// normalizing the 999 sentinel. Short-style lines omit the trailing padding
// field, leaving the wind flush with the line end in the last three
// characters.
func decodeWind(line string) int {
	var raw string
	if len(line) < longLineMin {
		raw = line[len(line)-3:]
	} else {
		raw = line[fieldWind.start:fieldWind.end]
	}
	raw = strings.TrimPrefix(raw, " ")
	wind, err := strconv.Atoi(raw)
	if err != nil || wind == windSentinel {
		return 0
	}
	return wind
}

// decodeLatitude parses the 4-character latitude field: three digits of
// tenths of a degree plus an N/S hemisphere letter.
func decodeLatitude(line string) (float64, error) {
	s, err := fieldLatitude.slice(line)
	if err != nil {
		return 0, err
	}
	v, err := atoiField("latitude", strings.TrimSpace(s[:3]))
	if err != nil {
		return 0, err
	}
	lat := float64(v) / 10
	if s[3] == 'S' {
		lat = -lat
	}
	return lat, nil
}

// decodeLongitude parses the 5-character longitude field: four digits of
// tenths of a degree plus an E/W hemisphere letter. West longitudes are
// folded to 360-lon so values continue east through 0-360.
func decodeLongitude(line string) (float64, error) {
	s, err := fieldLongitude.slice(line)
	if err != nil {
		return 0, err
	}
	v, err := atoiField("longitude", strings.TrimSpace(s[:4]))
	if err != nil {
		return 0, err
	}
	lon := float64(v) / 10
	if s[4] == 'W' {
		lon = 360 - lon
	}
	return lon, nil
}

func atoiField(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse %s field %q: %w", name, s, err)
	}
	return v, nil
}
