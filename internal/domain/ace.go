package domain

import (
	"sort"
	"time"
)

// MinACEWind is the tropical-storm wind threshold in knots. Fixes below it
// contribute no energy.
const MinACEWind = 35

// nonTropicalTypes lists the stage codes excluded from ACE accumulation.
// ET appears in some special cases for dissipating extratropical stages.
var nonTropicalTypes = map[string]struct{}{
	"SD": {}, "SS": {}, "LO": {}, "MD": {}, "EX": {}, "DB": {}, "ET": {},
}

// IsTropical reports whether a stage code counts as tropical. Short-style
// lines carry no stage code; the empty string counts as tropical.
func IsTropical(stormType string) bool {
	_, excluded := nonTropicalTypes[stormType]
	return !excluded
}

// IsSynopticHour reports whether the hour is one of the four standard
// synoptic observation times (00/06/12/18 UTC).
func IsSynopticHour(hour int) bool {
	return hour%6 == 0
}

// Energy returns the ACE contribution of a single fix in integer kt²,
// or 0 below the tropical-storm threshold.
func Energy(windKnots int) int64 {
	if windKnots < MinACEWind {
		return 0
	}
	return int64(windKnots) * int64(windKnots)
}

// StormStats summarizes one storm after its fixes are exhausted.
type StormStats struct {
	ATCFCode    string      `json:"atcf_code"`
	MaxWind     int         `json:"max_wind"`
	ACE         PerBasinACE `json:"ace"`
	ProcessedAt time.Time   `json:"processed_at"`
}

// YearlyACE maps season years to accumulated per-basin energy. Entries are
// created lazily on first accumulation.
type YearlyACE map[int]*PerBasinACE

// Add credits energy to a year's basin total.
func (y YearlyACE) Add(year int, b Basin, energy int64) {
	a, ok := y[year]
	if !ok {
		a = &PerBasinACE{}
		y[year] = a
	}
	a.Add(b, energy)
}

// Years returns the recorded years in ascending order.
func (y YearlyACE) Years() []int {
	years := make([]int, 0, len(y))
	for year := range y {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// AggregateFixes folds a storm's deduplicated fix sequence into StormStats
// and credits each eligible contribution to the shared yearly map.
//
// MaxWind is tracked across every fix, eligible or not; only the energy path
// applies the stage and synoptic-hour filters.
func AggregateFixes(atcfCode string, fixes []FixRecord, yearly YearlyACE) StormStats {
	stats := StormStats{ATCFCode: atcfCode}
	for _, fix := range fixes {
		if fix.WindKnots > stats.MaxWind {
			stats.MaxWind = fix.WindKnots
		}
		if !fix.Eligible() {
			continue
		}
		energy := Energy(fix.WindKnots)
		if energy == 0 {
			continue
		}
		basin := ClassifyBasin(fix.Lat, fix.Lon)
		stats.ACE.Add(basin, energy)
		yearly.Add(fix.SeasonYear, basin, energy)
	}
	stats.ProcessedAt = clock.Now()
	return stats
}
