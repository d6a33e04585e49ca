package domain

// FixRecord is one decoded best-track fix.
type FixRecord struct {
	Timestamp  string // raw YYYYMMDDHH field, identical lines are deduplicated on it
	Year       int
	Month      int
	Hour       int     // synoptic hour, 0-23
	SeasonYear int     // Year shifted forward for July-June southern seasons
	WindKnots  int     // sustained wind, 999 sentinel already normalized to 0
	Lat        float64 // degrees, negative south of the equator
	Lon        float64 // degrees east, 0-360 continuing through west longitudes
	StormType  string  // two-letter stage code, empty on short-style lines
}

// Eligible reports whether the fix counts toward ACE: a tropical stage
// observed at a standard synoptic hour. Wind strength is checked separately
// by Energy.
func (f FixRecord) Eligible() bool {
	return IsTropical(f.StormType) && IsSynopticHour(f.Hour)
}

// SeasonYear maps a fix date to the season year it is credited to.
// Southern-hemisphere seasons span July-June and carry the ending year.
func SeasonYear(basinCode string, year, month int) int {
	if basinCode == "SH" && month > 6 {
		return year + 1
	}
	return year
}
