// Package domain models ATCF best-track ("b-deck") tropical cyclone data and
// the Accumulated Cyclone Energy (ACE) accumulation rules.
//
// # Data Source
//
// B-deck files record a cyclone's post-analysis position and intensity
// history, one fix per line, in the fixed-column ATCF format distributed by
// JTWC and NHC. Each line carries the basin code, storm number, a YYYYMMDDHH
// timestamp, latitude/longitude in tenths of a degree with hemisphere
// letters, maximum sustained wind in knots, and (on long-style lines) a
// two-letter storm-type code such as TS, TY, SD, or EX.
//
// # ACE Conventions
//
// ACE sums the square of the sustained wind speed (knots) over synoptic
// observations (00/06/12/18 UTC) where the system is at tropical-storm
// strength (>= 35 kt) and in a tropical stage. Accumulated values are kept as
// integer kt²; dividing by 10000 yields ACE in the conventional 10⁻⁴ kt²
// units. The wind value 999 is the "no report" sentinel and is treated as 0.
//
// Non-tropical stage codes excluded from accumulation:
//
//	SD  subtropical depression
//	SS  subtropical storm
//	LO  low / remnant low
//	MD  monsoon depression
//	EX  extratropical
//	DB  disturbance
//	ET  dissipating extratropical stage (appears in some special cases)
//
// # Season Years
//
// Southern-hemisphere cyclone seasons run July through June and are named for
// the year they end in, so fixes from SH decks dated July-December are
// credited to the following calendar year. See [SeasonYear].
//
// # Basins
//
// Fixes are classified into five accumulation basins (WPAC, EPAC, ATL, SHEM,
// NIO) from coordinates alone by [ClassifyBasin]. The 240-300°E band is an
// acknowledged ambiguous zone between the East Pacific and the Atlantic and
// is credited to EPAC.
package domain
