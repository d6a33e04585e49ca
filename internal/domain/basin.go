package domain

// Basin is an ocean region used for ACE accumulation.
type Basin int

const (
	WPAC Basin = iota // West Pacific
	EPAC              // East Pacific
	ATL               // Atlantic
	SHEM              // Southern Hemisphere
	NIO               // North Indian Ocean
)

// Basins lists every basin in canonical report order.
var Basins = []Basin{WPAC, EPAC, ATL, SHEM, NIO}

func (b Basin) String() string {
	switch b {
	case WPAC:
		return "WPAC"
	case EPAC:
		return "EPAC"
	case ATL:
		return "ATL"
	case SHEM:
		return "SHEM"
	case NIO:
		return "NIO"
	}
	return ""
}

// ClassifyBasin assigns a basin to a coordinate pair. The guards are ordered:
// each case assumes the previous ones failed, and the ranges overlap without
// that ordering. Longitude is expected in 0-360 degrees east.
func ClassifyBasin(lat, lon float64) Basin {
	// Southern hemisphere wins over all longitude logic.
	if lat < 0 {
		return SHEM
	}
	if lon < 100 {
		if lat < 40 {
			return NIO
		}
		if lon < 70 {
			return ATL
		}
		return WPAC
	}
	if lon <= 180 {
		return WPAC
	}
	if lon < 240 {
		return EPAC
	}
	if lon > 300 {
		return ATL
	}
	// 240-300°E is an ambiguous EPAC/Atlantic boundary zone; credited to EPAC.
	return EPAC
}

// PerBasinACE accumulates integer kt² energy per basin. Display divides by
// 10000 for the conventional 10⁻⁴ kt² ACE units.
type PerBasinACE struct {
	WPAC int64 `json:"wpac,omitempty"`
	EPAC int64 `json:"epac,omitempty"`
	ATL  int64 `json:"atl,omitempty"`
	SHEM int64 `json:"shem,omitempty"`
	NIO  int64 `json:"nio,omitempty"`
}

// Add credits energy to one basin.
func (a *PerBasinACE) Add(b Basin, energy int64) {
	switch b {
	case WPAC:
		a.WPAC += energy
	case EPAC:
		a.EPAC += energy
	case ATL:
		a.ATL += energy
	case SHEM:
		a.SHEM += energy
	case NIO:
		a.NIO += energy
	}
}

// Get returns the accumulated energy for one basin.
func (a PerBasinACE) Get(b Basin) int64 {
	switch b {
	case WPAC:
		return a.WPAC
	case EPAC:
		return a.EPAC
	case ATL:
		return a.ATL
	case SHEM:
		return a.SHEM
	case NIO:
		return a.NIO
	}
	return 0
}

// Total sums the energy across all basins.
func (a PerBasinACE) Total() int64 {
	return a.WPAC + a.EPAC + a.ATL + a.SHEM + a.NIO
}

// BasinCount counts the basins with positive accumulated energy.
func (a PerBasinACE) BasinCount() int {
	count := 0
	for _, b := range Basins {
		if a.Get(b) > 0 {
			count++
		}
	}
	return count
}
