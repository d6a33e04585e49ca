// Package report renders per-storm and per-year ACE summaries as plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/couchcryptid/bdeck-ace/internal/domain"
)

// basinLabel returns the display label for a basin. The East Pacific has
// historically been printed as ECPAC in this report format.
func basinLabel(b domain.Basin) string {
	if b == domain.EPAC {
		return "ECPAC"
	}
	return b.String()
}

// basinSummary formats the positive basins of an accumulation in canonical
// order, joined by sep. Values are scaled to the 10⁻⁴ kt² ACE convention.
func basinSummary(a domain.PerBasinACE, sep string) string {
	parts := make([]string, 0, len(domain.Basins))
	for _, b := range domain.Basins {
		if v := a.Get(b); v > 0 {
			parts = append(parts, fmt.Sprintf("%s: %.4f", basinLabel(b), float64(v)/10000))
		}
	}
	return strings.Join(parts, sep)
}

// WriteStorms writes one summary line per storm in input order, plus a
// per-basin breakdown for storms that accumulated energy in more than one
// basin.
func WriteStorms(w io.Writer, storms []domain.StormStats) error {
	for _, s := range storms {
		_, err := fmt.Fprintf(w, "%s: %7.4f   Max Wind: %3dkt\n",
			s.ATCFCode, float64(s.ACE.Total())/10000, s.MaxWind)
		if err != nil {
			return err
		}
		if s.ACE.BasinCount() > 1 {
			if _, err := fmt.Fprintf(w, "     Per basin ACE: %s\n", basinSummary(s.ACE, "  ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteYearly writes the global per-year summary, listing only years with
// positive total energy, in ascending year order.
func WriteYearly(w io.Writer, yearly domain.YearlyACE) error {
	if _, err := fmt.Fprintln(w, "--------Summary--------"); err != nil {
		return err
	}
	for _, year := range yearly.Years() {
		a := yearly[year]
		if a.Total() <= 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "%d: \n%s\n", year, basinSummary(*a, "\n")); err != nil {
			return err
		}
	}
	return nil
}

// Write renders the complete report: storm lines followed by the yearly
// summary.
func Write(w io.Writer, storms []domain.StormStats, yearly domain.YearlyACE) error {
	if err := WriteStorms(w, storms); err != nil {
		return err
	}
	return WriteYearly(w, yearly)
}
