package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/bdeck-ace/internal/domain"
)

func TestWriteStormsSingleBasin(t *testing.T) {
	storms := []domain.StormStats{
		{ATCFCode: "WP01", MaxWind: 65, ACE: domain.PerBasinACE{WPAC: 4225}},
		{ATCFCode: "WP09", MaxWind: 120, ACE: domain.PerBasinACE{WPAC: 302500}},
	}

	var buf strings.Builder
	require.NoError(t, WriteStorms(&buf, storms))

	want := "WP01:  0.4225   Max Wind:  65kt\n" +
		"WP09: 30.2500   Max Wind: 120kt\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteStormsMultiBasin(t *testing.T) {
	storms := []domain.StormStats{
		{ATCFCode: "CP01", MaxWind: 70, ACE: domain.PerBasinACE{WPAC: 3600, EPAC: 4900}},
	}

	var buf strings.Builder
	require.NoError(t, WriteStorms(&buf, storms))

	want := "CP01:  0.8500   Max Wind:  70kt\n" +
		"     Per basin ACE: WPAC: 0.3600  ECPAC: 0.4900\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteYearly(t *testing.T) {
	yearly := domain.YearlyACE{
		2023: {WPAC: 4225},
		2022: {WPAC: 3600, EPAC: 4900},
		2021: {}, // zero total, omitted
	}

	var buf strings.Builder
	require.NoError(t, WriteYearly(&buf, yearly))

	want := "--------Summary--------\n" +
		"2022: \n" +
		"WPAC: 0.3600\nECPAC: 0.4900\n" +
		"2023: \n" +
		"WPAC: 0.4225\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteYearlyEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteYearly(&buf, domain.YearlyACE{}))
	assert.Equal(t, "--------Summary--------\n", buf.String())
}

func TestBasinSummaryOrderAndLabels(t *testing.T) {
	a := domain.PerBasinACE{WPAC: 10000, EPAC: 20000, ATL: 30000, SHEM: 40000, NIO: 50000}
	got := basinSummary(a, "  ")
	assert.Equal(t, "WPAC: 1.0000  ECPAC: 2.0000  ATL: 3.0000  SHEM: 4.0000  NIO: 5.0000", got)
}

func TestWrite(t *testing.T) {
	storms := []domain.StormStats{
		{ATCFCode: "SH05", MaxWind: 45, ACE: domain.PerBasinACE{SHEM: 2025}},
	}
	yearly := domain.YearlyACE{2024: {SHEM: 2025}}

	var buf strings.Builder
	require.NoError(t, Write(&buf, storms, yearly))

	out := buf.String()
	assert.Contains(t, out, "SH05:  0.2025   Max Wind:  45kt\n")
	assert.Contains(t, out, "--------Summary--------\n2024: \nSHEM: 0.2025\n")
}
