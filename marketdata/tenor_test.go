package marketdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenorToYears(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tenor string
		want  float64
	}{
		{"1W", 7.0 / 365.0},
		{"3M", 0.25},
		{"10Y", 10},
		{"90D", 90.0 / 365.0},
		{"5y", 5},
		{" 2Y ", 2},
		{"2.5", 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.tenor, func(t *testing.T) {
			got, err := TenorToYears(tc.tenor)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}

	for _, bad := range []string{"", "M", "XY", "1Q"} {
		_, err := TenorToYears(bad)
		require.Error(t, err, "tenor %q", bad)
	}
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	date := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	t.Run("ACT/360", func(t *testing.T) {
		got, err := YearFraction(date("2026-01-01"), date("2026-07-01"), ACT360)
		require.NoError(t, err)
		assert.InDelta(t, 181.0/360.0, got, 1e-12)
	})

	t.Run("ACT/365F", func(t *testing.T) {
		got, err := YearFraction(date("2026-08-21"), date("2027-08-21"), ACT365F)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-12)
	})

	t.Run("empty convention defaults to ACT/365F", func(t *testing.T) {
		got, err := YearFraction(date("2026-08-21"), date("2027-08-21"), "")
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-12)
	})

	t.Run("30/360 caps month ends", func(t *testing.T) {
		got, err := YearFraction(date("2026-01-31"), date("2026-07-31"), Thirty360)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, got, 1e-12)
	})

	t.Run("unknown convention", func(t *testing.T) {
		_, err := YearFraction(date("2026-01-01"), date("2026-07-01"), "ACT/ACT")
		require.Error(t, err)
	})
}
