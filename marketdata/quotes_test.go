package marketdata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/curvefit/curve"
	"github.com/meenmo/curvefit/fit"
	"github.com/meenmo/curvefit/instruments/bonds"
)

func TestLoadQuoteFile(t *testing.T) {
	t.Parallel()

	quotes, err := Load(filepath.Join("testdata", "quotes.json"))
	require.NoError(t, err)
	require.Len(t, quotes, 4)

	var maturities []float64
	for _, q := range quotes {
		maturities = append(maturities, q.Maturity())
	}
	assert.InDeltaSlice(t, []float64{0.5, 1, 5, 10}, maturities, 1e-9)

	short, ok := quotes[0].Instrument.(bonds.ZeroCoupon)
	require.True(t, ok, "shortest instrument is %T", quotes[0].Instrument)
	assert.InDelta(t, 100, short.Amount(), 1e-12)
	assert.InDelta(t, 98.52, quotes[0].Price, 1e-12)

	five, ok := quotes[2].Instrument.(bonds.FixedCoupon)
	require.True(t, ok, "5y instrument is %T", quotes[2].Instrument)
	assert.InDelta(t, 0.04, five.CouponRate(), 1e-12)
	assert.Equal(t, 2.0, five.Frequency())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
	}{
		{"bad json", `{`},
		{"no quotes", `{"quotes": []}`},
		{"unknown kind", `{"quotes": [{"tenor": "1Y", "kind": "swap", "price": "100"}]}`},
		{"no tenor or maturity", `{"quotes": [{"kind": "zero", "price": "100"}]}`},
		{"maturity date without asof", `{"quotes": [{"maturity": "2027-01-01", "kind": "zero", "price": "100"}]}`},
		{"bad maturity date", `{"asof": "2026-08-21", "quotes": [{"maturity": "soon", "kind": "zero", "price": "100"}]}`},
		{"bad tenor", `{"quotes": [{"tenor": "1Q", "kind": "zero", "price": "100"}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
}

func TestLoadedQuotesBootstrap(t *testing.T) {
	t.Parallel()

	quotes, err := Load(filepath.Join("testdata", "quotes.json"))
	require.NoError(t, err)

	got, err := fit.Fit(nil, quotes, fit.Bootstrap{Template: curve.LinearTemplate}, nil)
	require.NoError(t, err)
	for _, q := range quotes {
		assert.InDelta(t, q.Price, q.Instrument.PresentValue(got), 1e-6, "t=%v", q.Maturity())
	}
}
