package marketdata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meenmo/curvefit/fit"
	"github.com/meenmo/curvefit/instruments/bonds"
)

// Instrument kinds understood by quote files.
const (
	KindZero   = "zero"
	KindCoupon = "coupon"
)

const dateLayout = "2006-01-02"

// defaultFace is assumed when a record omits the face amount.
var defaultFace = decimal.NewFromInt(100)

// File is a market quote feed: an as-of date, a day count convention and the
// quoted instruments. Prices and coupons are decimals so feed values survive
// the trip through JSON unrounded.
type File struct {
	AsOf       string   `json:"asof,omitempty"`
	Convention string   `json:"convention,omitempty"`
	Quotes     []Record `json:"quotes"`
}

// Record is one quoted instrument. Maturity comes from either a tenor string
// ("3M", "10Y") or an explicit maturity date resolved against the file's
// as-of date.
type Record struct {
	Tenor     string          `json:"tenor,omitempty"`
	Maturity  string          `json:"maturity,omitempty"`
	Kind      string          `json:"kind"`
	Coupon    decimal.Decimal `json:"coupon,omitempty"`
	Frequency float64         `json:"frequency,omitempty"`
	Face      decimal.Decimal `json:"face,omitempty"`
	Price     decimal.Decimal `json:"price"`
}

// Load reads a quote file and returns its quotes sorted by maturity, ready
// for a bootstrap fit.
func Load(path string) ([]fit.Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	quotes, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load: %s: %w", path, err)
	}
	return quotes, nil
}

// Parse decodes a quote file and returns its quotes sorted by maturity.
func Parse(data []byte) ([]fit.Quote, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if len(f.Quotes) == 0 {
		return nil, fmt.Errorf("Parse: no quotes in file")
	}

	quotes := make([]fit.Quote, len(f.Quotes))
	for i, rec := range f.Quotes {
		q, err := rec.toQuote(f.AsOf, f.Convention)
		if err != nil {
			return nil, fmt.Errorf("Parse: quote %d: %w", i, err)
		}
		quotes[i] = q
	}
	SortByMaturity(quotes)
	return quotes, nil
}

// SortByMaturity orders quotes by increasing maturity in place.
func SortByMaturity(quotes []fit.Quote) {
	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].Maturity() < quotes[j].Maturity()
	})
}

func (r Record) toQuote(asof, convention string) (fit.Quote, error) {
	maturity, err := r.maturityYears(asof, convention)
	if err != nil {
		return fit.Quote{}, err
	}

	face := r.Face
	if face.IsZero() {
		face = defaultFace
	}

	var inst fit.Priceable
	switch r.Kind {
	case KindZero, "":
		z, err := bonds.NewZeroCoupon(maturity, face.InexactFloat64())
		if err != nil {
			return fit.Quote{}, err
		}
		inst = z
	case KindCoupon:
		freq := r.Frequency
		if freq == 0 {
			freq = 2
		}
		b, err := bonds.NewFixedCoupon(maturity, face.InexactFloat64(), r.Coupon.InexactFloat64(), freq)
		if err != nil {
			return fit.Quote{}, err
		}
		inst = b
	default:
		return fit.Quote{}, fmt.Errorf("unknown kind %q", r.Kind)
	}

	return fit.Quote{Instrument: inst, Price: r.Price.InexactFloat64()}, nil
}

func (r Record) maturityYears(asof, convention string) (float64, error) {
	if r.Maturity != "" {
		if asof == "" {
			return 0, fmt.Errorf("maturity date %q needs an asof date", r.Maturity)
		}
		start, err := time.Parse(dateLayout, asof)
		if err != nil {
			return 0, fmt.Errorf("asof %q: %w", asof, err)
		}
		end, err := time.Parse(dateLayout, r.Maturity)
		if err != nil {
			return 0, fmt.Errorf("maturity %q: %w", r.Maturity, err)
		}
		return YearFraction(start, end, convention)
	}
	if r.Tenor != "" {
		return TenorToYears(r.Tenor)
	}
	return 0, fmt.Errorf("either tenor or maturity is required")
}
