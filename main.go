package main

import (
	"fmt"

	"github.com/meenmo/curvefit/curve"
	"github.com/meenmo/curvefit/fit"
	"github.com/meenmo/curvefit/instruments/bonds"
	"github.com/meenmo/curvefit/marketdata"
	"github.com/meenmo/curvefit/rate"
)

func main() {
	ref, err := curve.NewNelsonSiegel(2.0, 0.05, -0.02, 0.01)
	if err != nil {
		panic(err)
	}

	gen := marketdata.Synthetic{Curve: ref}
	quotes, err := gen.ZeroCouponQuotes([]float64{0.5, 1, 2, 3, 5, 7, 10, 15, 20})
	if err != nil {
		panic(err)
	}

	fitted, err := fit.Fit(curve.DefaultNelsonSiegel(), quotes, fit.Loss{}, fit.NelsonSiegelParams())
	if err != nil {
		panic(err)
	}
	fmt.Printf("Fitted: %v\n", fitted)

	boot, err := fit.Fit(nil, quotes, fit.Bootstrap{}, nil)
	if err != nil {
		panic(err)
	}
	pw := boot.(*curve.Piecewise)

	semi, err := rate.Periodic(2)
	if err != nil {
		panic(err)
	}
	fmt.Printf("\n%8s  %12s  %10s  %10s\n", "TENOR", "DISCOUNT", "ZERO", "PAR")
	for _, t := range pw.Times() {
		z, err := pw.Zero(t).Convert(semi)
		if err != nil {
			panic(err)
		}
		par, err := bonds.ParCouponRate(pw, t, 2)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%7.2fy  %12.8f  %9.4f%%  %9.4f%%\n", t, pw.Discount(t), z.Value()*100, par*100)
	}

	fwd := curve.Forward(pw, 5, 10)
	fmt.Printf("\n5y5y forward: %.4f%%\n", fwd.Value()*100)
}
