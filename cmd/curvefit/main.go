// curvefit calibrates discount curves from the command line.
//
// Fits parametric (Nelson-Siegel, Svensson) and piecewise discount curves to
// bond quote files and prints the fitted curve.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/meenmo/curvefit/curve"
	"github.com/meenmo/curvefit/fit"
	"github.com/meenmo/curvefit/instruments/bonds"
	"github.com/meenmo/curvefit/marketdata"
	"github.com/meenmo/curvefit/rate"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	cfg   *Config
	log   = logrus.New()
	runID string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "curvefit",
	Short: "Fit discount curves to market quotes",
	Long: `curvefit calibrates parametric (Nelson-Siegel, Svensson) and piecewise
discount curves to bond quote files, and evaluates zero rates, discount
factors and forwards off the fitted curve.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.LogLevel = lvl
		}
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		log.SetLevel(level)
		if cfg.LogFormat == "json" {
			log.SetFormatter(&logrus.JSONFormatter{})
		}
		runID = uuid.NewString()
		log.WithFields(logrus.Fields{"run_id": runID, "version": version}).Debug("starting")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "optimizer seed override")
	rootCmd.PersistentFlags().Int("iterations", 0, "optimizer iteration budget override")
	rootCmd.PersistentFlags().Int("population", 0, "optimizer population override")
	rootCmd.PersistentFlags().Int("workers", 0, "concurrent pricing workers override")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(fitCmd)
	rootCmd.AddCommand(ratesCmd)
}

// engineFromFlags builds a fit engine from env config with flag overrides.
func engineFromFlags(cmd *cobra.Command) *fit.Engine {
	ec := fit.Config{
		MaxIterations: cfg.Iterations,
		Population:    cfg.Population,
		Seed:          cfg.Seed,
		Workers:       cfg.Workers,
		Logger:        log,
	}
	if cmd.Flags().Changed("seed") {
		ec.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("iterations") {
		ec.MaxIterations, _ = cmd.Flags().GetInt("iterations")
	}
	if cmd.Flags().Changed("population") {
		ec.Population, _ = cmd.Flags().GetInt("population")
	}
	if cmd.Flags().Changed("workers") {
		ec.Workers, _ = cmd.Flags().GetInt("workers")
	}
	return fit.NewEngine(ec)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("curvefit %s (commit %s)\n", version, commit)
	},
}

// --- Bootstrap Command ---

type curvePoint struct {
	Maturity float64 `json:"maturity"`
	Discount float64 `json:"discount"`
	Zero     float64 `json:"zero"`
	Par      float64 `json:"par"`
}

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap [quotes.json]",
	Short: "Bootstrap a piecewise discount curve from a quote file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quotes, err := marketdata.Load(args[0])
		if err != nil {
			return err
		}

		basis, _ := cmd.Flags().GetString("basis")
		var tmpl curve.Template
		switch basis {
		case "cubic":
			tmpl = curve.CubicTemplate
		case "linear":
			tmpl = curve.LinearTemplate
		default:
			return fmt.Errorf("unknown basis %q (want cubic or linear)", basis)
		}

		started := time.Now()
		fitted, err := engineFromFlags(cmd).Fit(nil, quotes, fit.Bootstrap{Template: tmpl}, nil)
		if err != nil {
			return err
		}
		p := fitted.(*curve.Piecewise)
		log.WithFields(logrus.Fields{
			"run_id":  runID,
			"points":  len(p.Times()),
			"elapsed": time.Since(started).String(),
		}).Info("bootstrap complete")

		points := make([]curvePoint, len(p.Times()))
		for i, tm := range p.Times() {
			par, err := bonds.ParCouponRate(p, tm, 2)
			if err != nil {
				return err
			}
			points[i] = curvePoint{
				Maturity: tm,
				Discount: p.DiscountFactors()[i],
				Zero:     p.Zero(tm).Value(),
				Par:      par,
			}
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return printJSON(points)
		}
		fmt.Printf("%10s  %12s  %10s  %10s  %10s\n", "MATURITY", "DISCOUNT", "ZERO", "FWD", "PAR")
		prev := 0.0
		for _, pt := range points {
			fwd := curve.Forward(p, prev, pt.Maturity)
			fmt.Printf("%9.4fy  %12.8f  %9.4f%%  %9.4f%%  %9.4f%%\n",
				pt.Maturity, pt.Discount, pt.Zero*100, fwd.Value()*100, pt.Par*100)
			prev = pt.Maturity
		}
		return nil
	},
}

func init() {
	bootstrapCmd.Flags().String("basis", "cubic", "spline basis: cubic or linear")
	bootstrapCmd.Flags().Bool("json", false, "emit the fitted curve as JSON")
}

// --- Fit Command ---

var fitCmd = &cobra.Command{
	Use:   "fit [quotes.json]",
	Short: "Fit a parametric curve to a quote file by loss minimization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quotes, err := marketdata.Load(args[0])
		if err != nil {
			return err
		}

		model, _ := cmd.Flags().GetString("model")
		var (
			seed   curve.TermStructure
			params []fit.Param
		)
		switch model {
		case "ns":
			seed = curve.DefaultNelsonSiegel()
			params = fit.NelsonSiegelParams()
		case "nss":
			seed = curve.DefaultNelsonSiegelSvensson()
			params = fit.NelsonSiegelSvenssonParams()
		default:
			return fmt.Errorf("unknown model %q (want ns or nss)", model)
		}

		started := time.Now()
		fitted, err := engineFromFlags(cmd).Fit(seed, quotes, fit.Loss{}, params)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"run_id":  runID,
			"model":   model,
			"quotes":  len(quotes),
			"elapsed": time.Since(started).String(),
		}).Info("fit complete")

		fmt.Println(fitted)
		fmt.Printf("\n%10s  %12s  %12s  %12s\n", "MATURITY", "MARKET", "MODEL", "RESIDUAL")
		for _, q := range quotes {
			pv := q.Instrument.PresentValue(fitted)
			fmt.Printf("%9.4fy  %12.6f  %12.6f  %+12.6f\n", q.Maturity(), q.Price, pv, pv-q.Price)
		}
		return nil
	},
}

func init() {
	fitCmd.Flags().String("model", "ns", "parametric family: ns or nss")
}

// --- Rates Command ---

var ratesCmd = &cobra.Command{
	Use:   "rates [value]",
	Short: "Convert a rate between compounding conventions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid rate value %q: %w", args[0], err)
		}
		fromStr, _ := cmd.Flags().GetString("from")
		toStr, _ := cmd.Flags().GetString("to")

		from, err := parseConvention(fromStr)
		if err != nil {
			return err
		}
		to, err := parseConvention(toStr)
		if err != nil {
			return err
		}

		r := rate.New(value, from)
		converted, err := r.Convert(to)
		if err != nil {
			return err
		}
		fmt.Printf("%v  ->  %v\n", r, converted)

		if horizon, _ := cmd.Flags().GetFloat64("horizon"); horizon > 0 {
			fmt.Printf("discount(%gy) = %.8f\n", horizon, rate.Discount(r, horizon))
			fmt.Printf("accumulation(%gy) = %.8f\n", horizon, rate.Accumulation(r, horizon))
		}
		return nil
	},
}

func init() {
	ratesCmd.Flags().String("from", "continuous", `source convention: "continuous" or "periodic:<m>"`)
	ratesCmd.Flags().String("to", "periodic:1", `target convention: "continuous" or "periodic:<m>"`)
	ratesCmd.Flags().Float64("horizon", 0, "also print factors at this horizon in years")
}

// parseConvention reads "continuous" or "periodic:<m>" (bare "<m>" works too).
func parseConvention(s string) (rate.Compounding, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "continuous" {
		return rate.Continuous, nil
	}
	s = strings.TrimPrefix(s, "periodic:")
	freq, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return rate.Compounding{}, fmt.Errorf("invalid convention %q: %w", s, err)
	}
	return rate.Periodic(freq)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
