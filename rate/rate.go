// Package rate models interest rates tagged with a compounding convention and
// the conversions between conventions that preserve discount factors.
package rate

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonPositiveFrequency is returned when a periodic convention is built
	// with a frequency that is not strictly positive.
	ErrNonPositiveFrequency = errors.New("compounding frequency must be strictly positive")
	// ErrRateBelowFloor is returned when a periodic rate sits at or below the
	// floor of its convention (1 + p/m <= 0), where no continuous equivalent exists.
	ErrRateBelowFloor = errors.New("rate below the floor of its compounding convention")
)

// defaultTolerance is the value tolerance used by ApproxEqual.
const defaultTolerance = 1e-10

// Compounding is a compounding convention: continuous, or periodic with a
// fixed number of compounding periods per year.
//
// The zero Compounding is the unspecified convention. A rate carrying it is
// treated as an annual effective rate (periodic, compounded once per year)
// wherever a factor or conversion is computed, but it stays distinct from an
// explicit Periodic(1) under exact equality.
type Compounding struct {
	freq       float64
	continuous bool
}

// Continuous is the continuously compounded convention.
var Continuous = Compounding{continuous: true}

// Periodic returns the convention compounding freq times per year.
func Periodic(freq float64) (Compounding, error) {
	if math.IsNaN(freq) || math.IsInf(freq, 0) || freq <= 0 {
		return Compounding{}, fmt.Errorf("Periodic: frequency %v: %w", freq, ErrNonPositiveFrequency)
	}
	return Compounding{freq: freq}, nil
}

// IsContinuous reports whether the convention compounds continuously.
func (c Compounding) IsContinuous() bool { return c.continuous }

// Frequency returns the number of compounding periods per year. It is 0 for
// Continuous and 1 for the unspecified convention.
func (c Compounding) Frequency() float64 {
	if c.continuous {
		return 0
	}
	if c.freq == 0 {
		return 1
	}
	return c.freq
}

func (c Compounding) String() string {
	if c.continuous {
		return "Continuous"
	}
	if c.freq == 0 {
		return "Periodic(1)"
	}
	return fmt.Sprintf("Periodic(%g)", c.freq)
}

// equivalent reports whether two conventions describe the same compounding,
// regardless of representation (unspecified vs explicit Periodic(1)).
func (c Compounding) equivalent(o Compounding) bool {
	if c.continuous || o.continuous {
		return c.continuous == o.continuous
	}
	return c.Frequency() == o.Frequency()
}

// Rate is a scalar rate tagged with its compounding convention.
//
// Rate is an immutable value type and is comparable: == requires both the
// value and the convention to match exactly. Use ApproxEqual for a
// tolerance-based comparison of the values under an identical convention.
// The zero Rate is a zero annual effective rate.
type Rate struct {
	value float64
	conv  Compounding
}

// New returns the rate value under the given convention.
func New(value float64, conv Compounding) Rate {
	return Rate{value: value, conv: conv}
}

// Annual wraps a bare annual effective rate, the convention a plain number is
// understood as when no convention is stated.
func Annual(value float64) Rate {
	return Rate{value: value, conv: Compounding{freq: 1}}
}

// Value returns the stated rate value.
func (r Rate) Value() float64 { return r.value }

// Compounding returns the rate's convention.
func (r Rate) Compounding() Compounding { return r.conv }

// ApproxEqual reports whether other has the identical convention and a value
// within the default tolerance.
func (r Rate) ApproxEqual(other Rate) bool {
	if r.conv != other.conv {
		return false
	}
	return math.Abs(r.value-other.value) <= defaultTolerance
}

func (r Rate) String() string {
	return fmt.Sprintf("%.6f %s", r.value, r.conv)
}

// Convert returns the equivalent rate under the target convention, preserving
// the discount factor at every horizon. Converting to an equivalent convention
// passes the value through unchanged.
func (r Rate) Convert(target Compounding) (Rate, error) {
	if r.conv.equivalent(target) {
		return Rate{value: r.value, conv: target}, nil
	}
	c, err := r.continuousValue()
	if err != nil {
		return Rate{}, err
	}
	if target.continuous {
		return Rate{value: c, conv: target}, nil
	}
	m := target.Frequency()
	return Rate{value: m * (math.Exp(c/m) - 1), conv: target}, nil
}

// continuousValue returns the continuously compounded equivalent of r's value.
func (r Rate) continuousValue() (float64, error) {
	if r.conv.continuous {
		return r.value, nil
	}
	m := r.conv.Frequency()
	if 1+r.value/m <= 0 {
		return 0, fmt.Errorf("Convert: %s: %w", r, ErrRateBelowFloor)
	}
	return m * math.Log(1+r.value/m), nil
}
