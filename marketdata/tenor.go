// Package marketdata turns market quote feeds into calibration inputs: tenor
// and date handling, JSON quote files, and synthetic quote generation off a
// reference curve.
package marketdata

import (
	"fmt"
	"strconv"
	"strings"
)

// TenorToYears converts tenor strings like "1W", "3M", "10Y" to year
// fractions. A bare number parses as years.
func TenorToYears(tenor string) (float64, error) {
	s := strings.TrimSpace(strings.ToUpper(tenor))
	if s == "" {
		return 0, fmt.Errorf("TenorToYears: empty tenor")
	}

	unit := s[len(s)-1]
	if unit >= '0' && unit <= '9' {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("TenorToYears: %q: %w", tenor, err)
		}
		return v, nil
	}

	v, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0, fmt.Errorf("TenorToYears: %q: %w", tenor, err)
	}
	switch unit {
	case 'D':
		return float64(v) / 365.0, nil
	case 'W':
		return float64(v) * 7.0 / 365.0, nil
	case 'M':
		return float64(v) / 12.0, nil
	case 'Y':
		return float64(v), nil
	default:
		return 0, fmt.Errorf("TenorToYears: %q: unknown unit %q", tenor, string(unit))
	}
}
