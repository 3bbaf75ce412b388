package marketdata

import (
	"fmt"
	"time"
)

// Day count conventions accepted by YearFraction.
const (
	ACT360     = "ACT/360"
	ACT365F    = "ACT/365F"
	Thirty360  = "30/360"
	ThirtyE360 = "30E/360"
)

// YearFraction computes the year fraction between two dates under the given
// day count convention. An empty convention defaults to ACT/365F.
func YearFraction(start, end time.Time, convention string) (float64, error) {
	switch convention {
	case ACT360:
		return days(start, end) / 360.0, nil
	case ACT365F, "":
		return days(start, end) / 365.0, nil
	case Thirty360, ThirtyE360:
		// 30E/360 ISDA (Eurobond basis): day-of-month capped at 30.
		d1 := start.Day()
		if d1 > 30 {
			d1 = 30
		}
		d2 := end.Day()
		if d2 > 30 {
			d2 = 30
		}
		y1, m1 := start.Year(), int(start.Month())
		y2, m2 := end.Year(), int(end.Month())
		return float64(360*(y2-y1)+30*(m2-m1)+(d2-d1)) / 360.0, nil
	default:
		return 0, fmt.Errorf("YearFraction: unknown convention %q", convention)
	}
}

func days(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}
