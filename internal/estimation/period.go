package estimation

import (
	"fmt"
	"math"
)

const (
	daysPerWeek  = 7
	daysPerMonth = 30
)

// NormalizeDays converts the requested time window to a whole number of days.
// The fractional part is truncated and horizons beyond math.MaxInt32 days are
// capped there; the calculators saturate long before that.
func NormalizeDays(periodType PeriodType, timeToElapse float64) (int, error) {
	var factor float64
	switch periodType {
	case PeriodDays:
		factor = 1
	case PeriodWeeks:
		factor = daysPerWeek
	case PeriodMonths:
		factor = daysPerMonth
	default:
		return 0, fmt.Errorf("unknown period type %q", periodType)
	}

	if timeToElapse < 0 || math.IsNaN(timeToElapse) {
		return 0, fmt.Errorf("time to elapse must be non-negative, got %v", timeToElapse)
	}

	days := math.Trunc(timeToElapse * factor)
	if days > math.MaxInt32 {
		return math.MaxInt32, nil
	}
	return int(days), nil
}
