package calculators

import (
	"math"
	"math/bits"
)

// truncInt truncates f toward zero, saturating at the int64 range.
func truncInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(math.Trunc(f))
	}
}

// mulSaturating multiplies two non-negative values, saturating at math.MaxInt64.
func mulSaturating(a, b int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(lo)
}

// doubleN doubles a non-negative value n times, saturating at math.MaxInt64.
func doubleN(v int64, n int) int64 {
	if v == 0 {
		return 0
	}
	if n >= 63 || v > math.MaxInt64>>n {
		return math.MaxInt64
	}
	return v << n
}

func percentOf(v float64, pct float64) float64 {
	return v * pct / 100
}
