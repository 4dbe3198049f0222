package booking

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Refund percentage by days until check-in:
//
//	>= 7 days  100%
//	3–6 days    50%
//	1–2 days    25%
//	<= 0 days    0%
//
// The table is the same no matter who cancels.
func RefundPercent(daysUntilCheckIn int) int64 {
	switch {
	case daysUntilCheckIn >= 7:
		return 100
	case daysUntilCheckIn >= 3:
		return 50
	case daysUntilCheckIn >= 1:
		return 25
	default:
		return 0
	}
}

// DaysUntilCheckIn is ceil((checkIn - now) / 24h). A check-in already in
// the past yields a non-positive value.
func DaysUntilCheckIn(checkIn, now time.Time) int {
	return int(math.Ceil(checkIn.Sub(now).Hours() / 24))
}

// ComputeRefund maps (total, check-in date, cancellation instant) to a
// refund amount. It is total: malformed input degrades to zero rather than
// failing, so a refund figure is always displayable. The result is rounded
// to cents and clamped to [0, total].
func ComputeRefund(total decimal.Decimal, checkIn, now time.Time) decimal.Decimal {
	if total.Sign() <= 0 {
		return decimal.Zero
	}

	pct := RefundPercent(DaysUntilCheckIn(checkIn, now))
	refund := total.
		Mul(decimal.NewFromInt(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2)

	if refund.Sign() < 0 {
		return decimal.Zero
	}
	if refund.GreaterThan(total) {
		return total
	}
	return refund
}
