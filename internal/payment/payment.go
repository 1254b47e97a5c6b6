// Package payment computes future payment dates that never fall on a weekend.
package payment

import "time"

// DefaultOffsetDays is the number of calendar days between a proposed date
// and its payment date.
const DefaultOffsetDays = 30

// Adjustment records how a payment date was moved off a weekend.
type Adjustment int

const (
	AdjustmentNone     Adjustment = iota // already a weekday
	AdjustmentSaturday                   // Saturday, rolled +2 days
	AdjustmentSunday                     // Sunday, rolled +1 day
)

// String returns the string representation of the adjustment.
func (a Adjustment) String() string {
	switch a {
	case AdjustmentSaturday:
		return "saturday"
	case AdjustmentSunday:
		return "sunday"
	default:
		return "none"
	}
}

// Calculator computes payment dates a fixed number of days in the future.
type Calculator struct {
	offsetDays int
}

// NewCalculator creates a Calculator with the given offset in days.
// Non-positive offsets fall back to DefaultOffsetDays.
func NewCalculator(offsetDays int) Calculator {
	if offsetDays < 1 {
		offsetDays = DefaultOffsetDays
	}
	return Calculator{offsetDays: offsetDays}
}

// OffsetDays returns the configured offset.
func (c Calculator) OffsetDays() int {
	if c.offsetDays < 1 {
		return DefaultOffsetDays
	}
	return c.offsetDays
}

// FuturePaymentDate returns the proposed date moved forward by the offset,
// rolled to the following Monday when it lands on a weekend.
func (c Calculator) FuturePaymentDate(proposed time.Time) (time.Time, Adjustment) {
	due := dateOf(proposed).AddDate(0, 0, c.OffsetDays())
	return NextWeekday(due)
}

// CalculateFuturePaymentDate returns the date 30 days after proposed, or the
// Monday after it if that date is a Saturday or Sunday.
func CalculateFuturePaymentDate(proposed time.Time) time.Time {
	due, _ := NewCalculator(DefaultOffsetDays).FuturePaymentDate(proposed)
	return due
}

// NextWeekday returns t unchanged if it is a weekday, otherwise the Monday
// that follows it.
func NextWeekday(t time.Time) (time.Time, Adjustment) {
	switch t.Weekday() {
	case time.Saturday:
		return t.AddDate(0, 0, 2), AdjustmentSaturday
	case time.Sunday:
		return t.AddDate(0, 0, 1), AdjustmentSunday
	default:
		return t, AdjustmentNone
	}
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// dateOf drops the time of day, keeping the location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
