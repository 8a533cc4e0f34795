// models/status.go
//
// The single authoritative derivation of paid totals and statuses. Both the
// read path (dashboards) and the write path (the persisted Service.Status)
// go through these functions, so the cached column can never drift from what
// a fresh computation would produce.
package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusFull    = "full"
)

const MinYear = 1900

var (
	ErrAmountInvalid     = errors.New("invalid payment amount")
	ErrAmountNotPositive = errors.New("payment amount must be positive")
	ErrYearOutOfRange    = errors.New("year must be between 1900 and next year")
)

// TotalPaid sums AmountPaid over the given payments; zero when there are none.
func TotalPaid(payments []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.AmountPaid)
	}
	return total
}

// Remaining is dueAmount minus totalPaid, floored at zero.
func Remaining(dueAmount, totalPaid decimal.Decimal) decimal.Decimal {
	rem := dueAmount.Sub(totalPaid)
	if rem.Sign() < 0 {
		return decimal.Zero
	}
	return rem
}

// ServiceStatus derives the cumulative status of a due.
func ServiceStatus(dueAmount, totalPaid decimal.Decimal) string {
	switch {
	case Remaining(dueAmount, totalPaid).IsZero():
		return StatusFull
	case totalPaid.Sign() > 0:
		return StatusPartial
	default:
		return StatusPending
	}
}

// PaymentStatus is the per-payment rule: full only when this one payment
// covers the whole due amount, regardless of what was paid before.
func PaymentStatus(amount, dueAmount decimal.Decimal) string {
	if amount.GreaterThanOrEqual(dueAmount) {
		return StatusFull
	}
	return StatusPartial
}

// ValidateYear checks the [1900, now.Year()+1] window. The reference time is
// passed in so callers and tests control the clock.
func ValidateYear(year int, now time.Time) error {
	if year < MinYear || year > now.Year()+1 {
		return ErrYearOutOfRange
	}
	return nil
}

// ParseAmount parses a form amount into a strictly positive decimal.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrAmountInvalid
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrAmountInvalid
	}
	if d.Sign() <= 0 {
		return decimal.Zero, ErrAmountNotPositive
	}
	return d, nil
}
