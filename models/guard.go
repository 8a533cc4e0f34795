// models/guard.go
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DuplicateWindow is how long after a payment an identical-amount retry for
// the same service and user is treated as an accidental resubmission.
const DuplicateWindow = 10 * time.Second

var (
	ErrServiceFullyPaid = errors.New("service already fully paid")
	ErrDuplicatePayment = errors.New("duplicate payment detected")
)

// OverpayError rejects a payment that exceeds the remaining due; it carries
// the remaining amount for the user-facing message.
type OverpayError struct {
	Remaining decimal.Decimal
}

func (e *OverpayError) Error() string {
	return fmt.Sprintf("payment amount cannot exceed remaining due (%s)", e.Remaining.StringFixed(2))
}

// CheckPayment runs the payment preconditions in order and returns the first
// violation. The caller has already verified ownership; svc, totalPaid and
// last must come from the same locked read as the eventual insert. last is
// the most recent payment for this service and user, nil when there is none.
func CheckPayment(svc Service, totalPaid decimal.Decimal, last *Payment, amount decimal.Decimal, now time.Time) error {
	if svc.Status == StatusFull {
		return ErrServiceFullyPaid
	}
	if amount.Sign() <= 0 {
		return ErrAmountNotPositive
	}
	remaining := Remaining(svc.DueAmount, totalPaid)
	if amount.GreaterThan(remaining) {
		return &OverpayError{Remaining: remaining}
	}
	if last != nil && last.AmountPaid.Equal(amount) && now.Sub(last.PaymentDate) < DuplicateWindow {
		return ErrDuplicatePayment
	}
	return nil
}
