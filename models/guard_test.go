package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardService(t *testing.T, due, status string) Service {
	t.Helper()
	return Service{ID: 1, UserID: 7, DueAmount: dec(t, due), Status: status}
}

func TestCheckPaymentAccepts(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc := guardService(t, "100.00", StatusPartial)

	// 0 < amount <= remaining
	err := CheckPayment(svc, dec(t, "40.00"), nil, dec(t, "60.00"), now)
	assert.NoError(t, err)

	err = CheckPayment(svc, dec(t, "40.00"), nil, dec(t, "0.01"), now)
	assert.NoError(t, err)
}

func TestCheckPaymentFullyPaid(t *testing.T) {
	now := time.Now()
	svc := guardService(t, "100.00", StatusFull)

	err := CheckPayment(svc, dec(t, "100.00"), nil, dec(t, "1.00"), now)
	assert.ErrorIs(t, err, ErrServiceFullyPaid)
}

func TestCheckPaymentNotPositive(t *testing.T) {
	now := time.Now()
	svc := guardService(t, "100.00", StatusPending)

	assert.ErrorIs(t, CheckPayment(svc, decimal.Zero, nil, decimal.Zero, now), ErrAmountNotPositive)
	assert.ErrorIs(t, CheckPayment(svc, decimal.Zero, nil, dec(t, "-5"), now), ErrAmountNotPositive)
}

func TestCheckPaymentOverpay(t *testing.T) {
	now := time.Now()
	svc := guardService(t, "100.00", StatusPartial)

	err := CheckPayment(svc, dec(t, "40.00"), nil, dec(t, "60.01"), now)
	var overpay *OverpayError
	require.ErrorAs(t, err, &overpay)
	assert.True(t, overpay.Remaining.Equal(dec(t, "60.00")))
	assert.Contains(t, overpay.Error(), "60.00")
}

func TestCheckPaymentDuplicateWindow(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	svc := guardService(t, "100.00", StatusPartial)
	totalPaid := dec(t, "40.00")

	last := &Payment{AmountPaid: dec(t, "20.00"), PaymentDate: now.Add(-9 * time.Second)}
	err := CheckPayment(svc, totalPaid, last, dec(t, "20.00"), now)
	assert.ErrorIs(t, err, ErrDuplicatePayment)

	// same amount but outside the window
	last = &Payment{AmountPaid: dec(t, "20.00"), PaymentDate: now.Add(-11 * time.Second)}
	assert.NoError(t, CheckPayment(svc, totalPaid, last, dec(t, "20.00"), now))

	// inside the window but a different amount
	last = &Payment{AmountPaid: dec(t, "20.00"), PaymentDate: now.Add(-5 * time.Second)}
	assert.NoError(t, CheckPayment(svc, totalPaid, last, dec(t, "25.00"), now))
}

// Guard order: a full service answers "fully paid" even for garbage amounts,
// and an overpay on an open service is reported before duplicate detection.
func TestCheckPaymentOrder(t *testing.T) {
	now := time.Now()

	full := guardService(t, "100.00", StatusFull)
	assert.ErrorIs(t, CheckPayment(full, dec(t, "100.00"), nil, dec(t, "-1"), now), ErrServiceFullyPaid)

	open := guardService(t, "100.00", StatusPartial)
	last := &Payment{AmountPaid: dec(t, "70.00"), PaymentDate: now.Add(-1 * time.Second)}
	var overpay *OverpayError
	assert.ErrorAs(t, CheckPayment(open, dec(t, "40.00"), last, dec(t, "70.00"), now), &overpay)
}
