package controllers

import (
	"testing"
	"time"

	"github.com/ursmaheshj/payment-portal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestBuildAnalyticsWorkbook(t *testing.T) {
	dueDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	rows := []models.AnalyticsRow{
		{
			User:      models.User{Username: "alice"},
			Category:  models.Category{Name: "Membership"},
			Service:   models.Service{Year: 2025, DueDate: dueDate, DueAmount: dec(t, "100.00")},
			TotalPaid: dec(t, "40.00"),
			Remaining: dec(t, "60.00"),
			Status:    models.StatusPartial,
		},
		{
			User:      models.User{Username: "bob"},
			Category:  models.Category{Name: "Events"},
			Service:   models.Service{Year: 2024, DueDate: dueDate, DueAmount: dec(t, "25.00")},
			TotalPaid: dec(t, "25.00"),
			Remaining: dec(t, "0"),
			Status:    models.StatusFull,
		},
	}
	summary := models.AnalyticsSummary{
		TotalCollected:       dec(t, "65.00"),
		TotalRemaining:       dec(t, "60.00"),
		TotalPendingServices: 1,
		UsersWithPending:     1,
		CategoryStats: []models.CategoryStat{
			{
				Category:         models.Category{Name: "Membership"},
				Collected:        dec(t, "40.00"),
				Remaining:        dec(t, "60.00"),
				PendingCount:     1,
				UsersWithPending: 1,
			},
			{
				Category:         models.Category{Name: "Events"},
				Collected:        dec(t, "25.00"),
				Remaining:        dec(t, "0"),
				PendingCount:     0,
				UsersWithPending: 0,
			},
		},
	}

	f, err := buildAnalyticsWorkbook(rows, summary)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	services, err := f.GetRows("Services")
	require.NoError(t, err)
	require.Len(t, services, 3)
	assert.Equal(t, []string{
		"user", "category", "year", "due_date", "due_amount",
		"total_paid", "remaining", "status",
	}, services[0])
	assert.Equal(t, []string{
		"alice", "Membership", "2025", "2025-03-31", "100.00", "40.00", "60.00", "partial",
	}, services[1])
	assert.Equal(t, []string{
		"bob", "Events", "2024", "2025-03-31", "25.00", "25.00", "0.00", "full",
	}, services[2])

	sums, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, sums, 4) // header, two categories, TOTAL
	assert.Equal(t, []string{"Membership", "40.00", "60.00", "1", "1"}, sums[1])
	assert.Equal(t, []string{"Events", "25.00", "0.00", "0", "0"}, sums[2])
	assert.Equal(t, []string{"TOTAL", "65.00", "60.00", "1", "1"}, sums[3])
}

func TestBuildAnalyticsWorkbookEmpty(t *testing.T) {
	summary := models.AnalyticsSummary{
		TotalCollected: decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	f, err := buildAnalyticsWorkbook(nil, summary)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sums, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, []string{"TOTAL", "0.00", "0.00", "0", "0"}, sums[1])
}
