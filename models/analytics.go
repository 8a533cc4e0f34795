// models/analytics.go
package models

import "github.com/shopspring/decimal"

// DashboardRow is one due on a user's dashboard, with derived totals.
type DashboardRow struct {
	Service   Service
	Category  Category
	TotalPaid decimal.Decimal
	Remaining decimal.Decimal
	Status    string
	Payments  []Payment
}

// BuildDashboard derives per-service totals for the dashboard view.
// Each service must carry its preloaded Category.
func BuildDashboard(services []Service, paymentsByService map[uint][]Payment) []DashboardRow {
	rows := make([]DashboardRow, 0, len(services))
	for _, svc := range services {
		pays := paymentsByService[svc.ID]
		totalPaid := TotalPaid(pays)
		rows = append(rows, DashboardRow{
			Service:   svc,
			Category:  svc.Category,
			TotalPaid: totalPaid,
			Remaining: Remaining(svc.DueAmount, totalPaid),
			Status:    ServiceStatus(svc.DueAmount, totalPaid),
			Payments:  pays,
		})
	}
	return rows
}

// AnalyticsRow is one service in the admin analytics table.
type AnalyticsRow struct {
	User      User
	Category  Category
	Service   Service
	TotalPaid decimal.Decimal
	Remaining decimal.Decimal
	Status    string
}

// CategoryStat aggregates one category across all users.
type CategoryStat struct {
	Category         Category
	Collected        decimal.Decimal
	Remaining        decimal.Decimal
	PendingCount     int // services with remaining > 0
	UsersWithPending int // distinct users with remaining > 0 in this category
}

// AnalyticsSummary is the global rollup over every category.
type AnalyticsSummary struct {
	TotalCollected       decimal.Decimal
	TotalRemaining       decimal.Decimal
	TotalPendingServices int
	UsersWithPending     int // distinct across all categories
	CategoryStats        []CategoryStat
}

// BuildAnalytics walks every category and its services, deriving per-service
// paid/remaining/status and rolling them up per category and globally. The
// global totals are by construction the sums of the per-category totals.
// Services must carry preloaded User associations.
func BuildAnalytics(categories []Category, services []Service, paymentsByService map[uint][]Payment) ([]AnalyticsRow, AnalyticsSummary) {
	byCategory := make(map[uint][]Service, len(categories))
	for _, svc := range services {
		byCategory[svc.CategoryID] = append(byCategory[svc.CategoryID], svc)
	}

	var rows []AnalyticsRow
	summary := AnalyticsSummary{
		TotalCollected: decimal.Zero,
		TotalRemaining: decimal.Zero,
		CategoryStats:  make([]CategoryStat, 0, len(categories)),
	}
	globalPending := map[uint]struct{}{}

	for _, cat := range categories {
		stat := CategoryStat{
			Category:  cat,
			Collected: decimal.Zero,
			Remaining: decimal.Zero,
		}
		catPending := map[uint]struct{}{}

		for _, svc := range byCategory[cat.ID] {
			totalPaid := TotalPaid(paymentsByService[svc.ID])
			remaining := Remaining(svc.DueAmount, totalPaid)

			stat.Collected = stat.Collected.Add(totalPaid)
			stat.Remaining = stat.Remaining.Add(remaining)
			if remaining.Sign() > 0 {
				stat.PendingCount++
				catPending[svc.UserID] = struct{}{}
				globalPending[svc.UserID] = struct{}{}
			}

			rows = append(rows, AnalyticsRow{
				User:      svc.User,
				Category:  cat,
				Service:   svc,
				TotalPaid: totalPaid,
				Remaining: remaining,
				Status:    ServiceStatus(svc.DueAmount, totalPaid),
			})
		}

		stat.UsersWithPending = len(catPending)
		summary.CategoryStats = append(summary.CategoryStats, stat)
		summary.TotalCollected = summary.TotalCollected.Add(stat.Collected)
		summary.TotalRemaining = summary.TotalRemaining.Add(stat.Remaining)
		summary.TotalPendingServices += stat.PendingCount
	}

	summary.UsersWithPending = len(globalPending)
	return rows, summary
}
