// controllers/admin_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ursmaheshj/payment-portal/config"
	"github.com/ursmaheshj/payment-portal/models"
	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/xuri/excelize/v2"
)

// AdminDashboard aggregates every category and every due across all users:
// per-service paid/remaining/status, per-category collected/remaining/pending
// counts, and the global rollup.
func AdminDashboard(c *gin.Context) {
	rows, summary, err := loadAnalytics()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load analytics")
		return
	}
	render(c, "admin_dashboard.html", gin.H{
		"Rows":    rows,
		"Summary": summary,
	})
}

// AdminExport serves the same analytics as an XLSX download with one sheet
// of per-service rows and one of per-category totals.
func AdminExport(c *gin.Context) {
	rows, summary, err := loadAnalytics()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load analytics")
		return
	}

	f, err := buildAnalyticsWorkbook(rows, summary)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to build export")
		return
	}
	defer func() { _ = f.Close() }()

	filename := fmt.Sprintf("analytics-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(c.Writer); err != nil {
		c.String(http.StatusInternalServerError, "failed to write export")
	}
}

// buildAnalyticsWorkbook renders the analytics into an XLSX file: one sheet
// of per-service rows, one of per-category totals with a TOTAL line.
func buildAnalyticsWorkbook(rows []models.AnalyticsRow, summary models.AnalyticsSummary) (*excelize.File, error) {
	f := excelize.NewFile()
	fail := func(err error) (*excelize.File, error) {
		_ = f.Close()
		return nil, err
	}

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(sheet, "Services"); err != nil {
		return fail(err)
	}

	header := []interface{}{
		"user", "category", "year", "due_date", "due_amount",
		"total_paid", "remaining", "status",
	}
	if err := f.SetSheetRow("Services", "A1", &header); err != nil {
		return fail(err)
	}
	for i, row := range rows {
		data := []interface{}{
			row.User.Username,
			row.Category.Name,
			row.Service.Year,
			row.Service.DueDate.Format("2006-01-02"),
			row.Service.DueAmount.StringFixed(2),
			row.TotalPaid.StringFixed(2),
			row.Remaining.StringFixed(2),
			row.Status,
		}
		if err := f.SetSheetRow("Services", fmt.Sprintf("A%d", i+2), &data); err != nil {
			return fail(err)
		}
	}

	if _, err := f.NewSheet("Summary"); err != nil {
		return fail(err)
	}
	sumHeader := []interface{}{
		"category", "collected", "remaining", "pending_services", "users_with_pending",
	}
	if err := f.SetSheetRow("Summary", "A1", &sumHeader); err != nil {
		return fail(err)
	}
	rowIdx := 2
	for _, stat := range summary.CategoryStats {
		data := []interface{}{
			stat.Category.Name,
			stat.Collected.StringFixed(2),
			stat.Remaining.StringFixed(2),
			stat.PendingCount,
			stat.UsersWithPending,
		}
		if err := f.SetSheetRow("Summary", fmt.Sprintf("A%d", rowIdx), &data); err != nil {
			return fail(err)
		}
		rowIdx++
	}
	total := []interface{}{
		"TOTAL",
		summary.TotalCollected.StringFixed(2),
		summary.TotalRemaining.StringFixed(2),
		summary.TotalPendingServices,
		summary.UsersWithPending,
	}
	if err := f.SetSheetRow("Summary", fmt.Sprintf("A%d", rowIdx), &total); err != nil {
		return fail(err)
	}

	return f, nil
}

func loadAnalytics() ([]models.AnalyticsRow, models.AnalyticsSummary, error) {
	var categories []models.Category
	if err := config.DB.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, models.AnalyticsSummary{}, err
	}
	var services []models.Service
	if err := config.DB.Preload("User").
		Order("year DESC, id ASC").
		Find(&services).Error; err != nil {
		return nil, models.AnalyticsSummary{}, err
	}
	paymentsByService, err := loadPayments(services)
	if err != nil {
		return nil, models.AnalyticsSummary{}, err
	}
	rows, summary := models.BuildAnalytics(categories, services, paymentsByService)
	return rows, summary, nil
}

func ShowUpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, "User not found.")
		redirect(c, "/admin_dashboard/")
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, "User not found.")
		redirect(c, "/admin_dashboard/")
		return
	}
	render(c, "update_user.html", gin.H{"Target": user})
}

// UpdateUser mutates username/email of a target account. Blank fields keep
// their current values.
func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, "User not found.")
		redirect(c, "/admin_dashboard/")
		return
	}
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, "User not found.")
		redirect(c, "/admin_dashboard/")
		return
	}

	updates := map[string]any{}
	if username := strings.TrimSpace(c.PostForm("username")); username != "" {
		updates["username"] = username
	}
	if email := strings.TrimSpace(c.PostForm("email")); email != "" {
		updates["email"] = email
	}
	if len(updates) == 0 {
		utils.Warning(c, "Nothing to update.")
		redirect(c, fmt.Sprintf("/update_user/%d/", user.ID))
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(c, "Username already exists")
		} else {
			utils.Error(c, "Failed to update user.")
		}
		redirect(c, fmt.Sprintf("/update_user/%d/", user.ID))
		return
	}

	utils.Success(c, "User details updated.")
	redirect(c, "/admin_dashboard/")
}
