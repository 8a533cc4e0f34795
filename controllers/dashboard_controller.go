// controllers/dashboard_controller.go
package controllers

import (
	"net/http"

	"github.com/ursmaheshj/payment-portal/config"
	"github.com/ursmaheshj/payment-portal/models"
	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-gonic/gin"
)

// Dashboard shows the logged-in user's dues with paid/remaining breakdowns,
// optionally filtered by ?year= and ?category=.
func Dashboard(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, "Session expired. Please login again.")
		redirect(c, "/login/")
		return
	}

	var categories []models.Category
	if err := config.DB.Order("name ASC").Find(&categories).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to load categories")
		return
	}

	// Distinct years this user has dues in, newest first.
	var years []int
	if err := config.DB.Model(&models.Service{}).
		Where("user_id = ?", uid).
		Distinct("year").
		Order("year DESC").
		Pluck("year", &years).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to load years")
		return
	}

	selectedYear := c.Query("year")
	selectedCategory := c.Query("category")

	q := config.DB.Preload("Category").
		Where("user_id = ?", uid).
		Order("year DESC, due_date ASC, id ASC")
	if selectedYear != "" {
		q = q.Where("year = ?", selectedYear)
	}
	if selectedCategory != "" {
		q = q.Where("category_id = ?", selectedCategory)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to load services")
		return
	}

	paymentsByService, err := loadPayments(services)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load payments")
		return
	}

	render(c, "dashboard.html", gin.H{
		"Categories":       categories,
		"Years":            years,
		"SelectedYear":     selectedYear,
		"SelectedCategory": selectedCategory,
		"Rows":             models.BuildDashboard(services, paymentsByService),
	})
}

// loadPayments fetches the payment history for a set of services in one
// query, grouped by service, oldest first.
func loadPayments(services []models.Service) (map[uint][]models.Payment, error) {
	byService := make(map[uint][]models.Payment, len(services))
	if len(services) == 0 {
		return byService, nil
	}
	ids := make([]uint, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}
	var payments []models.Payment
	if err := config.DB.
		Where("service_id IN ?", ids).
		Order("payment_date ASC, id ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	for _, p := range payments {
		byService[p.ServiceID] = append(byService[p.ServiceID], p)
	}
	return byService, nil
}
