// controllers/service_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/ursmaheshj/payment-portal/config"
	"github.com/ursmaheshj/payment-portal/models"
	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-gonic/gin"
)

// Admin-only due management: assign dues to users per category and year.

func ManageServices(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("name ASC").Find(&categories).Error; err != nil {
		utils.Error(c, "Failed to load categories.")
		redirect(c, "/admin_dashboard/")
		return
	}
	var users []models.User
	if err := config.DB.Order("username ASC").Find(&users).Error; err != nil {
		utils.Error(c, "Failed to load users.")
		redirect(c, "/admin_dashboard/")
		return
	}

	q := config.DB.Preload("Category").Preload("User").
		Order("year DESC, due_date ASC, id ASC")
	selectedYear := c.Query("year")
	selectedCategory := c.Query("category")
	if selectedYear != "" {
		q = q.Where("year = ?", selectedYear)
	}
	if selectedCategory != "" {
		q = q.Where("category_id = ?", selectedCategory)
	}
	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		utils.Error(c, "Failed to load services.")
		redirect(c, "/admin_dashboard/")
		return
	}

	render(c, "manage_services.html", gin.H{
		"Categories":       categories,
		"Users":            users,
		"Services":         services,
		"SelectedYear":     selectedYear,
		"SelectedCategory": selectedCategory,
	})
}

func CreateService(c *gin.Context) {
	userID, err := strconv.Atoi(c.PostForm("user"))
	if err != nil || userID <= 0 {
		utils.Error(c, "Please select a user.")
		redirect(c, "/manage/services/")
		return
	}
	categoryID, err := strconv.Atoi(c.PostForm("category"))
	if err != nil || categoryID <= 0 {
		utils.Error(c, "Please select a category.")
		redirect(c, "/manage/services/")
		return
	}

	amount, err := models.ParseAmount(c.PostForm("due_amount"))
	if err != nil {
		utils.Error(c, "Due amount must be a positive number.")
		redirect(c, "/manage/services/")
		return
	}

	year, err := strconv.Atoi(c.PostForm("year"))
	if err != nil {
		utils.Error(c, "Please enter a valid year.")
		redirect(c, "/manage/services/")
		return
	}
	if err := models.ValidateYear(year, time.Now()); err != nil {
		utils.Error(c, "Year must be between 1900 and next year.")
		redirect(c, "/manage/services/")
		return
	}

	dueDate, err := time.Parse("2006-01-02", c.PostForm("due_date"))
	if err != nil {
		utils.Error(c, "Please enter a valid due date.")
		redirect(c, "/manage/services/")
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		utils.Error(c, "User not found.")
		redirect(c, "/manage/services/")
		return
	}
	var cat models.Category
	if err := config.DB.First(&cat, categoryID).Error; err != nil {
		utils.Error(c, "Category not found.")
		redirect(c, "/manage/services/")
		return
	}

	svc := models.Service{
		CategoryID:  cat.ID,
		UserID:      user.ID,
		DueAmount:   amount,
		DueDate:     dueDate,
		Year:        year,
		Description: c.PostForm("description"),
		Status:      models.StatusPending,
	}
	if err := config.DB.Create(&svc).Error; err != nil {
		utils.Error(c, "Failed to create service.")
		redirect(c, "/manage/services/")
		return
	}

	utils.Success(c, "Due of "+amount.StringFixed(2)+" assigned to "+user.Username+".")
	redirect(c, "/manage/services/")
}
