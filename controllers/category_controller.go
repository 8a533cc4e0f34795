// controllers/category_controller.go
package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ursmaheshj/payment-portal/config"
	"github.com/ursmaheshj/payment-portal/models"
	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// Admin-only category management. Deleting a category cascades to its dues.

func ManageCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("name ASC").Find(&categories).Error; err != nil {
		utils.Error(c, "Failed to load categories.")
		redirect(c, "/admin_dashboard/")
		return
	}
	render(c, "manage_categories.html", gin.H{"Categories": categories})
}

func CreateCategory(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	description := strings.TrimSpace(c.PostForm("description"))
	if name == "" {
		utils.Error(c, "Category name is required.")
		redirect(c, "/manage/categories/")
		return
	}

	var exists models.Category
	if err := config.DB.Where("name = ?", name).First(&exists).Error; err == nil {
		utils.Error(c, "Category name already in use.")
		redirect(c, "/manage/categories/")
		return
	}

	cat := models.Category{Name: name, Description: description}
	if err := config.DB.Create(&cat).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(c, "Category name already in use.")
		} else {
			utils.Error(c, "Failed to create category.")
		}
		redirect(c, "/manage/categories/")
		return
	}

	utils.Success(c, "Category \""+cat.Name+"\" created.")
	redirect(c, "/manage/categories/")
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, "Category not found.")
		redirect(c, "/manage/categories/")
		return
	}

	var cat models.Category
	if err := config.DB.First(&cat, id).Error; err != nil {
		utils.Error(c, "Category not found.")
		redirect(c, "/manage/categories/")
		return
	}

	// FK constraints remove the category's services and their payments.
	if err := config.DB.Delete(&cat).Error; err != nil {
		utils.Error(c, "Failed to delete category.")
		redirect(c, "/manage/categories/")
		return
	}

	utils.Success(c, "Category \""+cat.Name+"\" deleted.")
	redirect(c, "/manage/categories/")
}
