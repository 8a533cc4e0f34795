package routes

import (
	"github.com/ursmaheshj/payment-portal/controllers"
	"github.com/ursmaheshj/payment-portal/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	// Public pages
	r.GET("/", controllers.Home)
	r.GET("/register/", controllers.ShowRegister)
	r.POST("/register/", controllers.Register)
	r.GET("/login/", controllers.ShowLogin)
	r.POST("/login/", controllers.Login)

	// Authenticated pages
	auth := r.Group("/", middlewares.RequireLogin())
	{
		auth.GET("/dashboard/", controllers.Dashboard)
		auth.GET("/make_payment/", controllers.ShowPaymentForm)
		auth.POST("/make_payment/", controllers.MakePayment)
		auth.GET("/logout/", controllers.Logout)
		auth.POST("/logout/", controllers.Logout)
	}

	// Admin-only pages
	admin := r.Group("/", middlewares.RequireLogin(), middlewares.RequireAdmin())
	{
		admin.GET("/admin_dashboard/", controllers.AdminDashboard)
		admin.GET("/admin_dashboard/export/", controllers.AdminExport)
		admin.GET("/update_user/:id/", controllers.ShowUpdateUser)
		admin.POST("/update_user/:id/", controllers.UpdateUser)

		admin.GET("/manage/categories/", controllers.ManageCategories)
		admin.POST("/manage/categories/", controllers.CreateCategory)
		admin.POST("/manage/categories/:id/delete/", controllers.DeleteCategory)

		admin.GET("/manage/services/", controllers.ManageServices)
		admin.POST("/manage/services/", controllers.CreateService)
	}
}
