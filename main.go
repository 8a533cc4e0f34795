package main

import (
	"html/template"
	"os"
	"time"

	"github.com/ursmaheshj/payment-portal/config"
	"github.com/ursmaheshj/payment-portal/models"
	"github.com/ursmaheshj/payment-portal/routes"
	"github.com/ursmaheshj/payment-portal/utils"
	"github.com/ursmaheshj/payment-portal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	_ = godotenv.Load()

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Service{},
		&models.Payment{},
	)

	config.SeedDefaults()

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.Secret = []byte(s)
	}

	r := gin.Default()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "dues-portal-session"
	}
	r.Use(sessions.Sessions("portal_session", cookie.NewStore([]byte(sessionSecret))))

	funcs := template.FuncMap{
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
		"date":  func(t time.Time) string { return t.Format("02 Jan 2006") },
	}
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(web.TemplatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
