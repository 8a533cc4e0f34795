package controllers

import (
	"errors"
	"strings"
	"time"

	"github.com/ursmaheshj/payment-portal/config"
	"github.com/ursmaheshj/payment-portal/middlewares"
	"github.com/ursmaheshj/payment-portal/models"
	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

func Home(c *gin.Context) {
	render(c, "home.html", nil)
}

func ShowRegister(c *gin.Context) {
	render(c, "register.html", nil)
}

func Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")
	if username == "" || password == "" {
		utils.Error(c, "Username and password are required.")
		redirect(c, "/register/")
		return
	}

	var exists models.User
	if err := config.DB.Where("username = ?", username).First(&exists).Error; err == nil {
		utils.Error(c, "Username already exists")
		redirect(c, "/register/")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, "Registration failed. Please try again.")
		redirect(c, "/register/")
		return
	}

	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := config.DB.Create(&user).Error; err != nil {
		// Unique index backs up the pre-check under concurrent registration.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			utils.Error(c, "Username already exists")
		} else {
			utils.Error(c, "Registration failed. Please try again.")
		}
		redirect(c, "/register/")
		return
	}

	if err := establishSession(c, user); err != nil {
		utils.Error(c, "Registration succeeded but login failed. Please login.")
		redirect(c, "/login/")
		return
	}
	redirect(c, "/dashboard/")
}

func ShowLogin(c *gin.Context) {
	render(c, "login.html", gin.H{"Next": c.Query("next")})
}

func Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		utils.Error(c, "Invalid credentials")
		redirect(c, "/login/")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		utils.Error(c, "Invalid credentials")
		redirect(c, "/login/")
		return
	}

	if err := establishSession(c, user); err != nil {
		utils.Error(c, "Login failed. Please try again.")
		redirect(c, "/login/")
		return
	}

	next := c.PostForm("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/dashboard/"
	}
	redirect(c, next)
}

func Logout(c *gin.Context) {
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
	redirect(c, "/")
}

func establishSession(c *gin.Context, user models.User) error {
	token, err := utils.GenerateToken(user.ID, user.Username, user.IsAdmin, sessionTTL)
	if err != nil {
		return err
	}
	c.SetCookie(middlewares.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)
	return nil
}
