package middlewares

import (
	"net/http"
	"net/url"

	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-gonic/gin"
)

// SessionCookie carries the signed session token.
const SessionCookie = "portal_token"

// RequireLogin verifies the session cookie and puts the identity on the
// context. Unauthenticated requests are bounced to the login page with a
// notice and a next= pointer back to where they came from.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			redirectToLogin(c)
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}

		uid, ok := claims["uid"].(float64)
		if !ok || uid <= 0 {
			redirectToLogin(c)
			return
		}
		username, _ := claims["username"].(string)
		isAdmin, _ := claims["is_admin"].(bool)

		c.Set("user_id", uint(uid))
		c.Set("username", username)
		c.Set("is_admin", isAdmin)
		c.Next()
	}
}

// RequireAdmin gates the analytics and management pages. Runs after
// RequireLogin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isAdmin, _ := c.Get("is_admin"); isAdmin != true {
			utils.Error(c, "You are not allowed to access this page.")
			utils.Flush(c)
			c.Redirect(http.StatusFound, "/dashboard/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	utils.Warning(c, "Please login to access this page.")
	utils.Flush(c)
	c.Redirect(http.StatusFound, "/login/?next="+url.QueryEscape(c.Request.URL.RequestURI()))
	c.Abort()
}
