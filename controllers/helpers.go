package controllers

import (
	"errors"
	"net/http"

	"github.com/ursmaheshj/payment-portal/utils"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (uint, error) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, errors.New("user_id missing from context")
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return 0, errors.New("user_id invalid")
	}
	return id, nil
}

// render executes a page template with the pending flash notices and the
// logged-in identity merged into its data.
func render(c *gin.Context, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = utils.Flashes(c)
	if v, ok := c.Get("username"); ok {
		data["Username"] = v
	}
	if v, ok := c.Get("is_admin"); ok {
		data["IsAdmin"] = v
	}
	c.HTML(http.StatusOK, name, data)
}

func redirect(c *gin.Context, location string) {
	utils.Flush(c)
	c.Redirect(http.StatusFound, location)
}
