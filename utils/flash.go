package utils

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Flash notices survive exactly one redirect, like Django's messages.
// They are stored in the cookie session as "kind|message" strings.

const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"
)

const flashKey = "_flashes"

type Flash struct {
	Kind    string
	Message string
}

// AddFlash queues a notice; the session is written once per request via
// Flush (or by Flashes on the read side). Saving here instead would emit one
// Set-Cookie header per notice and only the first would survive the redirect.
func AddFlash(c *gin.Context, kind, message string) {
	sessions.Default(c).AddFlash(kind+"|"+message, flashKey)
}

// Flush persists pending session state. Call once, before the response
// headers go out.
func Flush(c *gin.Context) {
	_ = sessions.Default(c).Save()
}

func Success(c *gin.Context, message string) { AddFlash(c, FlashSuccess, message) }
func Warning(c *gin.Context, message string) { AddFlash(c, FlashWarning, message) }
func Error(c *gin.Context, message string)   { AddFlash(c, FlashError, message) }

// Flashes drains the pending notices for rendering.
func Flashes(c *gin.Context) []Flash {
	s := sessions.Default(c)
	raw := s.Flashes(flashKey)
	if len(raw) > 0 {
		_ = s.Save()
	}
	out := make([]Flash, 0, len(raw))
	for _, r := range raw {
		str, ok := r.(string)
		if !ok {
			continue
		}
		kind, msg, found := strings.Cut(str, "|")
		if !found {
			kind, msg = FlashWarning, str
		}
		out = append(out, Flash{Kind: kind, Message: msg})
	}
	return out
}
