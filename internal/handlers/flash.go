package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Flash categories, matching the CSS classes the templates render.
const (
	flashSuccess = "success"
	flashDanger  = "danger"
	flashInfo    = "info"
)

const (
	flashCookieName   = "flash"
	flashCookieMaxAge = 300 // seconds; a flash not consumed promptly expires
)

// flashMessage is a one-time notification shown on the next rendered page.
type flashMessage struct {
	Category string
	Message  string
}

// setFlash stores a flash message in a short-lived cookie so it survives the
// redirect that usually follows.
func setFlash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookieName, category+"|"+message, flashCookieMaxAge, "/", "", false, true)
}

// popFlash reads and clears the flash cookie. Returns nil when there is none.
func popFlash(c *gin.Context) *flashMessage {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	// Clear immediately: a flash is shown exactly once.
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	category, message, found := strings.Cut(raw, "|")
	if !found {
		return &flashMessage{Category: flashInfo, Message: raw}
	}
	return &flashMessage{Category: category, Message: message}
}
