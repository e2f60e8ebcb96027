package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName   = "session"
	ctxUserIDKey        = "userId"
	sessionCookiePath   = "/"
	sessionCookieMaxAge = 0 // session cookie; real expiry lives in the token
)

// sessionMiddleware resolves the acting user once per request from the signed
// session cookie. Requests without a valid session are redirected to /login.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		// Stale or tampered cookie; drop it so the next request is clean.
		clearSessionCookie(c)
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return
	}

	c.Set(ctxUserIDKey, userID)
	c.Next()
}

// currentUserID returns the session user id set by sessionMiddleware.
func currentUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, sessionCookieMaxAge, sessionCookiePath, "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, sessionCookiePath, "", false, true)
}
