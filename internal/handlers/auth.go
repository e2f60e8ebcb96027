package handlers

import (
	"errors"
	"net/http"

	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// Form payloads for the auth pages.
type registerInput struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type loginInput struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// @Summary      Registration form
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string  "html"
// @Router       /register [get]
func (h *Handler) registerForm(c *gin.Context) {
	c.HTML(http.StatusOK, tmplRegister, gin.H{"Flash": popFlash(c)})
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "Username"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      303  {string}  string  "redirect to /login"
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBind(&input); err != nil {
		setFlash(c, flashDanger, "All fields are required.")
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	_, err := h.services.SignUp(c.Request.Context(), input.Username, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			setFlash(c, flashDanger, "User already exists. Please login or choose a different username/email.")
			c.Redirect(http.StatusSeeOther, "/register")
			return
		}
		h.logAndError(c, http.StatusInternalServerError, "registration failed", "auth_sign_up_failed", err, "username", input.Username)
		return
	}

	setFlash(c, flashSuccess, "Signup successful! You can now login.")
	c.Redirect(http.StatusSeeOther, "/login")
}

// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200  {string}  string  "html"
// @Router       /login [get]
func (h *Handler) loginForm(c *gin.Context) {
	c.HTML(http.StatusOK, tmplLogin, gin.H{"Flash": popFlash(c)})
}

// @Summary      Log in
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      303  {string}  string  "redirect to /"
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBind(&input); err != nil {
		h.renderLoginError(c, "Email and password are required.")
		return
	}

	token, err := h.services.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			if h.log != nil {
				h.log.Infow("auth_sign_in_failed", "email", input.Email)
			}
			h.renderLoginError(c, "Invalid credentials. Please try again.")
			return
		}
		h.logAndError(c, http.StatusInternalServerError, "login failed", "auth_sign_in_error", err, "email", input.Email)
		return
	}

	setSessionCookie(c, token)
	setFlash(c, flashSuccess, "Login Successful!")
	c.Redirect(http.StatusSeeOther, "/")
}

// renderLoginError re-renders the login page with an inline flash. The message
// is passed directly because a cookie set now would only be visible on the
// next request.
func (h *Handler) renderLoginError(c *gin.Context, msg string) {
	c.HTML(http.StatusOK, tmplLogin, gin.H{
		"Flash": &flashMessage{Category: flashDanger, Message: msg},
	})
}

// @Summary      Log out
// @Tags         auth
// @Success      303  {string}  string  "redirect to /login"
// @Router       /logout [get]
func (h *Handler) logout(c *gin.Context) {
	clearSessionCookie(c)
	setFlash(c, flashInfo, "You have been logged out")
	c.Redirect(http.StatusSeeOther, "/login")
}
