package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mvickers/diarisk-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
	staticDir   string
}

func NewAuthHandler(authService services.AuthService, staticDir string) *AuthHandler {
	return &AuthHandler{authService: authService, staticDir: staticDir}
}

func (ah *AuthHandler) RegisterPage(c *gin.Context) {
	c.File(filepath.Join(ah.staticDir, "register.html"))
}

func (ah *AuthHandler) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, cookieValue, err := ah.authService.Register(c.Request.Context(), name, email, password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			SetNotice(c, "You've already signed up with that email, log in instead.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		RespondError(c, http.StatusBadRequest, "registration_failed", err)
		return
	}

	SetSessionCookie(c, cookieValue, ah.authService.SessionTTL())
	SetNotice(c, "Logged in successfully.")
	c.Redirect(http.StatusFound, "/secrets")
}

func (ah *AuthHandler) LoginPage(c *gin.Context) {
	c.File(filepath.Join(ah.staticDir, "login.html"))
}

func (ah *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	_, cookieValue, err := ah.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			SetNotice(c, "Login failed, invalid email or password.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		RespondError(c, http.StatusInternalServerError, "login_failed", err)
		return
	}

	SetSessionCookie(c, cookieValue, ah.authService.SessionTTL())
	SetNotice(c, "Logged in successfully.")
	c.Redirect(http.StatusFound, "/secrets")
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.Logout(c.Request.Context()); err != nil {
		// The session row may already be gone; the visitor still ends up
		// logged out, so fall through to the redirect either way.
		if !errors.Is(err, services.ErrSessionInvalid) {
			RespondError(c, http.StatusInternalServerError, "logout_failed", err)
			return
		}
	}
	ClearSessionCookie(c)
	SetNotice(c, "You have logged out successfully.")
	c.Redirect(http.StatusFound, "/")
}
