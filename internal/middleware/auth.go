package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvickers/diarisk-backend/internal/handlers"
	"github.com/mvickers/diarisk-backend/internal/logger"
	"github.com/mvickers/diarisk-backend/internal/requestdata"
	"github.com/mvickers/diarisk-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

// RequireAuth resolves the session cookie into a request-scoped identity.
// Anonymous or invalid sessions are bounced to the login page with a
// notice before the protected handler runs any of its effects.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(handlers.SessionCookieName)
		if err != nil || cookieValue == "" {
			am.redirectToLogin(c)
			return
		}

		ctx, err := am.authService.ResolveSession(c.Request.Context(), cookieValue)
		if err != nil {
			handlers.ClearSessionCookie(c)
			am.redirectToLogin(c)
			return
		}

		c.Request = c.Request.WithContext(ctx)
		rd := requestdata.GetRequestData(ctx)
		if rd == nil || rd.User == nil {
			handlers.ClearSessionCookie(c)
			am.redirectToLogin(c)
			return
		}
		c.Next()
	}
}

func (am *AuthMiddleware) redirectToLogin(c *gin.Context) {
	handlers.SetNotice(c, "You must log in first.")
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
