package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvickers/diarisk-backend/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) List(c *gin.Context) {
	users, err := uh.userService.List(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "list_users_failed", err)
		return
	}
	RespondOK(c, gin.H{"users": users})
}

func (uh *UserHandler) Admin(c *gin.Context) {
	summary, err := uh.userService.Summary(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "admin_summary_failed", err)
		return
	}
	RespondOK(c, summary)
}
