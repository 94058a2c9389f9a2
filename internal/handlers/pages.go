package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/mvickers/diarisk-backend/internal/requestdata"
)

type PagesHandler struct {
	staticDir string
}

func NewPagesHandler(staticDir string) *PagesHandler {
	return &PagesHandler{staticDir: staticDir}
}

func (ph *PagesHandler) Home(c *gin.Context) {
	c.File(filepath.Join(ph.staticDir, "index.html"))
}

func (ph *PagesHandler) Secrets(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.User == nil {
		RespondError(c, http.StatusUnauthorized, "unauthenticated", nil)
		return
	}
	payload := gin.H{"message": "Welcome back, " + rd.User.Name + "!"}
	if notice := TakeNotice(c); notice != "" {
		payload["notice"] = notice
	}
	RespondOK(c, payload)
}

func (ph *PagesHandler) Download(c *gin.Context) {
	c.FileAttachment(filepath.Join(ph.staticDir, "files", "cheat_sheet.pdf"), "cheat_sheet.pdf")
}
