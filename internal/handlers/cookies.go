package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName carries the signed session token.
	SessionCookieName = "diarisk_session"
	// NoticeCookieName carries a one-shot notice shown after a redirect,
	// read and cleared by the next page that asks for it.
	NoticeCookieName = "diarisk_notice"
)

func SetSessionCookie(c *gin.Context, value string, ttl time.Duration) {
	c.SetCookie(SessionCookieName, value, int(ttl.Seconds()), "/", "", false, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

func SetNotice(c *gin.Context, msg string) {
	c.SetCookie(NoticeCookieName, msg, 300, "/", "", false, false)
}

func TakeNotice(c *gin.Context) string {
	msg, err := c.Cookie(NoticeCookieName)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(NoticeCookieName, "", -1, "/", "", false, false)
	return msg
}
