package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieOptions controls the token cookie. It is always HttpOnly and SameSite=Strict.
type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

func (o CookieOptions) set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(o.Name, token, int(o.MaxAge.Seconds()), "/", "", o.Secure, true)
}

func (o CookieOptions) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(o.Name, "", -1, "/", "", o.Secure, true)
}
