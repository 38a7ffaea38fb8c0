package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieConfig carries the cookie attributes shared by every wizard cookie.
type CookieConfig struct {
	Secure   bool
	SameSite http.SameSite
}

func (cfg CookieConfig) sameSite() http.SameSite {
	if cfg.SameSite == 0 {
		return http.SameSiteLaxMode
	}
	return cfg.SameSite
}

// SetCookie writes an HttpOnly cookie scoped to the whole site.
func (cfg CookieConfig) SetCookie(c *gin.Context, name, value string, ttl time.Duration) {
	c.SetSameSite(cfg.sameSite())
	c.SetCookie(name, value, int(ttl.Seconds()), "/", "", cfg.Secure, true)
}

func (cfg CookieConfig) ClearCookie(c *gin.Context, name string) {
	c.SetSameSite(cfg.sameSite())
	c.SetCookie(name, "", -1, "/", "", cfg.Secure, true)
}
