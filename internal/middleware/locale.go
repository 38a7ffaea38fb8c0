package middleware

import (
	"net/http"

	"crochetstudio/internal/i18n"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	CtxKeyLocalizer = "localizer"
	LocaleCookie    = "locale"
)

type LocaleOptions struct {
	// Detection lets unprefixed requests follow the locale cookie or Accept-Language.
	Detection    bool
	CookieSecure bool
	SameSite     http.SameSite
}

// Locale resolves the page locale for a route group.
// prefix is the group's locale segment, or language.Und for the unprefixed group.
// The default locale is never prefixed, so /en/... redirects to the bare path.
func Locale(prefix language.Tag, opts LocaleOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if prefix != language.Und {
			rememberLocale(c, prefix, opts)
			if prefix == i18n.Default {
				_, rest, _ := i18n.StripPrefix(c.Request.URL.Path)
				redirectLocale(c, rest)
				return
			}
			c.Set(CtxKeyLocalizer, i18n.New(prefix))
			c.Next()
			return
		}

		tag := i18n.Default
		if opts.Detection {
			tag = detectLocale(c)
		}
		if tag != i18n.Default && c.Request.Method == http.MethodGet {
			redirectLocale(c, i18n.LocalePath(tag, c.Request.URL.Path))
			return
		}
		c.Set(CtxKeyLocalizer, i18n.New(i18n.Default))
		c.Next()
	}
}

// GetLocalizer returns the request localizer, defaulting to English outside locale groups.
func GetLocalizer(c *gin.Context) *i18n.Localizer {
	if v, ok := c.Get(CtxKeyLocalizer); ok {
		if l, ok := v.(*i18n.Localizer); ok {
			return l
		}
	}
	if tag, _, ok := i18n.StripPrefix(c.Request.URL.Path); ok {
		return i18n.New(tag)
	}
	return i18n.New(i18n.Default)
}

func detectLocale(c *gin.Context) language.Tag {
	if v, err := c.Cookie(LocaleCookie); err == nil {
		if tag, ok := i18n.FromPrefix(v); ok {
			return tag
		}
	}
	return i18n.Detect(c.GetHeader("Accept-Language"))
}

func rememberLocale(c *gin.Context, tag language.Tag, opts LocaleOptions) {
	sameSite := opts.SameSite
	if sameSite == 0 {
		sameSite = http.SameSiteLaxMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(LocaleCookie, i18n.Code(tag), 365*24*3600, "/", "", opts.CookieSecure, true)
}

func redirectLocale(c *gin.Context, target string) {
	if q := c.Request.URL.RawQuery; q != "" {
		target += "?" + q
	}
	c.Redirect(http.StatusTemporaryRedirect, target)
	c.Abort()
}
