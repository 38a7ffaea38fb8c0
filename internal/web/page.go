package web

import (
	"net/http"
	"time"

	"crochetstudio/internal/i18n"
	"crochetstudio/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Page is the data every template receives.
type Page struct {
	Title     string
	Content   any
	L         *i18n.Localizer
	Path      string
	RequestID string
	Year      int
}

// Alternate is one entry of the language switcher.
type Alternate struct {
	Code   string
	Href   string
	Active bool
}

// Alternates links the current page in every supported locale. Links always carry
// the prefix so that choosing a language also stores it.
func (p Page) Alternates() []Alternate {
	out := make([]Alternate, 0, len(i18n.Supported))
	for _, tag := range i18n.Supported {
		code := i18n.Code(tag)
		href := "/" + code
		if p.Path != "/" {
			href += p.Path
		}
		out = append(out, Alternate{Code: code, Href: href, Active: p.L != nil && p.L.Tag() == tag})
	}
	return out
}

// Render fills in the request-scoped fields of p and writes the page.
func Render(c *gin.Context, status int, name string, p Page) {
	p.L = middleware.GetLocalizer(c)
	_, p.Path, _ = i18n.StripPrefix(c.Request.URL.Path)
	p.RequestID = middleware.GetRequestID(c)
	p.Year = time.Now().Year()
	if p.Title != "" {
		p.Title = p.L.T(p.Title)
	}
	c.HTML(status, name, p)
}

// NotFound renders the localized not-found page.
func NotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, PageNotFound, Page{Title: "Page not found"})
}

// ServerError renders the generic error page with the status already set on c.
func ServerError(c *gin.Context) {
	status := c.Writer.Status()
	if status < http.StatusInternalServerError {
		status = http.StatusInternalServerError
	}
	Render(c, status, "error", Page{Title: "Something went wrong"})
}
