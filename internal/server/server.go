// Package server wires repositories, modules and middleware into the HTTP router.
package server

import (
	"log/slog"
	"net/http"
	"strings"

	"crochetstudio/internal/config"
	"crochetstudio/internal/i18n"
	"crochetstudio/internal/middleware"
	"crochetstudio/internal/modules/booking"
	"crochetstudio/internal/modules/catalog"
	"crochetstudio/internal/modules/commission"
	"crochetstudio/internal/modules/marketing"
	"crochetstudio/internal/notify"
	jwtsvc "crochetstudio/internal/pkg/jwt"
	"crochetstudio/internal/pkg/response"
	"crochetstudio/internal/repository"
	"crochetstudio/internal/session"
	"crochetstudio/internal/web"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

type pageRoutes interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// New builds the router. store holds wizard sessions. Submissions are always logged;
// notifier, when not nil, is called as well.
func New(cfg *config.Config, log *slog.Logger, store session.Store, notifier notify.Notifier) (*gin.Engine, error) {
	notifiers := notify.Multi{notify.NewLogNotifier(log)}
	if notifier != nil {
		notifiers = append(notifiers, notifier)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	catalogRepo := repository.NewCatalogRepository()
	slotRepo := repository.NewSlotRepository()
	testimonialRepo := repository.NewTestimonialRepository()

	tokens := jwtsvc.New(cfg.SessionSecret, cfg.SessionTTL)
	cookies := web.CookieConfig{Secure: cfg.CookieSecure, SameSite: cfg.SameSite()}

	catalogService := catalog.NewService(catalogRepo, slotRepo, testimonialRepo)
	bookingService := booking.NewService(
		session.NewRepository[booking.State](store, booking.Flow, cfg.SessionTTL),
		catalogRepo,
		slotRepo,
		notifiers,
		log,
	)
	commissionService := commission.NewService(
		session.NewRepository[commission.State](store, commission.Flow, cfg.SessionTTL),
		slotRepo,
		notifiers,
		log,
	)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.ErrorLogger(log, web.ServerError))
	r.HTMLRender = renderer
	r.StaticFS("/static", web.Static())

	r.GET("/healthz", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	v1.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	{
		catalog.NewHandler(catalogService).RegisterRoutes(v1)
		booking.NewHandler(bookingService, tokens).RegisterRoutes(v1)
		commission.NewHandler(commissionService, tokens).RegisterRoutes(v1)
	}

	pages := []pageRoutes{
		marketing.NewPages(catalogService),
		catalog.NewPages(catalogService),
		booking.NewPages(bookingService, tokens, cookies),
		commission.NewPages(commissionService, tokens, cookies),
	}
	opts := middleware.LocaleOptions{
		Detection:    cfg.LocaleDetection,
		CookieSecure: cfg.CookieSecure,
		SameSite:     cfg.SameSite(),
	}

	groups := []*gin.RouterGroup{r.Group("", middleware.Locale(language.Und, opts))}
	for _, tag := range i18n.Supported {
		groups = append(groups, r.Group("/"+i18n.Code(tag), middleware.Locale(tag, opts)))
	}
	for _, g := range groups {
		for _, p := range pages {
			p.RegisterRoutes(g)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Abort(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
			return
		}
		web.NotFound(c)
	})

	return r, nil
}
