package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/thesarvanews/news-frontend/internal/api/handler"
	"github.com/thesarvanews/news-frontend/internal/api/middleware"
	"github.com/thesarvanews/news-frontend/internal/core/service"
	"github.com/thesarvanews/news-frontend/internal/infrastructure/backend"
	"github.com/thesarvanews/news-frontend/internal/infrastructure/config"
	redisdb "github.com/thesarvanews/news-frontend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	limiter := rate.NewLimiter(rate.Limit(cfg.Backend.Rate), cfg.Backend.Burst)
	gateway := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, limiter, log)
	sessions := redisdb.NewSessionRepository(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(gateway, sessions, log)
	newsService := service.NewNewsService(gateway, log)
	bookmarkService := service.NewBookmarkService(gateway, log)

	cookie := handler.SessionCookie{
		Name:   cfg.Session.CookieName,
		TTL:    cfg.Session.TTL,
		Secure: cfg.Session.CookieSecure,
	}
	authHandler := handler.NewAuthHandler(authService, cookie)
	newsHandler := handler.NewNewsHandler(newsService, bookmarkService)
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkService, newsService)
	profileHandler := handler.NewProfileHandler(bookmarkService)
	imageHandler := handler.NewImageHandler(cfg.Image.Timeout, cfg.Image.MaxBytes)
	healthHandler := handler.NewHealthHandler(rdb)
	pagesHandler := handler.NewPagesHandler()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sarvanews"))
	e.Use(middleware.LoadSession(authService, cfg.Session.CookieName))

	// Per-IP throttle on the credential-bearing form posts.
	credentialLimiter := echomiddleware.RateLimiter(
		echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(10.0 / 60.0),
			Burst:     10,
			ExpiresIn: 3 * time.Minute,
		}),
	)

	// --- Public pages ---
	e.GET("/", newsHandler.Home)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login, credentialLimiter)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register, credentialLimiter)
	e.POST("/logout", authHandler.Logout)
	e.GET("/contact", pagesHandler.Contact)
	e.GET("/services", pagesHandler.Services)
	e.GET("/image", imageHandler.Proxy)

	// --- Protected pages (auth gate redirects anonymous users to /login) ---
	protected := e.Group("", middleware.RequireSession())
	protected.GET("/bookmarks", bookmarkHandler.Page)
	protected.POST("/bookmarks", bookmarkHandler.Add)
	protected.POST("/bookmarks/delete", bookmarkHandler.Remove)
	protected.GET("/profile", profileHandler.Page)

	// --- In-page JSON endpoints (auth gate answers 401, never redirects) ---
	apiGroup := e.Group("/api", middleware.RequireSessionJSON())
	apiGroup.POST("/bookmarks/toggle", bookmarkHandler.Toggle)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/healthz", healthHandler.Liveness)
	e.GET("/healthz/ready", healthHandler.Readiness)

	return e
}
