package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smartspending/coach-api/internal/api/handler"
	"github.com/smartspending/coach-api/internal/api/middleware"
	"github.com/smartspending/coach-api/internal/core/ports"
	"github.com/smartspending/coach-api/internal/core/service"
	"github.com/smartspending/coach-api/internal/infrastructure/config"
	mongodb "github.com/smartspending/coach-api/internal/infrastructure/db/mongo"
	redisdb "github.com/smartspending/coach-api/internal/infrastructure/db/redis"
	"github.com/smartspending/coach-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the login throttle and its readiness check are skipped.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("coach"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	profileRepo := mongodb.NewProfileRepository(db)
	tokenIssuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	var throttle ports.LoginThrottle
	if rdb != nil {
		throttle = redisdb.NewLoginThrottle(rdb, cfg.LoginMaxTries, cfg.LoginTryWindow)
	}

	authService := service.NewAuthService(userRepo, profileRepo, tokenIssuer, throttle)
	profileService := service.NewProfileService(profileRepo)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	authGate := middleware.Auth(tokenIssuer, userRepo)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	user := e.Group("/user", authGate)
	user.POST("/profile", profileHandler.Save)
	user.GET("/profile/details", profileHandler.Details)

	// --- Frontend ---
	pages := handler.NewPagesHandler(cfg.FrontendDir)
	e.Static("/static", cfg.FrontendDir)
	e.GET("/", pages.Login)
	e.GET("/login.html", pages.Login)
	e.GET("/questions.html", pages.Questions)
	e.GET("/dashboard.html", pages.Dashboard)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
