package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/blog-api/internal/api/handler"
	"github.com/bloghub/blog-api/internal/api/middleware"
	"github.com/bloghub/blog-api/internal/core/service"
	mongodb "github.com/bloghub/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bloghub/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit trail is passed in because its worker lifecycle belongs to main.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit service.AuditTrail, jwtSecret string, tokenTTL, cacheTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	tagRepo := mongodb.NewTagRepository(db)
	messageRepo := mongodb.NewLocalizationRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	messageCache := redisdb.NewLocalizationCache(rdb, cacheTTL)

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	authzService := service.NewAuthorizationService(userRepo, postRepo, audit, log)
	authService := service.NewAuthService(userRepo, tokenService)
	postService := service.NewPostService(postRepo, tagRepo, authzService, log)
	tagService := service.NewTagService(tagRepo, authzService, log)
	userService := service.NewUserService(userRepo, authzService)
	localizationService := service.NewLocalizationService(messageRepo, messageCache, authzService, log)
	auditService := service.NewAuditService(auditRepo, authzService)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	tagHandler := handler.NewTagHandler(tagService)
	userHandler := handler.NewUserHandler(userService)
	localizationHandler := handler.NewLocalizationHandler(localizationService)
	auditHandler := handler.NewAuditHandler(auditService)

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, localizationService)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))
	// Identity runs on every route and never blocks a request; gating is the
	// authorization service's job.
	e.Use(middleware.Identity(tokenService, userRepo, log))

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Posts ---
	e.GET("/posts", postHandler.List)
	e.POST("/posts", postHandler.Create)
	e.GET("/posts/:id", postHandler.Get)
	e.PUT("/posts/:id", postHandler.Update)
	e.DELETE("/posts/:id", postHandler.Delete)

	// --- Tags ---
	e.GET("/tags", tagHandler.List)
	e.POST("/tags", tagHandler.Create)
	e.GET("/tags/:id", tagHandler.Get)
	e.PUT("/tags/:id", tagHandler.Update)
	e.DELETE("/tags/:id", tagHandler.Delete)

	// --- Users (admin) ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)

	// --- Localization ---
	e.GET("/localization/messages/:locale", localizationHandler.AllMessages)
	e.GET("/localization/message", localizationHandler.GetMessage)
	e.POST("/localization/messages", localizationHandler.SaveMessage)
	e.PUT("/localization/messages/:id", localizationHandler.UpdateMessage)
	e.DELETE("/localization/messages/:id", localizationHandler.DeleteMessage)

	// --- Audit (admin) ---
	e.GET("/audit", auditHandler.List)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
