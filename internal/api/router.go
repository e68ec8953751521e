package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/docuvault/dms/docs"
	"github.com/docuvault/dms/internal/api/handler"
	"github.com/docuvault/dms/internal/api/middleware"
	"github.com/docuvault/dms/internal/core/service"
	mongodb "github.com/docuvault/dms/internal/infrastructure/db/mongo"
	redisdb "github.com/docuvault/dms/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dms"))

	// --- Dependencies ---
	roleRepo := mongodb.NewRoleRepository(db)
	typeRepo := mongodb.NewTypeRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	docRepo := mongodb.NewDocumentRepository(db)
	searchCache := redisdb.NewSearchCache(rdb)

	tokens := service.NewTokenManager(jwtSecret, time.Hour)
	roleService := service.NewRoleService(roleRepo, log)
	typeService := service.NewTypeService(typeRepo, log)
	userService := service.NewUserService(userRepo, roleRepo, tokens, log)
	docService := service.NewDocumentService(docRepo, typeRepo, searchCache, log)

	roleHandler := handler.NewRoleHandler(roleService)
	typeHandler := handler.NewTypeHandler(typeService)
	userHandler := handler.NewUserHandler(userService)
	docHandler := handler.NewDocumentHandler(docService)
	searchHandler := handler.NewSearchHandler(docService)

	auth := middleware.Auth(tokens)
	admin := middleware.RequireAdmin()
	selfOrAdmin := middleware.RequireSelfOrAdmin()
	objectID := middleware.ValidateObjectID()
	loginLimit := middleware.RateLimitByIP(middleware.LoginLimit)

	v1 := e.Group("/api/v1")

	// --- Users ---
	users := v1.Group("/users")
	users.POST("/signup", userHandler.Signup, loginLimit)
	users.POST("/login", userHandler.Login, loginLimit)
	users.POST("/logout", userHandler.Logout)
	users.GET("", userHandler.List, auth, admin)
	users.GET("/:id", userHandler.Get, objectID, auth, selfOrAdmin)
	users.PUT("/:id", userHandler.Update, objectID, auth, selfOrAdmin)
	users.DELETE("/:id", userHandler.Delete, objectID, auth, selfOrAdmin)

	// --- Roles (admin only) ---
	roles := v1.Group("/roles")
	roles.GET("", roleHandler.List, auth, admin)
	roles.POST("", roleHandler.Create, auth, admin)
	roles.GET("/:id", roleHandler.Get, objectID, auth, admin)
	roles.PUT("/:id", roleHandler.Update, objectID, auth, admin)
	roles.DELETE("/:id", roleHandler.Delete, objectID, auth, admin)

	// --- Document types (reads authenticated, mutations admin only) ---
	types := v1.Group("/types")
	types.GET("", typeHandler.List, auth)
	types.POST("", typeHandler.Create, auth, admin)
	types.GET("/:id", typeHandler.Get, objectID, auth)
	types.PUT("/:id", typeHandler.Update, objectID, auth, admin)
	types.DELETE("/:id", typeHandler.Delete, objectID, auth, admin)

	// --- Documents (mutation owner-gated in the service) ---
	docs := v1.Group("/documents", auth)
	docs.GET("", docHandler.List)
	docs.POST("", docHandler.Create)
	docs.GET("/:id", docHandler.Get, objectID)
	docs.PUT("/:id", docHandler.Update, objectID)
	docs.DELETE("/:id", docHandler.Delete, objectID)

	// --- Search ---
	v1.GET("/search", searchHandler.Search, auth)

	// --- Ops endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
