package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/citycab/taxi-dispatch/internal/auth"
	"github.com/citycab/taxi-dispatch/internal/billing"
	"github.com/citycab/taxi-dispatch/internal/bookings"
	"github.com/citycab/taxi-dispatch/internal/fleet"
	"github.com/citycab/taxi-dispatch/internal/pricing"
	"github.com/citycab/taxi-dispatch/pkg/common"
	"github.com/citycab/taxi-dispatch/pkg/config"
	"github.com/citycab/taxi-dispatch/pkg/database"
	"github.com/citycab/taxi-dispatch/pkg/logger"
	"github.com/citycab/taxi-dispatch/pkg/middleware"
	"github.com/citycab/taxi-dispatch/pkg/redis"
)

const serviceName = "taxi-dispatch"

var version = "dev"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Server.Environment); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	db, err := database.NewPostgresPool(&cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.RunMigrations(&cfg.Database); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		// The price-config cache is an optimization; the service works
		// without it.
		logger.Warn("redis unavailable, price config cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	router := setupRouter(cfg, db, redisClient)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	logger.Info("Starting server",
		zap.String("service", serviceName),
		zap.String("port", cfg.Server.Port),
		zap.String("environment", cfg.Server.Environment),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func setupRouter(cfg *config.Config, db *pgxpool.Pool, redisClient *redis.Client) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics(serviceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.Server.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.CorrelationIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/health", common.HealthCheckWithDeps(serviceName, version, map[string]func() error{
		"postgres": func() error { return db.Ping(context.Background()) },
	}))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	authRepo := auth.NewRepository(db)
	pricingRepo := pricing.NewRepository(db)
	fleetRepo := fleet.NewRepository(db)
	bookingsRepo := bookings.NewRepository(db)
	billingRepo := billing.NewRepository(db)

	// Services
	var priceCache pricing.Cache
	if redisClient != nil {
		priceCache = pricing.NewRedisCache(redisClient)
	}
	authService := auth.NewService(authRepo, cfg.JWT)
	pricingService := pricing.NewService(pricingRepo, priceCache)
	fleetService := fleet.NewService(fleetRepo)
	bookingsService := bookings.NewService(bookingsRepo, pricingService)
	billingService := billing.NewService(billingRepo)

	// Route groups: /admin requires a session, and everything under it except
	// the customer-facing driver listing additionally requires the admin role.
	// /customer requires any session.
	adminAuthed := router.Group("/admin", middleware.AuthRequired(cfg.JWT.Secret))
	admin := adminAuthed.Group("", middleware.RequireRole(auth.RoleAdmin))
	customer := router.Group("/customer", middleware.AuthRequired(cfg.JWT.Secret))

	auth.NewHandler(authService, cfg.JWT.Secret).RegisterRoutes(router)
	pricing.NewHandler(pricingService).RegisterRoutes(admin, customer)
	fleet.NewHandler(fleetService).RegisterRoutes(admin, adminAuthed)
	bookings.NewHandler(bookingsService).RegisterRoutes(admin, customer)
	billing.NewHandler(billingService).RegisterRoutes(admin, customer)

	return router
}
