package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/brentsteel/lunchmenu/internal/api"
	"github.com/brentsteel/lunchmenu/internal/config"
	"github.com/brentsteel/lunchmenu/internal/repository"
	"github.com/brentsteel/lunchmenu/internal/service"
	"github.com/brentsteel/lunchmenu/migrations"
)

func connectDB(cfg config.DBConfig) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", cfg.DSN())
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("Connected to DB %s", cfg.Database)
				return db, nil
			}
		}
		log.Printf("Retry %d: failed to connect to DB %s (%s:%d): %v", i+1, cfg.Database, cfg.Host, cfg.Port, err)
		time.Sleep(3 * time.Second)
	}
	return nil, err
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if err := migrations.AutoMigrateMenuItems(3, db); err != nil {
		log.Fatalf("Failed to migrate menu_items table: %v", err)
	}
	if err := migrations.AutoMigrateOrders(3, db); err != nil {
		log.Fatalf("Failed to migrate orders table: %v", err)
	}
	if err := migrations.SeedMenuItems(context.Background(), db); err != nil {
		log.Fatalf("Failed to seed menu items: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	var eventWriter service.EventWriter
	if cfg.KafkaBrokers != "" {
		eventWriter = config.NewKafkaWriter(cfg.KafkaBrokers, "lunch-orders")
	}

	store := repository.NewStore(db)
	menuRepo := repository.NewMenuRepository(store)
	orderRepo := repository.NewOrderRepository(store)

	catalogService := service.NewCatalogService(menuRepo, rdb)
	orderService := service.NewOrderService(orderRepo, catalogService, eventWriter, cfg.OfferPrice)
	reportService := service.NewReportService(orderRepo)
	authService, err := service.NewAuthService(cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize auth: %v", err)
	}

	catalogHandler := api.NewCatalogHandler(catalogService, cfg.OfferPrice)
	orderHandler := api.NewOrderHandler(orderService)
	reportHandler := api.NewReportHandler(reportService)
	authHandler := api.NewAuthHandler(authService)

	e := echo.New()
	e.Validator = api.NewValidator()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	// Routes
	e.GET("/menu", catalogHandler.GetMenu)
	e.POST("/orders", orderHandler.SubmitOrder)
	e.GET("/orders", orderHandler.ListOrders)
	e.POST("/admin/login", authHandler.Login)
	e.POST("/admin/logout", authHandler.Logout)

	admin := e.Group("/admin", api.AdminGuard(authService.Secret()), api.RequireAdmin)
	admin.GET("/menu", catalogHandler.AdminListMenu)
	admin.POST("/menu", catalogHandler.AdminAddItem)
	admin.PUT("/menu/:id", catalogHandler.AdminEditItem)
	admin.DELETE("/menu/:id", catalogHandler.AdminDeleteItem)
	admin.GET("/analytics", reportHandler.Analytics)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "lunchmenu",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
