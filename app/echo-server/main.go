package main

import (
	"context"
	"fmt"
	"log"
	"myStore/app/echo-server/router"
	"myStore/business/cart"
	"myStore/business/catalog"
	"myStore/business/datalayer"
	"myStore/business/session"
	"myStore/business/wishlist"
	"myStore/internal/middleware"
	"myStore/internal/publisher"
	psqlRepo "myStore/internal/repository/postgres"
	redisRepo "myStore/internal/repository/redis"
	"myStore/internal/rest"
	"myStore/pkg/config"
	"myStore/pkg/database"
	redisdb "myStore/pkg/database/redis"
	"myStore/pkg/logger"
	"myStore/pkg/metrics"
	"myStore/pkg/utils"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting MyStore", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}

	// Init repo
	catalogRepo := psqlRepo.NewCatalogRepository(db)
	cartRepo := redisRepo.NewCartRepository(redisClient)
	wishlistRepo := redisRepo.NewWishlistRepository(redisClient)
	identityRepo := redisRepo.NewIdentityRepository(redisClient)

	// Seed the static catalog
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalogRepo.Seed(seedCtx, catalog.DefaultProducts(), catalog.DefaultPromotions()); err != nil {
		seedCancel()
		logger.Fatal("Failed to seed catalog", "error", err)
	}
	seedCancel()

	// The dataLayer: one append-only queue, drained by the forwarder
	queue := datalayer.NewQueue()

	// Init service
	catalogService := catalog.NewCatalogService(catalogRepo)
	cartService := cart.NewCartService(cartRepo, catalogRepo, queue)
	wishlistService := wishlist.NewWishlistService(wishlistRepo, catalogRepo, queue)
	sessionService := session.NewSessionService(identityRepo, queue, session.DefaultDirectory(), nil)

	// Init handler
	cartHandler := rest.NewCartHandler(cartService)
	wishlistHandler := rest.NewWishlistHandler(wishlistService)
	sessionHandler := rest.NewSessionHandler(sessionService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	storefrontHandler := rest.NewStorefrontHandler(sessionService, cartService, queue)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
	}))

	browserSession := middleware.BrowserSession()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupCartRoutes(api, cartHandler, browserSession)
	router.SetupWishlistRoutes(api, wishlistHandler, browserSession)
	router.SetupSessionRoutes(api, sessionHandler, browserSession)
	router.SetupStorefrontRoutes(api, storefrontHandler, browserSession)
	router.SetupCatalogRoutes(api, catalogHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Ship dataLayer records to the analytics pipeline when brokers are set
	forwarderCtx, stopForwarder := context.WithCancel(context.Background())
	defer stopForwarder()
	if len(cfg.Kafka.Brokers) > 0 {
		forwarder := publisher.NewDataLayerForwarder(queue, cfg.Kafka.Topic, cfg.Kafka.Brokers...)
		go forwarder.Run(forwarderCtx)
		logger.Info("dataLayer forwarder started", "topic", cfg.Kafka.Topic)
	}

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	stopForwarder()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	logger.Info("Server stopped")
}
