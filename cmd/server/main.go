package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/morcel/product-catalog/internal/config"
	"github.com/morcel/product-catalog/internal/db"
	"github.com/morcel/product-catalog/internal/es"
	"github.com/morcel/product-catalog/internal/httpserver"
	"github.com/morcel/product-catalog/internal/logging"
	"github.com/morcel/product-catalog/internal/mykafka"
	"github.com/morcel/product-catalog/internal/repo"
	"github.com/morcel/product-catalog/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWT_SECRET == "" {
		log.Fatal("JWT_SECRET is required")
	}

	logger := logging.New(cfg.LOG_LEVEL)

	ctx := context.Background()
	gormDB, err := db.Open(ctx, db.DSN(cfg))
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("database migration error: %v", err)
	}
	if err := db.SeedAdmin(ctx, gormDB, cfg.ADMIN_USERNAME, cfg.ADMIN_PASSWORD); err != nil {
		log.Fatalf("admin seed error: %v", err)
	}

	var producer *mykafka.Producer
	var events service.EventPublisher
	if cfg.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{cfg.KAFKA_ADDRESS})
		events = producer
	}

	var index service.ProductIndexer
	if cfg.ES_URL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		index = &es.ProductIndex{Client: esClient, Index: "products"}
	}

	jwtSecret := []byte(cfg.JWT_SECRET)
	tokenTTL := time.Duration(cfg.TOKEN_TTL_MIN) * time.Minute

	store := repo.New(gormDB)
	userSvc := &service.UserService{Repo: store}
	categorySvc := &service.CategoryService{Repo: store}
	productSvc := &service.ProductService{Repo: store, Categories: categorySvc, Events: events, Index: index}
	authSvc := &service.AuthService{Users: userSvc, JWTSecret: jwtSecret, TokenTTL: tokenTTL, Events: events}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpserver.NewValidator()
	e.HTTPErrorHandler = httpserver.ErrorHandler
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), httpserver.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:     &httpserver.AuthHandler{Auth: authSvc},
		UserHandler:     &httpserver.UserHandler{Svc: userSvc},
		CategoryHandler: &httpserver.CategoryHandler{Svc: categorySvc},
		ProductHandler:  &httpserver.ProductHandler{Svc: productSvc},
		JWTSecret:       jwtSecret,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server_started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	logger.Info("shutdown_complete")
}
