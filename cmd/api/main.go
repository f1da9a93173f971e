package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"anchorchain/internal/database"
	"anchorchain/internal/middleware"
	"anchorchain/internal/modules/bids"
	"anchorchain/internal/modules/directory"
	"anchorchain/internal/modules/news"
	"anchorchain/internal/modules/ops"
	"anchorchain/internal/modules/sources"
	"anchorchain/internal/pkg/logger"
	"anchorchain/internal/repository"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("database migration failed", zap.Error(err))
	}

	manufacturerRepo := repository.NewManufacturerRepository(db)
	certRepo := repository.NewCertificationRepository(db)
	productRepo := repository.NewProductRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	bidRepo := repository.NewBidRepository(db)
	sourceRepo := repository.NewSourceRepository(db)
	statsRepo := repository.NewStatsRepository(db, manufacturerRepo, newsRepo, certRepo)

	directoryService := directory.NewService(manufacturerRepo, certRepo, productRepo, facilityRepo, newsRepo)
	directoryHandler := directory.NewHandler(directoryService)

	newsService := news.NewService(newsRepo, manufacturerRepo)
	newsHandler := news.NewHandler(newsService)

	bidsHandler := bids.NewHandler(bidRepo)
	sourcesHandler := sources.NewHandler(sourceRepo)
	opsHandler := ops.NewHandler(statsRepo)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		directoryHandler.RegisterRoutes(v1)
		newsHandler.RegisterRoutes(v1)
		bidsHandler.RegisterRoutes(v1)
		sourcesHandler.RegisterRoutes(v1)
	}
	opsHandler.RegisterRoutes(v1, r)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	log.Info("starting api server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
