package main

import (
	"fmt"
	"net/http"

	"techcare/internal/config"
	"techcare/internal/handlers"
	"techcare/internal/middleware"
	"techcare/internal/repositories/mongodb"
	"techcare/internal/services"
	"techcare/pkg/cache"
	"techcare/pkg/database"
	"techcare/pkg/logger"
	"techcare/pkg/media"
	"techcare/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments inject the environment.
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logFormat := "text"
	if config.IsProduction() {
		logFormat = "json"
	}
	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: logFormat,
		Output: "stdout",
		Colors: config.IsDevelopment(),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	// The process must not accept traffic without a working store.
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := db.EnsureIndexes(); err != nil {
		log.WithError(err).Fatal("Failed to create indexes")
	}

	// The cache is an optimization; the service runs without it.
	var cacheService services.CacheService
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
			Host:         cfg.Redis.Host,
			Port:         cfg.Redis.Port,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		})
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, listing cache disabled")
		} else {
			defer redisCache.Close()
			cacheService = redisCache
		}
	}

	uploader, err := newUploader(cfg.Media)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize media uploader")
	}

	// Repositories
	serviceRepo := mongodb.NewServiceRepository(db.Database, cacheService)
	reviewRepo := mongodb.NewReviewRepository(db.Database, cacheService)
	blogRepo := mongodb.NewBlogRepository(db.Database)

	// Services
	authService := services.NewAuthService(cfg.Security, log)
	serviceService := services.NewServiceService(serviceRepo, uploader, cfg.Media.UploadTimeout, log)
	reviewService := services.NewReviewService(reviewRepo, log)
	blogService := services.NewBlogService(blogRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.Security)
	serviceHandler := handlers.NewServiceHandler(serviceService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	blogHandler := handlers.NewBlogHandler(blogService)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())

	routes.Setup(
		router,
		authHandler,
		serviceHandler,
		reviewHandler,
		blogHandler,
		middleware.AuthRequired(authService),
		cfg.Security.ProtectMutations,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Infof("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

func newUploader(cfg *config.MediaConfig) (media.Uploader, error) {
	switch cfg.Provider {
	case "s3":
		return media.NewS3Uploader(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	default:
		return media.NewImgBBUploader(cfg.ImgBB.APIKey, cfg.ImgBB.Endpoint), nil
	}
}
