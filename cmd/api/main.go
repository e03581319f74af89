package main

import (
	"context"
	"net/http"
	"os"

	"inventory-api/docs"
	"inventory-api/internal/config"
	"inventory-api/internal/geocoding"
	"inventory-api/internal/handler"
	"inventory-api/internal/observability"
	"inventory-api/internal/repository"
	"inventory-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title        Soda Inventory API
// @version      1.0
// @description  Retailers, the sodas they carry, and geocoded retailer locations.
// @BasePath     /
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config.LogLevel, config.LogFormat)

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	metrics := observability.NewMetrics()

	// Geocoding stays nil when disabled; retailers are then saved without coordinates.
	var geocoder service.Geocoder
	if config.GeocodingEnabled {
		geocoder = geocoding.New(geocoding.Options{
			APIKey:    config.GoogleMapsAPIKey,
			BaseURL:   config.GeocodingBaseURL,
			Timeout:   config.GeocodingTimeout,
			CacheSize: config.GeocodingCacheSize,
			CacheTTL:  config.GeocodingCacheTTL,
		}, metrics, log.Logger.With().Str("component", "geocoding").Logger())
	} else {
		log.Warn().Msg("geocoding disabled, retailers will be stored without coordinates")
	}

	// Initialize layers
	retailerService := service.NewRetailerService(repo, geocoder, metrics, log.Logger.With().Str("component", "retailers").Logger())
	sodaService := service.NewSodaService(repo)

	retailerHandler := handler.NewRetailerHandler(retailerService)
	sodaHandler := handler.NewSodaHandler(sodaService)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(log.Logger))

	r.GET("/health", func(c *gin.Context) {
		if err := repo.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.BasePath = "/"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	retailerHandler.Register(r)
	sodaHandler.Register(r)

	log.Info().Str("address", config.ServerAddress).Bool("geocoding", config.GeocodingEnabled).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
