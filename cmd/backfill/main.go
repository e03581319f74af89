package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"inventory-api/internal/config"
	"inventory-api/internal/geocoding"
	"inventory-api/internal/observability"
	"inventory-api/internal/repository"
	"inventory-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// backfill re-geocodes stored retailers and writes back coordinates that changed.
func main() {
	all := flag.Bool("all", false, "Re-check every retailer, not only those without coordinates")
	configPath := flag.String("config", "configs", "Directory containing app.env")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if !cfg.GeocodingEnabled {
		fmt.Println("Error: geocoding is disabled, set GOOGLE_MAPS_API_KEY")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	metrics := observability.NewMetrics()
	repo := repository.NewRepository(conn)
	geocoder := geocoding.New(geocoding.Options{
		APIKey:   cfg.GoogleMapsAPIKey,
		BaseURL:  cfg.GeocodingBaseURL,
		Timeout:  cfg.GeocodingTimeout,
		CacheTTL: cfg.GeocodingCacheTTL,
	}, metrics, logger)
	retailers := service.NewRetailerService(repo, geocoder, metrics, logger)

	summary, err := retailers.RefreshCoordinates(ctx, *all)
	fmt.Printf("Checked %d retailers: %d updated, %d unchanged, %d failed\n",
		summary.Total, summary.Updated, summary.Unchanged, summary.Failed)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
