package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"inventory-api/internal/config"
	"inventory-api/internal/geocoding"
	"inventory-api/internal/observability"
	"inventory-api/internal/repository"
	"inventory-api/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func main() {
	sodaFile := flag.String("sodas", "", "Path to a CSV of sodas (name,abbreviation,low_calorie)")
	retailerFile := flag.String("retailers", "", "Path to a CSV of retailers (name,street_address,city,postcode,country,sodas)")
	flag.Parse()

	if *sodaFile == "" && *retailerFile == "" {
		fmt.Println("Error: at least one of --sodas or --retailers is required")
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := context.Background()

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	repo := repository.NewRepository(conn)
	if err := repo.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	metrics := observability.NewMetrics()
	sodaService := service.NewSodaService(repo)

	if *sodaFile != "" {
		fmt.Printf("Starting soda import from file: %s\n", *sodaFile)

		sodas, err := parseSodaCSV(*sodaFile)
		if err != nil {
			fmt.Printf("Error parsing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Parsed %d sodas\n", len(sodas))

		n, err := sodaService.Import(ctx, sodas)
		if err != nil {
			fmt.Printf("Error importing sodas: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Successfully imported %d sodas\n", n)
	}

	if *retailerFile != "" {
		fmt.Printf("Starting retailer import from file: %s\n", *retailerFile)

		rows, err := parseRetailerCSV(*retailerFile)
		if err != nil {
			fmt.Printf("Error parsing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Parsed %d retailers\n", len(rows))

		catalog, err := sodaService.List(ctx)
		if err != nil {
			fmt.Printf("Error loading sodas: %v\n", err)
			os.Exit(1)
		}

		var geocoder service.Geocoder
		if cfg.GeocodingEnabled {
			geocoder = geocoding.New(geocoding.Options{
				APIKey:    cfg.GoogleMapsAPIKey,
				BaseURL:   cfg.GeocodingBaseURL,
				Timeout:   cfg.GeocodingTimeout,
				CacheSize: cfg.GeocodingCacheSize,
				CacheTTL:  cfg.GeocodingCacheTTL,
			}, metrics, logger)
		}
		retailerService := service.NewRetailerService(repo, geocoder, metrics, logger)

		imported, failed := 0, 0
		for _, row := range rows {
			in, err := row.input(catalog)
			if err == nil {
				_, err = retailerService.Create(ctx, in)
			}
			if err != nil {
				failed++
				logger.Error().Err(err).Int("line", row.line).Str("retailer", row.name).Msg("skipping retailer")
				continue
			}
			imported++
		}
		fmt.Printf("Imported %d retailers, %d failed\n", imported, failed)
		if failed > 0 {
			os.Exit(1)
		}
	}
}
