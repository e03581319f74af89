package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBSource      string `mapstructure:"DB_SOURCE"`
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`
	LogFormat     string `mapstructure:"LOG_FORMAT"`

	// Google Maps geocoding.
	GoogleMapsAPIKey   string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GeocodingEnabled   bool          `mapstructure:"GEOCODING_ENABLED"`
	GeocodingBaseURL   string        `mapstructure:"GEOCODING_BASE_URL"`
	GeocodingTimeout   time.Duration `mapstructure:"GEOCODING_TIMEOUT"`
	GeocodingCacheSize int           `mapstructure:"GEOCODING_CACHE_SIZE"`
	GeocodingCacheTTL  time.Duration `mapstructure:"GEOCODING_CACHE_TTL"`
}

const DefaultGeocodingBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

// LoadConfig reads app.env from path, then lets environment variables override it.
// A missing config file is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("GEOCODING_BASE_URL", DefaultGeocodingBaseURL)
	v.SetDefault("GEOCODING_TIMEOUT", "10s")
	v.SetDefault("GEOCODING_CACHE_SIZE", 1000)
	v.SetDefault("GEOCODING_CACHE_TTL", "24h")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	// Geocoding follows the API key unless it is switched explicitly.
	config.GeocodingEnabled = config.GoogleMapsAPIKey != ""
	if v.IsSet("GEOCODING_ENABLED") && v.GetString("GEOCODING_ENABLED") != "" {
		config.GeocodingEnabled = v.GetBool("GEOCODING_ENABLED")
	}

	if config.GeocodingEnabled && config.GoogleMapsAPIKey == "" {
		return Config{}, errors.New("config: GEOCODING_ENABLED is true but GOOGLE_MAPS_API_KEY is not set")
	}
	if config.GeocodingTimeout <= 0 {
		return Config{}, fmt.Errorf("config: invalid GEOCODING_TIMEOUT %q", v.GetString("GEOCODING_TIMEOUT"))
	}
	if config.GeocodingCacheSize < 0 {
		return Config{}, fmt.Errorf("config: invalid GEOCODING_CACHE_SIZE %d", config.GeocodingCacheSize)
	}

	return config, nil
}
