package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration of the distance service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port of the HTTP API server.
// - Places: Where the reference table is loaded from and how names are matched.
// - Geocoding: Enrichment worker settings, used only with the postgres source.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env       string
	Port      int
	Places    PlacesConfig
	Geocoding GeocodingConfig
	Database  PostgresConfig
}

// PlacesConfig selects the reference table and the lookup behaviour.
type PlacesConfig struct {
	Source      string        // provinces, major, file, xlsx or postgres
	Path        string        // file or workbook path
	Sheet       string        // workbook sheet, first sheet when empty
	MatchMode   string        // exact or folded
	ResultDelay time.Duration // delay before the CLI shows a result; the API always answers at once
	CacheTTL    time.Duration // lifetime of cached pair distances
}

// GeocodingConfig holds the settings of the coordinate enrichment worker.
type GeocodingConfig struct {
	ProviderType  string        // google or nominatim
	APIKey        string        // required for google
	Workers       int           // concurrent geocoding workers
	Interval      time.Duration // polling interval
	AddressSuffix string        // appended to every place name before geocoding
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// MustLoad reads the configuration from the environment, optionally seeded from a .env file.
// It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(setDefaultEnv("MESAFE_PORT", "8080"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	delay, err := time.ParseDuration(setDefaultEnv("MESAFE_RESULT_DELAY", "0s"))
	if err != nil || delay < 0 {
		panic("failed to parse result delay from configuration")
	}

	cacheTTL, err := time.ParseDuration(setDefaultEnv("MESAFE_CACHE_TTL", "10m"))
	if err != nil {
		panic("failed to parse cache TTL from configuration")
	}

	workers, err := strconv.Atoi(setDefaultEnv("MESAFE_WORKERS", "1"))
	if err != nil {
		panic("failed to parse workers from configuration, must be an integer types")
	}

	interval, err := time.ParseDuration(setDefaultEnv("MESAFE_INTERVAL", "10m"))
	if err != nil {
		panic("failed to parse interval from configuration")
	}

	return &Config{
		Env:  setDefaultEnv("MESAFE_ENV", "production"),
		Port: port,
		Places: PlacesConfig{
			Source:      setDefaultEnv("MESAFE_PLACES_SOURCE", "provinces"),
			Path:        os.Getenv("MESAFE_PLACES_PATH"),
			Sheet:       os.Getenv("MESAFE_PLACES_SHEET"),
			MatchMode:   setDefaultEnv("MESAFE_MATCH_MODE", "exact"),
			ResultDelay: delay,
			CacheTTL:    cacheTTL,
		},
		Geocoding: GeocodingConfig{
			ProviderType:  setDefaultEnv("MESAFE_PROVIDER_TYPE", "nominatim"),
			APIKey:        os.Getenv("MESAFE_PROVIDER_KEY"),
			Workers:       workers,
			Interval:      interval,
			AddressSuffix: setDefaultEnv("MESAFE_ADDRESS_SUFFIX", ", Türkiye"),
		},
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     setDefaultEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
