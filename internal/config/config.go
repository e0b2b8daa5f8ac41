package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all run settings for a batch search.
type Config struct {
	// Worker pool
	Workers        int           `json:"workers"`
	RateLimitDelay time.Duration `json:"rate_limit_delay"` // min gap between calls per worker
	MaxRoutes      int           `json:"max_routes"`       // 0 = no cap

	// Route eligibility
	EasyVisaOnly       bool     `json:"easy_visa_only"`
	AllowedCountries   []string `json:"allowed_countries"`    // empty = all eligible
	FingerprintDates   bool     `json:"fingerprint_dates"`    // include date window in route identity
	CanonicalOrderOnly bool     `json:"canonical_order_only"` // restrict to the canonical continent order

	// Carrier filter
	Carrier string `json:"carrier"`
	Hub     string `json:"hub"`

	// Travel dates
	DepartDate string `json:"depart_date"` // YYYY-MM-DD
	ReturnBy   string `json:"return_by"`   // optional window end

	// Flight search provider
	SearchBaseURL string        `json:"search_base_url"`
	SearchTimeout time.Duration `json:"search_timeout"`

	// Persistence
	ProgressFile string        `json:"progress_file"`
	ResultsFile  string        `json:"results_file"`
	DBPath       string        `json:"db_path"`
	LegCacheTTL  time.Duration `json:"leg_cache_ttl"` // 0 = cache disabled

	// Observability
	MetricsAddr string `json:"metrics_addr"` // "" = disabled
	Debug       bool   `json:"debug"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Workers:        8,
		RateLimitDelay: time.Second,
		EasyVisaOnly:   true,
		Carrier:        "Turkish Airlines",
		Hub:            "IST",
		DepartDate:     "2026-10-02",
		SearchBaseURL:  "http://localhost:8080",
		SearchTimeout:  30 * time.Second,
		ProgressFile:   "flight_search_progress.json",
		ResultsFile:    "flight_search_results.json",
		DBPath:         "routesweep.db",
		LegCacheTTL:    6 * time.Hour,
	}
}

// Load builds a Config from defaults overridden by environment variables.
// A .env file in the working directory is honored if present.
func Load() *Config {
	godotenv.Load()

	c := Default()
	c.Workers = getEnvAsInt("ROUTESWEEP_WORKERS", c.Workers)
	c.RateLimitDelay = getEnvAsDuration("ROUTESWEEP_RATE_DELAY", c.RateLimitDelay)
	c.MaxRoutes = getEnvAsInt("ROUTESWEEP_MAX_ROUTES", c.MaxRoutes)
	c.EasyVisaOnly = getEnvAsBool("ROUTESWEEP_EASY_VISA_ONLY", c.EasyVisaOnly)
	if v := getEnv("ROUTESWEEP_COUNTRIES", ""); v != "" {
		c.AllowedCountries = splitList(v)
	}
	c.FingerprintDates = getEnvAsBool("ROUTESWEEP_FINGERPRINT_DATES", c.FingerprintDates)
	c.CanonicalOrderOnly = getEnvAsBool("ROUTESWEEP_CANONICAL_ORDER", c.CanonicalOrderOnly)
	c.Carrier = getEnv("ROUTESWEEP_CARRIER", c.Carrier)
	c.Hub = getEnv("ROUTESWEEP_HUB", c.Hub)
	c.DepartDate = getEnv("ROUTESWEEP_DEPART", c.DepartDate)
	c.ReturnBy = getEnv("ROUTESWEEP_RETURN_BY", c.ReturnBy)
	c.SearchBaseURL = getEnv("ROUTESWEEP_SEARCH_URL", c.SearchBaseURL)
	c.SearchTimeout = getEnvAsDuration("ROUTESWEEP_SEARCH_TIMEOUT", c.SearchTimeout)
	c.ProgressFile = getEnv("ROUTESWEEP_PROGRESS_FILE", c.ProgressFile)
	c.ResultsFile = getEnv("ROUTESWEEP_RESULTS_FILE", c.ResultsFile)
	c.DBPath = getEnv("ROUTESWEEP_DB", c.DBPath)
	c.LegCacheTTL = getEnvAsDuration("ROUTESWEEP_LEG_CACHE_TTL", c.LegCacheTTL)
	c.MetricsAddr = getEnv("ROUTESWEEP_METRICS_ADDR", c.MetricsAddr)
	c.Debug = getEnvAsBool("ROUTESWEEP_DEBUG", c.Debug)
	return c
}

// Validate reports configuration errors that make a run impossible.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.RateLimitDelay < 0 {
		return fmt.Errorf("rate limit delay must not be negative, got %s", c.RateLimitDelay)
	}
	if strings.TrimSpace(c.Carrier) == "" {
		return fmt.Errorf("carrier must not be empty")
	}
	if strings.TrimSpace(c.Hub) == "" {
		return fmt.Errorf("hub must not be empty")
	}
	if c.DepartDate != "" {
		if _, err := time.Parse("2006-01-02", c.DepartDate); err != nil {
			return fmt.Errorf("depart date %q: %w", c.DepartDate, err)
		}
	}
	if c.ReturnBy != "" {
		if _, err := time.Parse("2006-01-02", c.ReturnBy); err != nil {
			return fmt.Errorf("return-by date %q: %w", c.ReturnBy, err)
		}
	}
	if strings.TrimSpace(c.ProgressFile) == "" || strings.TrimSpace(c.ResultsFile) == "" {
		return fmt.Errorf("progress and results file paths must not be empty")
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
