package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultFeedURL = "https://timeworld.ru/upload/files/ostatki.zip"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	OzonClientID string
	OzonAPIKey   string

	MarketToken  string
	CampaignFBS  string
	CampaignDBS  string
	WarehouseFBS string
	WarehouseDBS string

	FeedURL        string
	HTTPTimeoutSec int
}

// Load reads the .env file and returns a populated Config. It fails when a
// required credential or identifier is missing.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	var missing []string
	cfg := &Config{
		OzonClientID: requireEnv("CLIENT_ID", &missing),
		OzonAPIKey:   requireEnv("SELLER_TOKEN", &missing),

		MarketToken:  requireEnv("MARKET_TOKEN", &missing),
		CampaignFBS:  requireEnv("FBS_ID", &missing),
		CampaignDBS:  requireEnv("DBS_ID", &missing),
		WarehouseFBS: requireEnv("WAREHOUSE_FBS_ID", &missing),
		WarehouseDBS: requireEnv("WAREHOUSE_DBS_ID", &missing),

		FeedURL:        getEnv("STOCK_FEED_URL", defaultFeedURL),
		HTTPTimeoutSec: getEnvInt("HTTP_TIMEOUT_SEC", 30),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("config: missing required env vars: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// HTTPTimeout returns the timeout shared by all outbound HTTP clients.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}

func requireEnv(key string, missing *[]string) string {
	val := os.Getenv(key)
	if val == "" {
		*missing = append(*missing, key)
	}
	return val
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
