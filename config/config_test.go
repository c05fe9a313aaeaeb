package config

import (
	"testing"
	"time"
)

var requiredVars = []string{
	"CLIENT_ID", "SELLER_TOKEN", "MARKET_TOKEN",
	"FBS_ID", "DBS_ID", "WAREHOUSE_FBS_ID", "WAREHOUSE_DBS_ID",
}

func TestLoadFailsOnMissingVars(t *testing.T) {
	for _, key := range requiredVars {
		t.Setenv(key, "")
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail when required env vars are missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range requiredVars {
		t.Setenv(key, "x")
	}
	t.Setenv("STOCK_FEED_URL", "")
	t.Setenv("HTTP_TIMEOUT_SEC", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.FeedURL != defaultFeedURL {
		t.Errorf("FeedURL = %q; want default %q", cfg.FeedURL, defaultFeedURL)
	}
	if cfg.HTTPTimeout() != 30*time.Second {
		t.Errorf("HTTPTimeout = %v; want 30s", cfg.HTTPTimeout())
	}
}

func TestLoadReadsValues(t *testing.T) {
	for _, key := range requiredVars {
		t.Setenv(key, "val-"+key)
	}
	t.Setenv("STOCK_FEED_URL", "https://vendor.example/feed.zip")
	t.Setenv("HTTP_TIMEOUT_SEC", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.OzonClientID != "val-CLIENT_ID" {
		t.Errorf("OzonClientID = %q; want %q", cfg.OzonClientID, "val-CLIENT_ID")
	}
	if cfg.CampaignDBS != "val-DBS_ID" {
		t.Errorf("CampaignDBS = %q; want %q", cfg.CampaignDBS, "val-DBS_ID")
	}
	if cfg.FeedURL != "https://vendor.example/feed.zip" {
		t.Errorf("FeedURL = %q; want override", cfg.FeedURL)
	}
	if cfg.HTTPTimeout() != 5*time.Second {
		t.Errorf("HTTPTimeout = %v; want 5s", cfg.HTTPTimeout())
	}
}
