package main

import (
	"context"
	"errors"
	"net"
	"os"
	"time"

	"stock-sync/config"
	"stock-sync/feed"
	"stock-sync/marketplace"
	"stock-sync/marketplace/ozon"
	"stock-sync/marketplace/yandex"
	"stock-sync/models"
	"stock-sync/services"
	"stock-sync/syncerr"
	"stock-sync/utils"
)

func main() {
	logger := utils.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	logger.Info("=== Marketplace stock sync starting ===")
	logger.Info("Config — feed: %s | timeout: %ds | campaigns: fbs=%s dbs=%s",
		cfg.FeedURL, cfg.HTTPTimeoutSec, cfg.CampaignFBS, cfg.CampaignDBS)

	if err := run(context.Background(), cfg, logger); err != nil {
		logFailure(logger, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *utils.Logger) error {
	loader := feed.New(cfg.FeedURL, ".", cfg.HTTPTimeout(), logger)
	records, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	sellers := []marketplace.Seller{
		ozon.New(cfg.OzonClientID, cfg.OzonAPIKey, cfg.HTTPTimeout(), logger),
		yandex.New(cfg.MarketToken, cfg.CampaignFBS, cfg.WarehouseFBS, "yandex-fbs", cfg.HTTPTimeout(), logger),
		yandex.New(cfg.MarketToken, cfg.CampaignDBS, cfg.WarehouseDBS, "yandex-dbs", cfg.HTTPTimeout(), logger),
	}

	reconciler := services.NewReconciler(logger)

	results := make([]*models.MarketplaceResult, 0, len(sellers))
	for _, seller := range sellers {
		result, err := syncSeller(ctx, seller, reconciler, records, logger)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	reportSvc := services.NewReportService(logger)
	reportSvc.Print(reportSvc.Build(len(records), results))

	logger.Info("=== Sync finished ===")
	return nil
}

func syncSeller(ctx context.Context, seller marketplace.Seller, reconciler *services.Reconciler,
	records []models.StockRecord, logger *utils.Logger) (*models.MarketplaceResult, error) {

	started := time.Now()
	logger.Info("[%s] Sync starting", seller.Name())

	offerIDs, err := seller.OfferIDs(ctx)
	if err != nil {
		return nil, err
	}

	levels, unmatched, err := reconciler.StockLevels(records, offerIDs)
	if err != nil {
		return nil, err
	}

	stockBatches, err := seller.UploadStocks(ctx, levels)
	if err != nil {
		return nil, err
	}

	prices, err := reconciler.Prices(records, offerIDs)
	if err != nil {
		return nil, err
	}

	priceBatches, err := seller.UploadPrices(ctx, prices)
	if err != nil {
		return nil, err
	}

	result := &models.MarketplaceResult{
		Marketplace:  seller.Name(),
		Offers:       len(offerIDs),
		Matched:      len(levels) - len(unmatched),
		ZeroFilled:   len(unmatched),
		InStock:      countInStock(levels),
		PriceUpdates: len(prices),
		StockBatches: stockBatches,
		PriceBatches: priceBatches,
		Duration:     time.Since(started),
	}

	logger.Info("[%s] Sync done in %s", seller.Name(), result.Duration.Round(time.Millisecond))
	return result, nil
}

func countInStock(levels []models.StockLevel) int {
	n := 0
	for _, lv := range levels {
		if lv.Count > 0 {
			n++
		}
	}
	return n
}

func logFailure(logger *utils.Logger, err error) {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
		logger.Error("Run aborted, request timed out: %v", err)
	case syncerr.KindOf(err) == syncerr.Transport:
		logger.Error("Run aborted, connection failed: %v", err)
	case syncerr.KindOf(err) == syncerr.Decode:
		logger.Error("Run aborted, malformed response: %v", err)
	case syncerr.KindOf(err) == syncerr.DataShape:
		logger.Error("Run aborted, bad feed data: %v", err)
	default:
		logger.Error("Run aborted: %v", err)
	}
}
