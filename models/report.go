package models

import "time"

// MarketplaceResult collects the counters of one seller's sync pass.
type MarketplaceResult struct {
	Marketplace  string
	Offers       int
	Matched      int
	ZeroFilled   int
	InStock      int
	PriceUpdates int
	StockBatches int
	PriceBatches int
	Duration     time.Duration
}

// RunReport holds the aggregated numbers for the end-of-run summary.
type RunReport struct {
	FeedRecords       int
	TotalOffers       int
	TotalMatched      int
	TotalZeroFilled   int
	TotalInStock      int
	TotalPriceUpdates int
	Results           []*MarketplaceResult
}
