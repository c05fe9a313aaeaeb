package services

import (
	"fmt"
	"strings"
	"time"

	"stock-sync/models"
	"stock-sync/utils"
)

type ReportService struct {
	logger *utils.Logger
}

func NewReportService(logger *utils.Logger) *ReportService {
	return &ReportService{logger: logger}
}

func (s *ReportService) Build(feedRecords int, results []*models.MarketplaceResult) *models.RunReport {
	report := &models.RunReport{
		FeedRecords: feedRecords,
		Results:     results,
	}

	for _, r := range results {
		report.TotalOffers += r.Offers
		report.TotalMatched += r.Matched
		report.TotalZeroFilled += r.ZeroFilled
		report.TotalInStock += r.InStock
		report.TotalPriceUpdates += r.PriceUpdates
	}

	return report
}

func (s *ReportService) Print(r *models.RunReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  SYNC RUN SUMMARY\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Vendor Feed\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Stock records parsed  : \033[1m%d\033[0m\n", r.FeedRecords)
	fmt.Println()

	for _, m := range r.Results {
		fmt.Printf("\033[1;33m  %s\033[0m\n", strings.ToUpper(m.Marketplace))
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  Offers in catalog     : \033[1m%d\033[0m\n", m.Offers)
		fmt.Printf("  Matched to feed       : \033[1;32m%d\033[0m\n", m.Matched)
		fmt.Printf("  Zero-filled           : \033[1;31m%d\033[0m\n", m.ZeroFilled)
		fmt.Printf("  In stock              : \033[1m%d\033[0m\n", m.InStock)
		fmt.Printf("  Price updates         : \033[1m%d\033[0m\n", m.PriceUpdates)
		fmt.Printf("  Batches (stock/price) : %d/%d\n", m.StockBatches, m.PriceBatches)
		fmt.Printf("  Duration              : %s\n", m.Duration.Round(time.Millisecond))
		fmt.Println()
	}

	fmt.Printf("\033[1;33m  Totals\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Offers synced         : \033[1m%d\033[0m\n", r.TotalOffers)
	fmt.Printf("  Stock from feed       : \033[1;32m%d\033[0m\n", r.TotalMatched)
	fmt.Printf("  Zero-filled           : \033[1;31m%d\033[0m\n", r.TotalZeroFilled)
	fmt.Printf("  In stock              : \033[1m%d\033[0m\n", r.TotalInStock)
	fmt.Printf("  Price updates         : \033[1m%d\033[0m\n", r.TotalPriceUpdates)

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}
