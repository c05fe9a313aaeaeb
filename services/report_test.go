package services

import (
	"testing"

	"stock-sync/models"
)

func sampleResults() []*models.MarketplaceResult {
	return []*models.MarketplaceResult{
		{Marketplace: "ozon", Offers: 120, Matched: 80, ZeroFilled: 40, InStock: 75, PriceUpdates: 80, StockBatches: 2, PriceBatches: 1},
		{Marketplace: "yandex-fbs", Offers: 60, Matched: 50, ZeroFilled: 10, InStock: 48, PriceUpdates: 50, StockBatches: 1, PriceBatches: 1},
		{Marketplace: "yandex-dbs", Offers: 60, Matched: 50, ZeroFilled: 10, InStock: 44, PriceUpdates: 50, StockBatches: 1, PriceBatches: 1},
	}
}

func TestReportTotals(t *testing.T) {
	svc := NewReportService(newTestLogger())
	r := svc.Build(200, sampleResults())

	if r.FeedRecords != 200 {
		t.Errorf("FeedRecords: got %d, want 200", r.FeedRecords)
	}
	if r.TotalOffers != 240 {
		t.Errorf("TotalOffers: got %d, want 240", r.TotalOffers)
	}
	if r.TotalMatched != 180 {
		t.Errorf("TotalMatched: got %d, want 180", r.TotalMatched)
	}
	if r.TotalZeroFilled != 60 {
		t.Errorf("TotalZeroFilled: got %d, want 60", r.TotalZeroFilled)
	}
	if r.TotalInStock != 167 {
		t.Errorf("TotalInStock: got %d, want 167", r.TotalInStock)
	}
	if r.TotalPriceUpdates != 180 {
		t.Errorf("TotalPriceUpdates: got %d, want 180", r.TotalPriceUpdates)
	}
}

func TestReportKeepsResultOrder(t *testing.T) {
	svc := NewReportService(newTestLogger())
	r := svc.Build(0, sampleResults())

	want := []string{"ozon", "yandex-fbs", "yandex-dbs"}
	if len(r.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(r.Results), len(want))
	}
	for i := range want {
		if r.Results[i].Marketplace != want[i] {
			t.Errorf("Results[%d] = %q; want %q", i, r.Results[i].Marketplace, want[i])
		}
	}
}

func TestReportEmptyRun(t *testing.T) {
	svc := NewReportService(newTestLogger())
	r := svc.Build(0, nil)

	if r.TotalOffers != 0 || r.TotalMatched != 0 || r.TotalPriceUpdates != 0 {
		t.Errorf("empty run should produce zero totals, got %+v", r)
	}
	if len(r.Results) != 0 {
		t.Errorf("empty run should carry no results, got %d", len(r.Results))
	}
}
