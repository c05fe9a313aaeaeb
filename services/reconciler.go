package services

import (
	"strconv"
	"strings"

	"stock-sync/models"
	"stock-sync/syncerr"
	"stock-sync/utils"
)

// Quantity strings with a fixed mapping in the vendor feed. A literal "1"
// counts as none on the marketplaces.
const (
	quantityPlenty = ">10"
	quantityStub   = "1"
)

// Reconciler merges vendor stock records with a marketplace catalog into
// upload-ready stock and price updates.
type Reconciler struct {
	logger *utils.Logger
}

// NewReconciler creates a Reconciler with the given logger.
func NewReconciler(logger *utils.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// StockLevels builds one stock update per offer identifier. Offers with a
// matching vendor record get the normalized vendor count, every other offer
// is zeroed. The returned unmatched list holds the zeroed identifiers.
// Neither input is modified.
func (r *Reconciler) StockLevels(records []models.StockRecord, offerIDs []string) ([]models.StockLevel, []string, error) {
	remaining := utils.NewOrderedSet(offerIDs...)
	levels := make([]models.StockLevel, 0, remaining.Size())

	for _, rec := range records {
		if !remaining.Remove(rec.Code) {
			continue
		}
		count, err := stockCount(rec.Quantity)
		if err != nil {
			return nil, nil, err
		}
		levels = append(levels, models.StockLevel{OfferID: rec.Code, Count: count})
	}

	unmatched := remaining.Values()
	for _, id := range unmatched {
		levels = append(levels, models.StockLevel{OfferID: id, Count: 0})
	}

	r.logger.Info("[reconcile] %d offers: %d matched, %d zero-filled",
		len(levels), len(levels)-len(unmatched), len(unmatched))
	return levels, unmatched, nil
}

// Prices builds one price update per vendor record whose code is listed on
// the marketplace, first match wins. Offers without vendor data get no price
// update. Neither input is modified.
func (r *Reconciler) Prices(records []models.StockRecord, offerIDs []string) ([]models.OfferPrice, error) {
	remaining := utils.NewOrderedSet(offerIDs...)
	prices := make([]models.OfferPrice, 0, len(records))

	for _, rec := range records {
		if !remaining.Remove(rec.Code) {
			continue
		}
		price, err := normalizePrice(rec.Price)
		if err != nil {
			return nil, err
		}
		prices = append(prices, models.OfferPrice{OfferID: rec.Code, Price: price})
	}

	r.logger.Info("[reconcile] %d of %d offers priced", len(prices), len(offerIDs))
	return prices, nil
}

// stockCount converts a vendor quantity string into a marketplace count.
func stockCount(quantity string) (int, error) {
	switch quantity {
	case quantityPlenty:
		return 100, nil
	case quantityStub:
		return 0, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return 0, syncerr.Errorf(syncerr.DataShape, "reconcile: stock count", "quantity %q is not numeric", quantity)
	}
	return n, nil
}

// normalizePrice reduces a feed price like "5'990.00 руб." to its digit-only
// integer part, "5990".
func normalizePrice(price string) (string, error) {
	integer := strings.SplitN(price, ".", 2)[0]

	var b strings.Builder
	for _, r := range integer {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", syncerr.Errorf(syncerr.DataShape, "reconcile: price", "price %q has no digits", price)
	}
	return b.String(), nil
}
