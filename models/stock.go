package models

// StockRecord is one row of the vendor's inventory spreadsheet, kept raw.
// Quantity and Price stay untouched until reconciliation normalizes them.
type StockRecord struct {
	Code     string
	Quantity string
	Price    string
}

// StockLevel is a normalized stock update for a single marketplace offer.
type StockLevel struct {
	OfferID string
	Count   int
}

// OfferPrice is a normalized price update for a single marketplace offer.
// Price holds digits only, e.g. "5990".
type OfferPrice struct {
	OfferID string
	Price   string
}
