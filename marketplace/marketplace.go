// Package marketplace defines the contract the seller-platform clients
// satisfy and the JSON call helper they share.
package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"stock-sync/models"
	"stock-sync/syncerr"
)

// Seller is one marketplace account the sync run pushes updates to.
type Seller interface {
	// Name identifies the seller in logs and the run report.
	Name() string
	// OfferIDs returns every offer identifier currently listed, deduplicated,
	// in catalog order.
	OfferIDs(ctx context.Context) ([]string, error)
	// UploadStocks pushes stock levels in fixed-size batches and returns the
	// number of batches sent.
	UploadStocks(ctx context.Context, levels []models.StockLevel) (int, error)
	// UploadPrices pushes prices in fixed-size batches and returns the number
	// of batches sent.
	UploadPrices(ctx context.Context, prices []models.OfferPrice) (int, error)
}

// CallJSON issues one JSON request and decodes the response into out when out
// is non-nil. Network failures and non-2xx statuses come back as transport
// errors, an undecodable body as a decode error, all tagged with op.
func CallJSON(ctx context.Context, client *http.Client, op, method, url string, header http.Header, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return syncerr.Wrap(syncerr.Decode, op, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return syncerr.Wrap(syncerr.Transport, op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return syncerr.Wrap(syncerr.Transport, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return syncerr.Wrap(syncerr.Transport, op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return syncerr.Errorf(syncerr.Transport, op, "status %d: %s", resp.StatusCode, snippet(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return syncerr.Wrap(syncerr.Decode, op, err)
	}
	return nil
}

// snippet trims a response body down to error-message size.
func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
