// Package ozon implements the Ozon seller API client.
package ozon

import (
	"context"
	"net/http"
	"time"

	"stock-sync/marketplace"
	"stock-sync/models"
	"stock-sync/syncerr"
	"stock-sync/utils"
)

const defaultBaseURL = "https://api-seller.ozon.ru"

const (
	pageLimit      = 1000
	stockBatchSize = 100
	priceBatchSize = 900
)

// Client talks to the Ozon seller API for one seller account.
type Client struct {
	// BaseURL of the seller API.
	BaseURL string

	clientID string
	apiKey   string
	hc       *http.Client
	logger   *utils.Logger
}

// New creates a ready-to-use Ozon client.
func New(clientID, apiKey string, timeout time.Duration, logger *utils.Logger) *Client {
	return &Client{
		BaseURL:  defaultBaseURL,
		clientID: clientID,
		apiKey:   apiKey,
		hc:       &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

func (c *Client) Name() string { return "ozon" }

func (c *Client) header() http.Header {
	h := http.Header{}
	h.Set("Client-Id", c.clientID)
	h.Set("Api-Key", c.apiKey)
	return h
}

// OfferIDs pages through the product list until the reported total has been
// fetched and returns the deduplicated offer identifiers.
func (c *Client) OfferIDs(ctx context.Context) ([]string, error) {
	ids := utils.NewOrderedSet()
	lastID := ""
	fetched := 0

	for {
		page, err := c.productPage(ctx, lastID)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			ids.Add(item.OfferID)
		}
		fetched += len(page.Items)
		lastID = page.LastID

		if len(page.Items) == 0 || fetched >= page.Total {
			break
		}
	}

	c.logger.Info("[ozon] Catalog holds %d offers", ids.Size())
	return ids.Values(), nil
}

type productListRequest struct {
	Filter productFilter `json:"filter"`
	LastID string        `json:"last_id"`
	Limit  int           `json:"limit"`
}

type productFilter struct {
	Visibility string `json:"visibility"`
}

type productListResponse struct {
	Result *productListResult `json:"result"`
}

type productListResult struct {
	Items []struct {
		OfferID string `json:"offer_id"`
	} `json:"items"`
	Total  int    `json:"total"`
	LastID string `json:"last_id"`
}

func (c *Client) productPage(ctx context.Context, lastID string) (*productListResult, error) {
	payload := productListRequest{
		Filter: productFilter{Visibility: "ALL"},
		LastID: lastID,
		Limit:  pageLimit,
	}

	const op = "ozon: product list"
	var resp productListResponse
	if err := marketplace.CallJSON(ctx, c.hc, op, http.MethodPost,
		c.BaseURL+"/v2/product/list", c.header(), payload, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, syncerr.Errorf(syncerr.Decode, op, "response has no result")
	}
	return resp.Result, nil
}

type stocksRequest struct {
	Stocks []stockItem `json:"stocks"`
}

type stockItem struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

// UploadStocks pushes stock levels in batches of 100, in order, aborting on
// the first failed batch.
func (c *Client) UploadStocks(ctx context.Context, levels []models.StockLevel) (int, error) {
	batches := utils.Chunk(levels, stockBatchSize)
	for i, batch := range batches {
		items := make([]stockItem, 0, len(batch))
		for _, lv := range batch {
			items = append(items, stockItem{OfferID: lv.OfferID, Stock: lv.Count})
		}
		if err := marketplace.CallJSON(ctx, c.hc, "ozon: import stocks", http.MethodPost,
			c.BaseURL+"/v1/product/import/stocks", c.header(), stocksRequest{Stocks: items}, nil); err != nil {
			return i, err
		}
	}

	c.logger.Info("[ozon] Uploaded %d stock levels in %d batches", len(levels), len(batches))
	return len(batches), nil
}

type pricesRequest struct {
	Prices []priceItem `json:"prices"`
}

type priceItem struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

// UploadPrices pushes prices in batches of 900, in order, aborting on the
// first failed batch.
func (c *Client) UploadPrices(ctx context.Context, prices []models.OfferPrice) (int, error) {
	batches := utils.Chunk(prices, priceBatchSize)
	for i, batch := range batches {
		items := make([]priceItem, 0, len(batch))
		for _, p := range batch {
			items = append(items, priceItem{
				AutoActionEnabled: "UNKNOWN",
				CurrencyCode:      "RUB",
				OfferID:           p.OfferID,
				OldPrice:          "0",
				Price:             p.Price,
			})
		}
		if err := marketplace.CallJSON(ctx, c.hc, "ozon: import prices", http.MethodPost,
			c.BaseURL+"/v1/product/import/prices", c.header(), pricesRequest{Prices: items}, nil); err != nil {
			return i, err
		}
	}

	c.logger.Info("[ozon] Uploaded %d prices in %d batches", len(prices), len(batches))
	return len(batches), nil
}
