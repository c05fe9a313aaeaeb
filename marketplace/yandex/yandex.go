// Package yandex implements the Yandex Market partner API client. One Client
// serves one campaign (FBS or DBS) with its own warehouse.
package yandex

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"stock-sync/marketplace"
	"stock-sync/models"
	"stock-sync/syncerr"
	"stock-sync/utils"
)

const defaultBaseURL = "https://api.partner.market.yandex.ru"

const (
	pageLimit      = 200
	stockBatchSize = 2000
	priceBatchSize = 500
)

// Client talks to the partner API for a single campaign.
type Client struct {
	// BaseURL of the partner API.
	BaseURL string

	token       string
	campaignID  string
	warehouseID string
	label       string
	hc          *http.Client
	logger      *utils.Logger
}

// New creates a client for one campaign. The label tells campaigns apart in
// logs and the run report, e.g. "yandex-fbs".
func New(token, campaignID, warehouseID, label string, timeout time.Duration, logger *utils.Logger) *Client {
	return &Client{
		BaseURL:     defaultBaseURL,
		token:       token,
		campaignID:  campaignID,
		warehouseID: warehouseID,
		label:       label,
		hc:          &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

func (c *Client) Name() string { return c.label }

func (c *Client) header() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+c.token)
	h.Set("Accept", "application/json")
	return h
}

// OfferIDs pages through the offer mapping entries until the API stops
// returning a page token.
func (c *Client) OfferIDs(ctx context.Context) ([]string, error) {
	ids := utils.NewOrderedSet()
	pageToken := ""

	for {
		page, err := c.mappingPage(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		for _, entry := range page.OfferMappingEntries {
			ids.Add(entry.Offer.ShopSKU)
		}

		pageToken = page.Paging.NextPageToken
		if pageToken == "" {
			break
		}
	}

	c.logger.Info("[%s] Catalog holds %d offers", c.label, ids.Size())
	return ids.Values(), nil
}

type offerMappingsResponse struct {
	Result *offerMappingsResult `json:"result"`
}

type offerMappingsResult struct {
	Paging              paging              `json:"paging"`
	OfferMappingEntries []offerMappingEntry `json:"offerMappingEntries"`
}

type paging struct {
	NextPageToken string `json:"nextPageToken"`
}

type offerMappingEntry struct {
	Offer offerRef `json:"offer"`
}

type offerRef struct {
	ShopSKU string `json:"shopSku"`
}

func (c *Client) mappingPage(ctx context.Context, pageToken string) (*offerMappingsResult, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(pageLimit))
	if pageToken != "" {
		query.Set("page_token", pageToken)
	}
	endpoint := fmt.Sprintf("%s/campaigns/%s/offer-mapping-entries?%s", c.BaseURL, c.campaignID, query.Encode())

	op := c.label + ": offer mappings"
	var resp offerMappingsResponse
	if err := marketplace.CallJSON(ctx, c.hc, op, http.MethodGet, endpoint, c.header(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return nil, syncerr.Errorf(syncerr.Decode, op, "response has no result")
	}
	return resp.Result, nil
}

type stocksRequest struct {
	SKUs []skuStocks `json:"skus"`
}

type skuStocks struct {
	SKU         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []stockItem `json:"items"`
}

type stockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// UploadStocks pushes stock levels in batches of 2000, in order, aborting on
// the first failed batch. All records of one call share one updatedAt stamp.
func (c *Client) UploadStocks(ctx context.Context, levels []models.StockLevel) (int, error) {
	updatedAt := time.Now().UTC().Format(time.RFC3339)
	endpoint := fmt.Sprintf("%s/campaigns/%s/offers/stocks", c.BaseURL, c.campaignID)
	op := c.label + ": update stocks"

	batches := utils.Chunk(levels, stockBatchSize)
	for i, batch := range batches {
		skus := make([]skuStocks, 0, len(batch))
		for _, lv := range batch {
			skus = append(skus, skuStocks{
				SKU:         lv.OfferID,
				WarehouseID: c.warehouseID,
				Items: []stockItem{{
					Count:     lv.Count,
					Type:      "FIT",
					UpdatedAt: updatedAt,
				}},
			})
		}
		if err := marketplace.CallJSON(ctx, c.hc, op, http.MethodPut, endpoint, c.header(), stocksRequest{SKUs: skus}, nil); err != nil {
			return i, err
		}
	}

	c.logger.Info("[%s] Uploaded %d stock levels in %d batches", c.label, len(levels), len(batches))
	return len(batches), nil
}

type pricesRequest struct {
	Offers []offerPrice `json:"offers"`
}

type offerPrice struct {
	ID    string     `json:"id"`
	Price priceValue `json:"price"`
}

type priceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

// UploadPrices pushes prices in batches of 500, in order, aborting on the
// first failed batch. Digit-only price strings become integer values on the
// wire.
func (c *Client) UploadPrices(ctx context.Context, prices []models.OfferPrice) (int, error) {
	endpoint := fmt.Sprintf("%s/campaigns/%s/offer-prices/updates", c.BaseURL, c.campaignID)
	op := c.label + ": update prices"

	batches := utils.Chunk(prices, priceBatchSize)
	for i, batch := range batches {
		offers := make([]offerPrice, 0, len(batch))
		for _, p := range batch {
			value, err := strconv.Atoi(p.Price)
			if err != nil {
				return i, syncerr.Errorf(syncerr.DataShape, op, "price %q for offer %s is not numeric", p.Price, p.OfferID)
			}
			offers = append(offers, offerPrice{
				ID:    p.OfferID,
				Price: priceValue{Value: value, CurrencyID: "RUR"},
			})
		}
		if err := marketplace.CallJSON(ctx, c.hc, op, http.MethodPost, endpoint, c.header(), pricesRequest{Offers: offers}, nil); err != nil {
			return i, err
		}
	}

	c.logger.Info("[%s] Uploaded %d prices in %d batches", c.label, len(prices), len(batches))
	return len(batches), nil
}
