package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

const quoteRequestTimeout = 10 * time.Second

// QuoteClient fetches the latest traded price for a ticker from a
// chart-style quote API.
type QuoteClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewQuoteClient creates a client for the market quote API.
func NewQuoteClient(baseURL string) *QuoteClient {
	return &QuoteClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: quoteRequestTimeout,
		},
	}
}

// chartResponse maps the subset of the chart API response we read. Prices are
// decoded as json.Number so no binary float conversion happens on the way to
// decimal.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string      `json:"symbol"`
				RegularMarketPrice json.Number `json:"regularMarketPrice"`
				RegularMarketTime  int64       `json:"regularMarketTime"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// LatestPrice returns the latest traded price and its timestamp for a ticker
// symbol. It returns ErrPriceNotFound when the API knows no such symbol, and
// a plain error for transport failures.
func (c *QuoteClient) LatestPrice(ctx context.Context, symbol string) (*domain.PriceQuote, error) {
	reqURL := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: symbol %s", ErrPriceNotFound, symbol)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote API returned status %d for %s", resp.StatusCode, symbol)
	}

	var chart chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chart); err != nil {
		return nil, fmt.Errorf("failed to decode quote response for %s: %w", symbol, err)
	}

	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: symbol %s: %s", ErrPriceNotFound, symbol, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("%w: symbol %s", ErrPriceNotFound, symbol)
	}

	meta := chart.Chart.Result[0].Meta
	// A 200 response can carry a result with no regularMarketPrice at all
	// (e.g. a delisted symbol). That is missing data, not a broken feed.
	if meta.RegularMarketPrice == "" {
		return nil, fmt.Errorf("%w: no price in chart response for %s", ErrPriceNotFound, symbol)
	}
	price, err := decimal.NewFromString(meta.RegularMarketPrice.String())
	if err != nil {
		return nil, fmt.Errorf("invalid price %q for %s: %w", meta.RegularMarketPrice, symbol, err)
	}

	return &domain.PriceQuote{
		Price: price,
		AsOf:  time.Unix(meta.RegularMarketTime, 0).UTC(),
	}, nil
}
