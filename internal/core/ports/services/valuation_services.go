package services

import (
	"context"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NAVSource provides daily published net asset values for mutual fund
// scheme codes.
type NAVSource interface {
	// NAV returns the published price for a scheme code. Implementations
	// return pricefeed.ErrPriceNotFound when the code is not in the feed.
	NAV(ctx context.Context, code string) (*domain.PriceQuote, error)
}

// QuoteSource provides latest traded prices for ticker symbols.
type QuoteSource interface {
	// LatestPrice returns the latest trade price and timestamp for a symbol.
	LatestPrice(ctx context.Context, symbol string) (*domain.PriceQuote, error)
}

// PriceCache memoizes price lookups with a TTL.
type PriceCache interface {
	// Get retrieves a cached quote; the second return is false on a miss.
	Get(ctx context.Context, kind, code string) (*domain.PriceQuote, bool, error)

	// Set stores a quote.
	Set(ctx context.Context, kind, code string, quote domain.PriceQuote) error

	// Flush removes every cached price.
	Flush(ctx context.Context) error
}

// ValuationSvcFacade resolves prices and converts balances to monetary
// values. A price that cannot be resolved is a nil quote, never an error;
// valuation stays available when market data is down.
type ValuationSvcFacade interface {
	// ResolvePrice resolves the current unit price for an asset by type and
	// external code. Returns (nil, nil) when no price is available.
	ResolvePrice(ctx context.Context, asset domain.Asset) (*domain.PriceQuote, error)

	// ValueBalances prices a balance map into a Valuation, fetching quotes
	// for distinct assets concurrently. Missing prices contribute zero to
	// the total and are counted in UnknownPrices.
	ValueBalances(ctx context.Context, balances map[string]decimal.Decimal, assets map[string]domain.Asset) (*domain.Valuation, error)

	// FlushPriceCache clears all memoized prices.
	FlushPriceCache(ctx context.Context) error
}
