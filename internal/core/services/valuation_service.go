package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/innajain/ledger-sub000/internal/core/domain"
	portssvc "github.com/innajain/ledger-sub000/internal/core/ports/services"
	"github.com/innajain/ledger-sub000/internal/pricefeed"
	"github.com/innajain/ledger-sub000/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentPriceFetches bounds the fan-out against the external feeds.
const maxConcurrentPriceFetches = 5

// valuationService resolves asset prices and converts balances to monetary
// values. Price resolution is deliberately forgiving: a source being down or
// a code being absent yields a nil quote, never an error, so valuations stay
// available whatever the market data is doing.
type valuationService struct {
	BaseService
	navSource   portssvc.NAVSource
	quoteSource portssvc.QuoteSource
	priceCache  portssvc.PriceCache
}

// NewValuationService creates a new valuation service.
func NewValuationService(navSource portssvc.NAVSource, quoteSource portssvc.QuoteSource, priceCache portssvc.PriceCache) portssvc.ValuationSvcFacade {
	return &valuationService{navSource: navSource, quoteSource: quoteSource, priceCache: priceCache}
}

var _ portssvc.ValuationSvcFacade = (*valuationService)(nil)

// one is the unit price of currency-type assets.
var one = decimal.NewFromInt(1)

// ResolvePrice resolves the current unit price for an asset by its type.
// Currency is always 1. Mutual funds and ETFs go through the cache and then
// their feed. OTHER assets and any asset without a code have no price.
func (s *valuationService) ResolvePrice(ctx context.Context, asset domain.Asset) (*domain.PriceQuote, error) {
	switch asset.Type {
	case domain.AssetCurrency:
		return &domain.PriceQuote{Price: one, AsOf: utils.TodayKolkata()}, nil
	case domain.AssetMutualFund:
		return s.resolveFeedPrice(ctx, asset, "mf", s.navSource.NAV)
	case domain.AssetETF:
		return s.resolveFeedPrice(ctx, asset, "etf", s.quoteSource.LatestPrice)
	default:
		return nil, nil
	}
}

// resolveFeedPrice runs the cache-then-feed lookup shared by priced asset
// types. Cache problems and feed problems both degrade to a nil quote.
func (s *valuationService) resolveFeedPrice(ctx context.Context, asset domain.Asset, kind string, fetch func(context.Context, string) (*domain.PriceQuote, error)) (*domain.PriceQuote, error) {
	if asset.Code == nil || *asset.Code == "" {
		return nil, nil
	}
	code := *asset.Code

	quote, ok, err := s.priceCache.Get(ctx, kind, code)
	if err != nil {
		s.LogWarn(ctx, "Price cache read failed", "kind", kind, "code", code, "error", err)
	} else if ok {
		return quote, nil
	}

	quote, err = fetch(ctx, code)
	if err != nil {
		if errors.Is(err, pricefeed.ErrPriceNotFound) {
			s.LogWarn(ctx, "No price published for asset", "kind", kind, "code", code)
		} else {
			s.LogWarn(ctx, "Price fetch failed", "kind", kind, "code", code, "error", err)
		}
		return nil, nil
	}

	if err := s.priceCache.Set(ctx, kind, code, *quote); err != nil {
		s.LogWarn(ctx, "Price cache write failed", "kind", kind, "code", code, "error", err)
	}
	return quote, nil
}

// ValueBalances prices a balance map into a Valuation. Quotes for distinct
// assets are fetched concurrently with a bounded fan-out. A missing price
// contributes zero to the total and increments UnknownPrices; a missing asset
// record is an error because it means the ledger references an asset that no
// longer exists.
func (s *valuationService) ValueBalances(ctx context.Context, balances map[string]decimal.Decimal, assets map[string]domain.Asset) (*domain.Valuation, error) {
	assetIDs := make([]string, 0, len(balances))
	for assetID := range balances {
		if _, ok := assets[assetID]; !ok {
			return nil, fmt.Errorf("asset %s referenced by a balance was not found", assetID)
		}
		assetIDs = append(assetIDs, assetID)
	}
	sort.Strings(assetIDs)

	quotes := make(map[string]*domain.PriceQuote, len(assetIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentPriceFetches)
	for _, assetID := range assetIDs {
		g.Go(func() error {
			quote, err := s.ResolvePrice(gctx, assets[assetID])
			if err != nil {
				return err
			}
			mu.Lock()
			quotes[assetID] = quote
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve prices: %w", err)
	}

	valuation := domain.Valuation{
		Holdings:   make([]domain.AssetValuation, 0, len(assetIDs)),
		TotalValue: decimal.Zero,
	}
	for _, assetID := range assetIDs {
		asset := assets[assetID]
		holding := domain.AssetValuation{
			AssetID:   assetID,
			AssetName: asset.Name,
			AssetType: asset.Type,
			Balance:   balances[assetID],
		}
		if quote := quotes[assetID]; quote != nil {
			price := quote.Price
			value := holding.Balance.Mul(price)
			holding.Price = &price
			holding.MonetaryValue = &value
			if !quote.AsOf.IsZero() {
				asOf := quote.AsOf
				holding.PriceAsOf = &asOf
			}
			valuation.TotalValue = valuation.TotalValue.Add(value)
		} else {
			valuation.UnknownPrices++
		}
		valuation.Holdings = append(valuation.Holdings, holding)
	}

	return &valuation, nil
}

// FlushPriceCache clears all memoized prices so the next valuation refetches
// from the feeds.
func (s *valuationService) FlushPriceCache(ctx context.Context) error {
	if err := s.priceCache.Flush(ctx); err != nil {
		return fmt.Errorf("failed to flush price cache: %w", err)
	}
	s.LogInfo(ctx, "Price cache flushed")
	return nil
}
