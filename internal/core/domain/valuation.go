package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceQuote is a resolved unit price for an asset.
type PriceQuote struct {
	Price decimal.Decimal `json:"price"`
	AsOf  time.Time       `json:"asOf"`
}

// AssetValuation is one priced holding: a balance joined with the resolved
// price. Price and MonetaryValue are nil when no price could be resolved.
type AssetValuation struct {
	AssetID       string           `json:"assetID"`
	AssetName     string           `json:"assetName"`
	AssetType     AssetType        `json:"assetType"`
	Balance       decimal.Decimal  `json:"balance"`
	Price         *decimal.Decimal `json:"price"`
	PriceAsOf     *time.Time       `json:"priceAsOf"`
	MonetaryValue *decimal.Decimal `json:"monetaryValue"`
}

// Valuation aggregates priced holdings for one entity. TotalValue treats
// missing prices as zero contribution; UnknownPrices counts them so the
// total is never silently misleading.
type Valuation struct {
	Holdings      []AssetValuation `json:"holdings"`
	TotalValue    decimal.Decimal  `json:"totalValue"`
	UnknownPrices int              `json:"unknownPrices"`
}
