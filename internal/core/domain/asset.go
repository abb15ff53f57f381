package domain

// AssetType classifies how an asset is priced.
type AssetType string

const (
	AssetCurrency   AssetType = "CURRENCY"
	AssetMutualFund AssetType = "MUTUAL_FUND"
	AssetETF        AssetType = "ETF"
	AssetOther      AssetType = "OTHER"
)

// Asset represents anything a quantity can be held in: the base currency
// itself, a mutual fund, an exchange traded fund, or an unpriced "other".
type Asset struct {
	AssetID string    `json:"assetID"`
	Name    string    `json:"name"`
	Type    AssetType `json:"type"`
	// Code is the external identifier used for price lookups: an AMFI scheme
	// code for mutual funds, a ticker symbol for ETFs. Nil for assets that
	// are never priced externally.
	Code *string `json:"code"`
	AuditFields
}
