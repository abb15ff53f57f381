package models

// AssetType classifies how an asset is priced.
type AssetType string

// Asset represents a holdable asset row. Code is the external pricing
// identifier and is NULL for assets that have no feed.
type Asset struct {
	AssetID string    `db:"asset_id"`
	Name    string    `db:"name"`
	Type    AssetType `db:"type"`
	Code    *string   `db:"code"`
	AuditFields
}
