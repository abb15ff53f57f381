package models

import "time"

// AuditFields contains common tracking columns embedded in most tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
