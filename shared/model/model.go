package model

import "time"

// Metadata carries the audit columns every portfolio table has.
type Metadata struct {
	Timestamp time.Time `db:"timestamp"  json:"timestamp"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
