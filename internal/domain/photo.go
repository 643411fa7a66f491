package domain

import "time"

type Photo struct {
	ID          string    `json:"id" db:"id"`
	ProfileID   string    `json:"profile_id" db:"profile_id"`
	StoragePath string    `json:"storage_path" db:"storage_path"`
	IsPrimary   bool      `json:"is_primary" db:"is_primary"`
	OrderIndex  int       `json:"order_index" db:"order_index"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
