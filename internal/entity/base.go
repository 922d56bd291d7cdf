package entity

import "time"

// Base carries the common columns of standalone entities. Rows are hard
// deleted (group deletion cascades to everything it owns), so there is no
// soft-delete column here.
type Base struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
