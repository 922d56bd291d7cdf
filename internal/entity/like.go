package entity

import "time"

// GroupLike and PostLike are append-only event rows. There is no unlike
// operation, so the row count per target is the like count.
type GroupLike struct {
	ID        string `gorm:"primaryKey"`
	GroupID   string `gorm:"index"`
	Group     Group  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

type PostLike struct {
	ID        string `gorm:"primaryKey"`
	PostID    string `gorm:"index"`
	Post      Post   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}
