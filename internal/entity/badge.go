package entity

import "time"

// Badge is a catalog entry. The unique content string is the lookup key
// used by the award orchestrator, seeded once at initialization.
type Badge struct {
	Base
	Content string `gorm:"unique"`
}

// GroupBadge records that a group holds a badge. The composite primary key
// is the core invariant: a group holds each badge at most once.
type GroupBadge struct {
	GroupID   string `gorm:"primaryKey"`
	Group     Group  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
	BadgeID   string `gorm:"primaryKey"`
	Badge     Badge  `gorm:"foreignKey:BadgeID"`
	CreatedAt time.Time
}
