package entity

import "time"

type Post struct {
	Base
	GroupID string `gorm:"index"`
	Group   Group  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`

	Nickname     string
	Title        string
	Content      string
	PostPassword string
	ImageURL     string
	Location     string
	// Moment is the date the memory happened, distinct from CreatedAt.
	Moment   time.Time
	IsPublic bool
}
