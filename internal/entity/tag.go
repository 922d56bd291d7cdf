package entity

type Tag struct {
	Base
	Content string `gorm:"unique"`
}

type PostTag struct {
	PostID string `gorm:"primaryKey"`
	Post   Post   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	TagID  string `gorm:"primaryKey"`
	Tag    Tag    `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}
