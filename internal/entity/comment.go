package entity

type Comment struct {
	Base
	PostID string `gorm:"index"`
	Post   Post   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	Nickname string
	Content  string
	Password string
}
