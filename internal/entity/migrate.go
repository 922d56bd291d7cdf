package entity

import "gorm.io/gorm"

func MigrateTable(db *gorm.DB) error {
	return db.AutoMigrate(
		&Group{},
		&Post{},
		&Comment{},
		&Tag{},
		&PostTag{},
		&GroupLike{},
		&PostLike{},
		&Badge{},
		&GroupBadge{},
	)
}
