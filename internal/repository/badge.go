package repository

import (
	"context"

	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type BadgeRepository interface {
	// Create inserts a catalog entry. It is a no-op if a badge with the
	// same content already exists, which makes seeding idempotent.
	Create(ctx context.Context, badge *entity.Badge) error
	GetByContent(ctx context.Context, content string) (*entity.Badge, error)
	GetAll(ctx context.Context) ([]entity.Badge, error)
}

type badgeRepository struct{}

func NewBadgeRepository() *badgeRepository {
	return &badgeRepository{}
}

func (r *badgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content"}},
			DoNothing: true,
		}).Create(badge).Error
}

func (r *badgeRepository) GetByContent(ctx context.Context, content string) (*entity.Badge, error) {
	result := &entity.Badge{}
	if err := xcontext.DB(ctx).Where("content=?", content).Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *badgeRepository) GetAll(ctx context.Context) ([]entity.Badge, error) {
	result := []entity.Badge{}
	if err := xcontext.DB(ctx).Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
