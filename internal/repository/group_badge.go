package repository

import (
	"context"
	"errors"

	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupBadgeRepository interface {
	// Create grants an award. If the (group, badge) pair already has a
	// row, the insert is silently skipped. The conflict clause, not an
	// application-level check, is what keeps the grant safe when two
	// requests cross the same threshold concurrently.
	Create(ctx context.Context, groupBadge *entity.GroupBadge) error
	Has(ctx context.Context, groupID, badgeID string) (bool, error)
	GetByGroupID(ctx context.Context, groupID string) ([]entity.GroupBadge, error)
}

type groupBadgeRepository struct{}

func NewGroupBadgeRepository() *groupBadgeRepository {
	return &groupBadgeRepository{}
}

func (r *groupBadgeRepository) Create(ctx context.Context, groupBadge *entity.GroupBadge) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "group_id"},
				{Name: "badge_id"},
			},
			DoNothing: true,
		}).Create(groupBadge).Error
}

func (r *groupBadgeRepository) Has(ctx context.Context, groupID, badgeID string) (bool, error) {
	err := xcontext.DB(ctx).
		Where("group_id=? AND badge_id=?", groupID, badgeID).
		Take(&entity.GroupBadge{}).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *groupBadgeRepository) GetByGroupID(ctx context.Context, groupID string) ([]entity.GroupBadge, error) {
	result := []entity.GroupBadge{}
	err := xcontext.DB(ctx).
		Where("group_id=?", groupID).
		Order("created_at ASC").
		Preload("Badge").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
