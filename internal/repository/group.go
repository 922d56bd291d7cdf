package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"github.com/zogakzip-lab/backend/pkg/xredis"
	"gorm.io/gorm"
)

type GroupSortBy string

const (
	GroupOrderLatest     GroupSortBy = "latest"
	GroupOrderMostPosted GroupSortBy = "mostPosted"
	GroupOrderMostLiked  GroupSortBy = "mostLiked"
	GroupOrderMostBadge  GroupSortBy = "mostBadge"
)

type GetListGroupFilter struct {
	Q        string
	IsPublic *bool
	SortBy   GroupSortBy
	Offset   int
	Limit    int
}

// GroupWithCounts is a group row joined with its aggregate counters, used
// by the list read surface.
type GroupWithCounts struct {
	entity.Group
	PostCount  int64
	LikeCount  int64
	BadgeCount int64
}

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	GetList(ctx context.Context, filter GetListGroupFilter) ([]GroupWithCounts, error)
	Count(ctx context.Context, filter GetListGroupFilter) (int64, error)
	UpdateByID(ctx context.Context, id string, updates map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type groupRepository struct {
	redisClient xredis.Client
}

func NewGroupRepository(redisClient xredis.Client) *groupRepository {
	return &groupRepository{redisClient: redisClient}
}

func (r *groupRepository) cacheKey(id string) string {
	return fmt.Sprintf("cache:group:%s", id)
}

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	return xcontext.DB(ctx).Create(group).Error
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var cached entity.Group
	if err := r.redisClient.GetObj(ctx, r.cacheKey(id), &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, xredis.ErrNil) {
		xcontext.Logger(ctx).Warnf("Cannot get group from cache: %v", err)
	}

	result := &entity.Group{}
	if err := xcontext.DB(ctx).Where("id=?", id).Take(result).Error; err != nil {
		return nil, err
	}

	if err := r.redisClient.SetObj(ctx, r.cacheKey(id), result, 10*time.Minute); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot cache group: %v", err)
	}

	return result, nil
}

func (r *groupRepository) applyFilter(ctx context.Context, filter GetListGroupFilter) *gorm.DB {
	tx := xcontext.DB(ctx).Model(&entity.Group{})
	if filter.Q != "" {
		q := "%" + filter.Q + "%"
		tx = tx.Where("name LIKE ? OR introduction LIKE ?", q, q)
	}

	if filter.IsPublic != nil {
		tx = tx.Where("is_public=?", *filter.IsPublic)
	}

	return tx
}

func (r *groupRepository) GetList(ctx context.Context, filter GetListGroupFilter) ([]GroupWithCounts, error) {
	tx := r.applyFilter(ctx, filter).
		Select(`groups.*,
			(SELECT COUNT(*) FROM posts WHERE posts.group_id = groups.id) AS post_count,
			(SELECT COUNT(*) FROM group_likes WHERE group_likes.group_id = groups.id) AS like_count,
			(SELECT COUNT(*) FROM group_badges WHERE group_badges.group_id = groups.id) AS badge_count`)

	switch filter.SortBy {
	case GroupOrderMostPosted:
		tx = tx.Order("post_count DESC")
	case GroupOrderMostLiked:
		tx = tx.Order("like_count DESC")
	case GroupOrderMostBadge:
		tx = tx.Order("badge_count DESC")
	default:
		tx = tx.Order("created_at DESC")
	}

	result := []GroupWithCounts{}
	err := tx.Offset(filter.Offset).Limit(filter.Limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *groupRepository) Count(ctx context.Context, filter GetListGroupFilter) (int64, error) {
	var count int64
	if err := r.applyFilter(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *groupRepository) UpdateByID(ctx context.Context, id string, updates map[string]any) error {
	err := xcontext.DB(ctx).Model(&entity.Group{}).Where("id=?", id).Updates(updates).Error
	if err != nil {
		return err
	}

	if err := r.redisClient.Del(ctx, r.cacheKey(id)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate group cache: %v", err)
	}

	return nil
}

func (r *groupRepository) DeleteByID(ctx context.Context, id string) error {
	err := xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Group{}).Error
	if err != nil {
		return err
	}

	if err := r.redisClient.Del(ctx, r.cacheKey(id)); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate group cache: %v", err)
	}

	return nil
}
