package repository

import (
	"context"

	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

type GroupLikeRepository interface {
	Create(ctx context.Context, like *entity.GroupLike) error
	CountByGroupID(ctx context.Context, groupID string) (int64, error)
}

type groupLikeRepository struct{}

func NewGroupLikeRepository() *groupLikeRepository {
	return &groupLikeRepository{}
}

func (r *groupLikeRepository) Create(ctx context.Context, like *entity.GroupLike) error {
	return xcontext.DB(ctx).Create(like).Error
}

func (r *groupLikeRepository) CountByGroupID(ctx context.Context, groupID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.GroupLike{}).
		Where("group_id=?", groupID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

type PostLikeRepository interface {
	Create(ctx context.Context, like *entity.PostLike) error
	CountByPostID(ctx context.Context, postID string) (int64, error)
}

type postLikeRepository struct{}

func NewPostLikeRepository() *postLikeRepository {
	return &postLikeRepository{}
}

func (r *postLikeRepository) Create(ctx context.Context, like *entity.PostLike) error {
	return xcontext.DB(ctx).Create(like).Error
}

func (r *postLikeRepository) CountByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.PostLike{}).
		Where("post_id=?", postID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
