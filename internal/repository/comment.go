package repository

import (
	"context"

	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	GetListByPostID(ctx context.Context, postID string, offset, limit int) ([]entity.Comment, error)
	CountByPostID(ctx context.Context, postID string) (int64, error)
	UpdateByID(ctx context.Context, id string, updates map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type commentRepository struct{}

func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return xcontext.DB(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	result := &entity.Comment{}
	if err := xcontext.DB(ctx).Where("id=?", id).Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) GetListByPostID(
	ctx context.Context, postID string, offset, limit int,
) ([]entity.Comment, error) {
	result := []entity.Comment{}
	err := xcontext.DB(ctx).
		Where("post_id=?", postID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) CountByPostID(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Comment{}).
		Where("post_id=?", postID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *commentRepository) UpdateByID(ctx context.Context, id string, updates map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.Comment{}).Where("id=?", id).Updates(updates).Error
}

func (r *commentRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Comment{}).Error
}
