package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type TagRepository interface {
	// GetOrCreate returns the tag with the given content, creating it
	// first if it does not exist yet.
	GetOrCreate(ctx context.Context, content string) (*entity.Tag, error)
	LinkPost(ctx context.Context, postID, tagID string) error
	UnlinkPost(ctx context.Context, postID string) error
	GetContentsByPostID(ctx context.Context, postID string) ([]string, error)
}

type tagRepository struct{}

func NewTagRepository() *tagRepository {
	return &tagRepository{}
}

func (r *tagRepository) GetOrCreate(ctx context.Context, content string) (*entity.Tag, error) {
	tag := &entity.Tag{Base: entity.Base{ID: uuid.NewString()}, Content: content}
	err := xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content"}},
			DoNothing: true,
		}).Create(tag).Error
	if err != nil {
		return nil, err
	}

	// The insert may have been skipped, fetch the canonical row.
	result := &entity.Tag{}
	if err := xcontext.DB(ctx).Where("content=?", content).Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *tagRepository) LinkPost(ctx context.Context, postID, tagID string) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "post_id"},
				{Name: "tag_id"},
			},
			DoNothing: true,
		}).Create(&entity.PostTag{PostID: postID, TagID: tagID}).Error
}

func (r *tagRepository) UnlinkPost(ctx context.Context, postID string) error {
	return xcontext.DB(ctx).Where("post_id=?", postID).Delete(&entity.PostTag{}).Error
}

func (r *tagRepository) GetContentsByPostID(ctx context.Context, postID string) ([]string, error) {
	result := []string{}
	err := xcontext.DB(ctx).Model(&entity.PostTag{}).
		Joins("JOIN tags ON tags.id = post_tags.tag_id").
		Where("post_tags.post_id=?", postID).
		Order("tags.content ASC").
		Pluck("tags.content", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
