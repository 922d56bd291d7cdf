package repository

import (
	"context"
	"time"

	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type PostSortBy string

const (
	PostOrderLatest PostSortBy = "latest"
	PostOrderOldest PostSortBy = "oldest"
)

type GetListPostFilter struct {
	GroupID  string
	Q        string
	IsPublic *bool
	SortBy   PostSortBy
	Offset   int
	Limit    int
}

type PostWithCounts struct {
	entity.Post
	LikeCount    int64
	CommentCount int64
}

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetList(ctx context.Context, filter GetListPostFilter) ([]PostWithCounts, error)
	Count(ctx context.Context, filter GetListPostFilter) (int64, error)
	CountByGroupID(ctx context.Context, groupID string) (int64, error)
	// GetCreatedTimesSince returns the creation timestamps of all posts of
	// a group not older than the given moment. Day bucketing happens in
	// application code to stay independent of the SQL dialect.
	GetCreatedTimesSince(ctx context.Context, groupID string, since time.Time) ([]time.Time, error)
	UpdateByID(ctx context.Context, id string, updates map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return xcontext.DB(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	result := &entity.Post{}
	if err := xcontext.DB(ctx).Where("id=?", id).Take(result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) applyFilter(ctx context.Context, filter GetListPostFilter) *gorm.DB {
	tx := xcontext.DB(ctx).Model(&entity.Post{}).Where("posts.group_id=?", filter.GroupID)
	if filter.Q != "" {
		q := "%" + filter.Q + "%"
		tx = tx.Where(
			`posts.title LIKE ? OR posts.id IN (
				SELECT post_tags.post_id FROM post_tags
				JOIN tags ON tags.id = post_tags.tag_id
				WHERE tags.content LIKE ?)`, q, q)
	}

	if filter.IsPublic != nil {
		tx = tx.Where("posts.is_public=?", *filter.IsPublic)
	}

	return tx
}

func (r *postRepository) GetList(ctx context.Context, filter GetListPostFilter) ([]PostWithCounts, error) {
	tx := r.applyFilter(ctx, filter).
		Select(`posts.*,
			(SELECT COUNT(*) FROM post_likes WHERE post_likes.post_id = posts.id) AS like_count,
			(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count`)

	if filter.SortBy == PostOrderOldest {
		tx = tx.Order("posts.created_at ASC")
	} else {
		tx = tx.Order("posts.created_at DESC")
	}

	result := []PostWithCounts{}
	err := tx.Offset(filter.Offset).Limit(filter.Limit).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) Count(ctx context.Context, filter GetListPostFilter) (int64, error) {
	var count int64
	if err := r.applyFilter(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepository) CountByGroupID(ctx context.Context, groupID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Where("group_id=?", groupID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepository) GetCreatedTimesSince(
	ctx context.Context, groupID string, since time.Time,
) ([]time.Time, error) {
	result := []time.Time{}
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Where("group_id=? AND created_at>=?", groupID, since).
		Pluck("created_at", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) UpdateByID(ctx context.Context, id string, updates map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.Post{}).Where("id=?", id).Updates(updates).Error
}

func (r *postRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Post{}).Error
}
