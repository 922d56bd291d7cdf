package badge

import (
	"context"
	"errors"

	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// postLikesScanner checks that a single post collected ten thousand likes.
// It is the only post-scoped scanner; the award still goes to the owning
// group, which is re-resolved from the post on every scan rather than
// trusted from the caller.
type postLikesScanner struct {
	postRepo     repository.PostRepository
	postLikeRepo repository.PostLikeRepository
}

func NewPostLikesScanner(
	postRepo repository.PostRepository,
	postLikeRepo repository.PostLikeRepository,
) *postLikesScanner {
	return &postLikesScanner{postRepo: postRepo, postLikeRepo: postLikeRepo}
}

func (*postLikesScanner) Content() string {
	return PostLikesBadge
}

func (s *postLikesScanner) Scan(ctx context.Context, postID string) (Result, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Result{}, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return Result{}, errorx.Unknown
	}

	count, err := s.postLikeRepo.CountByPostID(ctx, postID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes of post: %v", err)
		return Result{}, errorx.Unknown
	}

	return Result{GroupID: post.GroupID, Eligible: count >= likeThreshold}, nil
}
