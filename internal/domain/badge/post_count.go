package badge

import (
	"context"

	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

const postCountThreshold = 20

// postCountScanner checks that the group reached twenty posts in total.
type postCountScanner struct {
	postRepo repository.PostRepository
}

func NewPostCountScanner(postRepo repository.PostRepository) *postCountScanner {
	return &postCountScanner{postRepo: postRepo}
}

func (*postCountScanner) Content() string {
	return TwentyPostsBadge
}

func (s *postCountScanner) Scan(ctx context.Context, groupID string) (Result, error) {
	count, err := s.postRepo.CountByGroupID(ctx, groupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts of group: %v", err)
		return Result{}, errorx.Unknown
	}

	return Result{GroupID: groupID, Eligible: count >= postCountThreshold}, nil
}
