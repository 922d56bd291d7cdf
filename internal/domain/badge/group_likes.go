package badge

import (
	"context"

	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

const likeThreshold = 10000

// groupLikesScanner checks that the group collected ten thousand likes.
// Likes are append-only rows, counting them is the exact like count.
type groupLikesScanner struct {
	groupLikeRepo repository.GroupLikeRepository
}

func NewGroupLikesScanner(groupLikeRepo repository.GroupLikeRepository) *groupLikesScanner {
	return &groupLikesScanner{groupLikeRepo: groupLikeRepo}
}

func (*groupLikesScanner) Content() string {
	return GroupLikesBadge
}

func (s *groupLikesScanner) Scan(ctx context.Context, groupID string) (Result, error) {
	count, err := s.groupLikeRepo.CountByGroupID(ctx, groupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes of group: %v", err)
		return Result{}, errorx.Unknown
	}

	return Result{GroupID: groupID, Eligible: count >= likeThreshold}, nil
}
