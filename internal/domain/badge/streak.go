package badge

import (
	"context"
	"time"

	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/dateutil"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

const streakDays = 7

// postingStreakScanner checks that the group has at least one post on each
// of the last seven calendar days, today inclusive. The window is derived
// from the current clock on every scan, so a streak broken in the past does
// not matter once the trailing window is full again.
type postingStreakScanner struct {
	postRepo repository.PostRepository
	now      func() time.Time
}

func NewPostingStreakScanner(postRepo repository.PostRepository) *postingStreakScanner {
	return &postingStreakScanner{postRepo: postRepo, now: time.Now}
}

func (*postingStreakScanner) Content() string {
	return PostingStreakBadge
}

func (s *postingStreakScanner) Scan(ctx context.Context, groupID string) (Result, error) {
	windowStart := dateutil.StartOfTrailingWindow(s.now(), streakDays)
	createdTimes, err := s.postRepo.GetCreatedTimesSince(ctx, groupID, windowStart)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get post times of group: %v", err)
		return Result{}, errorx.Unknown
	}

	return Result{
		GroupID:  groupID,
		Eligible: dateutil.CountDistinctDates(createdTimes) == streakDays,
	}, nil
}
