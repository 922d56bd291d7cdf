package badge

import (
	"context"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/repository"
)

// Catalog content strings. These are persisted as the unique badge names
// and returned verbatim on the group detail surface, so they must not
// change once a deployment has seeded them.
const (
	PostingStreakBadge   = "7일 연속 게시글 등록"
	TwentyPostsBadge     = "게시글 20개 달성"
	OneYearActivityBadge = "1년 활동 달성"
	GroupLikesBadge      = "공감 1만개 달성"
	PostLikesBadge       = "게시글 공감 1만개 달성"
)

func AllContents() []string {
	return []string{
		PostingStreakBadge,
		TwentyPostsBadge,
		OneYearActivityBadge,
		GroupLikesBadge,
		PostLikesBadge,
	}
}

// SeedCatalog inserts the five catalog entries. Re-running it is a no-op
// thanks to the conflict-ignore insert keyed by the unique content.
func SeedCatalog(ctx context.Context, badgeRepo repository.BadgeRepository) error {
	for _, content := range AllContents() {
		badge := &entity.Badge{
			Base:    entity.Base{ID: uuid.NewString()},
			Content: content,
		}

		if err := badgeRepo.Create(ctx, badge); err != nil {
			return err
		}
	}

	return nil
}
