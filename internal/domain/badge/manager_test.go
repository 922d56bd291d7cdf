package badge

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_SeedCatalog_idempotent(t *testing.T) {
	ctx := testutil.MockContext()
	badgeRepo := repository.NewBadgeRepository()

	require.NoError(t, SeedCatalog(ctx, badgeRepo))
	require.NoError(t, SeedCatalog(ctx, badgeRepo))

	badges, err := badgeRepo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, badges, len(AllContents()))
}

func Test_Manager_ScanAndAward_awardsOnce(t *testing.T) {
	ctx := testutil.MockContext()
	badgeRepo := repository.NewBadgeRepository()
	groupBadgeRepo := repository.NewGroupBadgeRepository()
	require.NoError(t, SeedCatalog(ctx, badgeRepo))

	group := testutil.SampleGroup(ctx, nil)
	for i := 0; i < postCountThreshold; i++ {
		testutil.SamplePost(ctx, group.ID, nil)
	}

	manager := NewManager(badgeRepo, groupBadgeRepo,
		NewPostCountScanner(repository.NewPostRepository()))

	// Re-asserting an already awarded badge must not duplicate the award.
	for i := 0; i < 3; i++ {
		err := manager.WithBadges(TwentyPostsBadge).ScanAndAward(ctx, group.ID)
		require.NoError(t, err)
	}

	awarded, err := groupBadgeRepo.GetByGroupID(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, awarded, 1)
	require.Equal(t, TwentyPostsBadge, awarded[0].Badge.Content)
}

func Test_Manager_ScanAndAward_notEligible(t *testing.T) {
	ctx := testutil.MockContext()
	badgeRepo := repository.NewBadgeRepository()
	groupBadgeRepo := repository.NewGroupBadgeRepository()
	require.NoError(t, SeedCatalog(ctx, badgeRepo))

	group := testutil.SampleGroup(ctx, nil)
	testutil.SamplePost(ctx, group.ID, nil)

	manager := NewManager(badgeRepo, groupBadgeRepo,
		NewPostCountScanner(repository.NewPostRepository()))

	err := manager.WithBadges(TwentyPostsBadge).ScanAndAward(ctx, group.ID)
	require.NoError(t, err)

	awarded, err := groupBadgeRepo.GetByGroupID(ctx, group.ID)
	require.NoError(t, err)
	require.Empty(t, awarded)
}

func Test_Manager_ScanAndAward_unseededCatalog(t *testing.T) {
	ctx := testutil.MockContext()
	badgeRepo := repository.NewBadgeRepository()
	groupBadgeRepo := repository.NewGroupBadgeRepository()

	group := testutil.SampleGroup(ctx, nil)
	for i := 0; i < postCountThreshold; i++ {
		testutil.SamplePost(ctx, group.ID, nil)
	}

	manager := NewManager(badgeRepo, groupBadgeRepo,
		NewPostCountScanner(repository.NewPostRepository()))

	err := manager.WithBadges(TwentyPostsBadge).ScanAndAward(ctx, group.ID)
	require.Error(t, err)

	errx, ok := err.(errorx.Error)
	require.True(t, ok)
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_Manager_ScanAndAward_unknownScanner(t *testing.T) {
	ctx := testutil.MockContext()
	manager := NewManager(
		repository.NewBadgeRepository(), repository.NewGroupBadgeRepository())

	err := manager.WithBadges(TwentyPostsBadge).ScanAndAward(ctx, uuid.NewString())
	require.Error(t, err)
}

func Test_Manager_ScanAndAward_streakEndToEnd(t *testing.T) {
	ctx := testutil.MockContext()
	badgeRepo := repository.NewBadgeRepository()
	groupBadgeRepo := repository.NewGroupBadgeRepository()
	require.NoError(t, SeedCatalog(ctx, badgeRepo))

	group := testutil.SampleGroup(ctx, nil)
	now := time.Date(2024, 2, 21, 15, 0, 0, 0, time.UTC)

	scanner := NewPostingStreakScanner(repository.NewPostRepository())
	scanner.now = func() time.Time { return now }
	manager := NewManager(badgeRepo, groupBadgeRepo, scanner)

	// Post once a day for a week, asserting after each post like the
	// post creation flow does. Only the seventh day grants the badge.
	for day := 6; day >= 0; day-- {
		testutil.SamplePost(ctx, group.ID, &entity.Post{
			Base: entity.Base{
				ID:        uuid.NewString(),
				CreatedAt: now.AddDate(0, 0, -day),
			},
		})

		err := manager.WithBadges(PostingStreakBadge).ScanAndAward(ctx, group.ID)
		require.NoError(t, err)

		awarded, err := groupBadgeRepo.GetByGroupID(ctx, group.ID)
		require.NoError(t, err)
		if day > 0 {
			require.Empty(t, awarded)
		} else {
			require.Len(t, awarded, 1)
			require.Equal(t, PostingStreakBadge, awarded[0].Badge.Content)
		}
	}
}
