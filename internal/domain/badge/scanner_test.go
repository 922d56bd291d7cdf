package badge

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/testutil"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_postingStreakScanner_Scan(t *testing.T) {
	ctx := testutil.MockContext()
	group := testutil.SampleGroup(ctx, nil)

	now := time.Date(2024, 2, 21, 15, 0, 0, 0, time.UTC)

	// One post per day on the six days before today.
	for day := 1; day <= 6; day++ {
		testutil.SamplePost(ctx, group.ID, &entity.Post{
			Base: entity.Base{
				ID:        uuid.NewString(),
				CreatedAt: now.AddDate(0, 0, -day),
			},
		})
	}

	scanner := NewPostingStreakScanner(repository.NewPostRepository())
	scanner.now = func() time.Time { return now }

	result, err := scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.False(t, result.Eligible)

	// A post of today completes the trailing window.
	testutil.SamplePost(ctx, group.ID, &entity.Post{
		Base: entity.Base{ID: uuid.NewString(), CreatedAt: now},
	})

	result, err = scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.True(t, result.Eligible)
	require.Equal(t, group.ID, result.GroupID)
}

func Test_postingStreakScanner_Scan_gapInWindow(t *testing.T) {
	ctx := testutil.MockContext()
	group := testutil.SampleGroup(ctx, nil)

	now := time.Date(2024, 2, 21, 15, 0, 0, 0, time.UTC)

	// Seven posts, but two fall on the same day and one day is missed.
	testutil.SamplePost(ctx, group.ID, &entity.Post{
		Base: entity.Base{ID: uuid.NewString(), CreatedAt: now},
	})
	testutil.SamplePost(ctx, group.ID, &entity.Post{
		Base: entity.Base{ID: uuid.NewString(), CreatedAt: now.Add(-time.Hour)},
	})
	for day := 2; day <= 6; day++ {
		testutil.SamplePost(ctx, group.ID, &entity.Post{
			Base: entity.Base{
				ID:        uuid.NewString(),
				CreatedAt: now.AddDate(0, 0, -day),
			},
		})
	}

	scanner := NewPostingStreakScanner(repository.NewPostRepository())
	scanner.now = func() time.Time { return now }

	result, err := scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.False(t, result.Eligible)
}

func Test_postCountScanner_Scan(t *testing.T) {
	ctx := testutil.MockContext()
	group := testutil.SampleGroup(ctx, nil)

	for i := 0; i < postCountThreshold-1; i++ {
		testutil.SamplePost(ctx, group.ID, nil)
	}

	scanner := NewPostCountScanner(repository.NewPostRepository())
	result, err := scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.False(t, result.Eligible)

	testutil.SamplePost(ctx, group.ID, nil)

	result, err = scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.True(t, result.Eligible)
}

func Test_anniversaryScanner_Scan(t *testing.T) {
	ctx := testutil.MockContext()

	createdAt := time.Date(2023, 3, 15, 9, 0, 0, 0, time.UTC)
	group := testutil.SampleGroup(ctx, &entity.Group{
		Base: entity.Base{ID: uuid.NewString(), CreatedAt: createdAt},
	})

	scanner := NewAnniversaryScanner(repository.NewGroupRepository(&testutil.MockRedisClient{}))

	scanner.now = func() time.Time { return createdAt.AddDate(1, 0, 0).Add(-time.Second) }
	result, err := scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.False(t, result.Eligible)

	// The boundary itself is eligible.
	scanner.now = func() time.Time { return createdAt.AddDate(1, 0, 0) }
	result, err = scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.True(t, result.Eligible)
}

func Test_groupLikesScanner_Scan(t *testing.T) {
	ctx := testutil.MockContext()
	group := testutil.SampleGroup(ctx, nil)

	likes := make([]entity.GroupLike, 0, likeThreshold-1)
	for i := 0; i < likeThreshold-1; i++ {
		likes = append(likes, entity.GroupLike{ID: uuid.NewString(), GroupID: group.ID})
	}
	require.NoError(t, xcontext.DB(ctx).CreateInBatches(likes, 1000).Error)

	scanner := NewGroupLikesScanner(repository.NewGroupLikeRepository())
	result, err := scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.False(t, result.Eligible)

	likeRepo := repository.NewGroupLikeRepository()
	require.NoError(t, likeRepo.Create(ctx, &entity.GroupLike{ID: uuid.NewString(), GroupID: group.ID}))

	result, err = scanner.Scan(ctx, group.ID)
	require.NoError(t, err)
	require.True(t, result.Eligible)
}

func Test_postLikesScanner_Scan(t *testing.T) {
	ctx := testutil.MockContext()
	group := testutil.SampleGroup(ctx, nil)
	post := testutil.SamplePost(ctx, group.ID, nil)

	likes := make([]entity.PostLike, 0, likeThreshold)
	for i := 0; i < likeThreshold; i++ {
		likes = append(likes, entity.PostLike{ID: uuid.NewString(), PostID: post.ID})
	}
	require.NoError(t, xcontext.DB(ctx).CreateInBatches(likes, 1000).Error)

	scanner := NewPostLikesScanner(
		repository.NewPostRepository(), repository.NewPostLikeRepository())

	result, err := scanner.Scan(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, result.Eligible)

	// The award target is the owning group, not the post.
	require.Equal(t, group.ID, result.GroupID)
}
