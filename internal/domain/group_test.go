package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/domain/badge"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/model"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestGroupDomain(redisClient *testutil.MockRedisClient) GroupDomain {
	groupRepo := repository.NewGroupRepository(redisClient)
	postRepo := repository.NewPostRepository()
	groupLikeRepo := repository.NewGroupLikeRepository()
	groupBadgeRepo := repository.NewGroupBadgeRepository()
	badgeRepo := repository.NewBadgeRepository()

	manager := badge.NewManager(
		badgeRepo,
		groupBadgeRepo,
		badge.NewPostingStreakScanner(postRepo),
		badge.NewPostCountScanner(postRepo),
		badge.NewAnniversaryScanner(groupRepo),
		badge.NewGroupLikesScanner(groupLikeRepo),
		badge.NewPostLikesScanner(postRepo, repository.NewPostLikeRepository()),
	)

	return NewGroupDomain(groupRepo, postRepo, groupLikeRepo, groupBadgeRepo, manager)
}

func Test_groupDomain_Create_and_Get(t *testing.T) {
	ctx := testutil.MockContext()
	require.NoError(t, badge.SeedCatalog(ctx, repository.NewBadgeRepository()))
	domain := newTestGroupDomain(&testutil.MockRedisClient{})

	created, err := domain.Create(ctx, &model.CreateGroupRequest{
		Name:         "family trip",
		Password:     "secret",
		IsPublic:     true,
		Introduction: "our memories",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := domain.Get(ctx, &model.GetGroupRequest{ID: created.ID})
	require.NoError(t, err)
	require.Equal(t, "family trip", got.Name)
	require.Equal(t, "our memories", got.Introduction)
	require.True(t, got.IsPublic)
	require.Zero(t, got.PostCount)
	require.Zero(t, got.LikeCount)
	require.Empty(t, got.Badges)
}

func Test_groupDomain_Create_requiresNameAndPassword(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestGroupDomain(&testutil.MockRedisClient{})

	_, err := domain.Create(ctx, &model.CreateGroupRequest{Password: "secret"})
	require.Equal(t, errorx.New(errorx.BadRequest, "Require a group name"), err)

	_, err = domain.Create(ctx, &model.CreateGroupRequest{Name: "no password"})
	require.Equal(t, errorx.New(errorx.BadRequest, "Require a group password"), err)
}

func Test_groupDomain_Get_notFound(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestGroupDomain(&testutil.MockRedisClient{})

	_, err := domain.Get(ctx, &model.GetGroupRequest{ID: uuid.NewString()})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found group"), err)
}

func Test_groupDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestGroupDomain(&testutil.MockRedisClient{})

	testutil.SampleGroup(ctx, &entity.Group{Name: "public seoul trip"})
	testutil.SampleGroup(ctx, &entity.Group{Name: "public busan trip"})

	// Non-zero booleans cannot be overwritten by the sample helper, so
	// flip the private group after creation.
	private := testutil.SampleGroup(ctx, &entity.Group{Name: "private group"})
	groupRepo := repository.NewGroupRepository(&testutil.MockRedisClient{})
	require.NoError(t, groupRepo.UpdateByID(ctx, private.ID, map[string]any{"is_public": false}))

	resp, err := domain.GetList(ctx, &model.GetGroupsRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(3), resp.TotalItemCount)

	resp, err = domain.GetList(ctx, &model.GetGroupsRequest{IsPublic: "true"})
	require.NoError(t, err)
	require.Equal(t, int64(2), resp.TotalItemCount)

	resp, err = domain.GetList(ctx, &model.GetGroupsRequest{Keyword: "busan"})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.TotalItemCount)
	require.Equal(t, "public busan trip", resp.Data[0].Name)

	// The page size is capped by configuration.
	_, err = domain.GetList(ctx, &model.GetGroupsRequest{PageSize: 1000})
	require.Error(t, err)
}

func Test_groupDomain_UpdateByID(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestGroupDomain(&testutil.MockRedisClient{})
	group := testutil.SampleGroup(ctx, nil)

	_, err := domain.UpdateByID(ctx, &model.UpdateGroupRequest{
		ID:       group.ID,
		Password: "wrong-password",
		Name:     "new name",
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Wrong password"), err)

	isPublic := false
	updated, err := domain.UpdateByID(ctx, &model.UpdateGroupRequest{
		ID:       group.ID,
		Password: testutil.Password,
		Name:     "new name",
		IsPublic: &isPublic,
	})
	require.NoError(t, err)
	require.Equal(t, "new name", updated.Name)
	require.False(t, updated.IsPublic)
}

func Test_groupDomain_VerifyPassword(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestGroupDomain(&testutil.MockRedisClient{})
	group := testutil.SampleGroup(ctx, nil)

	_, err := domain.VerifyPassword(ctx, &model.VerifyGroupPasswordRequest{
		ID:       group.ID,
		Password: testutil.Password,
	})
	require.NoError(t, err)

	_, err = domain.VerifyPassword(ctx, &model.VerifyGroupPasswordRequest{
		ID:       group.ID,
		Password: "wrong-password",
	})
	require.Equal(t, errorx.New(errorx.Unauthenticated, "Wrong password"), err)
}

func Test_groupDomain_Like(t *testing.T) {
	ctx := testutil.MockContext()
	require.NoError(t, badge.SeedCatalog(ctx, repository.NewBadgeRepository()))
	domain := newTestGroupDomain(&testutil.MockRedisClient{})
	group := testutil.SampleGroup(ctx, nil)

	for i := 0; i < 3; i++ {
		_, err := domain.Like(ctx, &model.LikeGroupRequest{ID: group.ID})
		require.NoError(t, err)
	}

	got, err := domain.Get(ctx, &model.GetGroupRequest{ID: group.ID})
	require.NoError(t, err)
	require.Equal(t, int64(3), got.LikeCount)

	_, err = domain.Like(ctx, &model.LikeGroupRequest{ID: uuid.NewString()})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found group"), err)
}

func Test_groupDomain_DeleteByID(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestGroupDomain(&testutil.MockRedisClient{})
	group := testutil.SampleGroup(ctx, nil)

	_, err := domain.DeleteByID(ctx, &model.DeleteGroupRequest{
		ID:       group.ID,
		Password: "wrong-password",
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Wrong password"), err)

	_, err = domain.DeleteByID(ctx, &model.DeleteGroupRequest{
		ID:       group.ID,
		Password: testutil.Password,
	})
	require.NoError(t, err)

	_, err = domain.GetVisibility(ctx, &model.GetGroupVisibilityRequest{ID: group.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found group"), err)
}
