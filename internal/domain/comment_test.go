package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/model"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_commentDomain(t *testing.T) {
	ctx := testutil.MockContext()
	domain := NewCommentDomain(repository.NewCommentRepository(), repository.NewPostRepository())

	group := testutil.SampleGroup(ctx, nil)
	post := testutil.SamplePost(ctx, group.ID, nil)

	_, err := domain.Create(ctx, &model.CreateCommentRequest{
		PostID:   uuid.NewString(),
		Content:  "orphan comment",
		Password: "secret",
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Not found post"), err)

	created, err := domain.Create(ctx, &model.CreateCommentRequest{
		PostID:   post.ID,
		Nickname: "jun",
		Content:  "looks fun!",
		Password: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := domain.GetList(ctx, &model.GetCommentsRequest{PostID: post.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), list.TotalItemCount)
	require.Equal(t, "looks fun!", list.Data[0].Content)

	_, err = domain.UpdateByID(ctx, &model.UpdateCommentRequest{
		ID:       created.ID,
		Password: "wrong-password",
		Content:  "rejected",
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Wrong password"), err)

	updated, err := domain.UpdateByID(ctx, &model.UpdateCommentRequest{
		ID:       created.ID,
		Password: "secret",
		Content:  "so much fun!",
	})
	require.NoError(t, err)
	require.Equal(t, "so much fun!", updated.Content)

	_, err = domain.DeleteByID(ctx, &model.DeleteCommentRequest{
		ID:       created.ID,
		Password: "secret",
	})
	require.NoError(t, err)

	list, err = domain.GetList(ctx, &model.GetCommentsRequest{PostID: post.ID})
	require.NoError(t, err)
	require.Zero(t, list.TotalItemCount)
}
