package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/model"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/crypto"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CommentDomain interface {
	Create(context.Context, *model.CreateCommentRequest) (*model.CreateCommentResponse, error)
	GetList(context.Context, *model.GetCommentsRequest) (*model.GetCommentsResponse, error)
	UpdateByID(context.Context, *model.UpdateCommentRequest) (*model.UpdateCommentResponse, error)
	DeleteByID(context.Context, *model.DeleteCommentRequest) (*model.DeleteCommentResponse, error)
}

type commentDomain struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentDomain(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
) CommentDomain {
	return &commentDomain{commentRepo: commentRepo, postRepo: postRepo}
}

func convertComment(c *entity.Comment) model.Comment {
	return model.Comment{
		ID:        c.ID,
		Nickname:  c.Nickname,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func (d *commentDomain) Create(
	ctx context.Context, req *model.CreateCommentRequest,
) (*model.CreateCommentResponse, error) {
	if req.Content == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a comment content")
	}

	if _, err := d.postRepo.GetByID(ctx, req.PostID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash comment password: %v", err)
		return nil, errorx.Unknown
	}

	comment := &entity.Comment{
		Base:     entity.Base{ID: uuid.NewString()},
		PostID:   req.PostID,
		Nickname: req.Nickname,
		Content:  req.Content,
		Password: hashedPassword,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCommentResponse{Comment: convertComment(comment)}, nil
}

func (d *commentDomain) GetList(
	ctx context.Context, req *model.GetCommentsRequest,
) (*model.GetCommentsResponse, error) {
	offset, limit, err := normalizePagination(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	comments, err := d.commentRepo.GetListByPostID(ctx, req.PostID, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comment list: %v", err)
		return nil, errorx.Unknown
	}

	totalItemCount, err := d.commentRepo.CountByPostID(ctx, req.PostID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count comments: %v", err)
		return nil, errorx.Unknown
	}

	data := []model.Comment{}
	for i := range comments {
		data = append(data, convertComment(&comments[i]))
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}

	return &model.GetCommentsResponse{
		CurrentPage:    page,
		TotalPages:     totalPages(totalItemCount, limit),
		TotalItemCount: totalItemCount,
		Data:           data,
	}, nil
}

func (d *commentDomain) getComment(ctx context.Context, id string) (*entity.Comment, error) {
	comment, err := d.commentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	return comment, nil
}

func (d *commentDomain) UpdateByID(
	ctx context.Context, req *model.UpdateCommentRequest,
) (*model.UpdateCommentResponse, error) {
	comment, err := d.getComment(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !crypto.ComparePassword(req.Password, comment.Password) {
		return nil, errorx.New(errorx.PermissionDenied, "Wrong password")
	}

	updates := map[string]any{}
	if req.Nickname != "" {
		updates["nickname"] = req.Nickname
	}

	if req.Content != "" {
		updates["content"] = req.Content
	}

	if len(updates) > 0 {
		if err := d.commentRepo.UpdateByID(ctx, req.ID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update comment: %v", err)
			return nil, errorx.Unknown
		}
	}

	comment, err = d.getComment(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.UpdateCommentResponse{Comment: convertComment(comment)}, nil
}

func (d *commentDomain) DeleteByID(
	ctx context.Context, req *model.DeleteCommentRequest,
) (*model.DeleteCommentResponse, error) {
	comment, err := d.getComment(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !crypto.ComparePassword(req.Password, comment.Password) {
		return nil, errorx.New(errorx.PermissionDenied, "Wrong password")
	}

	if err := d.commentRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCommentResponse{}, nil
}
