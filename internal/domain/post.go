package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zogakzip-lab/backend/internal/domain/badge"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/model"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/crypto"
	"github.com/zogakzip-lab/backend/pkg/errorx"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type PostDomain interface {
	Create(context.Context, *model.CreatePostRequest) (*model.CreatePostResponse, error)
	GetList(context.Context, *model.GetPostsRequest) (*model.GetPostsResponse, error)
	Get(context.Context, *model.GetPostRequest) (*model.GetPostResponse, error)
	UpdateByID(context.Context, *model.UpdatePostRequest) (*model.UpdatePostResponse, error)
	DeleteByID(context.Context, *model.DeletePostRequest) (*model.DeletePostResponse, error)
	VerifyPassword(context.Context, *model.VerifyPostPasswordRequest) (*model.VerifyPostPasswordResponse, error)
	Like(context.Context, *model.LikePostRequest) (*model.LikePostResponse, error)
	GetVisibility(context.Context, *model.GetPostVisibilityRequest) (*model.GetPostVisibilityResponse, error)
}

type postDomain struct {
	postRepo     repository.PostRepository
	groupRepo    repository.GroupRepository
	tagRepo      repository.TagRepository
	postLikeRepo repository.PostLikeRepository
	commentRepo  repository.CommentRepository
	badgeManager *badge.Manager
}

func NewPostDomain(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	tagRepo repository.TagRepository,
	postLikeRepo repository.PostLikeRepository,
	commentRepo repository.CommentRepository,
	badgeManager *badge.Manager,
) PostDomain {
	return &postDomain{
		postRepo:     postRepo,
		groupRepo:    groupRepo,
		tagRepo:      tagRepo,
		postLikeRepo: postLikeRepo,
		commentRepo:  commentRepo,
		badgeManager: badgeManager,
	}
}

func (d *postDomain) convertPost(ctx context.Context, p *entity.Post, likeCount, commentCount int64) (model.Post, error) {
	tags, err := d.tagRepo.GetContentsByPostID(ctx, p.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tags of post: %v", err)
		return model.Post{}, errorx.Unknown
	}

	return model.Post{
		ID:           p.ID,
		GroupID:      p.GroupID,
		Nickname:     p.Nickname,
		Title:        p.Title,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		Tags:         tags,
		Location:     p.Location,
		Moment:       p.Moment.Format(momentLayout),
		IsPublic:     p.IsPublic,
		CreatedAt:    p.CreatedAt,
		LikeCount:    likeCount,
		CommentCount: commentCount,
	}, nil
}

func (d *postDomain) Create(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	group, err := d.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(req.GroupPassword, group.Password) {
		return nil, errorx.New(errorx.PermissionDenied, "Wrong group password")
	}

	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a post title")
	}

	moment, err := parseMoment(req.Moment)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := crypto.HashPassword(req.PostPassword)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash post password: %v", err)
		return nil, errorx.Unknown
	}

	post := &entity.Post{
		Base:         entity.Base{ID: uuid.NewString()},
		GroupID:      group.ID,
		Nickname:     req.Nickname,
		Title:        req.Title,
		Content:      req.Content,
		PostPassword: hashedPassword,
		ImageURL:     req.ImageURL,
		Location:     req.Location,
		Moment:       moment,
		IsPublic:     req.IsPublic,
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.linkTags(ctx, post.ID, req.Tags); err != nil {
		return nil, err
	}

	xcontext.WithCommitDBTransaction(ctx)

	// Creating a post can complete the posting streak or reach the post
	// count threshold.
	assertBadges(ctx, d.badgeManager, post.GroupID, badge.PostingStreakBadge, badge.TwentyPostsBadge)

	converted, err := d.convertPost(ctx, post, 0, 0)
	if err != nil {
		return nil, err
	}

	return &model.CreatePostResponse{Post: converted}, nil
}

func (d *postDomain) linkTags(ctx context.Context, postID string, tags []string) error {
	linked := []string{}
	for _, content := range tags {
		if slices.Contains(linked, content) {
			continue
		}
		linked = append(linked, content)

		tag, err := d.tagRepo.GetOrCreate(ctx, content)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get or create tag: %v", err)
			return errorx.Unknown
		}

		if err := d.tagRepo.LinkPost(ctx, postID, tag.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot link tag to post: %v", err)
			return errorx.Unknown
		}
	}

	return nil
}

func (d *postDomain) GetList(
	ctx context.Context, req *model.GetPostsRequest,
) (*model.GetPostsResponse, error) {
	offset, limit, err := normalizePagination(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	filter := repository.GetListPostFilter{
		GroupID:  req.GroupID,
		Q:        req.Keyword,
		IsPublic: parseIsPublic(req.IsPublic),
		SortBy:   repository.PostSortBy(req.SortBy),
		Offset:   offset,
		Limit:    limit,
	}

	posts, err := d.postRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get post list: %v", err)
		return nil, errorx.Unknown
	}

	totalItemCount, err := d.postRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts: %v", err)
		return nil, errorx.Unknown
	}

	data := []model.Post{}
	for i := range posts {
		converted, err := d.convertPost(ctx, &posts[i].Post, posts[i].LikeCount, posts[i].CommentCount)
		if err != nil {
			return nil, err
		}

		// The list surface does not expose the body.
		converted.Content = ""
		data = append(data, converted)
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}

	return &model.GetPostsResponse{
		CurrentPage:    page,
		TotalPages:     totalPages(totalItemCount, limit),
		TotalItemCount: totalItemCount,
		Data:           data,
	}, nil
}

func (d *postDomain) getPost(ctx context.Context, id string) (*entity.Post, error) {
	post, err := d.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	return post, nil
}

func (d *postDomain) Get(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	post, err := d.getPost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	likeCount, err := d.postLikeRepo.CountByPostID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes of post: %v", err)
		return nil, errorx.Unknown
	}

	commentCount, err := d.commentRepo.CountByPostID(ctx, post.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count comments of post: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertPost(ctx, post, likeCount, commentCount)
	if err != nil {
		return nil, err
	}

	return &model.GetPostResponse{Post: converted}, nil
}

func (d *postDomain) UpdateByID(
	ctx context.Context, req *model.UpdatePostRequest,
) (*model.UpdatePostResponse, error) {
	post, err := d.getPost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !crypto.ComparePassword(req.PostPassword, post.PostPassword) {
		return nil, errorx.New(errorx.PermissionDenied, "Wrong password")
	}

	updates := map[string]any{}
	if req.Nickname != "" {
		updates["nickname"] = req.Nickname
	}

	if req.Title != "" {
		updates["title"] = req.Title
	}

	if req.Content != "" {
		updates["content"] = req.Content
	}

	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if req.Location != "" {
		updates["location"] = req.Location
	}

	if req.Moment != "" {
		moment, err := parseMoment(req.Moment)
		if err != nil {
			return nil, err
		}

		updates["moment"] = moment
	}

	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if len(updates) > 0 {
		if err := d.postRepo.UpdateByID(ctx, req.ID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update post: %v", err)
			return nil, errorx.Unknown
		}
	}

	if req.Tags != nil {
		if err := d.tagRepo.UnlinkPost(ctx, req.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot unlink tags of post: %v", err)
			return nil, errorx.Unknown
		}

		if err := d.linkTags(ctx, req.ID, req.Tags); err != nil {
			return nil, err
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	return d.updatedPostResponse(ctx, req.ID)
}

func (d *postDomain) updatedPostResponse(ctx context.Context, id string) (*model.UpdatePostResponse, error) {
	post, err := d.getPost(ctx, id)
	if err != nil {
		return nil, err
	}

	likeCount, err := d.postLikeRepo.CountByPostID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes of post: %v", err)
		return nil, errorx.Unknown
	}

	commentCount, err := d.commentRepo.CountByPostID(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count comments of post: %v", err)
		return nil, errorx.Unknown
	}

	converted, err := d.convertPost(ctx, post, likeCount, commentCount)
	if err != nil {
		return nil, err
	}

	return &model.UpdatePostResponse{Post: converted}, nil
}

func (d *postDomain) DeleteByID(
	ctx context.Context, req *model.DeletePostRequest,
) (*model.DeletePostResponse, error) {
	post, err := d.getPost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !crypto.ComparePassword(req.PostPassword, post.PostPassword) {
		return nil, errorx.New(errorx.PermissionDenied, "Wrong password")
	}

	if err := d.postRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePostResponse{}, nil
}

func (d *postDomain) VerifyPassword(
	ctx context.Context, req *model.VerifyPostPasswordRequest,
) (*model.VerifyPostPasswordResponse, error) {
	post, err := d.getPost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !crypto.ComparePassword(req.PostPassword, post.PostPassword) {
		return nil, errorx.New(errorx.Unauthenticated, "Wrong password")
	}

	return &model.VerifyPostPasswordResponse{}, nil
}

func (d *postDomain) Like(
	ctx context.Context, req *model.LikePostRequest,
) (*model.LikePostResponse, error) {
	post, err := d.getPost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	like := &entity.PostLike{ID: uuid.NewString(), PostID: post.ID}
	if err := d.postLikeRepo.Create(ctx, like); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot like post: %v", err)
		return nil, errorx.Unknown
	}

	assertBadges(ctx, d.badgeManager, post.ID, badge.PostLikesBadge)
	return &model.LikePostResponse{}, nil
}

func (d *postDomain) GetVisibility(
	ctx context.Context, req *model.GetPostVisibilityRequest,
) (*model.GetPostVisibilityResponse, error) {
	post, err := d.getPost(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetPostVisibilityResponse{ID: post.ID, IsPublic: post.IsPublic}, nil
}
