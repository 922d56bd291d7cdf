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
	"gorm.io/gorm"
)

type GroupDomain interface {
	Create(context.Context, *model.CreateGroupRequest) (*model.CreateGroupResponse, error)
	GetList(context.Context, *model.GetGroupsRequest) (*model.GetGroupsResponse, error)
	Get(context.Context, *model.GetGroupRequest) (*model.GetGroupResponse, error)
	UpdateByID(context.Context, *model.UpdateGroupRequest) (*model.UpdateGroupResponse, error)
	DeleteByID(context.Context, *model.DeleteGroupRequest) (*model.DeleteGroupResponse, error)
	VerifyPassword(context.Context, *model.VerifyGroupPasswordRequest) (*model.VerifyGroupPasswordResponse, error)
	Like(context.Context, *model.LikeGroupRequest) (*model.LikeGroupResponse, error)
	GetVisibility(context.Context, *model.GetGroupVisibilityRequest) (*model.GetGroupVisibilityResponse, error)
}

type groupDomain struct {
	groupRepo      repository.GroupRepository
	postRepo       repository.PostRepository
	groupLikeRepo  repository.GroupLikeRepository
	groupBadgeRepo repository.GroupBadgeRepository
	badgeManager   *badge.Manager
}

func NewGroupDomain(
	groupRepo repository.GroupRepository,
	postRepo repository.PostRepository,
	groupLikeRepo repository.GroupLikeRepository,
	groupBadgeRepo repository.GroupBadgeRepository,
	badgeManager *badge.Manager,
) GroupDomain {
	return &groupDomain{
		groupRepo:      groupRepo,
		postRepo:       postRepo,
		groupLikeRepo:  groupLikeRepo,
		groupBadgeRepo: groupBadgeRepo,
		badgeManager:   badgeManager,
	}
}

func (d *groupDomain) Create(
	ctx context.Context, req *model.CreateGroupRequest,
) (*model.CreateGroupResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a group name")
	}

	if req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a group password")
	}

	hashedPassword, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash group password: %v", err)
		return nil, errorx.Unknown
	}

	group := &entity.Group{
		Base:         entity.Base{ID: uuid.NewString()},
		Name:         req.Name,
		Password:     hashedPassword,
		ImageURL:     req.ImageURL,
		IsPublic:     req.IsPublic,
		Introduction: req.Introduction,
	}

	if err := d.groupRepo.Create(ctx, group); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateGroupResponse{
		ID:           group.ID,
		Name:         group.Name,
		ImageURL:     group.ImageURL,
		IsPublic:     group.IsPublic,
		Introduction: group.Introduction,
		CreatedAt:    group.CreatedAt,
	}, nil
}

func (d *groupDomain) GetList(
	ctx context.Context, req *model.GetGroupsRequest,
) (*model.GetGroupsResponse, error) {
	offset, limit, err := normalizePagination(ctx, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}

	filter := repository.GetListGroupFilter{
		Q:        req.Keyword,
		IsPublic: parseIsPublic(req.IsPublic),
		SortBy:   repository.GroupSortBy(req.SortBy),
		Offset:   offset,
		Limit:    limit,
	}

	groups, err := d.groupRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get group list: %v", err)
		return nil, errorx.Unknown
	}

	totalItemCount, err := d.groupRepo.Count(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count groups: %v", err)
		return nil, errorx.Unknown
	}

	data := []model.Group{}
	for _, g := range groups {
		data = append(data, model.Group{
			ID:           g.ID,
			Name:         g.Name,
			ImageURL:     g.ImageURL,
			IsPublic:     g.IsPublic,
			Introduction: g.Introduction,
			CreatedAt:    g.CreatedAt,
			PostCount:    g.PostCount,
			LikeCount:    g.LikeCount,
			BadgeCount:   g.BadgeCount,
		})
	}

	page := req.Page
	if page <= 0 {
		page = 1
	}

	return &model.GetGroupsResponse{
		CurrentPage:    page,
		TotalPages:     totalPages(totalItemCount, limit),
		TotalItemCount: totalItemCount,
		Data:           data,
	}, nil
}

func (d *groupDomain) Get(
	ctx context.Context, req *model.GetGroupRequest,
) (*model.GetGroupResponse, error) {
	// Viewing the detail page is the trigger of the one year badge.
	assertBadges(ctx, d.badgeManager, req.ID, badge.OneYearActivityBadge)

	group, err := d.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	postCount, err := d.postRepo.CountByGroupID(ctx, group.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count posts of group: %v", err)
		return nil, errorx.Unknown
	}

	likeCount, err := d.groupLikeRepo.CountByGroupID(ctx, group.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count likes of group: %v", err)
		return nil, errorx.Unknown
	}

	groupBadges, err := d.groupBadgeRepo.GetByGroupID(ctx, group.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get badges of group: %v", err)
		return nil, errorx.Unknown
	}

	badges := []string{}
	for _, b := range groupBadges {
		badges = append(badges, b.Badge.Content)
	}

	return &model.GetGroupResponse{
		ID:           group.ID,
		Name:         group.Name,
		ImageURL:     group.ImageURL,
		IsPublic:     group.IsPublic,
		Introduction: group.Introduction,
		CreatedAt:    group.CreatedAt,
		PostCount:    postCount,
		LikeCount:    likeCount,
		Badges:       badges,
	}, nil
}

func (d *groupDomain) UpdateByID(
	ctx context.Context, req *model.UpdateGroupRequest,
) (*model.UpdateGroupResponse, error) {
	group, err := d.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(req.Password, group.Password) {
		return nil, errorx.New(errorx.PermissionDenied, "Wrong password")
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}

	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}

	if req.Introduction != "" {
		updates["introduction"] = req.Introduction
	}

	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}

	if len(updates) > 0 {
		if err := d.groupRepo.UpdateByID(ctx, req.ID, updates); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update group: %v", err)
			return nil, errorx.Unknown
		}
	}

	updated, err := d.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get updated group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateGroupResponse{
		ID:           updated.ID,
		Name:         updated.Name,
		ImageURL:     updated.ImageURL,
		IsPublic:     updated.IsPublic,
		Introduction: updated.Introduction,
		CreatedAt:    updated.CreatedAt,
	}, nil
}

func (d *groupDomain) DeleteByID(
	ctx context.Context, req *model.DeleteGroupRequest,
) (*model.DeleteGroupResponse, error) {
	group, err := d.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(req.Password, group.Password) {
		return nil, errorx.New(errorx.PermissionDenied, "Wrong password")
	}

	if err := d.groupRepo.DeleteByID(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteGroupResponse{}, nil
}

func (d *groupDomain) VerifyPassword(
	ctx context.Context, req *model.VerifyGroupPasswordRequest,
) (*model.VerifyGroupPasswordResponse, error) {
	group, err := d.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(req.Password, group.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Wrong password")
	}

	return &model.VerifyGroupPasswordResponse{}, nil
}

func (d *groupDomain) Like(
	ctx context.Context, req *model.LikeGroupRequest,
) (*model.LikeGroupResponse, error) {
	if _, err := d.groupRepo.GetByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	like := &entity.GroupLike{ID: uuid.NewString(), GroupID: req.ID}
	if err := d.groupLikeRepo.Create(ctx, like); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot like group: %v", err)
		return nil, errorx.Unknown
	}

	assertBadges(ctx, d.badgeManager, req.ID, badge.GroupLikesBadge)
	return &model.LikeGroupResponse{}, nil
}

func (d *groupDomain) GetVisibility(
	ctx context.Context, req *model.GetGroupVisibilityRequest,
) (*model.GetGroupVisibilityResponse, error) {
	group, err := d.groupRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetGroupVisibilityResponse{ID: group.ID, IsPublic: group.IsPublic}, nil
}
