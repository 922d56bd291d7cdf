package model

import "time"

type Group struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url"`
	IsPublic     bool      `json:"is_public"`
	Introduction string    `json:"introduction"`
	CreatedAt    time.Time `json:"created_at"`

	PostCount  int64 `json:"post_count"`
	LikeCount  int64 `json:"like_count"`
	BadgeCount int64 `json:"badge_count"`
}

type CreateGroupRequest struct {
	Name         string `json:"name"`
	Password     string `json:"password"`
	ImageURL     string `json:"image_url"`
	IsPublic     bool   `json:"is_public"`
	Introduction string `json:"introduction"`
}

type CreateGroupResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url"`
	IsPublic     bool      `json:"is_public"`
	Introduction string    `json:"introduction"`
	CreatedAt    time.Time `json:"created_at"`
}

type GetGroupsRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	SortBy   string `form:"sort_by"`
	Keyword  string `form:"keyword"`
	IsPublic string `form:"is_public"`
}

type GetGroupsResponse struct {
	CurrentPage    int     `json:"current_page"`
	TotalPages     int     `json:"total_pages"`
	TotalItemCount int64   `json:"total_item_count"`
	Data           []Group `json:"data"`
}

type GetGroupRequest struct {
	ID string `form:"id"`
}

type GetGroupResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url"`
	IsPublic     bool      `json:"is_public"`
	Introduction string    `json:"introduction"`
	CreatedAt    time.Time `json:"created_at"`

	PostCount int64    `json:"post_count"`
	LikeCount int64    `json:"like_count"`
	Badges    []string `json:"badges"`
}

type UpdateGroupRequest struct {
	ID           string `json:"id"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	ImageURL     string `json:"image_url"`
	IsPublic     *bool  `json:"is_public"`
	Introduction string `json:"introduction"`
}

type UpdateGroupResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ImageURL     string    `json:"image_url"`
	IsPublic     bool      `json:"is_public"`
	Introduction string    `json:"introduction"`
	CreatedAt    time.Time `json:"created_at"`
}

type DeleteGroupRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type DeleteGroupResponse struct{}

type VerifyGroupPasswordRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type VerifyGroupPasswordResponse struct{}

type LikeGroupRequest struct {
	ID string `json:"id"`
}

type LikeGroupResponse struct{}

type GetGroupVisibilityRequest struct {
	ID string `form:"id"`
}

type GetGroupVisibilityResponse struct {
	ID       string `json:"id"`
	IsPublic bool   `json:"is_public"`
}
