package model

import "time"

type Post struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Nickname  string    `json:"nickname"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	ImageURL  string    `json:"image_url"`
	Tags      []string  `json:"tags"`
	Location  string    `json:"location"`
	Moment    string    `json:"moment"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`

	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

type CreatePostRequest struct {
	GroupID       string   `json:"group_id"`
	GroupPassword string   `json:"group_password"`
	Nickname      string   `json:"nickname"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	PostPassword  string   `json:"post_password"`
	ImageURL      string   `json:"image_url"`
	Tags          []string `json:"tags"`
	Location      string   `json:"location"`
	Moment        string   `json:"moment"`
	IsPublic      bool     `json:"is_public"`
}

type CreatePostResponse struct {
	Post
}

type GetPostsRequest struct {
	GroupID  string `form:"group_id"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	SortBy   string `form:"sort_by"`
	Keyword  string `form:"keyword"`
	IsPublic string `form:"is_public"`
}

type GetPostsResponse struct {
	CurrentPage    int    `json:"current_page"`
	TotalPages     int    `json:"total_pages"`
	TotalItemCount int64  `json:"total_item_count"`
	Data           []Post `json:"data"`
}

type GetPostRequest struct {
	ID string `form:"id"`
}

type GetPostResponse struct {
	Post
}

type UpdatePostRequest struct {
	ID           string   `json:"id"`
	PostPassword string   `json:"post_password"`
	Nickname     string   `json:"nickname"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	ImageURL     string   `json:"image_url"`
	Tags         []string `json:"tags"`
	Location     string   `json:"location"`
	Moment       string   `json:"moment"`
	IsPublic     *bool    `json:"is_public"`
}

type UpdatePostResponse struct {
	Post
}

type DeletePostRequest struct {
	ID           string `json:"id"`
	PostPassword string `json:"post_password"`
}

type DeletePostResponse struct{}

type VerifyPostPasswordRequest struct {
	ID           string `json:"id"`
	PostPassword string `json:"post_password"`
}

type VerifyPostPasswordResponse struct{}

type LikePostRequest struct {
	ID string `json:"id"`
}

type LikePostResponse struct{}

type GetPostVisibilityRequest struct {
	ID string `form:"id"`
}

type GetPostVisibilityResponse struct {
	ID       string `json:"id"`
	IsPublic bool   `json:"is_public"`
}
