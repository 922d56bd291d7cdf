package model

import "time"

type Comment struct {
	ID        string    `json:"id"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	PostID   string `json:"post_id"`
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
	Password string `json:"password"`
}

type CreateCommentResponse struct {
	Comment
}

type GetCommentsRequest struct {
	PostID   string `form:"post_id"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type GetCommentsResponse struct {
	CurrentPage    int       `json:"current_page"`
	TotalPages     int       `json:"total_pages"`
	TotalItemCount int64     `json:"total_item_count"`
	Data           []Comment `json:"data"`
}

type UpdateCommentRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Content  string `json:"content"`
}

type UpdateCommentResponse struct {
	Comment
}

type DeleteCommentRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

type DeleteCommentResponse struct{}
