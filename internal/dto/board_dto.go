package dto

import (
	"time"

	"github.com/ardentiaonline/portal-gateway/internal/models"
)

// CommentView is one rendered comment. Liked reflects the viewer's own
// like state as reported by the server.
type CommentView struct {
	ID         int64     `json:"id"`
	Content    string    `json:"content"`
	WriterName string    `json:"writer_name"`
	LikeCount  int       `json:"like_count"`
	Liked      bool      `json:"liked"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommentThreadView is one top-level comment with its direct replies. Replies
// never nest further.
type CommentThreadView struct {
	CommentView
	Replies []CommentView `json:"replies"`
}

type ThreadResponse struct {
	Comments []CommentThreadView `json:"comments"`
	Total    int                 `json:"total"`
}

type LikeResponse struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"like_count"`
}

type PenaltyListResponse struct {
	Penalties []models.Penalty `json:"penalties"`
}
