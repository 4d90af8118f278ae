package models

import "time"

// Comment is one remark on a board post. ParentCommentID is nil for a
// top-level comment and points at the top-level comment for a reply; deeper
// nesting is never represented.
type Comment struct {
	ID              int64     `json:"id"`
	Content         string    `json:"content"`
	WriterName      string    `json:"writer_name"`
	LikeCount       int       `json:"like_count"`
	ParentCommentID *int64    `json:"parent_comment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsReply reports whether the comment is a one-level-deep reply.
func (c Comment) IsReply() bool {
	return c.ParentCommentID != nil
}
