package services

import (
	"context"

	"github.com/ardentiaonline/portal-gateway/internal/gameapi"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
)

// BoardService builds the comment view of a post and forwards like toggles.
type BoardService struct {
	api *gameapi.Client
}

func NewBoardService(api *gameapi.Client) *BoardService {
	return &BoardService{api: api}
}

// FlattenThread turns the nested wire shape into one flat, addressable
// collection. Every top-level comment and each of its direct replies appears
// exactly once, sibling order is preserved, and records without an id or
// content are dropped. Replies of replies are never descended into.
func FlattenThread(nodes []gameapi.CommentNode) []models.Comment {
	flat := make([]models.Comment, 0, len(nodes))
	for _, node := range nodes {
		if node.ID == 0 || node.Content == "" {
			continue
		}
		flat = append(flat, toComment(node, nil))

		parentID := node.ID
		for _, reply := range node.Replies {
			if reply.ID == 0 || reply.Content == "" {
				continue
			}
			pid := parentID
			if reply.ParentCommentID != nil {
				pid = *reply.ParentCommentID
			}
			flat = append(flat, toComment(reply, &pid))
		}
	}
	return flat
}

func toComment(node gameapi.CommentNode, parentID *int64) models.Comment {
	return models.Comment{
		ID:              node.ID,
		Content:         node.Content,
		WriterName:      node.WriterName,
		LikeCount:       node.LikeCount,
		ParentCommentID: parentID,
		CreatedAt:       node.CreatedAt,
	}
}

// CommentGroup is one top-level comment with its direct replies, in original
// order.
type CommentGroup struct {
	Comment models.Comment
	Replies []models.Comment
}

// GroupThread re-derives the rendered grouping from a flat collection in two
// passes: top-level comments first, then each one's replies by parent id.
func GroupThread(flat []models.Comment) []CommentGroup {
	groups := make([]CommentGroup, 0, len(flat))
	for _, c := range flat {
		if c.IsReply() {
			continue
		}
		group := CommentGroup{Comment: c}
		for _, candidate := range flat {
			if candidate.ParentCommentID != nil && *candidate.ParentCommentID == c.ID {
				group.Replies = append(group.Replies, candidate)
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// ThreadView is a post's comments ready for rendering, with the viewer's
// liked-comment set cross-referenced against the same flat collection.
type ThreadView struct {
	Groups []CommentGroup
	Liked  map[int64]bool
}

// Thread fetches and reconstructs a post's comment view. The liked set is
// empty for anonymous viewers.
func (s *BoardService) Thread(ctx context.Context, v *viewer.Viewer, postID int64) (*ThreadView, error) {
	token := ""
	if v != nil {
		token = v.Token
	}
	nodes, err := s.api.GetThread(ctx, token, postID)
	if err != nil {
		return nil, err
	}

	view := &ThreadView{
		Groups: GroupThread(FlattenThread(nodes)),
		Liked:  make(map[int64]bool),
	}

	if v != nil {
		ids, err := s.api.LikedCommentIDs(ctx, token, postID)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			view.Liked[id] = true
		}
	}
	return view, nil
}

// TogglePostLike flips the viewer's like on a post. The returned state is the
// server's verbatim answer; the local flag and count are never computed by
// negating and incrementing, so a retried or out-of-order response cannot
// double-apply.
func (s *BoardService) TogglePostLike(ctx context.Context, v *viewer.Viewer, postID int64) (*gameapi.LikeState, error) {
	return s.api.TogglePostLike(ctx, v.Token, postID)
}

// ToggleCommentLike flips the viewer's like on a comment. Same reconciliation
// rule as TogglePostLike.
func (s *BoardService) ToggleCommentLike(ctx context.Context, v *viewer.Viewer, commentID int64) (*gameapi.LikeState, error) {
	return s.api.ToggleCommentLike(ctx, v.Token, commentID)
}
