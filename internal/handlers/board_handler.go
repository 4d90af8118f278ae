package handlers

import (
	"strconv"

	"github.com/ardentiaonline/portal-gateway/internal/dto"
	"github.com/ardentiaonline/portal-gateway/internal/localization"
	"github.com/ardentiaonline/portal-gateway/internal/models"
	"github.com/ardentiaonline/portal-gateway/internal/services"
	"github.com/ardentiaonline/portal-gateway/internal/viewer"
	"github.com/gofiber/fiber/v2"
)

// BoardHandler serves the comment view of a post and the like toggles.
type BoardHandler struct {
	boards *services.BoardService
	loc    *localization.Localizer
}

func NewBoardHandler(boards *services.BoardService, loc *localization.Localizer) *BoardHandler {
	return &BoardHandler{boards: boards, loc: loc}
}

func parseID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	return id, err == nil && id > 0
}

func (h *BoardHandler) GetThread(c *fiber.Ctx) error {
	postID, ok := parseID(c, "postId")
	if !ok {
		return badBody(c, h.loc)
	}

	v, _ := viewer.FromCtx(c)
	view, err := h.boards.Thread(c.Context(), v, postID)
	if err != nil {
		return fail(c, h.loc, err)
	}

	resp := dto.ThreadResponse{Comments: make([]dto.CommentThreadView, 0, len(view.Groups))}
	for _, group := range view.Groups {
		top := dto.CommentThreadView{
			CommentView: toCommentView(group.Comment, view.Liked),
			Replies:     make([]dto.CommentView, 0, len(group.Replies)),
		}
		for _, reply := range group.Replies {
			top.Replies = append(top.Replies, toCommentView(reply, view.Liked))
		}
		resp.Comments = append(resp.Comments, top)
		resp.Total += 1 + len(group.Replies)
	}
	return c.JSON(resp)
}

func toCommentView(cm models.Comment, liked map[int64]bool) dto.CommentView {
	return dto.CommentView{
		ID:         cm.ID,
		Content:    cm.Content,
		WriterName: cm.WriterName,
		LikeCount:  cm.LikeCount,
		Liked:      liked[cm.ID],
		CreatedAt:  cm.CreatedAt,
	}
}

func (h *BoardHandler) TogglePostLike(c *fiber.Ctx) error {
	postID, ok := parseID(c, "postId")
	if !ok {
		return badBody(c, h.loc)
	}
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	state, err := h.boards.TogglePostLike(c.Context(), v, postID)
	if err != nil {
		return fail(c, h.loc, err)
	}
	return c.JSON(dto.LikeResponse{Liked: state.Liked, LikeCount: state.LikeCount})
}

func (h *BoardHandler) ToggleCommentLike(c *fiber.Ctx) error {
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return badBody(c, h.loc)
	}
	v, ok := viewer.FromCtx(c)
	if !ok {
		return fiber.ErrUnauthorized
	}

	state, err := h.boards.ToggleCommentLike(c.Context(), v, commentID)
	if err != nil {
		return fail(c, h.loc, err)
	}
	return c.JSON(dto.LikeResponse{Liked: state.Liked, LikeCount: state.LikeCount})
}
