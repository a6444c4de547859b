package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/pagination"
	"github.com/d60-Lab/microblog/pkg/response"
)

type commentRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

func commentViews(comments []*model.Comment) []service.CommentView {
	out := make([]service.CommentView, len(comments))
	for i, cm := range comments {
		out[i] = service.CommentView{ID: cm.ID, UserID: cm.AuthorID, Content: cm.Content, CreatedAt: cm.CreatedAt}
	}
	return out
}

// ListComments pages through a tweet's comments.
// @Summary List comments
// @Tags comments
// @Produce json
// @Param tweet_id path string true "tweet id"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Success 200 {object} response.Response{data=response.Page}
// @Failure 404 {object} response.Response
// @Router /api/v1/comments/{tweet_id} [get]
func (h *Handler) ListComments(c *gin.Context) {
	params := pagination.FromQuery(c)
	comments, count, err := h.commentSvc.ListByTweet(c.Request.Context(), c.Param("tweet_id"), params.Offset(), params.PageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, count, params.Page, params.PageSize, commentViews(comments))
}

// CreateComment adds a comment to a tweet.
// @Summary Create comment
// @Tags comments
// @Accept json
// @Produce json
// @Param tweet_id path string true "tweet id"
// @Param request body commentRequest true "content"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/comments/{tweet_id} [post]
func (h *Handler) CreateComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cm, err := h.commentSvc.Create(c.Request.Context(), middleware.ActorID(c), c.Param("tweet_id"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, service.CommentView{ID: cm.ID, UserID: cm.AuthorID, Content: cm.Content, CreatedAt: cm.CreatedAt})
}
