package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/pkg/pagination"
	"github.com/d60-Lab/microblog/pkg/response"
)

type tweetRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

// CreateTweet posts a tweet authored by the actor.
// @Summary Create tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param request body tweetRequest true "content"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/tweets/create [post]
func (h *Handler) CreateTweet(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.tweetSvc.Create(c.Request.Context(), middleware.ActorID(c), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, gin.H{"id": t.ID, "content": t.Content, "created_at": t.CreatedAt})
}

// GetTweet returns one tweet; hidden tweets come back as an empty object.
// @Summary Tweet detail
// @Tags tweets
// @Produce json
// @Param id path string true "tweet id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/tweets/{id} [get]
func (h *Handler) GetTweet(c *gin.Context) {
	t, err := h.tweetSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	view, err := h.presenter.Render(c.Request.Context(), t, middleware.ActorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if view == nil {
		response.Success(c, struct{}{})
		return
	}
	response.Success(c, view)
}

// UpdateTweet edits a tweet's content, owner only.
// @Summary Edit tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param id path string true "tweet id"
// @Param request body tweetRequest true "content"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/tweets/{id} [put]
func (h *Handler) UpdateTweet(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.tweetSvc.Update(c.Request.Context(), middleware.ActorID(c), c.Param("id"), req.Content)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"id": t.ID, "content": t.Content})
}

// DeleteTweet removes a tweet, owner only.
// @Summary Delete tweet
// @Tags tweets
// @Param id path string true "tweet id"
// @Success 204
// @Failure 403 {object} response.Response
// @Router /api/v1/tweets/{id} [delete]
func (h *Handler) DeleteTweet(c *gin.Context) {
	if err := h.tweetSvc.Delete(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}

// HomeFeed lists tweets by the actor and everyone they follow.
// @Summary Home feed
// @Tags tweets
// @Produce json
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Success 200 {object} response.Response{data=response.Page}
// @Router /api/v1/tweets [get]
func (h *Handler) HomeFeed(c *gin.Context) {
	h.renderFeed(c, func(p pagination.Params) ([]*model.Tweet, int64, error) {
		return h.tweetSvc.HomeFeed(c.Request.Context(), middleware.ActorID(c), p.Offset(), p.PageSize)
	})
}

// RecommendedFeed lists the home feed plus tweets liked by the most
// similar other user.
// @Summary Recommended feed
// @Tags tweets
// @Produce json
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Success 200 {object} response.Response{data=response.Page}
// @Router /api/v1/recommended-tweets [get]
func (h *Handler) RecommendedFeed(c *gin.Context) {
	h.renderFeed(c, func(p pagination.Params) ([]*model.Tweet, int64, error) {
		return h.tweetSvc.RecommendedFeed(c.Request.Context(), middleware.ActorID(c), p.Offset(), p.PageSize)
	})
}

// UserFeed lists one author's tweets.
// @Summary Per-user feed
// @Tags tweets
// @Produce json
// @Param user path string true "user id"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Success 200 {object} response.Response{data=response.Page}
// @Router /api/v1/user-tweets/{user} [get]
func (h *Handler) UserFeed(c *gin.Context) {
	h.renderFeed(c, func(p pagination.Params) ([]*model.Tweet, int64, error) {
		return h.tweetSvc.UserFeed(c.Request.Context(), c.Param("user"), p.Offset(), p.PageSize)
	})
}

func (h *Handler) renderFeed(c *gin.Context, load func(pagination.Params) ([]*model.Tweet, int64, error)) {
	params := pagination.FromQuery(c)
	tweets, count, err := load(params)
	if err != nil {
		fail(c, err)
		return
	}
	views, err := h.presenter.RenderList(c.Request.Context(), tweets, middleware.ActorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, count, params.Page, params.PageSize, views)
}
