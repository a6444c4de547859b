package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/pkg/response"
)

type retweetRequest struct {
	TweetID string `json:"tweet_id" binding:"required"`
}

// ToggleLike likes the tweet, or unlikes it when already liked.
// @Summary Toggle like
// @Tags engagement
// @Produce json
// @Param tweet_id path string true "tweet id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/like/{tweet_id} [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	liked, err := h.engageSvc.ToggleLike(c.Request.Context(), middleware.ActorID(c), c.Param("tweet_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"liked": liked})
}

// Retweet records a retweet. A duplicate pair is a conflict, not a toggle.
// @Summary Retweet
// @Tags engagement
// @Accept json
// @Produce json
// @Param request body retweetRequest true "tweet"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/retweet [post]
func (h *Handler) Retweet(c *gin.Context) {
	var req retweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	rt, err := h.engageSvc.Retweet(c.Request.Context(), middleware.ActorID(c), req.TweetID)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, gin.H{"id": rt.ID, "tweet_id": rt.TweetID})
}
