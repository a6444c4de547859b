package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/pkg/pagination"
	"github.com/d60-Lab/microblog/pkg/response"
)

type followView struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	IsAccepted  bool      `json:"is_accepted"`
	CreatedAt   time.Time `json:"created_at"`
}

func followViews(edges []*model.Follow) []followView {
	out := make([]followView, len(edges))
	for i, f := range edges {
		out[i] = followView{ID: f.ID, FollowerID: f.FollowerID, FollowingID: f.FollowingID, IsAccepted: f.IsAccepted, CreatedAt: f.CreatedAt}
	}
	return out
}

// ToggleFollow follows the target, or unfollows when an edge exists.
// @Summary Toggle follow
// @Tags follows
// @Produce json
// @Param user_id path string true "target user id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/follow/{user_id} [post]
func (h *Handler) ToggleFollow(c *gin.Context) {
	followed, err := h.followSvc.Toggle(c.Request.Context(), middleware.ActorID(c), c.Param("user_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"followed": followed})
}

// ListFollows pages through a user's outgoing follow edges.
// @Summary List follows
// @Tags follows
// @Produce json
// @Param user_id path string true "user id"
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Success 200 {object} response.Response{data=response.Page}
// @Router /api/v1/follow/{user_id} [get]
func (h *Handler) ListFollows(c *gin.Context) {
	params := pagination.FromQuery(c)
	edges, count, err := h.followSvc.ListByFollower(c.Request.Context(), c.Param("user_id"), params.Offset(), params.PageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, count, params.Page, params.PageSize, followViews(edges))
}

// PendingRequests lists incoming follow requests awaiting a decision.
// @Summary Pending follow requests
// @Tags follows
// @Produce json
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Success 200 {object} response.Response{data=response.Page}
// @Router /api/v1/requests [get]
func (h *Handler) PendingRequests(c *gin.Context) {
	params := pagination.FromQuery(c)
	edges, count, err := h.followSvc.PendingRequests(c.Request.Context(), middleware.ActorID(c), params.Offset(), params.PageSize)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c, count, params.Page, params.PageSize, followViews(edges))
}

// AcceptRequest accepts a pending request addressed to the actor.
// @Summary Accept follow request
// @Tags follows
// @Produce json
// @Param id path string true "request id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/requests/{id}/accept [post]
func (h *Handler) AcceptRequest(c *gin.Context) {
	if err := h.followSvc.Accept(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, gin.H{"detail": "follow request accepted"})
}

// DenyRequest deletes a pending request addressed to the actor.
// @Summary Deny follow request
// @Tags follows
// @Param id path string true "request id"
// @Success 204
// @Failure 403 {object} response.Response
// @Router /api/v1/requests/{id}/deny [post]
func (h *Handler) DenyRequest(c *gin.Context) {
	if err := h.followSvc.Deny(c.Request.Context(), middleware.ActorID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
