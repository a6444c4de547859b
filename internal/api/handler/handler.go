package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

type Handler struct {
	authSvc    service.AuthService
	profileSvc service.ProfileService
	tweetSvc   service.TweetService
	commentSvc service.CommentService
	engageSvc  service.EngagementService
	followSvc  service.FollowService
	presenter  *service.TweetPresenter
	tokens     *service.TokenService
}

func New(
	authSvc service.AuthService,
	profileSvc service.ProfileService,
	tweetSvc service.TweetService,
	commentSvc service.CommentService,
	engageSvc service.EngagementService,
	followSvc service.FollowService,
	presenter *service.TweetPresenter,
	tokens *service.TokenService,
) *Handler {
	return &Handler{
		authSvc:    authSvc,
		profileSvc: profileSvc,
		tweetSvc:   tweetSvc,
		commentSvc: commentSvc,
		engageSvc:  engageSvc,
		followSvc:  followSvc,
		presenter:  presenter,
		tokens:     tokens,
	}
}

// RegisterRoutes mounts the public and authenticated route groups.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.POST("/token/refresh", h.Refresh)

	auth := api.Group("", middleware.Auth(h.tokens))
	auth.POST("/logout", h.Logout)

	auth.GET("/my-profile", h.MyProfile)
	auth.PUT("/my-profile", h.UpdateMyProfile)
	auth.GET("/user-profile/:id", h.UserProfile)

	auth.POST("/tweets/create", h.CreateTweet)
	auth.GET("/tweets", h.HomeFeed)
	auth.GET("/tweets/:id", h.GetTweet)
	auth.PUT("/tweets/:id", h.UpdateTweet)
	auth.DELETE("/tweets/:id", h.DeleteTweet)
	auth.GET("/recommended-tweets", h.RecommendedFeed)
	auth.GET("/user-tweets/:user", h.UserFeed)

	auth.GET("/comments/:tweet_id", h.ListComments)
	auth.POST("/comments/:tweet_id", h.CreateComment)

	auth.POST("/like/:tweet_id", h.ToggleLike)
	auth.POST("/retweet", h.Retweet)

	auth.GET("/follow/:user_id", h.ListFollows)
	auth.POST("/follow/:user_id", h.ToggleFollow)
	auth.GET("/requests", h.PendingRequests)
	auth.POST("/requests/:id/accept", h.AcceptRequest)
	auth.POST("/requests/:id/deny", h.DenyRequest)
}

// fail maps service errors onto the response helpers.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrFollowSelf),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidPhone):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrAlreadyRetweeted),
		errors.Is(err, service.ErrUserExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		response.Unauthorized(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
