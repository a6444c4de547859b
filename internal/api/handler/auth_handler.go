package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

type registerRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=64"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Register creates a user and their profile.
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "registration"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.authSvc.Register(c.Request.Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, gin.H{"id": user.ID, "username": user.Username})
}

// Login issues the access/refresh token pair.
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	pair, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, pair)
}

// Refresh trades a refresh token for a fresh pair.
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body refreshRequest true "refresh token"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/token/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	pair, err := h.authSvc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, pair)
}

// Logout denylists the presented access token.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 204
// @Failure 401 {object} response.Response
// @Router /api/v1/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	claims, _ := c.Get(middleware.ContextClaims)
	tokenClaims, ok := claims.(*service.TokenClaims)
	if !ok {
		response.Unauthorized(c, "missing token")
		return
	}
	if err := h.authSvc.Logout(c.Request.Context(), tokenClaims); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
