package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

type updateProfileRequest struct {
	Bio           *string `json:"bio"`
	PhoneNumber   *string `json:"phone_number"`
	ProfilePic    *string `json:"profile_pic"`
	ProfileHeader *string `json:"profile_header"`
	BirthDate     *string `json:"birth_date"` // YYYY-MM-DD
	IsPublic      *bool   `json:"is_public"`
}

type profileView struct {
	UserID        string     `json:"user_id"`
	Bio           string     `json:"bio"`
	PhoneNumber   string     `json:"phone_number,omitempty"`
	ProfilePic    string     `json:"profile_pic,omitempty"`
	ProfileHeader string     `json:"profile_header,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	IsPublic      bool       `json:"is_public"`
	JoinedAt      time.Time  `json:"joined_at"`
}

func newProfileView(p *model.Profile) profileView {
	return profileView{
		UserID:        p.UserID,
		Bio:           p.Bio,
		PhoneNumber:   p.PhoneNumber,
		ProfilePic:    p.ProfilePic,
		ProfileHeader: p.ProfileHeader,
		BirthDate:     p.BirthDate,
		IsPublic:      p.IsPublic,
		JoinedAt:      p.JoinedAt,
	}
}

// MyProfile returns the actor's own profile.
// @Summary Own profile
// @Tags profile
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/my-profile [get]
func (h *Handler) MyProfile(c *gin.Context) {
	p, err := h.profileSvc.GetOwn(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, newProfileView(p))
}

// UpdateMyProfile partially updates the actor's profile.
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body updateProfileRequest true "fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/my-profile [put]
func (h *Handler) UpdateMyProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	in := service.UpdateProfileInput{
		Bio:           req.Bio,
		PhoneNumber:   req.PhoneNumber,
		ProfilePic:    req.ProfilePic,
		ProfileHeader: req.ProfileHeader,
		IsPublic:      req.IsPublic,
	}
	if req.BirthDate != nil {
		bd, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			response.BadRequest(c, "birth_date must be YYYY-MM-DD")
			return
		}
		in.BirthDate = &bd
	}
	p, err := h.profileSvc.UpdateOwn(c.Request.Context(), middleware.ActorID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, newProfileView(p))
}

// UserProfile returns another user's profile, subject to visibility.
// A hidden profile serializes as an empty object.
// @Summary Read a profile
// @Tags profile
// @Produce json
// @Param id path string true "user id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/user-profile/{id} [get]
func (h *Handler) UserProfile(c *gin.Context) {
	p, visible, err := h.profileSvc.Get(c.Request.Context(), middleware.ActorID(c), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if !visible {
		response.Success(c, struct{}{})
		return
	}
	response.Success(c, newProfileView(p))
}
