package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// phonePattern mirrors the classic E.164-ish rule: optional +,
// optional leading 1, then 9-15 digits.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

type UpdateProfileInput struct {
	Bio           *string
	PhoneNumber   *string
	ProfilePic    *string
	ProfileHeader *string
	BirthDate     *time.Time
	IsPublic      *bool
}

type ProfileService interface {
	GetOwn(ctx context.Context, actorID string) (*model.Profile, error)
	UpdateOwn(ctx context.Context, actorID string, in UpdateProfileInput) (*model.Profile, error)
	// Get returns the profile of userID and whether the viewer may see
	// it (same rule as tweet visibility).
	Get(ctx context.Context, viewerID, userID string) (*model.Profile, bool, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	resolver *VisibilityResolver
}

func NewProfileService(profiles repository.ProfileRepository, resolver *VisibilityResolver) ProfileService {
	return &profileService{profiles: profiles, resolver: resolver}
}

func (s *profileService) GetOwn(ctx context.Context, actorID string) (*model.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *profileService) UpdateOwn(ctx context.Context, actorID string, in UpdateProfileInput) (*model.Profile, error) {
	p, err := s.GetOwn(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if in.PhoneNumber != nil && *in.PhoneNumber != "" && !phonePattern.MatchString(*in.PhoneNumber) {
		return nil, ErrInvalidPhone
	}

	if in.Bio != nil {
		p.Bio = *in.Bio
	}
	if in.PhoneNumber != nil {
		p.PhoneNumber = *in.PhoneNumber
	}
	if in.ProfilePic != nil {
		p.ProfilePic = *in.ProfilePic
	}
	if in.ProfileHeader != nil {
		p.ProfileHeader = *in.ProfileHeader
	}
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.IsPublic != nil {
		p.IsPublic = *in.IsPublic
	}
	if err := s.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Get(ctx context.Context, viewerID, userID string) (*model.Profile, bool, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	visible, err := s.resolver.ProfileVisible(ctx, p, viewerID)
	if err != nil {
		return nil, false, err
	}
	return p, visible, nil
}
