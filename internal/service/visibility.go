package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

// VisibilityResolver is the single authorization boundary for content.
// Every tweet returned by any endpoint passes through Visible before
// serialization.
type VisibilityResolver struct {
	profiles repository.ProfileRepository
	follows  repository.FollowRepository
}

func NewVisibilityResolver(profiles repository.ProfileRepository, follows repository.FollowRepository) *VisibilityResolver {
	return &VisibilityResolver{profiles: profiles, follows: follows}
}

// Visible reports whether viewerID may see the tweet: the author's
// profile is public, the viewer is the author, or an accepted
// viewer -> author follow edge exists.
func (r *VisibilityResolver) Visible(ctx context.Context, tweet *model.Tweet, viewerID string) (bool, error) {
	if viewerID == tweet.AuthorID {
		return true, nil
	}
	public, err := r.profilePublic(ctx, tweet.AuthorID)
	if err != nil {
		return false, err
	}
	if public {
		return true, nil
	}
	return r.follows.AcceptedEdgeExists(ctx, viewerID, tweet.AuthorID)
}

// ProfileVisible applies the same rule to profile reads.
func (r *VisibilityResolver) ProfileVisible(ctx context.Context, profile *model.Profile, viewerID string) (bool, error) {
	if viewerID == profile.UserID {
		return true, nil
	}
	if profile.IsPublic {
		return true, nil
	}
	return r.follows.AcceptedEdgeExists(ctx, viewerID, profile.UserID)
}

func (r *VisibilityResolver) profilePublic(ctx context.Context, userID string) (bool, error) {
	p, err := r.profiles.GetByUserID(ctx, userID)
	if err != nil {
		// an author without a profile row has nothing to mark private
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, err
	}
	return p.IsPublic, nil
}
