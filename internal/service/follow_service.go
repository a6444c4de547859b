package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/logger"
)

type FollowService interface {
	// Toggle removes an existing actor -> target edge or creates a new
	// one. A new edge is accepted immediately when the target profile
	// is public, pending otherwise. Returns whether the edge exists
	// after the call.
	Toggle(ctx context.Context, actorID, targetID string) (followed bool, err error)
	// Accept flips a pending edge to accepted. Only the edge's target
	// may do this.
	Accept(ctx context.Context, actorID, requestID string) error
	// Deny deletes a pending edge. Only the edge's target may do this.
	Deny(ctx context.Context, actorID, requestID string) error
	PendingRequests(ctx context.Context, actorID string, offset, limit int) ([]*model.Follow, int64, error)
	ListByFollower(ctx context.Context, followerID string, offset, limit int) ([]*model.Follow, int64, error)
}

type followService struct {
	follows  repository.FollowRepository
	users    repository.UserRepository
	profiles repository.ProfileRepository
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository, profiles repository.ProfileRepository) FollowService {
	return &followService{follows: follows, users: users, profiles: profiles}
}

func (s *followService) Toggle(ctx context.Context, actorID, targetID string) (bool, error) {
	if actorID == targetID {
		return false, ErrFollowSelf
	}
	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	accepted := true
	if p, err := s.profiles.GetByUserID(ctx, targetID); err == nil {
		accepted = p.IsPublic
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	followed, err := s.follows.Toggle(ctx, actorID, targetID, accepted)
	if err != nil {
		return false, err
	}
	logger.Info("follow toggled",
		zap.String("follower", actorID),
		zap.String("following", targetID),
		zap.Bool("followed", followed))
	return followed, nil
}

func (s *followService) Accept(ctx context.Context, actorID, requestID string) error {
	edge, err := s.pendingEdgeFor(ctx, actorID, requestID)
	if err != nil {
		return err
	}
	return s.follows.Accept(ctx, edge.ID)
}

func (s *followService) Deny(ctx context.Context, actorID, requestID string) error {
	edge, err := s.pendingEdgeFor(ctx, actorID, requestID)
	if err != nil {
		return err
	}
	return s.follows.DeleteByID(ctx, edge.ID)
}

// pendingEdgeFor loads the request and checks the actor is its target.
func (s *followService) pendingEdgeFor(ctx context.Context, actorID, requestID string) (*model.Follow, error) {
	edge, err := s.follows.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if edge.FollowingID != actorID {
		return nil, ErrPermissionDenied
	}
	return edge, nil
}

func (s *followService) PendingRequests(ctx context.Context, actorID string, offset, limit int) ([]*model.Follow, int64, error) {
	return s.follows.FindPendingForTarget(ctx, actorID, offset, limit)
}

func (s *followService) ListByFollower(ctx context.Context, followerID string, offset, limit int) ([]*model.Follow, int64, error) {
	return s.follows.ListByFollower(ctx, followerID, offset, limit)
}
