package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/recommend"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/pkg/logger"
)

type EngagementService interface {
	// ToggleLike removes an existing like or creates one. Returns
	// whether the like exists after the call.
	ToggleLike(ctx context.Context, actorID, tweetID string) (liked bool, err error)
	// Retweet creates the pair unconditionally; a duplicate fails with
	// ErrAlreadyRetweeted. Deliberately not a toggle.
	Retweet(ctx context.Context, actorID, tweetID string) (*model.Retweet, error)
}

type engagementService struct {
	tweets   repository.TweetRepository
	likes    repository.LikeRepository
	retweets repository.RetweetRepository
	corpus   *recommend.CorpusCache // optional
}

func NewEngagementService(tweets repository.TweetRepository, likes repository.LikeRepository, retweets repository.RetweetRepository, corpus *recommend.CorpusCache) EngagementService {
	return &engagementService{tweets: tweets, likes: likes, retweets: retweets, corpus: corpus}
}

func (s *engagementService) ToggleLike(ctx context.Context, actorID, tweetID string) (bool, error) {
	if err := s.tweetExists(ctx, tweetID); err != nil {
		return false, err
	}
	liked, err := s.likes.Toggle(ctx, actorID, tweetID)
	if err != nil {
		return false, err
	}
	// the user's liked corpus changed, stale recommendations out
	if s.corpus != nil {
		s.corpus.Invalidate(ctx, actorID)
	}
	logger.Info("like toggled",
		zap.String("user", actorID), zap.String("tweet", tweetID), zap.Bool("liked", liked))
	return liked, nil
}

func (s *engagementService) Retweet(ctx context.Context, actorID, tweetID string) (*model.Retweet, error) {
	if err := s.tweetExists(ctx, tweetID); err != nil {
		return nil, err
	}
	rt, err := s.retweets.Create(ctx, actorID, tweetID)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyRetweeted
		}
		return nil, err
	}
	return rt, nil
}

func (s *engagementService) tweetExists(ctx context.Context, tweetID string) error {
	if _, err := s.tweets.GetByID(ctx, tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
