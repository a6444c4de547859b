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

type TweetService interface {
	Create(ctx context.Context, actorID, content string) (*model.Tweet, error)
	Get(ctx context.Context, id string) (*model.Tweet, error)
	// Update and Delete are owner-only mutations.
	Update(ctx context.Context, actorID, id, content string) (*model.Tweet, error)
	Delete(ctx context.Context, actorID, id string) error

	// HomeFeed is the viewer's own tweets plus tweets by everyone the
	// viewer has a follow edge to. Acceptance is not checked here; the
	// visibility resolver filters at serialization.
	HomeFeed(ctx context.Context, viewerID string, offset, limit int) ([]*model.Tweet, int64, error)
	UserFeed(ctx context.Context, authorID string, offset, limit int) ([]*model.Tweet, int64, error)
	// RecommendedFeed is the home feed unioned with the liked tweets of
	// the most similar other user. Without a similar user it degrades
	// to the home feed.
	RecommendedFeed(ctx context.Context, viewerID string, offset, limit int) ([]*model.Tweet, int64, error)
}

type tweetService struct {
	tweets      repository.TweetRepository
	follows     repository.FollowRepository
	users       repository.UserRepository
	recommender *recommend.Recommender
}

func NewTweetService(tweets repository.TweetRepository, follows repository.FollowRepository, users repository.UserRepository, recommender *recommend.Recommender) TweetService {
	return &tweetService{tweets: tweets, follows: follows, users: users, recommender: recommender}
}

func (s *tweetService) Create(ctx context.Context, actorID, content string) (*model.Tweet, error) {
	t, err := s.tweets.Create(ctx, actorID, content)
	if err != nil {
		return nil, err
	}
	logger.Info("tweet created", zap.String("tweet", t.ID), zap.String("author", actorID))
	return t, nil
}

func (s *tweetService) Get(ctx context.Context, id string) (*model.Tweet, error) {
	t, err := s.tweets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *tweetService) Update(ctx context.Context, actorID, id, content string) (*model.Tweet, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.AuthorID != actorID {
		return nil, ErrPermissionDenied
	}
	if err := s.tweets.UpdateContent(ctx, id, content); err != nil {
		return nil, err
	}
	t.Content = content
	return t, nil
}

func (s *tweetService) Delete(ctx context.Context, actorID, id string) error {
	t, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if t.AuthorID != actorID {
		return ErrPermissionDenied
	}
	return s.tweets.Delete(ctx, id)
}

func (s *tweetService) HomeFeed(ctx context.Context, viewerID string, offset, limit int) ([]*model.Tweet, int64, error) {
	followingIDs, err := s.follows.ListFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}
	return s.tweets.ListHome(ctx, viewerID, followingIDs, offset, limit)
}

func (s *tweetService) UserFeed(ctx context.Context, authorID string, offset, limit int) ([]*model.Tweet, int64, error) {
	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	return s.tweets.ListByAuthor(ctx, authorID, offset, limit)
}

func (s *tweetService) RecommendedFeed(ctx context.Context, viewerID string, offset, limit int) ([]*model.Tweet, int64, error) {
	candidateID, ok, err := s.recommender.MostSimilarUser(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}
	followingIDs, err := s.follows.ListFollowingIDs(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return s.tweets.ListHome(ctx, viewerID, followingIDs, offset, limit)
	}
	return s.tweets.ListRecommended(ctx, viewerID, followingIDs, candidateID, offset, limit)
}
