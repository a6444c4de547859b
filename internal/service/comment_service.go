package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
	"github.com/d60-Lab/microblog/internal/repository"
)

type CommentService interface {
	Create(ctx context.Context, actorID, tweetID, content string) (*model.Comment, error)
	ListByTweet(ctx context.Context, tweetID string, offset, limit int) ([]*model.Comment, int64, error)
}

type commentService struct {
	comments repository.CommentRepository
	tweets   repository.TweetRepository
}

func NewCommentService(comments repository.CommentRepository, tweets repository.TweetRepository) CommentService {
	return &commentService{comments: comments, tweets: tweets}
}

func (s *commentService) Create(ctx context.Context, actorID, tweetID, content string) (*model.Comment, error) {
	if err := s.tweetExists(ctx, tweetID); err != nil {
		return nil, err
	}
	return s.comments.Create(ctx, actorID, tweetID, content)
}

func (s *commentService) ListByTweet(ctx context.Context, tweetID string, offset, limit int) ([]*model.Comment, int64, error) {
	if err := s.tweetExists(ctx, tweetID); err != nil {
		return nil, 0, err
	}
	return s.comments.ListByTweet(ctx, tweetID, offset, limit)
}

func (s *commentService) tweetExists(ctx context.Context, tweetID string) error {
	if _, err := s.tweets.GetByID(ctx, tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
