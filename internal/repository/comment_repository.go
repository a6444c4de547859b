package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type CommentRepository interface {
	Create(ctx context.Context, authorID, tweetID, content string) (*model.Comment, error)
	ListByTweet(ctx context.Context, tweetID string, offset, limit int) ([]*model.Comment, int64, error)
	// LatestByTweet returns the newest n comments for tweet serialization.
	LatestByTweet(ctx context.Context, tweetID string, n int) ([]*model.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) Create(ctx context.Context, authorID, tweetID, content string) (*model.Comment, error) {
	c := &model.Comment{ID: uuid.New().String(), AuthorID: authorID, TweetID: tweetID, Content: content}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *commentRepository) ListByTweet(ctx context.Context, tweetID string, offset, limit int) ([]*model.Comment, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Comment{}).Where("tweet_id = ?", tweetID)
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Comment
	err := q.Order("created_at, id").Offset(offset).Limit(limit).Find(&res).Error
	return res, count, err
}

func (r *commentRepository) LatestByTweet(ctx context.Context, tweetID string, n int) ([]*model.Comment, error) {
	var res []*model.Comment
	err := r.db.WithContext(ctx).
		Where("tweet_id = ?", tweetID).
		Order("created_at DESC, id").
		Limit(n).
		Find(&res).Error
	return res, err
}
