package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type RetweetRepository interface {
	// Create inserts the (userID, tweetID) row. A second attempt on the
	// same pair fails with gorm.ErrDuplicatedKey; there is no toggle.
	Create(ctx context.Context, userID, tweetID string) (*model.Retweet, error)
	CountByTweet(ctx context.Context, tweetID string) (int64, error)
}

type retweetRepository struct {
	db *gorm.DB
}

func NewRetweetRepository(db *gorm.DB) RetweetRepository { return &retweetRepository{db: db} }

func (r *retweetRepository) Create(ctx context.Context, userID, tweetID string) (*model.Retweet, error) {
	rt := &model.Retweet{ID: uuid.New().String(), UserID: userID, TweetID: tweetID}
	if err := r.db.WithContext(ctx).Create(rt).Error; err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *retweetRepository) CountByTweet(ctx context.Context, tweetID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Retweet{}).Where("tweet_id = ?", tweetID).Count(&cnt).Error
	return cnt, err
}
