package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type LikeRepository interface {
	// Toggle deletes the (userID, tweetID) row when present, creates it
	// otherwise. Runs in one transaction so two concurrent toggles
	// cannot both observe the same state. Returns whether the like
	// exists after the call.
	Toggle(ctx context.Context, userID, tweetID string) (liked bool, err error)
	CountByTweet(ctx context.Context, tweetID string) (int64, error)
	// ListLikedContents returns the text of every tweet userID has
	// liked, in like-creation order. This is the liked-content corpus
	// the recommender vectorizes.
	ListLikedContents(ctx context.Context, userID string) ([]string, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

func (r *likeRepository) Toggle(ctx context.Context, userID, tweetID string) (bool, error) {
	var liked bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Like
		err := tx.Where("user_id = ? AND tweet_id = ?", userID, tweetID).First(&existing).Error
		switch {
		case err == nil:
			liked = false
			return tx.Delete(&existing).Error
		case err == gorm.ErrRecordNotFound:
			liked = true
			return tx.Create(&model.Like{ID: uuid.New().String(), UserID: userID, TweetID: tweetID}).Error
		default:
			return err
		}
	})
	return liked, err
}

func (r *likeRepository) CountByTweet(ctx context.Context, tweetID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).Where("tweet_id = ?", tweetID).Count(&cnt).Error
	return cnt, err
}

func (r *likeRepository) ListLikedContents(ctx context.Context, userID string) ([]string, error) {
	var contents []string
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Select("tweets.content").
		Joins("JOIN tweets ON tweets.id = likes.tweet_id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at, likes.id").
		Pluck("tweets.content", &contents).Error
	return contents, err
}
