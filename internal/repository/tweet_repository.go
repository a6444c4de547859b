package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type TweetRepository interface {
	Create(ctx context.Context, authorID, content string) (*model.Tweet, error)
	GetByID(ctx context.Context, id string) (*model.Tweet, error)
	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error

	ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Tweet, int64, error)
	// ListHome returns tweets authored by the viewer or by any id in
	// followingIDs, newest first.
	ListHome(ctx context.Context, viewerID string, followingIDs []string, offset, limit int) ([]*model.Tweet, int64, error)
	// ListRecommended is the home feed unioned with every tweet the
	// candidate user has liked.
	ListRecommended(ctx context.Context, viewerID string, followingIDs []string, candidateID string, offset, limit int) ([]*model.Tweet, int64, error)
}

type tweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository { return &tweetRepository{db: db} }

func (r *tweetRepository) Create(ctx context.Context, authorID, content string) (*model.Tweet, error) {
	t := &model.Tweet{ID: uuid.New().String(), AuthorID: authorID, Content: content}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

func (r *tweetRepository) GetByID(ctx context.Context, id string) (*model.Tweet, error) {
	var t model.Tweet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tweetRepository) UpdateContent(ctx context.Context, id, content string) error {
	return r.db.WithContext(ctx).
		Model(&model.Tweet{}).
		Where("id = ?", id).
		Update("content", content).Error
}

func (r *tweetRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tweet{}).Error
}

func (r *tweetRepository) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]*model.Tweet, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Tweet{}).Where("author_id = ?", authorID)
	return r.page(q, offset, limit)
}

func (r *tweetRepository) ListHome(ctx context.Context, viewerID string, followingIDs []string, offset, limit int) ([]*model.Tweet, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("author_id = ? OR author_id IN ?", viewerID, emptySafe(followingIDs))
	return r.page(q, offset, limit)
}

func (r *tweetRepository) ListRecommended(ctx context.Context, viewerID string, followingIDs []string, candidateID string, offset, limit int) ([]*model.Tweet, int64, error) {
	liked := r.db.Model(&model.Like{}).Select("tweet_id").Where("user_id = ?", candidateID)
	q := r.db.WithContext(ctx).Model(&model.Tweet{}).
		Where("author_id = ? OR author_id IN ? OR id IN (?)", viewerID, emptySafe(followingIDs), liked)
	return r.page(q, offset, limit)
}

func (r *tweetRepository) page(q *gorm.DB, offset, limit int) ([]*model.Tweet, int64, error) {
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Tweet
	err := q.Order("created_at DESC, id").Offset(offset).Limit(limit).Find(&res).Error
	return res, count, err
}

// emptySafe keeps `IN ?` valid when the id list is empty.
func emptySafe(ids []string) []string {
	if len(ids) == 0 {
		return []string{""}
	}
	return ids
}
