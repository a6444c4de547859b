package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

type FollowRepository interface {
	// Toggle deletes the (followerID, followingID) edge when present,
	// otherwise creates it with the given accepted seed. One
	// transaction, same race shape as LikeRepository.Toggle. Returns
	// whether the edge exists after the call.
	Toggle(ctx context.Context, followerID, followingID string, accepted bool) (followed bool, err error)
	FindEdge(ctx context.Context, followerID, followingID string) (*model.Follow, error)
	GetByID(ctx context.Context, id string) (*model.Follow, error)
	Accept(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
	FindPendingForTarget(ctx context.Context, followingID string, offset, limit int) ([]*model.Follow, int64, error)
	ListByFollower(ctx context.Context, followerID string, offset, limit int) ([]*model.Follow, int64, error)
	// ListFollowingIDs returns every id followerID has an edge to,
	// regardless of acceptance. The home feed is built from this raw
	// relation; the visibility check is the only acceptance gate.
	ListFollowingIDs(ctx context.Context, followerID string) ([]string, error)
	// AcceptedEdgeExists reports an accepted follower -> following edge.
	AcceptedEdgeExists(ctx context.Context, followerID, followingID string) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Toggle(ctx context.Context, followerID, followingID string, accepted bool) (bool, error) {
	var followed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Follow
		err := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).First(&existing).Error
		switch {
		case err == nil:
			followed = false
			return tx.Delete(&existing).Error
		case err == gorm.ErrRecordNotFound:
			followed = true
			return tx.Create(&model.Follow{
				ID:          uuid.New().String(),
				FollowerID:  followerID,
				FollowingID: followingID,
				IsAccepted:  accepted,
			}).Error
		default:
			return err
		}
	})
	return followed, err
}

func (r *followRepository) FindEdge(ctx context.Context, followerID, followingID string) (*model.Follow, error) {
	var f model.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *followRepository) GetByID(ctx context.Context, id string) (*model.Follow, error) {
	var f model.Follow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *followRepository) Accept(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("id = ?", id).
		Update("is_accepted", true).Error
}

func (r *followRepository) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Follow{}).Error
}

func (r *followRepository) FindPendingForTarget(ctx context.Context, followingID string, offset, limit int) ([]*model.Follow, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Follow{}).
		Where("following_id = ? AND is_accepted = ?", followingID, false)
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Follow
	err := q.Order("created_at, id").Offset(offset).Limit(limit).Find(&res).Error
	return res, count, err
}

func (r *followRepository) ListByFollower(ctx context.Context, followerID string, offset, limit int) ([]*model.Follow, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Follow{}).Where("follower_id = ?", followerID)
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var res []*model.Follow
	err := q.Order("created_at, id").Offset(offset).Limit(limit).Find(&res).Error
	return res, count, err
}

func (r *followRepository) ListFollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (r *followRepository) AcceptedEdgeExists(ctx context.Context, followerID, followingID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ? AND is_accepted = ?", followerID, followingID, true).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
