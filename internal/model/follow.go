package model

import "time"

// Follow is a directed edge follower -> following.
// IsAccepted starts false when the target profile is private and the
// edge then waits for the target to accept or deny it.
// idx_follow_pair = (follower_id, following_id)
type Follow struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	FollowerID  string `gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	FollowingID string `gorm:"type:varchar(36);index:idx_follow_following;not null;index:idx_follow_pair,unique"`
	IsAccepted  bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

func (Follow) TableName() string { return "follows" }
