package model

import "time"

// Like is a (user, tweet) pair, at most one row per pair.
// idx_like_pair = (user_id, tweet_id)
type Like struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"type:varchar(36);index:idx_like_user;index:idx_like_pair,unique;not null"`
	TweetID   string `gorm:"type:varchar(36);not null;index:idx_like_pair,unique"`
	CreatedAt time.Time
}

func (Like) TableName() string { return "likes" }
