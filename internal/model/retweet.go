package model

import "time"

// Retweet shares the unique-pair shape of Like but has no delete path.
type Retweet struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"type:varchar(36);index:idx_retweet_pair,unique;not null"`
	TweetID   string `gorm:"type:varchar(36);not null;index:idx_retweet_tweet;index:idx_retweet_pair,unique"`
	CreatedAt time.Time
}

func (Retweet) TableName() string { return "retweets" }
