package model

import "time"

type Comment struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	AuthorID  string `gorm:"type:varchar(36);not null"`
	TweetID   string `gorm:"type:varchar(36);index:idx_comment_tweet;not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Comment) TableName() string { return "comments" }
