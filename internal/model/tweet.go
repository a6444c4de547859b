package model

import "time"

type Tweet struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	AuthorID  string    `gorm:"type:varchar(36);index:idx_tweet_author;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"<-:create"`
	UpdatedAt time.Time
}

func (Tweet) TableName() string { return "tweets" }
