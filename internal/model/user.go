package model

import "time"

type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Username  string `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"` // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
