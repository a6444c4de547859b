package model

import "time"

// Profile is the per-user metadata record, one per user.
// JoinedAt is set on creation and never updated afterwards.
type Profile struct {
	ID            string `gorm:"primaryKey;type:varchar(36)"`
	UserID        string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Bio           string `gorm:"type:text"`
	PhoneNumber   string `gorm:"type:varchar(16)"`
	ProfilePic    string `gorm:"type:varchar(512)"`
	ProfileHeader string `gorm:"type:varchar(512)"`
	BirthDate     *time.Time
	IsPublic      bool      `gorm:"not null;default:true"`
	JoinedAt      time.Time `gorm:"<-:create"`
}

func (Profile) TableName() string { return "profiles" }
