package model

import (
	"time"
)

// ViewHistory maps post id to the last time the user's view of that post
// was counted. Stored as a JSON column on the user row.
type ViewHistory map[uint64]time.Time

type User struct {
	Email           string      `gorm:"primaryKey;type:varchar(255)" json:"email"`
	Password        string      `gorm:"type:varchar(255);not null" json:"password"`
	Nickname        string      `gorm:"type:varchar(50);not null;uniqueIndex:idx_nickname" json:"nickname"`
	ProfileImage    string      `gorm:"type:varchar(512);default:''" json:"profileImage"`
	LastViewedPosts ViewHistory `gorm:"type:json;serializer:json" json:"lastViewedPosts,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
