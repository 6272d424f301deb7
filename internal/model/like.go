package model

import (
	"time"
)

// Like is one row per (post, user) pair. The composite primary key keeps
// the like set duplicate-free at the storage level.
type Like struct {
	PostID    uint64    `gorm:"primaryKey;index:idx_post_id" json:"postId"`
	UserEmail string    `gorm:"primaryKey;type:varchar(255)" json:"userEmail"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
