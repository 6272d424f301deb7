package model

import (
	"time"
)

type Comment struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	PostID             uint64    `gorm:"not null;index:idx_post_id" json:"postId"`
	Content            string    `gorm:"type:varchar(1000);not null" json:"content"`
	AuthorEmail        string    `gorm:"type:varchar(255);not null;index:idx_author_email" json:"authorEmail"`
	AuthorNickname     string    `gorm:"type:varchar(50);not null" json:"authorNickname"`
	AuthorProfileImage string    `gorm:"type:varchar(512);default:''" json:"authorProfileImage"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}
