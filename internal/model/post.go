package model

import (
	"time"
)

type Post struct {
	ID                 uint64    `gorm:"primaryKey" json:"id"`
	Title              string    `gorm:"type:varchar(255);not null" json:"title"`
	Content            string    `gorm:"not null" json:"content"`
	Image              *string   `gorm:"type:varchar(512)" json:"image,omitempty"`
	AuthorEmail        string    `gorm:"type:varchar(255);not null;index:idx_author_email" json:"authorEmail"`
	AuthorNickname     string    `gorm:"type:varchar(50);not null" json:"authorNickname"`
	AuthorProfileImage string    `gorm:"type:varchar(512);default:''" json:"authorProfileImage"`
	Views              uint64    `gorm:"not null;default:0" json:"views"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}

// PostSummary is the board-list projection: counts instead of rows.
type PostSummary struct {
	ID             uint64    `json:"id"`
	Title          string    `json:"title"`
	LikeCount      int64     `json:"likeCount"`
	Views          uint64    `json:"views"`
	CommentCount   int64     `json:"commentCount"`
	AuthorNickname string    `json:"authorNickname"`
	AuthorProfile  string    `json:"authorProfileImage"`
	CreatedAt      time.Time `json:"createdAt"`
}
