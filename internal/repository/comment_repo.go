package repository

import (
	"context"
	"errors"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error)
	UpdateComment(ctx context.Context, id uint64, content string) (int64, error)
	DeleteComment(ctx context.Context, id uint64) (int64, error)
	DeleteByAuthorEmail(ctx context.Context, email string) error
	UpdateAuthorByEmail(ctx context.Context, email, nickname, profileImage string) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	result := s.db.WithContext(ctx).First(comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return comment, nil
}

func (s *CommentRepoImpl) GetCommentsByPostID(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	err := s.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentRepoImpl) UpdateComment(ctx context.Context, id uint64, content string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("content", content)
	return result.RowsAffected, result.Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&model.Comment{}, id)
	return result.RowsAffected, result.Error
}

func (s *CommentRepoImpl) DeleteByAuthorEmail(ctx context.Context, email string) error {
	return s.db.WithContext(ctx).Where("author_email = ?", email).Delete(&model.Comment{}).Error
}

func (s *CommentRepoImpl) UpdateAuthorByEmail(ctx context.Context, email, nickname, profileImage string) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).Where("author_email = ?", email).Updates(map[string]interface{}{
		"author_nickname":      nickname,
		"author_profile_image": profileImage,
	}).Error
}
