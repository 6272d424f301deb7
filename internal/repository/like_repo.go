package repository

import (
	"context"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"

	"gorm.io/gorm"
)

type LikeRepo interface {
	AddLike(ctx context.Context, like *model.Like) error
	RemoveLike(ctx context.Context, userEmail string, postID uint64) (int64, error)
	ListLikes(ctx context.Context, postID uint64) ([]string, error)
	CountLikes(ctx context.Context, postID uint64) (int64, error)
	HasLiked(ctx context.Context, userEmail string, postID uint64) (bool, error)
	DeleteByUserEmail(ctx context.Context, userEmail string) error
}

type LikeRepoImpl struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) LikeRepo {
	return &LikeRepoImpl{db: db}
}

func (s *LikeRepoImpl) AddLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *LikeRepoImpl) RemoveLike(ctx context.Context, userEmail string, postID uint64) (int64, error) {
	result := s.db.WithContext(ctx).Where("user_email = ? AND post_id = ?", userEmail, postID).Delete(&model.Like{})
	return result.RowsAffected, result.Error
}

func (s *LikeRepoImpl) ListLikes(ctx context.Context, postID uint64) ([]string, error) {
	emails := make([]string, 0)
	err := s.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).
		Order("created_at ASC").Pluck("user_email", &emails).Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func (s *LikeRepoImpl) CountLikes(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (s *LikeRepoImpl) HasLiked(ctx context.Context, userEmail string, postID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Like{}).
		Where("user_email = ? AND post_id = ?", userEmail, postID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *LikeRepoImpl) DeleteByUserEmail(ctx context.Context, userEmail string) error {
	return s.db.WithContext(ctx).Where("user_email = ?", userEmail).Delete(&model.Like{}).Error
}
