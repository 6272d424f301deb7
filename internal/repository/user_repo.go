package repository

import (
	"context"
	"errors"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByNickname(ctx context.Context, nickname string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	UpdateUser(ctx context.Context, email string, fields map[string]interface{}) (int64, error)
	UpdatePassword(ctx context.Context, email string, passwordHash string) (int64, error)
	UpdateLastViewed(ctx context.Context, email string, history model.ViewHistory) error
	DeleteUser(ctx context.Context, email string) (int64, error)
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where("email = ?", email).First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) GetUserByNickname(ctx context.Context, nickname string) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).Where("nickname = ?", nickname).First(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return user, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, email string, fields map[string]interface{}) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Updates(fields)
	return result.RowsAffected, result.Error
}

func (s *UserRepoImpl) UpdatePassword(ctx context.Context, email string, passwordHash string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Update("password", passwordHash)
	return result.RowsAffected, result.Error
}

func (s *UserRepoImpl) UpdateLastViewed(ctx context.Context, email string, history model.ViewHistory) error {
	return s.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Update("last_viewed_posts", history).Error
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, email string) (int64, error) {
	result := s.db.WithContext(ctx).Where("email = ?", email).Delete(&model.User{})
	return result.RowsAffected, result.Error
}
