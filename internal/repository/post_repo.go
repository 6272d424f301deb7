package repository

import (
	"context"
	"errors"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.PostSummary, error)
	UpdatePost(ctx context.Context, id uint64, fields map[string]interface{}) (int64, error)
	DeletePost(ctx context.Context, id uint64) (int64, error)
	IncrementViews(ctx context.Context, id uint64) error
	UpdateAuthorByEmail(ctx context.Context, email, nickname, profileImage string) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.PostSummary, error) {
	summaries := make([]*model.PostSummary, 0)
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Select(`posts.id, posts.title, posts.views, posts.author_nickname,
			posts.author_profile_image AS author_profile, posts.created_at,
			(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count,
			(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count`).
		Order("posts.created_at DESC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, id uint64, fields map[string]interface{}) (int64, error) {
	result := s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Updates(fields)
	return result.RowsAffected, result.Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) (int64, error) {
	var affected int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		affected = result.RowsAffected
		if affected == 0 {
			return nil
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", id).Delete(&model.Like{}).Error
	})
	return affected, err
}

func (s *PostRepoImpl) IncrementViews(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).
		Update("views", gorm.Expr("views + 1")).Error
}

func (s *PostRepoImpl) UpdateAuthorByEmail(ctx context.Context, email, nickname, profileImage string) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).Where("author_email = ?", email).Updates(map[string]interface{}{
		"author_nickname":      nickname,
		"author_profile_image": profileImage,
	}).Error
}
