package jsonfile

import (
	"context"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository"
)

type CommentRepoImpl struct {
	store *Store
}

func NewCommentRepo(store *Store) repository.CommentRepo {
	return &CommentRepoImpl{store: store}
}

func (s *CommentRepoImpl) CreateComment(_ context.Context, comment *model.Comment) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return err
	}
	var maxID uint64
	for _, c := range comments {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	now := time.Now()
	comment.ID = maxID + 1
	comment.CreatedAt = now
	comment.UpdatedAt = now
	comments = append(comments, comment)
	return s.store.save(commentsFile, comments)
}

func (s *CommentRepoImpl) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return nil, err
	}
	for _, c := range comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *CommentRepoImpl) GetCommentsByPostID(_ context.Context, postID uint64) ([]*model.Comment, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return nil, err
	}
	result := make([]*model.Comment, 0)
	for _, c := range comments {
		if c.PostID == postID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *CommentRepoImpl) UpdateComment(_ context.Context, id uint64, content string) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return 0, err
	}
	for _, c := range comments {
		if c.ID != id {
			continue
		}
		c.Content = content
		c.UpdatedAt = time.Now()
		return 1, s.store.save(commentsFile, comments)
	}
	return 0, nil
}

func (s *CommentRepoImpl) DeleteComment(_ context.Context, id uint64) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return 0, err
	}
	kept := comments[:0]
	var removed int64
	for _, c := range comments {
		if c.ID == id {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.store.save(commentsFile, kept)
}

func (s *CommentRepoImpl) DeleteByAuthorEmail(_ context.Context, email string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return err
	}
	kept := comments[:0]
	for _, c := range comments {
		if c.AuthorEmail != email {
			kept = append(kept, c)
		}
	}
	return s.store.save(commentsFile, kept)
}

func (s *CommentRepoImpl) UpdateAuthorByEmail(_ context.Context, email, nickname, profileImage string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var comments []*model.Comment
	if err := s.store.load(commentsFile, &comments); err != nil {
		return err
	}
	changed := false
	for _, c := range comments {
		if c.AuthorEmail == email {
			c.AuthorNickname = nickname
			c.AuthorProfileImage = profileImage
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.store.save(commentsFile, comments)
}
