package jsonfile

import (
	"context"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository"
)

type LikeRepoImpl struct {
	store *Store
}

func NewLikeRepo(store *Store) repository.LikeRepo {
	return &LikeRepoImpl{store: store}
}

func (s *LikeRepoImpl) AddLike(_ context.Context, like *model.Like) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var likes []*model.Like
	if err := s.store.load(likesFile, &likes); err != nil {
		return err
	}
	for _, l := range likes {
		if l.PostID == like.PostID && l.UserEmail == like.UserEmail {
			// set semantics, nothing to add
			return nil
		}
	}
	like.CreatedAt = time.Now()
	likes = append(likes, like)
	return s.store.save(likesFile, likes)
}

func (s *LikeRepoImpl) RemoveLike(_ context.Context, userEmail string, postID uint64) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var likes []*model.Like
	if err := s.store.load(likesFile, &likes); err != nil {
		return 0, err
	}
	kept := likes[:0]
	var removed int64
	for _, l := range likes {
		if l.PostID == postID && l.UserEmail == userEmail {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.store.save(likesFile, kept)
}

func (s *LikeRepoImpl) ListLikes(_ context.Context, postID uint64) ([]string, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var likes []*model.Like
	if err := s.store.load(likesFile, &likes); err != nil {
		return nil, err
	}
	emails := make([]string, 0)
	for _, l := range likes {
		if l.PostID == postID {
			emails = append(emails, l.UserEmail)
		}
	}
	return emails, nil
}

func (s *LikeRepoImpl) CountLikes(ctx context.Context, postID uint64) (int64, error) {
	emails, err := s.ListLikes(ctx, postID)
	if err != nil {
		return 0, err
	}
	return int64(len(emails)), nil
}

func (s *LikeRepoImpl) HasLiked(_ context.Context, userEmail string, postID uint64) (bool, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var likes []*model.Like
	if err := s.store.load(likesFile, &likes); err != nil {
		return false, err
	}
	for _, l := range likes {
		if l.PostID == postID && l.UserEmail == userEmail {
			return true, nil
		}
	}
	return false, nil
}

func (s *LikeRepoImpl) DeleteByUserEmail(_ context.Context, userEmail string) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var likes []*model.Like
	if err := s.store.load(likesFile, &likes); err != nil {
		return err
	}
	kept := likes[:0]
	for _, l := range likes {
		if l.UserEmail != userEmail {
			kept = append(kept, l)
		}
	}
	return s.store.save(likesFile, kept)
}
