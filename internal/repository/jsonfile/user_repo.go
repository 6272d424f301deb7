package jsonfile

import (
	"context"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository"
)

type UserRepoImpl struct {
	store *Store
}

func NewUserRepo(store *Store) repository.UserRepo {
	return &UserRepoImpl{store: store}
}

func (s *UserRepoImpl) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var users []*model.User
	if err := s.store.load(usersFile, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *UserRepoImpl) GetUserByNickname(_ context.Context, nickname string) (*model.User, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var users []*model.User
	if err := s.store.load(usersFile, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Nickname == nickname {
			return u, nil
		}
	}
	return nil, nil
}

func (s *UserRepoImpl) CreateUser(_ context.Context, user *model.User) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var users []*model.User
	if err := s.store.load(usersFile, &users); err != nil {
		return err
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	users = append(users, user)
	return s.store.save(usersFile, users)
}

func (s *UserRepoImpl) UpdateUser(_ context.Context, email string, fields map[string]interface{}) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var users []*model.User
	if err := s.store.load(usersFile, &users); err != nil {
		return 0, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if v, ok := fields["nickname"].(string); ok {
			u.Nickname = v
		}
		if v, ok := fields["profile_image"].(string); ok {
			u.ProfileImage = v
		}
		u.UpdatedAt = time.Now()
		return 1, s.store.save(usersFile, users)
	}
	return 0, nil
}

func (s *UserRepoImpl) UpdatePassword(_ context.Context, email string, passwordHash string) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var users []*model.User
	if err := s.store.load(usersFile, &users); err != nil {
		return 0, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		u.Password = passwordHash
		u.UpdatedAt = time.Now()
		return 1, s.store.save(usersFile, users)
	}
	return 0, nil
}

func (s *UserRepoImpl) UpdateLastViewed(_ context.Context, email string, history model.ViewHistory) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var users []*model.User
	if err := s.store.load(usersFile, &users); err != nil {
		return err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		u.LastViewedPosts = history
		return s.store.save(usersFile, users)
	}
	return nil
}

func (s *UserRepoImpl) DeleteUser(_ context.Context, email string) (int64, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var users []*model.User
	if err := s.store.load(usersFile, &users); err != nil {
		return 0, err
	}
	kept := users[:0]
	var removed int64
	for _, u := range users {
		if u.Email == email {
			removed++
			continue
		}
		kept = append(kept, u)
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, s.store.save(usersFile, kept)
}
