package service

import (
	"context"
	log "log/slog"
	"net/mail"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/dto"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/consts"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/security"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.UserDTO, error)
	GetUser(ctx context.Context, email string) (*dto.UserDTO, error)
	CheckNickname(ctx context.Context, nickname string) (bool, error)
	UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileDTO) (*dto.UserDTO, error)
	UpdatePassword(ctx context.Context, email string, req *dto.ChangePasswordDTO) error
	DeleteAccount(ctx context.Context, email string) error
}

type UserServiceImpl struct {
	userRepo    repository.UserRepo
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	likeRepo    repository.LikeRepo
}

func NewUserService(
	userRepo repository.UserRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	likeRepo repository.LikeRepo,
) UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, ErrEmailInvalid
	}
	if req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}
	existing, err = s.userRepo.GetUserByNickname(ctx, req.Nickname)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrNicknameExists
	}

	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	profileImage := req.ProfileImage
	if profileImage == "" {
		profileImage = consts.DefaultProfileImage
	}

	user := &model.User{
		Email:           req.Email,
		Password:        passwordHash,
		Nickname:        req.Nickname,
		ProfileImage:    profileImage,
		LastViewedPosts: model.ViewHistory{},
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return toUserDTO(user), nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrPasswordIncorrect
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrPasswordIncorrect
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, email string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) CheckNickname(ctx context.Context, nickname string) (bool, error) {
	user, err := s.userRepo.GetUserByNickname(ctx, nickname)
	if err != nil {
		return false, err
	}
	return user == nil, nil
}

// UpdateProfile rewrites the user record and re-propagates the
// denormalized author fields onto every authored post and comment.
// The propagation is not transactional; a mid-way storage failure
// leaves earlier writes in place.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, email string, req *dto.UpdateProfileDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	fields := make(map[string]interface{})
	if req.Nickname != nil && *req.Nickname != user.Nickname {
		taken, err := s.userRepo.GetUserByNickname(ctx, *req.Nickname)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrNicknameExists
		}
		fields["nickname"] = *req.Nickname
		user.Nickname = *req.Nickname
	}
	if req.ProfileImage != nil {
		fields["profile_image"] = *req.ProfileImage
		user.ProfileImage = *req.ProfileImage
	}
	if len(fields) == 0 {
		return toUserDTO(user), nil
	}

	if _, err := s.userRepo.UpdateUser(ctx, email, fields); err != nil {
		return nil, err
	}

	if err := s.postRepo.UpdateAuthorByEmail(ctx, email, user.Nickname, user.ProfileImage); err != nil {
		log.Warn("author propagation to posts failed", "email", email, "err", err)
		return nil, err
	}
	if err := s.commentRepo.UpdateAuthorByEmail(ctx, email, user.Nickname, user.ProfileImage); err != nil {
		log.Warn("author propagation to comments failed", "email", email, "err", err)
		return nil, err
	}

	return toUserDTO(user), nil
}

func (s *UserServiceImpl) UpdatePassword(ctx context.Context, email string, req *dto.ChangePasswordDTO) error {
	if req.Password != req.PasswordConfirm {
		return ErrPasswordMismatch
	}
	passwordHash, err := security.HashPassword(req.Password)
	if err != nil {
		return err
	}
	affected, err := s.userRepo.UpdatePassword(ctx, email, passwordHash)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteAccount removes the user's comments and likes, tombstones the
// author fields on posts the user leaves behind, then drops the user
// record itself.
func (s *UserServiceImpl) DeleteAccount(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.commentRepo.DeleteByAuthorEmail(ctx, email); err != nil {
		return err
	}
	if err := s.likeRepo.DeleteByUserEmail(ctx, email); err != nil {
		return err
	}
	if err := s.postRepo.UpdateAuthorByEmail(ctx, email, consts.DeletedUserNickname, consts.DefaultProfileImage); err != nil {
		return err
	}

	affected, err := s.userRepo.DeleteUser(ctx, email)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	userDTO := &dto.UserDTO{}
	_ = copier.Copy(userDTO, user)
	userDTO.CreatedAt = user.CreatedAt.Format(time.DateTime)
	return userDTO
}
