package service

import (
	"context"
	"errors"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/dto"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/session"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository"

	"github.com/go-sql-driver/mysql"
)

// viewThrottleWindow is how long a user's repeat views of the same
// post stay uncounted.
const viewThrottleWindow = time.Hour

type PostActionService interface {
	ToggleLike(ctx context.Context, userEmail string, postID uint64) (*dto.LikeResultDTO, error)
	ListLikes(ctx context.Context, postID uint64) ([]string, error)
	TrackPostView(ctx context.Context, userEmail string, postID uint64) error
	CreateComment(ctx context.Context, author session.User, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, callerEmail string, postID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, callerEmail string, postID, commentID uint64) error
}

type PostActionServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	likeRepo    repository.LikeRepo
	userRepo    repository.UserRepo
}

func NewPostActionService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	likeRepo repository.LikeRepo,
	userRepo repository.UserRepo,
) PostActionService {
	return &PostActionServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
	}
}

// ToggleLike flips the caller's like on a post and reports the new
// state: liked becomes unliked and vice versa.
func (s *PostActionServiceImpl) ToggleLike(ctx context.Context, userEmail string, postID uint64) (*dto.LikeResultDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	liked, err := s.likeRepo.HasLiked(ctx, userEmail, postID)
	if err != nil {
		return nil, err
	}
	if liked {
		if _, err := s.likeRepo.RemoveLike(ctx, userEmail, postID); err != nil {
			return nil, err
		}
	} else {
		err := s.likeRepo.AddLike(ctx, &model.Like{PostID: postID, UserEmail: userEmail})
		if err != nil && !isDuplicateError(err) {
			return nil, err
		}
	}

	count, err := s.likeRepo.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeResultDTO{Likes: count, Liked: !liked}, nil
}

func (s *PostActionServiceImpl) ListLikes(ctx context.Context, postID uint64) ([]string, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	likes, err := s.likeRepo.ListLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	if likes == nil {
		likes = []string{}
	}
	return likes, nil
}

// TrackPostView bumps the view counter unless the same user viewed
// this post within the last hour. Anonymous views always count. The
// read-then-write on the view history is best effort; two overlapping
// views may both count.
func (s *PostActionServiceImpl) TrackPostView(ctx context.Context, userEmail string, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	if userEmail == "" {
		return s.postRepo.IncrementViews(ctx, postID)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return err
	}
	if user == nil {
		return s.postRepo.IncrementViews(ctx, postID)
	}

	if last, ok := user.LastViewedPosts[postID]; ok && time.Since(last) < viewThrottleWindow {
		return ErrViewRateLimited
	}

	if err := s.postRepo.IncrementViews(ctx, postID); err != nil {
		return err
	}

	history := user.LastViewedPosts
	if history == nil {
		history = model.ViewHistory{}
	}
	history[postID] = time.Now()
	return s.userRepo.UpdateLastViewed(ctx, userEmail, history)
}

func (s *PostActionServiceImpl) CreateComment(ctx context.Context, author session.User, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		PostID:             postID,
		Content:            req.Content,
		AuthorEmail:        author.Email,
		AuthorNickname:     author.Nickname,
		AuthorProfileImage: author.ProfileImage,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return toCommentDTO(comment), nil
}

func (s *PostActionServiceImpl) UpdateComment(ctx context.Context, callerEmail string, postID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error) {
	comment, err := s.getPostComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorEmail != callerEmail {
		return nil, ErrForbidden
	}

	if _, err := s.commentRepo.UpdateComment(ctx, commentID, req.Content); err != nil {
		return nil, err
	}
	comment.Content = req.Content
	return toCommentDTO(comment), nil
}

func (s *PostActionServiceImpl) DeleteComment(ctx context.Context, callerEmail string, postID, commentID uint64) error {
	comment, err := s.getPostComment(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorEmail != callerEmail {
		return ErrForbidden
	}

	affected, err := s.commentRepo.DeleteComment(ctx, commentID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

// getPostComment loads a comment and checks it belongs to the given
// post; a comment reached through the wrong post reads as absent.
func (s *PostActionServiceImpl) getPostComment(ctx context.Context, postID, commentID uint64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.PostID != postID {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
