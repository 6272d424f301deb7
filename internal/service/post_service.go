package service

import (
	"context"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/dto"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/session"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository"

	"golang.org/x/sync/errgroup"
)

type PostService interface {
	CreatePost(ctx context.Context, author session.User, req *dto.PostCreateDTO) (*dto.PostDetailDTO, error)
	GetPostDetail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error)
	ListPosts(ctx context.Context) ([]*dto.PostSummaryDTO, error)
	UpdatePost(ctx context.Context, callerEmail string, postID uint64, req *dto.PostUpdateDTO) (*dto.PostDetailDTO, error)
	DeletePost(ctx context.Context, callerEmail string, postID uint64) error
}

type PostServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	likeRepo    repository.LikeRepo
}

func NewPostService(
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	likeRepo repository.LikeRepo,
) PostService {
	return &PostServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, author session.User, req *dto.PostCreateDTO) (*dto.PostDetailDTO, error) {
	post := &model.Post{
		Title:              req.Title,
		Content:            req.Content,
		AuthorEmail:        author.Email,
		AuthorNickname:     author.Nickname,
		AuthorProfileImage: author.ProfileImage,
	}
	if req.Image != "" {
		post.Image = &req.Image
	}
	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	detail := toPostDetailDTO(post)
	detail.Likes = []string{}
	detail.Comments = []*dto.CommentDTO{}
	return detail, nil
}

func (s *PostServiceImpl) GetPostDetail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	var (
		comments []*model.Comment
		likes    []string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comments, err = s.commentRepo.GetCommentsByPostID(gctx, postID)
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = s.likeRepo.ListLikes(gctx, postID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := toPostDetailDTO(post)
	if likes == nil {
		likes = []string{}
	}
	detail.Likes = likes
	detail.LikeCount = int64(len(likes))
	detail.Comments = make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, toCommentDTO(comment))
	}
	return detail, nil
}

func (s *PostServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostSummaryDTO, error) {
	summaries, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PostSummaryDTO, 0, len(summaries))
	for _, summary := range summaries {
		result = append(result, &dto.PostSummaryDTO{
			ID:       summary.ID,
			Title:    summary.Title,
			Likes:    summary.LikeCount,
			Views:    summary.Views,
			Comments: summary.CommentCount,
			Author: dto.AuthorDTO{
				Nickname:     summary.AuthorNickname,
				ProfileImage: summary.AuthorProfile,
			},
			CreatedAt: summary.CreatedAt.Format(time.DateTime),
		})
	}
	return result, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, callerEmail string, postID uint64, req *dto.PostUpdateDTO) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorEmail != callerEmail {
		return nil, ErrForbidden
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if len(fields) == 0 {
		return nil, ErrParamInvalid
	}

	if _, err := s.postRepo.UpdatePost(ctx, postID, fields); err != nil {
		return nil, err
	}
	return s.GetPostDetail(ctx, postID)
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, callerEmail string, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorEmail != callerEmail {
		return ErrForbidden
	}

	affected, err := s.postRepo.DeletePost(ctx, postID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func toPostDetailDTO(post *model.Post) *dto.PostDetailDTO {
	return &dto.PostDetailDTO{
		ID:      post.ID,
		Title:   post.Title,
		Content: post.Content,
		Image:   post.Image,
		Author: dto.AuthorDTO{
			Email:        post.AuthorEmail,
			Nickname:     post.AuthorNickname,
			ProfileImage: post.AuthorProfileImage,
		},
		Views:     post.Views,
		CreatedAt: post.CreatedAt.Format(time.DateTime),
		UpdatedAt: post.UpdatedAt.Format(time.DateTime),
	}
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	return &dto.CommentDTO{
		ID:      comment.ID,
		PostID:  comment.PostID,
		Content: comment.Content,
		Author: dto.AuthorDTO{
			Email:        comment.AuthorEmail,
			Nickname:     comment.AuthorNickname,
			ProfileImage: comment.AuthorProfileImage,
		},
		CreatedAt: comment.CreatedAt.Format(time.DateTime),
	}
}
