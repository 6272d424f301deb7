package service

import (
	"context"
	"sort"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) GetUserByNickname(_ context.Context, nickname string) (*model.User, error) {
	for _, user := range f.users {
		if user.Nickname == nickname {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, email string, fields map[string]interface{}) (int64, error) {
	user, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["nickname"]; ok {
		user.Nickname = v.(string)
	}
	if v, ok := fields["profile_image"]; ok {
		user.ProfileImage = v.(string)
	}
	return 1, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, email string, passwordHash string) (int64, error) {
	user, ok := f.users[email]
	if !ok {
		return 0, nil
	}
	user.Password = passwordHash
	return 1, nil
}

func (f *fakeUserRepo) UpdateLastViewed(_ context.Context, email string, history model.ViewHistory) error {
	if user, ok := f.users[email]; ok {
		user.LastViewedPosts = history
	}
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, email string) (int64, error) {
	if _, ok := f.users[email]; !ok {
		return 0, nil
	}
	delete(f.users, email)
	return 1, nil
}

type fakeCommentRepo struct {
	comments map[uint64]*model.Comment
	nextID   uint64
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: map[uint64]*model.Comment{}}
}

func (f *fakeCommentRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	f.nextID++
	comment.ID = f.nextID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	f.comments[comment.ID] = comment
	return nil
}

func (f *fakeCommentRepo) GetComment(_ context.Context, id uint64) (*model.Comment, error) {
	return f.comments[id], nil
}

func (f *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID uint64) ([]*model.Comment, error) {
	result := make([]*model.Comment, 0)
	for _, comment := range f.comments {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeCommentRepo) UpdateComment(_ context.Context, id uint64, content string) (int64, error) {
	comment, ok := f.comments[id]
	if !ok {
		return 0, nil
	}
	comment.Content = content
	return 1, nil
}

func (f *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) (int64, error) {
	if _, ok := f.comments[id]; !ok {
		return 0, nil
	}
	delete(f.comments, id)
	return 1, nil
}

func (f *fakeCommentRepo) DeleteByAuthorEmail(_ context.Context, email string) error {
	for id, comment := range f.comments {
		if comment.AuthorEmail == email {
			delete(f.comments, id)
		}
	}
	return nil
}

func (f *fakeCommentRepo) UpdateAuthorByEmail(_ context.Context, email, nickname, profileImage string) error {
	for _, comment := range f.comments {
		if comment.AuthorEmail == email {
			comment.AuthorNickname = nickname
			comment.AuthorProfileImage = profileImage
		}
	}
	return nil
}

type fakeLikeRepo struct {
	likes []*model.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: []*model.Like{}}
}

func (f *fakeLikeRepo) AddLike(_ context.Context, like *model.Like) error {
	for _, l := range f.likes {
		if l.PostID == like.PostID && l.UserEmail == like.UserEmail {
			return nil
		}
	}
	like.CreatedAt = time.Now()
	f.likes = append(f.likes, like)
	return nil
}

func (f *fakeLikeRepo) RemoveLike(_ context.Context, userEmail string, postID uint64) (int64, error) {
	kept := f.likes[:0]
	var removed int64
	for _, l := range f.likes {
		if l.PostID == postID && l.UserEmail == userEmail {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	f.likes = kept
	return removed, nil
}

func (f *fakeLikeRepo) ListLikes(_ context.Context, postID uint64) ([]string, error) {
	emails := make([]string, 0)
	for _, l := range f.likes {
		if l.PostID == postID {
			emails = append(emails, l.UserEmail)
		}
	}
	return emails, nil
}

func (f *fakeLikeRepo) CountLikes(_ context.Context, postID uint64) (int64, error) {
	var count int64
	for _, l := range f.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *fakeLikeRepo) HasLiked(_ context.Context, userEmail string, postID uint64) (bool, error) {
	for _, l := range f.likes {
		if l.PostID == postID && l.UserEmail == userEmail {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLikeRepo) DeleteByUserEmail(_ context.Context, userEmail string) error {
	kept := f.likes[:0]
	for _, l := range f.likes {
		if l.UserEmail != userEmail {
			kept = append(kept, l)
		}
	}
	f.likes = kept
	return nil
}

type fakePostRepo struct {
	posts    map[uint64]*model.Post
	nextID   uint64
	comments *fakeCommentRepo
	likes    *fakeLikeRepo
}

func newFakePostRepo(comments *fakeCommentRepo, likes *fakeLikeRepo) *fakePostRepo {
	return &fakePostRepo{
		posts:    map[uint64]*model.Post{},
		comments: comments,
		likes:    likes,
	}
}

func (f *fakePostRepo) CreatePost(_ context.Context, post *model.Post) error {
	f.nextID++
	post.ID = f.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	f.posts[post.ID] = post
	return nil
}

func (f *fakePostRepo) GetPost(_ context.Context, id uint64) (*model.Post, error) {
	return f.posts[id], nil
}

func (f *fakePostRepo) ListPosts(ctx context.Context) ([]*model.PostSummary, error) {
	summaries := make([]*model.PostSummary, 0, len(f.posts))
	for _, post := range f.posts {
		likeCount, _ := f.likes.CountLikes(ctx, post.ID)
		comments, _ := f.comments.GetCommentsByPostID(ctx, post.ID)
		summaries = append(summaries, &model.PostSummary{
			ID:             post.ID,
			Title:          post.Title,
			LikeCount:      likeCount,
			Views:          post.Views,
			CommentCount:   int64(len(comments)),
			AuthorNickname: post.AuthorNickname,
			AuthorProfile:  post.AuthorProfileImage,
			CreatedAt:      post.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].CreatedAt.After(summaries[j].CreatedAt) })
	return summaries, nil
}

func (f *fakePostRepo) UpdatePost(_ context.Context, id uint64, fields map[string]interface{}) (int64, error) {
	post, ok := f.posts[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["title"]; ok {
		post.Title = v.(string)
	}
	if v, ok := fields["content"]; ok {
		post.Content = v.(string)
	}
	if v, ok := fields["image"]; ok {
		image := v.(string)
		post.Image = &image
	}
	post.UpdatedAt = time.Now()
	return 1, nil
}

func (f *fakePostRepo) DeletePost(ctx context.Context, id uint64) (int64, error) {
	if _, ok := f.posts[id]; !ok {
		return 0, nil
	}
	delete(f.posts, id)
	for commentID, comment := range f.comments.comments {
		if comment.PostID == id {
			delete(f.comments.comments, commentID)
		}
	}
	kept := f.likes.likes[:0]
	for _, l := range f.likes.likes {
		if l.PostID != id {
			kept = append(kept, l)
		}
	}
	f.likes.likes = kept
	return 1, nil
}

func (f *fakePostRepo) IncrementViews(_ context.Context, id uint64) error {
	if post, ok := f.posts[id]; ok {
		post.Views++
	}
	return nil
}

func (f *fakePostRepo) UpdateAuthorByEmail(_ context.Context, email, nickname, profileImage string) error {
	for _, post := range f.posts {
		if post.AuthorEmail == email {
			post.AuthorNickname = nickname
			post.AuthorProfileImage = profileImage
		}
	}
	return nil
}

// fixture bundles the fakes with fully wired services.
type fixture struct {
	users    *fakeUserRepo
	posts    *fakePostRepo
	comments *fakeCommentRepo
	likes    *fakeLikeRepo

	userSvc   UserService
	postSvc   PostService
	actionSvc PostActionService
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	comments := newFakeCommentRepo()
	likes := newFakeLikeRepo()
	posts := newFakePostRepo(comments, likes)

	return &fixture{
		users:     users,
		posts:     posts,
		comments:  comments,
		likes:     likes,
		userSvc:   NewUserService(users, posts, comments, likes),
		postSvc:   NewPostService(posts, comments, likes),
		actionSvc: NewPostActionService(posts, comments, likes, users),
	}
}
