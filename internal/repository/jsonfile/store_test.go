package jsonfile

import (
	"context"
	"testing"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestUserRoundTrip(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepo(store)
	ctx := context.Background()

	user := &model.User{
		Email:        "user@test.com",
		Password:     "hash",
		Nickname:     "user",
		ProfileImage: "avatar.png",
		LastViewedPosts: model.ViewHistory{
			3: time.Now().Truncate(time.Second),
		},
	}
	require.NoError(t, repo.CreateUser(ctx, user))

	// reload from disk through a fresh repo
	loaded, err := NewUserRepo(store).GetUserByEmail(ctx, "user@test.com")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "user", loaded.Nickname)
	assert.Equal(t, "hash", loaded.Password)
	assert.Contains(t, loaded.LastViewedPosts, uint64(3))

	missing, err := repo.GetUserByEmail(ctx, "nobody@test.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserUpdateAndDelete(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepo(store)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &model.User{Email: "user@test.com", Nickname: "before"}))

	affected, err := repo.UpdateUser(ctx, "user@test.com", map[string]interface{}{"nickname": "after"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	loaded, err := repo.GetUserByNickname(ctx, "after")
	require.NoError(t, err)
	require.NotNil(t, loaded)

	affected, err = repo.DeleteUser(ctx, "user@test.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.DeleteUser(ctx, "user@test.com")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestPostIDsAreMonotonic(t *testing.T) {
	store := newTestStore(t)
	repo := NewPostRepo(store)
	ctx := context.Background()

	first := &model.Post{Title: "one", Content: "c", AuthorEmail: "a@test.com"}
	second := &model.Post{Title: "two", Content: "c", AuthorEmail: "a@test.com"}
	require.NoError(t, repo.CreatePost(ctx, first))
	require.NoError(t, repo.CreatePost(ctx, second))
	assert.Equal(t, first.ID+1, second.ID)

	_, err := repo.DeletePost(ctx, second.ID)
	require.NoError(t, err)

	third := &model.Post{Title: "three", Content: "c", AuthorEmail: "a@test.com"}
	require.NoError(t, repo.CreatePost(ctx, third))
	assert.Greater(t, third.ID, first.ID)
}

func TestDeletePostCascadesCommentsAndLikes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	posts := NewPostRepo(store)
	comments := NewCommentRepo(store)
	likes := NewLikeRepo(store)

	post := &model.Post{Title: "doomed", Content: "c", AuthorEmail: "a@test.com"}
	require.NoError(t, posts.CreatePost(ctx, post))
	other := &model.Post{Title: "survivor", Content: "c", AuthorEmail: "a@test.com"}
	require.NoError(t, posts.CreatePost(ctx, other))

	require.NoError(t, comments.CreateComment(ctx, &model.Comment{PostID: post.ID, Content: "gone", AuthorEmail: "b@test.com"}))
	keptComment := &model.Comment{PostID: other.ID, Content: "kept", AuthorEmail: "b@test.com"}
	require.NoError(t, comments.CreateComment(ctx, keptComment))
	require.NoError(t, likes.AddLike(ctx, &model.Like{PostID: post.ID, UserEmail: "b@test.com"}))
	require.NoError(t, likes.AddLike(ctx, &model.Like{PostID: other.ID, UserEmail: "b@test.com"}))

	affected, err := posts.DeletePost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	remaining, err := comments.GetCommentsByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	count, err := likes.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	kept, err := comments.GetComment(ctx, keptComment.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)
	otherCount, err := likes.CountLikes(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), otherCount)
}

func TestLikesBehaveAsASet(t *testing.T) {
	store := newTestStore(t)
	likes := NewLikeRepo(store)
	ctx := context.Background()

	require.NoError(t, likes.AddLike(ctx, &model.Like{PostID: 1, UserEmail: "a@test.com"}))
	require.NoError(t, likes.AddLike(ctx, &model.Like{PostID: 1, UserEmail: "a@test.com"}))
	require.NoError(t, likes.AddLike(ctx, &model.Like{PostID: 1, UserEmail: "b@test.com"}))

	emails, err := likes.ListLikes(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a@test.com", "b@test.com"}, emails)

	liked, err := likes.HasLiked(ctx, "a@test.com", 1)
	require.NoError(t, err)
	assert.True(t, liked)

	removed, err := likes.RemoveLike(ctx, "a@test.com", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	liked, err = likes.HasLiked(ctx, "a@test.com", 1)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestListPostsSummaryCounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	posts := NewPostRepo(store)
	comments := NewCommentRepo(store)
	likes := NewLikeRepo(store)

	post := &model.Post{Title: "counted", Content: "c", AuthorEmail: "a@test.com", AuthorNickname: "a"}
	require.NoError(t, posts.CreatePost(ctx, post))
	require.NoError(t, comments.CreateComment(ctx, &model.Comment{PostID: post.ID, Content: "one", AuthorEmail: "b@test.com"}))
	require.NoError(t, comments.CreateComment(ctx, &model.Comment{PostID: post.ID, Content: "two", AuthorEmail: "b@test.com"}))
	require.NoError(t, likes.AddLike(ctx, &model.Like{PostID: post.ID, UserEmail: "b@test.com"}))
	require.NoError(t, posts.IncrementViews(ctx, post.ID))

	summaries, err := posts.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(1), summaries[0].LikeCount)
	assert.Equal(t, int64(2), summaries[0].CommentCount)
	assert.Equal(t, uint64(1), summaries[0].Views)
	assert.Equal(t, "a", summaries[0].AuthorNickname)
}

func TestUpdateAuthorByEmailTouchesOnlyMatching(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	posts := NewPostRepo(store)
	comments := NewCommentRepo(store)

	mine := &model.Post{Title: "mine", Content: "c", AuthorEmail: "me@test.com", AuthorNickname: "old"}
	theirs := &model.Post{Title: "theirs", Content: "c", AuthorEmail: "you@test.com", AuthorNickname: "you"}
	require.NoError(t, posts.CreatePost(ctx, mine))
	require.NoError(t, posts.CreatePost(ctx, theirs))
	comment := &model.Comment{PostID: mine.ID, Content: "c", AuthorEmail: "me@test.com", AuthorNickname: "old"}
	require.NoError(t, comments.CreateComment(ctx, comment))

	require.NoError(t, posts.UpdateAuthorByEmail(ctx, "me@test.com", "new", "new.png"))
	require.NoError(t, comments.UpdateAuthorByEmail(ctx, "me@test.com", "new", "new.png"))

	updated, err := posts.GetPost(ctx, mine.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", updated.AuthorNickname)

	untouched, err := posts.GetPost(ctx, theirs.ID)
	require.NoError(t, err)
	assert.Equal(t, "you", untouched.AuthorNickname)

	updatedComment, err := comments.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", updatedComment.AuthorNickname)
}
