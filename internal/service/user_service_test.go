package service

import (
	"context"
	"testing"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/dto"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/consts"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerUser(t *testing.T, f *fixture, email, nickname string) *dto.UserDTO {
	t.Helper()
	user, err := f.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Email:           email,
		Password:        "secret123",
		PasswordConfirm: "secret123",
		Nickname:        nickname,
	})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	f := newFixture()
	user := registerUser(t, f, "new@test.com", "newbie")

	assert.Equal(t, "new@test.com", user.Email)
	assert.Equal(t, consts.DefaultProfileImage, user.ProfileImage)

	stored := f.users.users["new@test.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterRejectsMalformedEmail(t *testing.T) {
	f := newFixture()
	_, err := f.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Email:           "not-an-address",
		Password:        "secret123",
		PasswordConfirm: "secret123",
		Nickname:        "newbie",
	})
	assert.ErrorIs(t, err, ErrEmailInvalid)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	f := newFixture()
	_, err := f.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Email:           "new@test.com",
		Password:        "secret123",
		PasswordConfirm: "different",
		Nickname:        "newbie",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	f := newFixture()
	registerUser(t, f, "taken@test.com", "taken")

	_, err := f.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Email:           "taken@test.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
		Nickname:        "other",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = f.userSvc.Register(context.Background(), &dto.RegisterDTO{
		Email:           "other@test.com",
		Password:        "secret123",
		PasswordConfirm: "secret123",
		Nickname:        "taken",
	})
	assert.ErrorIs(t, err, ErrNicknameExists)
}

func TestLogin(t *testing.T) {
	f := newFixture()
	registerUser(t, f, "login@test.com", "login")

	user, err := f.userSvc.Login(context.Background(), &dto.CredentialDTO{
		Email:    "login@test.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "login", user.Nickname)

	_, err = f.userSvc.Login(context.Background(), &dto.CredentialDTO{
		Email:    "login@test.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = f.userSvc.Login(context.Background(), &dto.CredentialDTO{
		Email:    "nobody@test.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestCheckNickname(t *testing.T) {
	f := newFixture()
	registerUser(t, f, "user@test.com", "taken")

	available, err := f.userSvc.CheckNickname(context.Background(), "taken")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.userSvc.CheckNickname(context.Background(), "free")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestUpdateProfilePropagatesAuthorSnapshot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	registerUser(t, f, "author@test.com", "before")
	author := seedSessionUser(f, "author@test.com")

	post := seedPost(t, f, author, "mine")
	comment, err := f.actionSvc.CreateComment(ctx, author, post.ID, &dto.CommentCreateDTO{Content: "self comment"})
	require.NoError(t, err)

	newNickname := "after"
	updated, err := f.userSvc.UpdateProfile(ctx, author.Email, &dto.UpdateProfileDTO{Nickname: &newNickname})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Nickname)

	storedPost, err := f.posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", storedPost.AuthorNickname)

	storedComment, err := f.comments.GetComment(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", storedComment.AuthorNickname)
}

func TestUpdateProfileRejectsTakenNickname(t *testing.T) {
	f := newFixture()
	registerUser(t, f, "a@test.com", "alpha")
	registerUser(t, f, "b@test.com", "beta")

	nickname := "alpha"
	_, err := f.userSvc.UpdateProfile(context.Background(), "b@test.com", &dto.UpdateProfileDTO{Nickname: &nickname})
	assert.ErrorIs(t, err, ErrNicknameExists)
}

func TestUpdatePassword(t *testing.T) {
	f := newFixture()
	registerUser(t, f, "user@test.com", "user")

	err := f.userSvc.UpdatePassword(context.Background(), "user@test.com", &dto.ChangePasswordDTO{
		Password:        "changed456",
		PasswordConfirm: "changed456",
	})
	require.NoError(t, err)

	_, err = f.userSvc.Login(context.Background(), &dto.CredentialDTO{
		Email:    "user@test.com",
		Password: "changed456",
	})
	assert.NoError(t, err)

	err = f.userSvc.UpdatePassword(context.Background(), "user@test.com", &dto.ChangePasswordDTO{
		Password:        "one",
		PasswordConfirm: "two",
	})
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestDeleteAccountCascadesAndTombstones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	registerUser(t, f, "leaver@test.com", "leaver")
	registerUser(t, f, "other@test.com", "other")
	leaver := seedSessionUser(f, "leaver@test.com")
	other := seedSessionUser(f, "other@test.com")

	ownPost := seedPost(t, f, leaver, "mine")
	otherPost := seedPost(t, f, other, "theirs")

	_, err := f.actionSvc.CreateComment(ctx, leaver, otherPost.ID, &dto.CommentCreateDTO{Content: "from leaver"})
	require.NoError(t, err)
	_, err = f.actionSvc.ToggleLike(ctx, leaver.Email, otherPost.ID)
	require.NoError(t, err)

	require.NoError(t, f.userSvc.DeleteAccount(ctx, leaver.Email))

	_, err = f.userSvc.GetUser(ctx, leaver.Email)
	assert.ErrorIs(t, err, ErrUserNotFound)

	detail, err := f.postSvc.GetPostDetail(ctx, otherPost.ID)
	require.NoError(t, err)
	assert.Empty(t, detail.Comments)
	assert.Empty(t, detail.Likes)

	survived, err := f.posts.GetPost(ctx, ownPost.ID)
	require.NoError(t, err)
	assert.Equal(t, consts.DeletedUserNickname, survived.AuthorNickname)
	assert.Equal(t, consts.DefaultProfileImage, survived.AuthorProfileImage)
}

// seedSessionUser builds the session snapshot of an already registered
// user, the way login does.
func seedSessionUser(f *fixture, email string) session.User {
	user := f.users.users[email]
	return session.User{
		Email:        user.Email,
		Nickname:     user.Nickname,
		ProfileImage: user.ProfileImage,
	}
}
