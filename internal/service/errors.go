package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("invalid request parameters")
	ErrEmailInvalid      = errors.New("a valid email address is required")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrEmailExists       = errors.New("email is already in use")
	ErrNicknameExists    = errors.New("nickname is already in use")
	ErrFileNotSupported  = errors.New("unsupported file type")
	ErrUnauthenticated   = errors.New("login required")
	ErrPasswordIncorrect = errors.New("incorrect email or password")
	ErrForbidden         = errors.New("no permission for this resource")
	ErrUserNotFound      = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrViewRateLimited   = errors.New("view already counted within the last hour")
	UnExpectedError      = errors.New("unexpected server error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrEmailInvalid:      BadRequest,
	ErrPasswordMismatch:  BadRequest,
	ErrEmailExists:       BadRequest,
	ErrNicknameExists:    BadRequest,
	ErrFileNotSupported:  BadRequest,
	ErrUnauthenticated:   Unauthorized,
	ErrPasswordIncorrect: Unauthorized,
	ErrForbidden:         Forbidden,
	ErrUserNotFound:      NotFound,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrViewRateLimited:   TooManyRequests,
	UnExpectedError:      InternalServerError,
}
