package consts

const (
	SessionCookieName = "board_session"
	SessionUserKey    = "session_user"
	SessionIDKey      = "session_id"
)

const (
	DefaultProfileImage = "default_avatar.png"
	DeletedUserNickname = "deleted user"
)

const (
	SessionKeyPrefix = "session:"
)
