package dto

// AuthorDTO is the denormalized author snapshot embedded in post and
// comment responses.
type AuthorDTO struct {
	Email        string `json:"email,omitempty"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
}

// PostCreateDTO binds the multipart post form. Image is handler-filled
// after the upload has been stored.
type PostCreateDTO struct {
	Title   string `form:"title" binding:"required" validate:"min=1,max=255"`
	Content string `form:"content" binding:"required" validate:"min=1"`
	Image   string `form:"-"`
}

// PostUpdateDTO is a partial edit: nil fields stay untouched.
type PostUpdateDTO struct {
	Title   *string `form:"title" validate:"omitempty,min=1,max=255"`
	Content *string `form:"content" validate:"omitempty,min=1"`
	Image   *string `form:"-"`
}

type PostSummaryDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Likes     int64     `json:"likes"`
	Views     uint64    `json:"views"`
	Comments  int64     `json:"comments"`
	Author    AuthorDTO `json:"author"`
	CreatedAt string    `json:"createdAt"`
}

type PostDetailDTO struct {
	ID        uint64        `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Image     *string       `json:"image,omitempty"`
	Author    AuthorDTO     `json:"author"`
	Views     uint64        `json:"views"`
	Likes     []string      `json:"likes"`
	LikeCount int64         `json:"likeCount"`
	Comments  []*CommentDTO `json:"comments"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
}

// LikeResultDTO is the toggle outcome: the new count and whether the
// caller now likes the post.
type LikeResultDTO struct {
	Likes int64 `json:"likes"`
	Liked bool  `json:"liked"`
}
